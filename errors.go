package pix

import "fmt"

var (
	ErrInvalidInput     = fmt.Errorf("invalid input")
	ErrChecksumMismatch = fmt.Errorf("checksum mismatch")
	ErrInvalidKey       = fmt.Errorf("invalid key format")

	// Specializations of ErrInvalidInput; errors.Is against either works.
	ErrMissingParameter = fmt.Errorf("%w: missing required parameter", ErrInvalidInput)
	ErrInvalidAmount    = fmt.Errorf("%w: malformed amount", ErrInvalidInput)
	ErrFieldOverrun     = fmt.Errorf("%w: declared length exceeds remaining input", ErrInvalidInput)
)

// ChecksumError reports a decode-time CRC disagreement. It carries both
// values so callers can log the diagnostics; errors.Is(err,
// ErrChecksumMismatch) matches it.
type ChecksumError struct {
	Computed string
	Provided string
}

func (ce *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch: computed %s, payload carries %s", ce.Computed, ce.Provided)
}

func (ce *ChecksumError) Unwrap() error {
	return ErrChecksumMismatch
}

// ParameterError identifies which CreatePayment parameter was rejected.
type ParameterError struct {
	Name string
	Err  error
}

func (pe *ParameterError) Error() string {
	return fmt.Sprintf("parameter %s: %v", pe.Name, pe.Err)
}

func (pe *ParameterError) Unwrap() error {
	return pe.Err
}

// FieldError ties a decode failure to the field id and offset where the
// scan stopped. Only produced in strict decode mode.
type FieldError struct {
	ID     string
	Offset int
	Err    error
}

func (fe *FieldError) Error() string {
	return fmt.Sprintf("field %s at offset %d: %v", fe.ID, fe.Offset, fe.Err)
}

func (fe *FieldError) Unwrap() error {
	return fe.Err
}
