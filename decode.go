package pix

import "strconv"

// DecodeFields scans wire left to right into an ordered field list. Each
// tuple is a 2-digit id, a 2-digit decimal length, then that many value
// characters. Ids "26" and "62" are decoded recursively into subfields;
// every other id is scalar.
//
// The scan stops once four or fewer characters remain; any remainder is
// assumed to be the trailing CRC tuple and captured as a synthesized
// {63, 04, last-4-chars} field. The function does not verify that
// assumption, nor the checksum itself; Decode does both.
//
// By default a declared length that overruns the input yields a silently
// truncated value. WithStrictLengths turns that into an error instead.
func DecodeFields(wire string, opts ...DecodeOption) ([]Field, error) {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return decodeFields(wire, &cfg)
}

func decodeFields(wire string, cfg *decodeConfig) ([]Field, error) {
	var fields []Field

	pos := 0
	for len(wire)-pos > crcValueLen {
		id := wire[pos : pos+2]
		lengthStr := wire[pos+2 : pos+4]
		length, err := strconv.Atoi(lengthStr)
		if err != nil || length < 0 {
			if cfg.strictLengths {
				return nil, &FieldError{ID: id, Offset: pos, Err: ErrInvalidInput}
			}
			break
		}

		end := pos + 4 + length
		if end > len(wire) {
			if cfg.strictLengths {
				return nil, &FieldError{ID: id, Offset: pos, Err: ErrFieldOverrun}
			}
			end = len(wire)
		}
		value := wire[pos+4 : end]
		pos = end

		f := Field{ID: id, Length: lengthStr, Value: value}
		if compositeIDs[id] {
			sub, err := decodeFields(value, cfg)
			if err != nil {
				return nil, err
			}
			f.Value = ""
			f.Subfields = sub
		}
		fields = append(fields, f)
	}

	// Whatever is left is taken to be the CRC tuple.
	if pos < len(wire) {
		start := len(wire) - crcValueLen
		if start < 0 {
			start = 0
		}
		fields = append(fields, Field{
			ID:     IDCRC16,
			Length: "04",
			Value:  wire[start:],
		})
	}

	return fields, nil
}

// Decode parses a complete wire string into an annotated document. The
// last four characters must match the CRC-16 of everything before them;
// a disagreement fails with a *ChecksumError carrying both values.
func Decode(wire string, opts ...DecodeOption) (*PaymentDocument, error) {
	if len(wire) < crcValueLen {
		return nil, ErrInvalidInput
	}

	provided := wire[len(wire)-crcValueLen:]
	computed := Checksum(wire[:len(wire)-crcValueLen])
	if provided != computed {
		return nil, &ChecksumError{Computed: computed, Provided: provided}
	}

	fields, err := DecodeFields(wire, opts...)
	if err != nil {
		return nil, err
	}
	annotate(fields)
	return &PaymentDocument{Fields: fields}, nil
}

// annotate attaches the human-readable labels the tables in constant.go
// define. Unrecognized ids are left untouched; labels are informational
// and never re-encoded.
func annotate(fields []Field) {
	for i := range fields {
		f := &fields[i]
		f.Description = fieldDescriptions[f.ID]
		if sub, ok := subfieldDescriptions[f.ID]; ok {
			for j := range f.Subfields {
				f.Subfields[j].Description = sub[f.Subfields[j].ID]
			}
		}
	}
}
