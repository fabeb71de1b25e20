package pix

// DecodeOption configures a single Decode or DecodeFields call.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	strictLengths bool
}

// WithStrictLengths makes the scan fail when a tuple's declared length
// runs past the end of the input. The default is lenient: the value is
// silently truncated to whatever remains, which is what deployed BR Code
// readers do with malformed payloads.
func WithStrictLengths() DecodeOption {
	return func(cfg *decodeConfig) {
		cfg.strictLengths = true
	}
}
