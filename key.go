package pix

import "regexp"

// Key patterns, pre-compiled once. The email check is deliberately loose
// (one @, a dotted domain, no whitespace): PIX key registration already
// happened elsewhere, this only classifies the shape.
var (
	emailKeyPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneKeyPattern  = regexp.MustCompile(`^\+55[0-9]{10,11}$`)
	randomKeyPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// ValidateKey classifies a PIX key by syntax alone. The order of checks
// is part of the contract: digits are stripped first, and exactly 11 or
// 14 of them decide CPF or CNPJ before the email, phone and random-key
// patterns are ever consulted against the original string.
//
// An empty or unclassifiable key returns KeyTypeUnknown with
// ErrInvalidKey.
func ValidateKey(key string) (KeyType, error) {
	if key == "" {
		return KeyTypeUnknown, ErrInvalidKey
	}

	switch len(digitsOnly(key)) {
	case 11:
		return KeyTypeCPF, nil
	case 14:
		return KeyTypeCNPJ, nil
	}

	switch {
	case emailKeyPattern.MatchString(key):
		return KeyTypeEmail, nil
	case phoneKeyPattern.MatchString(key):
		return KeyTypePhone, nil
	case randomKeyPattern.MatchString(key):
		return KeyTypeRandom, nil
	}
	return KeyTypeUnknown, ErrInvalidKey
}
