package pix

import (
	"log/slog"
	"strings"
)

// Field is one id(2) + length(2) + value tuple of the BR Code grammar.
// A field is either scalar (Value holds the literal characters) or
// composite (Subfields holds the nested tuples, in wire order). The two
// cases are mutually exclusive; Subfields wins when both are set.
//
// Length and Description are populated by the decoder only. The encoder
// recomputes lengths from the actual content and ignores descriptions.
type Field struct {
	ID          string
	Length      string
	Value       string
	Subfields   []Field
	Description string
}

// IsComposite reports whether the field carries nested subfields.
func (f *Field) IsComposite() bool {
	return len(f.Subfields) > 0
}

// empty reports whether the field has neither an id nor any content.
// Such fields are skipped during encoding, tolerating partially built
// trees.
func (f *Field) empty() bool {
	return f.ID == "" && f.Value == "" && len(f.Subfields) == 0
}

// PaymentDocument is an ordered field tree. Order is significant: the
// wire format is positional, so reordering fields changes the encoded
// string and its checksum.
type PaymentDocument struct {
	Fields []Field
}

// Field returns the first top-level field with the given id.
func (doc *PaymentDocument) Field(id string) (*Field, bool) {
	for i := range doc.Fields {
		if doc.Fields[i].ID == id {
			return &doc.Fields[i], true
		}
	}
	return nil, false
}

// Subfield returns a nested field addressed as parent id plus child id,
// e.g. Subfield("26", "01") for the PIX key.
func (doc *PaymentDocument) Subfield(id, subID string) (*Field, bool) {
	parent, ok := doc.Field(id)
	if !ok {
		return nil, false
	}
	for i := range parent.Subfields {
		if parent.Subfields[i].ID == subID {
			return &parent.Subfields[i], true
		}
	}
	return nil, false
}

// LogValue implements slog.LogValuer so documents log as structured
// groups instead of raw struct dumps.
func (doc *PaymentDocument) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(doc.Fields))
	for i := range doc.Fields {
		f := &doc.Fields[i]
		if f.IsComposite() {
			sub := make([]any, 0, len(f.Subfields))
			for j := range f.Subfields {
				sub = append(sub, slog.String(f.Subfields[j].ID, f.Subfields[j].Value))
			}
			attrs = append(attrs, slog.Group(f.ID, sub...))
			continue
		}
		attrs = append(attrs, slog.String(f.ID, f.Value))
	}
	return slog.GroupValue(attrs...)
}

// KeyType is the syntactic classification of a PIX key.
type KeyType int

const (
	KeyTypeUnknown KeyType = iota
	KeyTypeCPF
	KeyTypeCNPJ
	KeyTypeEmail
	KeyTypePhone
	KeyTypeRandom
)

func (kt KeyType) String() string {
	switch kt {
	case KeyTypeCPF:
		return "CPF"
	case KeyTypeCNPJ:
		return "CNPJ"
	case KeyTypeEmail:
		return "EMAIL"
	case KeyTypePhone:
		return "PHONE"
	case KeyTypeRandom:
		return "RANDOM"
	default:
		return "UNKNOWN"
	}
}

// ParseKeyType is the inverse of KeyType.String.
func ParseKeyType(s string) KeyType {
	switch strings.ToUpper(s) {
	case "CPF":
		return KeyTypeCPF
	case "CNPJ":
		return KeyTypeCNPJ
	case "EMAIL":
		return KeyTypeEmail
	case "PHONE":
		return KeyTypePhone
	case "RANDOM":
		return KeyTypeRandom
	default:
		return KeyTypeUnknown
	}
}
