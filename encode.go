package pix

import "strings"

// EncodeField serializes a single field to its wire form. Scalar fields
// become id + length + value; composite fields serialize their children
// in order (recursively, so 62.50 nests a second level) and wrap the
// concatenation the same way. Children that carry neither an id nor any
// content are skipped.
//
// The length slot is not bounds-checked: a value longer than MaxValueLen
// encodes with a truncated length, exactly as the wire grammar behaves.
func EncodeField(f Field) string {
	if f.IsComposite() {
		var nested strings.Builder
		for i := range f.Subfields {
			if f.Subfields[i].empty() {
				continue
			}
			nested.WriteString(EncodeField(f.Subfields[i]))
		}
		return f.ID + twoDigits(nested.Len()) + nested.String()
	}
	return f.ID + twoDigits(len(f.Value)) + f.Value
}

// Encode serializes a document to the complete wire string: every field
// in order, then "6304" and the CRC-16 of everything before it.
//
// Any "63" field already present is dropped first; the checksum is always
// recomputed, never trusted from input.
func Encode(doc *PaymentDocument) (string, error) {
	if doc == nil || doc.Fields == nil {
		return "", ErrInvalidInput
	}

	var sb strings.Builder
	for i := range doc.Fields {
		if doc.Fields[i].ID == IDCRC16 {
			continue
		}
		sb.WriteString(EncodeField(doc.Fields[i]))
	}
	sb.WriteString(crcFieldPrefix)
	sb.WriteString(Checksum(sb.String()))
	return sb.String(), nil
}
