package pix

const (
	crcPoly uint16 = 0x1021
	crcInit uint16 = 0xFFFF
)

const hexTableUpper = "0123456789ABCDEF"

// Checksum computes the CRC-16/CCITT-FALSE of text and returns it as four
// uppercase hex digits, as carried in field 63 of the payload.
//
// The register starts at 0xFFFF; each byte is XORed into the high byte and
// the register is then shifted through eight rounds against polynomial
// 0x1021, MSB first. No reflection, no final XOR.
func Checksum(text string) string {
	crc := crcInit
	for i := 0; i < len(text); i++ {
		crc ^= uint16(text[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ crcPoly
			} else {
				crc <<= 1
			}
		}
	}
	return formatCRC(crc)
}

// formatCRC renders a register value as 4 uppercase hex digits.
func formatCRC(crc uint16) string {
	return string([]byte{
		hexTableUpper[crc>>12&0xF],
		hexTableUpper[crc>>8&0xF],
		hexTableUpper[crc>>4&0xF],
		hexTableUpper[crc&0xF],
	})
}
