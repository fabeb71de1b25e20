package pix

// twoDigits renders n as exactly two decimal digits. Values outside
// [0,99] wrap into the low two digits; the grammar cannot express them
// and MaxValueLen documents the ceiling.
func twoDigits(n int) string {
	n %= 100
	if n < 0 {
		n += 100
	}
	return string([]byte{'0' + byte(n/10), '0' + byte(n%10)})
}

// digitsOnly strips every non-digit character from s.
func digitsOnly(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
