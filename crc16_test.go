package pix

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumKnownVectors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Reference vector for CRC-16/CCITT-FALSE.
		{"check value", "123456789", "29B1"},
		{"empty input", "", "FFFF"},
		{"single byte", "A", "B915"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Checksum(tt.input))
		})
	}
}

func TestChecksumDeterministic(t *testing.T) {
	const input = "00020126580014BR.GOV.BCB.PIX"
	first := Checksum(input)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Checksum(input))
	}
}

func TestChecksumFormat(t *testing.T) {
	hex4 := regexp.MustCompile(`^[0-9A-F]{4}$`)
	inputs := []string{"", "a", "pix", "000201", "123456789", "BR.GOV.BCB.PIX"}
	for _, in := range inputs {
		assert.Regexp(t, hex4, Checksum(in), "input %q", in)
	}
}

func TestChecksumSensitivity(t *testing.T) {
	const base = "00020126360014BR.GOV.BCB.PIX0114234842250001665204"
	want := Checksum(base)

	// Flipping any single character must change the result.
	for i := 0; i < len(base); i++ {
		mutated := []byte(base)
		mutated[i] ^= 0x01
		assert.NotEqual(t, want, Checksum(string(mutated)), "flip at %d", i)
	}
}
