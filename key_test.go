package pix

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want KeyType
	}{
		{"cpf", "52998224725", KeyTypeCPF},
		{"cpf with punctuation", "529.982.247-25", KeyTypeCPF},
		{"cnpj", "23484225000166", KeyTypeCNPJ},
		{"cnpj with punctuation", "23.484.225/0001-66", KeyTypeCNPJ},
		{"email", "user@example.com", KeyTypeEmail},
		{"email subdomain", "pay.me@mail.example.com.br", KeyTypeEmail},
		{"phone", "+5511987654321", KeyTypePhone},
		{"phone landline", "+551133334444", KeyTypePhone},
		{"random", "123e4567-e89b-42d3-a456-426614174000", KeyTypeRandom},
		{"random uppercase", "123E4567-E89B-42D3-A456-426614174000", KeyTypeRandom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateKey(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateKeyGenerated(t *testing.T) {
	// Freshly minted random keys are UUIDs.
	for i := 0; i < 5; i++ {
		got, err := ValidateKey(uuid.NewString())
		require.NoError(t, err)
		assert.Equal(t, KeyTypeRandom, got)
	}
}

func TestValidateKeyRejects(t *testing.T) {
	invalid := []string{
		"",
		"not-a-key",
		"user@nodomain",
		"user name@example.com",
		"+1551198765",             // wrong country code
		"+55119876",               // too short for a phone
		"123e4567-e89b-42d3-a456", // truncated UUID
	}
	for _, key := range invalid {
		got, err := ValidateKey(key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
		assert.Equal(t, KeyTypeUnknown, got, "key %q", key)
	}
}

func TestValidateKeyDigitCountWinsFirst(t *testing.T) {
	// Classification strips non-digits before anything else, so a string
	// containing exactly 11 digits is a CPF even if it also looks like an
	// email or phone number.
	got, err := ValidateKey("12345678901@example.com")
	require.NoError(t, err)
	assert.Equal(t, KeyTypeCPF, got)

	got, err = ValidateKey("(52) 99822-4725")
	require.NoError(t, err)
	assert.Equal(t, KeyTypeCPF, got)
}

func TestKeyTypeStrings(t *testing.T) {
	for _, kt := range []KeyType{KeyTypeCPF, KeyTypeCNPJ, KeyTypeEmail, KeyTypePhone, KeyTypeRandom} {
		assert.Equal(t, kt, ParseKeyType(kt.String()))
	}
	assert.Equal(t, "UNKNOWN", KeyTypeUnknown.String())
	assert.Equal(t, KeyTypeUnknown, ParseKeyType("bogus"))
}
