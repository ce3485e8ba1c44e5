package wallet

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vectorMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestValidateMnemonic(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
		wantErr  bool
	}{
		{"valid", vectorMnemonic, false},
		{"extra spaces and case", "  ABANDON " + strings.Repeat("abandon  ", 10) + "about ", false},
		{"empty", "", true},
		{"word count", "abandon abandon abandon", true},
		{"unknown word", strings.Repeat("abandon ", 11) + "notaword", true},
		{"checksum", strings.Repeat("abandon ", 12), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMnemonic(tt.mnemonic)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMnemonic)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSeedFromMnemonic(t *testing.T) {
	seed, err := SeedFromMnemonic(vectorMnemonic, "TREZOR")
	require.NoError(t, err)
	assert.Equal(t, "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e5349553", hex.EncodeToString(seed))

	other, err := SeedFromMnemonic(vectorMnemonic, "")
	require.NoError(t, err)
	assert.Len(t, other, 32)
	assert.NotEqual(t, seed, other)

	_, err = SeedFromMnemonic("abandon", "")
	assert.ErrorIs(t, err, ErrInvalidMnemonic)
}
