package validation

import (
	"strings"
	"testing"

	apperrors "walletledger/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var fieldErr *apperrors.FieldError
	require.ErrorAs(t, err, &fieldErr)
	return fieldErr.Field
}

func TestValidateLabel(t *testing.T) {
	assert.NoError(t, ValidateLabel("groceries"))
	assert.NoError(t, ValidateLabel(strings.Repeat("x", 255)))

	err := ValidateLabel("")
	require.Error(t, err)
	assert.Equal(t, "label", fieldOf(t, err))

	err = ValidateLabel(strings.Repeat("x", 256))
	require.Error(t, err)
	assert.Equal(t, "label", fieldOf(t, err))
}

func TestValidateLabelCountsRunes(t *testing.T) {
	// 255 multi-byte characters are within the limit even though the
	// byte length exceeds it.
	assert.NoError(t, ValidateLabel(strings.Repeat("é", 255)))
	assert.Error(t, ValidateLabel(strings.Repeat("é", 256)))
}

func TestValidateDecimal(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"integer", "99", true},
		{"two integer digits max", "100", false},
		{"negative at the boundary", "-99.99", true},
		{"negative overflow", "-100", false},
		{"eighteen decimal places", "0.000000000000000001", true},
		{"nineteen decimal places", "0.0000000000000000001", false},
		{"zero", "0", true},
		{"full precision and scale", "99.999999999999999999", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDecimal("amount", dec(t, tt.value))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, "amount", fieldOf(t, err))
			}
		})
	}
}

func TestValidateInitialBalance(t *testing.T) {
	assert.NoError(t, ValidateInitialBalance(dec(t, "0")))
	assert.NoError(t, ValidateInitialBalance(dec(t, "42.50")))

	err := ValidateInitialBalance(dec(t, "-0.01"))
	require.Error(t, err)
	assert.Equal(t, "balance", fieldOf(t, err))
}

func TestValidateTxid(t *testing.T) {
	assert.NoError(t, ValidateTxid("CREDIT001"))

	err := ValidateTxid("")
	require.Error(t, err)
	assert.Equal(t, "txid", fieldOf(t, err))

	err = ValidateTxid(strings.Repeat("t", 256))
	require.Error(t, err)
	assert.Equal(t, "txid", fieldOf(t, err))
}

func TestValidateWalletID(t *testing.T) {
	assert.NoError(t, ValidateWalletID(1))

	err := ValidateWalletID(0)
	require.Error(t, err)
	assert.Equal(t, "wallet_id", fieldOf(t, err))
}
