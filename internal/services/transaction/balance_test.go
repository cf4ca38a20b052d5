package transaction

import (
	"testing"

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

func TestNextBalance(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		amount  string
		want    string
		ok      bool
	}{
		{"credit", "50.00", "25.50", "75.50", true},
		{"debit within funds", "50.00", "-25.50", "24.50", true},
		{"debit to exactly zero", "50.00", "-50.00", "0", true},
		{"overdraft", "50.00", "-60.00", "", false},
		{"zero amount on zero balance", "0", "0.00", "0", true},
		{"smallest representable credit", "0", "0.000000000000000001", "0.000000000000000001", true},
		{"smallest representable overdraft", "0", "-0.000000000000000001", "", false},
		{"no binary float drift", "0.1", "0.2", "0.3", true},
		{"full scale arithmetic", "99.999999999999999999", "-99.999999999999999998", "0.000000000000000001", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := NextBalance(dec(t, tt.balance), dec(t, tt.amount))
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, next.Equal(dec(t, tt.want)),
					"got %s, want %s", next, tt.want)
			}
		})
	}
}

func TestNextBalanceIsPure(t *testing.T) {
	balance := dec(t, "50.00")
	amount := dec(t, "-10.00")

	first, _ := NextBalance(balance, amount)
	second, _ := NextBalance(balance, amount)

	assert.True(t, first.Equal(second))
	assert.True(t, balance.Equal(dec(t, "50.00")), "inputs must not be mutated")
}
