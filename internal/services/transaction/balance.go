package transaction

import "github.com/shopspring/decimal"

// NextBalance applies a signed amount to the current balance using exact
// decimal arithmetic and reports whether the result stays non-negative.
// It is a pure function; callers decide what to do on failure. The
// returned balance is only meaningful when ok is true.
func NextBalance(balance, amount decimal.Decimal) (next decimal.Decimal, ok bool) {
	next = balance.Add(amount)
	return next, !next.IsNegative()
}
