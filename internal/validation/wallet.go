// Package validation implements the boundary validation pipeline: parse
// and range-check request fields before any lock is taken. Failures are
// field-attributed so handlers can name the offending field. Conditions
// that can only be known under the wallet lock (insufficient funds,
// duplicate txid) are the transaction service's responsibility, not this
// package's.
package validation

import (
	"unicode/utf8"

	"walletledger/internal/errors"

	"github.com/shopspring/decimal"
)

const (
	// MaxLabelLength bounds the wallet label in characters.
	MaxLabelLength = 255

	// MaxIntegerDigits and MaxFractionalDigits bound every monetary value
	// to the numeric(20,18) storage precision: the representable range is
	// (-100, 100) at 18 decimal places.
	MaxIntegerDigits    = 2
	MaxFractionalDigits = 18
)

// ValidateLabel checks the wallet label constraints.
func ValidateLabel(label string) error {
	if label == "" {
		return errors.NewFieldError("label", "This field is required.")
	}
	if utf8.RuneCountInString(label) > MaxLabelLength {
		return errors.NewFieldError("label", "Ensure this field has no more than 255 characters.")
	}
	return nil
}

// ValidateDecimal checks that a monetary value fits the storage precision
// and scale. The field name is carried into the error.
func ValidateDecimal(field string, value decimal.Decimal) error {
	if value.Exponent() < -MaxFractionalDigits {
		return errors.NewFieldError(field, "Ensure that there are no more than 18 decimal places.")
	}
	if value.Abs().GreaterThanOrEqual(decimal.New(1, MaxIntegerDigits)) {
		return errors.NewFieldError(field, "Ensure that there are no more than 2 digits before the decimal point.")
	}
	return nil
}

// ValidateInitialBalance checks a wallet's creation balance: precision
// constraints plus the non-negativity invariant.
func ValidateInitialBalance(balance decimal.Decimal) error {
	if err := ValidateDecimal("balance", balance); err != nil {
		return err
	}
	if balance.IsNegative() {
		return errors.NewFieldError("balance", "Ensure this value is greater than or equal to 0.")
	}
	return nil
}
