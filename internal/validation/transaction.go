package validation

import (
	"unicode/utf8"

	"walletledger/internal/errors"
)

// ValidateTxid checks the external transaction identifier constraints.
// Global uniqueness is enforced by the storage layer, not here.
func ValidateTxid(txid string) error {
	if txid == "" {
		return errors.NewFieldError("txid", "This field is required.")
	}
	if utf8.RuneCountInString(txid) > 255 {
		return errors.NewFieldError("txid", "Ensure this field has no more than 255 characters.")
	}
	return nil
}

// ValidateWalletID checks that a wallet reference was supplied.
func ValidateWalletID(id uint) error {
	if id == 0 {
		return errors.NewFieldError("wallet_id", "This field is required.")
	}
	return nil
}
