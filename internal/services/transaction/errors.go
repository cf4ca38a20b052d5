package transaction

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Service errors
var (
	ErrNotFound       = errors.New("transaction not found")
	ErrWalletNotFound = errors.New("wallet not found")
	ErrDuplicateTxid  = errors.New("duplicate txid")
)

// InsufficientFundsError rejects a transaction that would bring the wallet
// balance below zero. Available is the balance at decision time, read
// under the wallet row lock.
type InsufficientFundsError struct {
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: %s available", e.Available)
}
