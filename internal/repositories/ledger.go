package repositories

import (
	"context"
	"errors"

	"walletledger/internal/models"
)

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDuplicateTxid       = errors.New("duplicate txid")
)

// LedgerRepository defines the storage contract for wallets and their
// transactions.
//
// LockWalletForUpdate is only valid inside WithinTransaction: it takes an
// exclusive row lock on the wallet that blocks concurrent lockers of the
// same wallet until the unit of work commits or rolls back. Wallets with
// different ids never block each other. CreateTransaction enforces txid
// uniqueness at the storage layer and reports a violation as
// ErrDuplicateTxid.
type LedgerRepository interface {
	// Wallet operations
	CreateWallet(ctx context.Context, wallet *models.Wallet) error
	GetWallet(ctx context.Context, id uint) (*models.Wallet, error)
	ListWallets(ctx context.Context, q WalletQuery) ([]models.Wallet, int64, error)
	UpdateWallet(ctx context.Context, wallet *models.Wallet) error
	DeleteWallet(ctx context.Context, id uint) error
	LockWalletForUpdate(ctx context.Context, id uint) (*models.Wallet, error)

	// Transaction operations
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	GetTransaction(ctx context.Context, id uint) (*models.Transaction, error)
	ListTransactions(ctx context.Context, q TransactionQuery) ([]models.Transaction, int64, error)

	// WithinTransaction runs fn inside a single atomic unit of work. Any
	// error returned by fn rolls back every write issued through the
	// repository it receives; a nil return commits them all at once.
	WithinTransaction(ctx context.Context, fn func(LedgerRepository) error) error
}
