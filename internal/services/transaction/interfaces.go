package transaction

import (
	"context"

	"walletledger/internal/models"
	"walletledger/internal/repositories"

	"github.com/shopspring/decimal"
)

// ApplyRequest describes one transaction to apply to one wallet. Amount is
// signed: positive credits, negative debits. TxID must be globally unique;
// reusing a txid on retry is safe because at most one apply with a given
// txid can ever commit.
type ApplyRequest struct {
	WalletID uint
	TxID     string
	Amount   decimal.Decimal
}

// Service processes wallet transactions.
type Service interface {
	// Apply atomically creates the transaction and updates the owning
	// wallet's balance. On any failure nothing is persisted and a typed
	// error is returned: ErrWalletNotFound, *InsufficientFundsError or
	// ErrDuplicateTxid.
	Apply(ctx context.Context, req ApplyRequest) (*models.Transaction, error)
	Get(ctx context.Context, id uint) (*models.Transaction, error)
	List(ctx context.Context, q repositories.TransactionQuery) ([]models.Transaction, int64, error)
}
