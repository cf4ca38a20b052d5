package wallet

import (
	"context"

	"walletledger/internal/models"
	"walletledger/internal/repositories"

	"github.com/shopspring/decimal"
)

// Service defines the wallet management interface.
type Service interface {
	Create(ctx context.Context, label string, balance decimal.Decimal) (*models.Wallet, error)
	Get(ctx context.Context, id uint) (*models.Wallet, error)
	List(ctx context.Context, q repositories.WalletQuery) ([]models.Wallet, int64, error)
	UpdateLabel(ctx context.Context, id uint, label string) (*models.Wallet, error)
	Delete(ctx context.Context, id uint) error
}
