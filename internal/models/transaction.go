package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an immutable signed amount applied to one wallet.
// Positive amounts credit the wallet, negative amounts debit it. TxID is
// the caller-supplied external identifier; the unique index on it is what
// makes applying a given txid an at-most-once operation system-wide.
type Transaction struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	WalletID  uint            `gorm:"not null;index" json:"wallet_id"`
	Wallet    *Wallet         `gorm:"foreignKey:WalletID;constraint:OnDelete:CASCADE" json:"wallet,omitempty"`
	TxID      string          `gorm:"column:txid;size:255;not null;uniqueIndex" json:"txid"`
	Amount    decimal.Decimal `gorm:"type:numeric(20,18);not null" json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}
