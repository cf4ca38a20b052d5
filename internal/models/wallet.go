package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is an account holding a non-negative decimal balance. The balance
// column is numeric(20,18): at most 2 integer digits and 18 fractional
// digits, so exact values never round-trip through binary floats.
type Wallet struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	Label     string          `gorm:"size:255;not null;index" json:"label"`
	Balance   decimal.Decimal `gorm:"type:numeric(20,18);not null;default:0" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
