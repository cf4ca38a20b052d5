package repositories

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WalletQuery carries the filter, search, sort and pagination parameters
// for wallet listings. Range bounds are inclusive; nil means unbounded.
type WalletQuery struct {
	Label         string
	LabelContains string
	BalanceMin    *decimal.Decimal
	BalanceMax    *decimal.Decimal
	Search        string
	Sort          string
	Limit         int
	Offset        int
}

// TransactionQuery carries the filter, search, sort and pagination
// parameters for transaction listings.
type TransactionQuery struct {
	WalletID     *uint
	TxID         string
	TxIDContains string
	AmountMin    *decimal.Decimal
	AmountMax    *decimal.Decimal
	Search       string
	Sort         string
	Limit        int
	Offset       int
}

var walletSortFields = map[string]string{
	"id":         "id",
	"label":      "label",
	"balance":    "balance",
	"created_at": "created_at",
}

var transactionSortFields = map[string]string{
	"id":         "id",
	"txid":       "txid",
	"amount":     "amount",
	"wallet_id":  "wallet_id",
	"created_at": "created_at",
}

// orderClause translates a sort parameter into an ORDER BY expression.
// A leading "-" selects descending order; only whitelisted field names are
// accepted.
func orderClause(sort string, fields map[string]string) (string, bool) {
	name := strings.TrimPrefix(sort, "-")
	col, ok := fields[name]
	if !ok {
		return "", false
	}
	if strings.HasPrefix(sort, "-") {
		return col + " DESC", true
	}
	return col + " ASC", true
}

func (q WalletQuery) apply(db *gorm.DB) *gorm.DB {
	if q.Label != "" {
		db = db.Where("label = ?", q.Label)
	}
	if q.LabelContains != "" {
		db = db.Where("label ILIKE ?", "%"+q.LabelContains+"%")
	}
	if q.BalanceMin != nil {
		db = db.Where("balance >= ?", q.BalanceMin)
	}
	if q.BalanceMax != nil {
		db = db.Where("balance <= ?", q.BalanceMax)
	}
	if q.Search != "" {
		db = db.Where("label ILIKE ?", "%"+q.Search+"%")
	}
	return db
}

func (q WalletQuery) order(db *gorm.DB) *gorm.DB {
	if clause, ok := orderClause(q.Sort, walletSortFields); ok {
		return db.Order(clause)
	}
	return db.Order("id ASC")
}

func (q TransactionQuery) apply(db *gorm.DB) *gorm.DB {
	if q.WalletID != nil {
		db = db.Where("wallet_id = ?", *q.WalletID)
	}
	if q.TxID != "" {
		db = db.Where("txid = ?", q.TxID)
	}
	if q.TxIDContains != "" {
		db = db.Where("txid ILIKE ?", "%"+q.TxIDContains+"%")
	}
	if q.AmountMin != nil {
		db = db.Where("amount >= ?", q.AmountMin)
	}
	if q.AmountMax != nil {
		db = db.Where("amount <= ?", q.AmountMax)
	}
	if q.Search != "" {
		db = db.Where("txid ILIKE ?", "%"+q.Search+"%")
	}
	return db
}

func (q TransactionQuery) order(db *gorm.DB) *gorm.DB {
	if clause, ok := orderClause(q.Sort, transactionSortFields); ok {
		return db.Order(clause)
	}
	return db.Order("id ASC")
}
