package handlers

import (
	"errors"
	"fmt"

	"walletledger/internal/repositories"
	"walletledger/internal/services/transaction"
	"walletledger/internal/utils"
	"walletledger/internal/utils/pagination"
	"walletledger/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	txService transaction.Service
}

func NewTransactionHandler(txService transaction.Service) *TransactionHandler {
	return &TransactionHandler{txService: txService}
}

// Create applies a signed amount to a wallet. Every failure of the apply
// sequence maps to a 400 naming the offending field; the processor
// guarantees nothing was persisted on any of those paths.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var input struct {
		WalletID uint             `json:"wallet_id"`
		TxID     string           `json:"txid"`
		Amount   *decimal.Decimal `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	if err := validation.ValidateWalletID(input.WalletID); err != nil {
		return utils.ValidationError(c, err)
	}
	if err := validation.ValidateTxid(input.TxID); err != nil {
		return utils.ValidationError(c, err)
	}
	if input.Amount == nil {
		return utils.FieldError(c, "amount", "This field is required.")
	}
	if err := validation.ValidateDecimal("amount", *input.Amount); err != nil {
		return utils.ValidationError(c, err)
	}

	txn, err := h.txService.Apply(c.Context(), transaction.ApplyRequest{
		WalletID: input.WalletID,
		TxID:     input.TxID,
		Amount:   *input.Amount,
	})
	if err != nil {
		var insufficient *transaction.InsufficientFundsError
		switch {
		case errors.Is(err, transaction.ErrWalletNotFound):
			return utils.FieldError(c, "wallet_id", fmt.Sprintf("Wallet %d not found.", input.WalletID))
		case errors.As(err, &insufficient):
			return utils.FieldError(c, "amount", fmt.Sprintf("Insufficient funds: %s available.", insufficient.Available))
		case errors.Is(err, transaction.ErrDuplicateTxid):
			return utils.FieldError(c, "txid", "Duplicate txid.")
		default:
			return utils.InternalError(c, "Failed to process transaction")
		}
	}
	return utils.Created(c, txn)
}

func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.NotFound(c, "Transaction not found")
	}

	txn, err := h.txService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			return utils.NotFound(c, "Transaction not found")
		}
		return utils.InternalError(c, "Failed to get transaction")
	}
	return utils.Success(c, txn)
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)
	q := repositories.TransactionQuery{
		TxID:         c.Query("txid"),
		TxIDContains: c.Query("txid_contains"),
		Search:       c.Query("search"),
		Sort:         c.Query("sort"),
		Limit:        p.Limit,
		Offset:       p.Offset,
	}

	if raw := c.Query("wallet_id"); raw != "" {
		id, err := parseUint(raw)
		if err != nil {
			return utils.FieldError(c, "wallet_id", "A valid integer is required.")
		}
		q.WalletID = &id
	}

	var err error
	if q.AmountMin, err = parseDecimalQuery(c, "amount_min"); err != nil {
		return utils.FieldError(c, "amount_min", "A valid number is required.")
	}
	if q.AmountMax, err = parseDecimalQuery(c, "amount_max"); err != nil {
		return utils.FieldError(c, "amount_max", "A valid number is required.")
	}

	txns, total, err := h.txService.List(c.Context(), q)
	if err != nil {
		return utils.InternalError(c, "Failed to list transactions")
	}
	p.Total = total
	return utils.Success(c, pagination.Response(p, txns))
}
