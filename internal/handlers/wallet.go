package handlers

import (
	"errors"

	"walletledger/internal/repositories"
	"walletledger/internal/services/wallet"
	"walletledger/internal/utils"
	"walletledger/internal/utils/pagination"
	"walletledger/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

func (h *WalletHandler) Create(c *fiber.Ctx) error {
	var input struct {
		Label   string           `json:"label"`
		Balance *decimal.Decimal `json:"balance"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	if err := validation.ValidateLabel(input.Label); err != nil {
		return utils.ValidationError(c, err)
	}
	balance := decimal.Zero
	if input.Balance != nil {
		balance = *input.Balance
	}
	if err := validation.ValidateInitialBalance(balance); err != nil {
		return utils.ValidationError(c, err)
	}

	w, err := h.walletService.Create(c.Context(), input.Label, balance)
	if err != nil {
		return utils.InternalError(c, "Failed to create wallet")
	}
	return utils.Created(c, w)
}

func (h *WalletHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.NotFound(c, "Wallet not found")
	}

	w, err := h.walletService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, wallet.ErrNotFound) {
			return utils.NotFound(c, "Wallet not found")
		}
		return utils.InternalError(c, "Failed to get wallet")
	}
	return utils.Success(c, w)
}

func (h *WalletHandler) List(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)
	q := repositories.WalletQuery{
		Label:         c.Query("label"),
		LabelContains: c.Query("label_contains"),
		Search:        c.Query("search"),
		Sort:          c.Query("sort"),
		Limit:         p.Limit,
		Offset:        p.Offset,
	}

	var err error
	if q.BalanceMin, err = parseDecimalQuery(c, "balance_min"); err != nil {
		return utils.FieldError(c, "balance_min", "A valid number is required.")
	}
	if q.BalanceMax, err = parseDecimalQuery(c, "balance_max"); err != nil {
		return utils.FieldError(c, "balance_max", "A valid number is required.")
	}

	wallets, total, err := h.walletService.List(c.Context(), q)
	if err != nil {
		return utils.InternalError(c, "Failed to list wallets")
	}
	p.Total = total
	return utils.Success(c, pagination.Response(p, wallets))
}

func (h *WalletHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.NotFound(c, "Wallet not found")
	}

	var input struct {
		Label string `json:"label"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if err := validation.ValidateLabel(input.Label); err != nil {
		return utils.ValidationError(c, err)
	}

	w, err := h.walletService.UpdateLabel(c.Context(), id, input.Label)
	if err != nil {
		if errors.Is(err, wallet.ErrNotFound) {
			return utils.NotFound(c, "Wallet not found")
		}
		return utils.InternalError(c, "Failed to update wallet")
	}
	return utils.Success(c, w)
}

func (h *WalletHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.NotFound(c, "Wallet not found")
	}

	if err := h.walletService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, wallet.ErrNotFound) {
			return utils.NotFound(c, "Wallet not found")
		}
		return utils.InternalError(c, "Failed to delete wallet")
	}
	return utils.NoContent(c)
}
