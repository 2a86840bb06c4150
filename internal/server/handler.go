package server

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tiagodiogo/teya-tiny-ledger/internal/ledger"
	"github.com/tiagodiogo/teya-tiny-ledger/internal/models"
)

// Handler translates HTTP requests into ledger operations and ledger
// failures into status codes. All business rules live in the ledger service;
// this layer only parses, dispatches and serializes.
type Handler struct {
	ledger *ledger.Ledger
	logger *zap.Logger
}

func NewHandler(l *ledger.Ledger, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{ledger: l, logger: logger}
}

type createTransactionRequest struct {
	Type        models.TransactionType `json:"type"`
	Amount      decimal.Decimal        `json:"amount"`
	Description string                 `json:"description"`
}

type transactionResponse struct {
	ID          string                 `json:"id"`
	Type        models.TransactionType `json:"type"`
	Amount      decimal.Decimal        `json:"amount"`
	Description string                 `json:"description,omitempty"`
}

func (h *Handler) CreateCustomer(c *fiber.Ctx) error {
	accountID := h.ledger.OpenAccount()
	return c.Status(http.StatusCreated).JSON(fiber.Map{"id": accountID})
}

func (h *Handler) GetBalance(c *fiber.Ctx) error {
	accountID := c.Params("customerId")

	balance, err := h.ledger.GetBalance(accountID)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"account_id": accountID,
		"balance":    balance,
	})
}

func (h *Handler) CreateTransaction(c *fiber.Ctx) error {
	accountID := c.Params("customerId")

	var req createTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warn("invalid transaction body", zap.Error(err))
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	txID, err := h.ledger.PostTransaction(accountID, req.Type, req.Amount, req.Description)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"id": txID})
}

func (h *Handler) ListTransactions(c *fiber.Ctx) error {
	accountID := c.Params("customerId")

	transactions, err := h.ledger.ListTransactions(accountID)
	if err != nil {
		return h.respondError(c, err)
	}

	out := make([]transactionResponse, len(transactions))
	for i, tx := range transactions {
		out[i] = transactionResponse{
			ID:          tx.ID,
			Type:        tx.Type,
			Amount:      tx.Amount,
			Description: tx.Description,
		}
	}
	return c.JSON(fiber.Map{"transactions": out})
}

// respondError maps each ledger failure to a distinct, stable status code so
// clients can tell the cases apart.
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ledger.ErrInvalidTransactionType), errors.Is(err, ledger.ErrInvalidAmount):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		h.logger.Error("unexpected ledger failure", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
