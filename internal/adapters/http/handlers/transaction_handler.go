package handlers

import (
	"strings"

	"embox/internal/adapters/persistence/repositories"
	"embox/internal/core/services"
	"embox/internal/pkg/pagination"
	"embox/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler handles transaction endpoints
type TransactionHandler struct {
	txnService *services.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(txnService *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{txnService: txnService}
}

// CreateTransactionRequest represents transaction creation request body
type CreateTransactionRequest struct {
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	Concept    string  `json:"concept"`
	Date       string  `json:"date"`
	CustomerID *uint   `json:"customer_id"`
}

// Create handles transaction creation
// @Summary Record transaction
// @Description Record an income or expense entry; entries are immutable
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateTransactionRequest true "Transaction data"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Type == "" || req.Concept == "" || req.Date == "" {
		return response.BadRequest(c, "Type, concept and date are required")
	}

	input := &services.CreateTransactionInput{
		Type:       strings.TrimSpace(req.Type),
		Amount:     req.Amount,
		Concept:    strings.TrimSpace(req.Concept),
		Date:       strings.TrimSpace(req.Date),
		CustomerID: req.CustomerID,
	}

	txn, err := h.txnService.Create(c.Context(), input)
	if err != nil {
		return response.FromError(c, err, "Failed to record transaction")
	}

	return response.Created(c, "Transaction recorded", txn)
}

// List handles transaction listing
// @Summary List transactions
// @Description List transactions with optional month (YYYY-MM) and type filters
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param month query string false "Month filter (YYYY-MM)"
// @Param type query string false "Type filter (income|expense)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Body
// @Router /transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	q := pagination.FromRequest(c)
	filter := repositories.TransactionFilter{
		Month: c.Query("month"),
		Type:  c.Query("type"),
	}

	txns, total, err := h.txnService.List(c.Context(), filter, q.Offset(), q.Limit)
	if err != nil {
		return response.FromError(c, err, "Failed to list transactions")
	}

	return response.Success(c, "", pagination.Wrap(txns, q, total))
}

// GetByID handles single transaction lookup
// @Summary Get transaction
// @Description Get a transaction by ID
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid transaction ID")
	}

	txn, err := h.txnService.GetByID(c.Context(), id)
	if err != nil {
		return response.FromError(c, err, "Failed to load transaction")
	}

	return response.Success(c, "", txn)
}

// Summary handles monthly totals
// @Summary Monthly summary
// @Description Income, expense and net totals for a YYYY-MM month
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /transactions/summary [get]
func (h *TransactionHandler) Summary(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		return response.BadRequest(c, "month query parameter is required")
	}

	summary, err := h.txnService.Summary(c.Context(), month)
	if err != nil {
		return response.FromError(c, err, "Failed to compute summary")
	}

	return response.Success(c, "", summary)
}
