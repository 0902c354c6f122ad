package handlers

import (
	"strconv"
	"strings"

	"embox/internal/core/services"
	"embox/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	customerService *services.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CreateCustomerRequest represents customer creation request body
type CreateCustomerRequest struct {
	FullName        string  `json:"full_name"`
	Phone           string  `json:"phone"`
	PlanName        string  `json:"plan_name"`
	InscriptionDate string  `json:"inscription_date"`
	ManualDueDate   string  `json:"manual_due_date"`
	MonthlyFee      float64 `json:"monthly_fee"`
}

// RenewRequest represents a renewal request body
type RenewRequest struct {
	InscriptionDate string `json:"inscription_date"`
	ManualDueDate   string `json:"manual_due_date"`
}

// Create handles customer creation
// @Summary Create customer
// @Description Create a customer; due date is derived from plan unless manual_due_date is given
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateCustomerRequest true "Customer data"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 409 {object} response.Body
// @Router /customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var req CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.FullName == "" || req.Phone == "" || req.PlanName == "" || req.InscriptionDate == "" {
		return response.BadRequest(c, "All fields are required")
	}

	input := &services.CreateCustomerInput{
		FullName:        strings.TrimSpace(req.FullName),
		Phone:           strings.TrimSpace(req.Phone),
		PlanName:        strings.TrimSpace(req.PlanName),
		InscriptionDate: strings.TrimSpace(req.InscriptionDate),
		ManualDueDate:   strings.TrimSpace(req.ManualDueDate),
		MonthlyFee:      req.MonthlyFee,
	}

	customer, err := h.customerService.Create(c.Context(), input)
	if err != nil {
		return response.FromError(c, err, "Failed to create customer")
	}

	return response.Created(c, "Customer created successfully", customer)
}

// List handles customer listing
// @Summary List customers
// @Description List all customers ordered by due date, with computed membership status
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Router /customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.customerService.List(c.Context())
	if err != nil {
		return response.FromError(c, err, "Failed to list customers")
	}

	return response.Success(c, "", customers)
}

// GetByID handles single customer lookup
// @Summary Get customer
// @Description Get a customer by ID with computed membership status
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid customer ID")
	}

	customer, err := h.customerService.GetByID(c.Context(), id)
	if err != nil {
		return response.FromError(c, err, "Failed to load customer")
	}

	return response.Success(c, "", customer)
}

// ListDueSoon handles the front-desk due list
// @Summary List customers due soon
// @Description List active customers that are due today, due tomorrow or overdue
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Router /customers/due-soon [get]
func (h *CustomerHandler) ListDueSoon(c *fiber.Ctx) error {
	customers, err := h.customerService.ListDueSoon(c.Context())
	if err != nil {
		return response.FromError(c, err, "Failed to list customers")
	}

	return response.Success(c, "", customers)
}

// Inactivate handles customer inactivation
// @Summary Inactivate customer
// @Description Mark a customer inactive without touching the due date
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Router /customers/{id}/inactivate [put]
func (h *CustomerHandler) Inactivate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid customer ID")
	}

	if err := h.customerService.Inactivate(c.Context(), id); err != nil {
		return response.FromError(c, err, "Failed to inactivate customer")
	}

	return response.Success(c, "Customer marked inactive", nil)
}

// Renew handles a renewal payment
// @Summary Renew customer
// @Description Update inscription date, recompute due date and reactivate the customer
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Customer ID"
// @Param body body RenewRequest true "New inscription date"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 404 {object} response.Body
// @Router /customers/{id}/inscription-date [put]
func (h *CustomerHandler) Renew(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid customer ID")
	}

	var req RenewRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.InscriptionDate == "" {
		return response.BadRequest(c, "inscription_date is required")
	}

	input := &services.RenewInput{
		InscriptionDate: strings.TrimSpace(req.InscriptionDate),
		ManualDueDate:   strings.TrimSpace(req.ManualDueDate),
	}

	customer, err := h.customerService.Renew(c.Context(), id, input)
	if err != nil {
		return response.FromError(c, err, "Failed to renew customer")
	}

	return response.Success(c, "Customer renewed and reactivated", customer)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
