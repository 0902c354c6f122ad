// Package response shapes every JSON reply the API sends: one success
// envelope plus a single mapping from service errors to HTTP status
// codes, so handlers never repeat the errors.Is ladder per endpoint.
package response

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"embox/internal/core/domain"
)

// Body is the envelope for every API response.
type Body struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a 200 with data.
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(Body{Success: true, Message: message, Data: data})
}

// Created sends a 201 with data.
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Body{Success: true, Message: message, Data: data})
}

// Fail sends an error response with an explicit status code.
func Fail(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(Body{Success: false, Error: message})
}

// BadRequest sends a 400. For request-shape problems (unparseable body,
// missing fields) that never reach the service layer.
func BadRequest(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403.
func Forbidden(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusForbidden, message)
}

// FromError maps a service error to its HTTP response. Known sentinels
// carry their own status and user-facing message; anything else is a
// 500 with the fallback message so internals never leak.
func FromError(c *fiber.Ctx, err error, fallback string) error {
	code := statusOf(err)
	if code == fiber.StatusInternalServerError {
		return Fail(c, code, fallback)
	}
	return Fail(c, code, err.Error())
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUserAlreadyExists),
		errors.Is(err, domain.ErrPhoneTaken):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrResetTokenInvalid),
		errors.Is(err, domain.ErrResetTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrInvalidTxnType),
		errors.Is(err, domain.ErrInvalidAmount):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
