package domain

import "errors"

// Sentinel errors returned by the service layer. The messages are
// user-facing: internal/pkg/response maps each sentinel to an HTTP
// status and sends the message as the error body.

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrResetTokenInvalid  = errors.New("invalid reset token")
	ErrResetTokenExpired  = errors.New("reset token expired")
)

// Customer errors
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrPhoneTaken       = errors.New("phone already exists")
)

// Transaction errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidTxnType      = errors.New("transaction type must be income or expense")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
)
