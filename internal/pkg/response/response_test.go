package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"embox/internal/core/domain"
)

func serve(t *testing.T, h fiber.Handler) (int, []byte) {
	t.Helper()
	app := fiber.New()
	app.Get("/t", h)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/t", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestFromError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"user missing", domain.ErrUserNotFound, fiber.StatusNotFound},
		{"customer missing", domain.ErrCustomerNotFound, fiber.StatusNotFound},
		{"transaction missing", domain.ErrTransactionNotFound, fiber.StatusNotFound},
		{"username taken", domain.ErrUserAlreadyExists, fiber.StatusConflict},
		{"phone taken", domain.ErrPhoneTaken, fiber.StatusConflict},
		{"bad credentials", domain.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{"reset token invalid", domain.ErrResetTokenInvalid, fiber.StatusUnauthorized},
		{"reset token expired", domain.ErrResetTokenExpired, fiber.StatusUnauthorized},
		{"bad date", domain.ErrInvalidDate, fiber.StatusBadRequest},
		{"weak password", domain.ErrWeakPassword, fiber.StatusBadRequest},
		{"bad transaction type", domain.ErrInvalidTxnType, fiber.StatusBadRequest},
		{"bad amount", domain.ErrInvalidAmount, fiber.StatusBadRequest},
		{"unknown error", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := serve(t, func(c *fiber.Ctx) error {
				return FromError(c, tt.err, "fallback")
			})
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestFromError_WrappedSentinel(t *testing.T) {
	// Sentinels often arrive wrapped with context.
	wrapped := fmt.Errorf("%w: %q", domain.ErrInvalidDate, "junk")

	code, _ := serve(t, func(c *fiber.Ctx) error {
		return FromError(c, wrapped, "fallback")
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestFromError_UnknownUsesFallback(t *testing.T) {
	code, data := serve(t, func(c *fiber.Ctx) error {
		return FromError(c, errors.New("sql: connection reset"), "Failed to load customer")
	})
	assert.Equal(t, fiber.StatusInternalServerError, code)

	var body Body
	require.NoError(t, json.Unmarshal(data, &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Failed to load customer", body.Error)
}

func TestFromError_SentinelMessageInBody(t *testing.T) {
	_, data := serve(t, func(c *fiber.Ctx) error {
		return FromError(c, domain.ErrPhoneTaken, "fallback")
	})

	var body Body
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, domain.ErrPhoneTaken.Error(), body.Error)
}
