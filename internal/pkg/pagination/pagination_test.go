package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRequest_Clamps(t *testing.T) {
	app := fiber.New()
	var got Query
	app.Get("/t", func(c *fiber.Ctx) error {
		got = FromRequest(c)
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name string
		url  string
		want Query
	}{
		{"defaults", "/t", Query{Page: 1, Limit: DefaultLimit}},
		{"explicit", "/t?page=3&limit=50", Query{Page: 3, Limit: 50}},
		{"zero page", "/t?page=0&limit=10", Query{Page: 1, Limit: 10}},
		{"negative limit", "/t?limit=-5", Query{Page: 1, Limit: DefaultLimit}},
		{"limit capped", "/t?limit=1000", Query{Page: 1, Limit: MaxLimit}},
		{"garbage values", "/t?page=x&limit=y", Query{Page: 1, Limit: DefaultLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tt.url, nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Query{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, Query{Page: 3, Limit: 20}.Offset())
}

func TestWrap(t *testing.T) {
	q := Query{Page: 3, Limit: 20}
	page := Wrap([]int{1, 2, 3}, q, 45)

	assert.Equal(t, 3, page.Number)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, int64(45), page.Total)
	assert.Equal(t, 3, page.TotalPages)

	empty := Wrap([]int{}, Query{Page: 1, Limit: 20}, 0)
	assert.Equal(t, 0, empty.TotalPages)
}
