// Package pagination turns page/limit query parameters into row
// windows and wraps result slices with their paging facts.
package pagination

import "github.com/gofiber/fiber/v2"

const (
	// DefaultLimit is the page size when the client sends none.
	DefaultLimit = 20

	// MaxLimit caps the page size a client may request.
	MaxLimit = 100
)

// Query is the page window requested by the client.
type Query struct {
	Page  int
	Limit int
}

// FromRequest reads the page and limit query parameters, clamping both
// to sane bounds. Unparseable values fall back to the defaults.
func FromRequest(c *fiber.Ctx) Query {
	q := Query{
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", DefaultLimit),
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

// Offset converts the window into a row offset.
func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Page is one page of results together with its paging facts.
type Page struct {
	Items      interface{} `json:"items"`
	Number     int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"total_pages"`
}

// Wrap builds the page envelope for a result slice.
func Wrap(items interface{}, q Query, total int64) *Page {
	pages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return &Page{
		Items:      items,
		Number:     q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: pages,
	}
}
