package kit

import (
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

// PagingParams contains list query parameters from an HTTP request.
type PagingParams struct {
	Limit  int
	Offset int
	// Sort key string, field or field:dir
	Sort string
	// Search term
	Query string
	// Whether to compute total count
	WithTotal bool
}

func ParsePaging(c *fiber.Ctx) PagingParams {
	return PagingParams{
		Limit:     lo.Clamp(c.QueryInt("limit", 20), 1, 100),
		Offset:    lo.Clamp(c.QueryInt("offset", 0), 0, 1<<30),
		Sort:      c.Query("sort", ""),
		Query:     c.Query("q", ""),
		WithTotal: c.Query("with_total", "false") == "true",
	}
}
