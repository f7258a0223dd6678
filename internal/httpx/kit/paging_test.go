package kit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func parseOn(t *testing.T, target string) PagingParams {
	t.Helper()
	var got PagingParams
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ParsePaging(c)
		return c.SendStatus(http.StatusOK)
	})
	res, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	if err != nil || res.StatusCode != http.StatusOK {
		t.Fatalf("request: %v status=%d", err, res.StatusCode)
	}
	return got
}

func TestParsePaging(t *testing.T) {
	p := parseOn(t, "/items")
	if p.Limit != 20 || p.Offset != 0 || p.Sort != "" || p.Query != "" || p.WithTotal {
		t.Fatalf("defaults: %+v", p)
	}

	p = parseOn(t, "/items?limit=50&offset=10&sort=name:desc&q=usine&with_total=true")
	if p.Limit != 50 || p.Offset != 10 || p.Sort != "name:desc" || p.Query != "usine" || !p.WithTotal {
		t.Fatalf("explicit: %+v", p)
	}

	// out-of-range values clamp instead of erroring
	p = parseOn(t, "/items?limit=1000&offset=-5")
	if p.Limit != 100 || p.Offset != 0 {
		t.Fatalf("clamped: %+v", p)
	}
	p = parseOn(t, "/items?limit=0")
	if p.Limit != 1 {
		t.Fatalf("zero limit: %+v", p)
	}
}
