package mw

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func testParser(t *testing.T) TokenParser {
	t.Helper()
	return func(token string) (string, []string, error) {
		switch token {
		case "user-token":
			return "account:1", []string{"user"}, nil
		case "admin-token":
			return "account:2", []string{"admin"}, nil
		default:
			return "", nil, errors.New("bad token")
		}
	}
}

func newApp(t *testing.T) *fiber.App {
	app := fiber.New()
	app.Use(JWTMiddleware(testParser(t)))
	app.Get("/open", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	app.Get("/user", RequireUser(), func(c *fiber.Ctx) error {
		ac := c.Locals("auth").(*AuthContext)
		return c.SendString(ac.Subject)
	})
	app.Get("/admin", RequireRoles("admin"), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	return app
}

func get(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("get %s: %v", path, err)
	}
	return res
}

func TestJWTMiddleware(t *testing.T) {
	app := newApp(t)

	// open routes pass with or without a token
	if res := get(t, app, "/open", ""); res.StatusCode != http.StatusOK {
		t.Fatalf("open: %d", res.StatusCode)
	}
	if res := get(t, app, "/open", "garbage"); res.StatusCode != http.StatusOK {
		t.Fatalf("open with bad token: %d", res.StatusCode)
	}

	// protected routes need a valid token
	if res := get(t, app, "/user", ""); res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("user no token: %d", res.StatusCode)
	}
	if res := get(t, app, "/user", "garbage"); res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("user bad token: %d", res.StatusCode)
	}
	if res := get(t, app, "/user", "user-token"); res.StatusCode != http.StatusOK {
		t.Fatalf("user: %d", res.StatusCode)
	}
}

func TestRequireRoles(t *testing.T) {
	app := newApp(t)

	if res := get(t, app, "/admin", ""); res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no token: %d", res.StatusCode)
	}
	if res := get(t, app, "/admin", "user-token"); res.StatusCode != http.StatusForbidden {
		t.Fatalf("wrong role: %d", res.StatusCode)
	}
	if res := get(t, app, "/admin", "admin-token"); res.StatusCode != http.StatusOK {
		t.Fatalf("admin: %d", res.StatusCode)
	}
}
