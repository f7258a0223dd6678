package admin

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"

	"previplan/ent"
	"previplan/ent/account"
	"previplan/internal/httpx/kit/testutil"
	"previplan/internal/httpx/mw"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := "file:ent?mode=memory&cache=shared&_fk=1"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, _ = db.Exec("PRAGMA foreign_keys = ON")
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestPromoteAccount(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	a, err := client.Account.Create().
		SetUsername("marie").
		SetPasswordHash("x").
		Save(ctx)
	if err != nil {
		t.Fatalf("account: %v", err)
	}

	app := testutil.NewApp(
		func(app *fiber.App) {
			app.Use(func(c *fiber.Ctx) error {
				c.Locals("auth", &mw.AuthContext{Subject: "account:99", Roles: []string{"admin"}})
				return c.Next()
			})
		},
		func(app *fiber.App) {
			app.Get("/admin/ping", mw.RequireRoles("admin"), PingHandler())
			app.Post("/admin/accounts/:id/promote", mw.RequireRoles("admin"), PromoteAccountHandler(client))
		},
	)

	if res, _ := app.Test(httptest.NewRequest(http.MethodGet, "/admin/ping", nil)); res.StatusCode != http.StatusOK {
		t.Fatalf("ping: %d", res.StatusCode)
	}

	res, err := app.Test(httptest.NewRequest(http.MethodPost, "/admin/accounts/"+strconv.Itoa(a.ID)+"/promote", nil))
	if err != nil || res.StatusCode != http.StatusOK {
		t.Fatalf("promote: status=%d err=%v", res.StatusCode, err)
	}
	got, err := client.Account.Get(ctx, a.ID)
	if err != nil || got.Role != account.RoleAdmin {
		t.Fatalf("role=%v err=%v", got.Role, err)
	}

	if res, _ := app.Test(httptest.NewRequest(http.MethodPost, "/admin/accounts/9999/promote", nil)); res.StatusCode != http.StatusNotFound {
		t.Fatalf("missing: %d", res.StatusCode)
	}
	if res, _ := app.Test(httptest.NewRequest(http.MethodPost, "/admin/accounts/abc/promote", nil)); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad id: %d", res.StatusCode)
	}
}
