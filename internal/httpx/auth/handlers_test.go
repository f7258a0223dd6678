package auth

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"

	"previplan/ent"
	"previplan/internal/config"
	"previplan/internal/httpx/kit/testutil"
	"previplan/internal/httpx/mw"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Algo = "HS256"
	cfg.JWT.HSSecret = "test-secret"
	cfg.JWT.Issuer = "previplan"
	cfg.JWT.Audience = "previplan-web"
	cfg.JWT.AccessMin = 15
	cfg.JWT.RefreshDays = 30
	return cfg
}

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

func newAuthApp(t *testing.T) (*fiber.App, *config.Config) {
	t.Helper()
	cfg := testConfig()
	client := newTestClient(t)
	store := config.NewStore(cfg)
	app := testutil.NewApp(
		func(app *fiber.App) { app.Use(mw.JWTMiddleware(TokenParser(store))) },
		func(app *fiber.App) {
			app.Post("/auth/register", RegisterHandler(cfg, client))
			app.Post("/auth/login", LoginHandler(cfg, client))
			app.Post("/auth/refresh", RefreshHandler(cfg))
			app.Post("/auth/logout", LogoutHandler())
			app.Get("/auth/me", mw.RequireUser(), MeHandler())
		},
	)
	return app, cfg
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("post %s: %v", path, err)
	}
	return res
}

func decodeToken(t *testing.T, res *http.Response) TokenResponse {
	t.Helper()
	var env struct {
		Data TokenResponse `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env.Data
}

func TestRegisterLoginMe(t *testing.T) {
	app, _ := newAuthApp(t)

	res := postJSON(t, app, "/auth/register", RegisterRequest{Username: "Marie.Durand", Password: "s3cret-pass"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("register: status=%d", res.StatusCode)
	}
	tok := decodeToken(t, res)
	if tok.AccessToken == "" || tok.TokenType != "Bearer" || tok.Role != "user" {
		t.Fatalf("token: %+v", tok)
	}
	// refresh cookie set
	var hasCookie bool
	for _, c := range res.Cookies() {
		if c.Name == "refresh_token" && c.Value != "" && c.HttpOnly {
			hasCookie = true
		}
	}
	if !hasCookie {
		t.Fatalf("refresh cookie missing")
	}

	// duplicate username (case-insensitive) rejected
	if res := postJSON(t, app, "/auth/register", RegisterRequest{Username: "marie.durand", Password: "s3cret-pass"}); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate: status=%d", res.StatusCode)
	}
	// short password rejected
	if res := postJSON(t, app, "/auth/register", RegisterRequest{Username: "other", Password: "short"}); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("short password: status=%d", res.StatusCode)
	}

	// login works regardless of case
	res = postJSON(t, app, "/auth/login", LoginRequest{Username: "MARIE.DURAND", Password: "s3cret-pass"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login: status=%d", res.StatusCode)
	}
	tok = decodeToken(t, res)

	// wrong password
	if res := postJSON(t, app, "/auth/login", LoginRequest{Username: "marie.durand", Password: "wrong-pass"}); res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password: status=%d", res.StatusCode)
	}
	// unknown user
	if res := postJSON(t, app, "/auth/login", LoginRequest{Username: "nobody", Password: "whatever1"}); res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unknown user: status=%d", res.StatusCode)
	}

	// /me with the access token
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	mres, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if mres.StatusCode != http.StatusOK {
		t.Fatalf("me: status=%d", mres.StatusCode)
	}
	var me struct {
		Data struct {
			Subject string   `json:"subject"`
			Roles   []string `json:"roles"`
		} `json:"data"`
	}
	if err := json.NewDecoder(mres.Body).Decode(&me); err != nil {
		t.Fatalf("decode me: %v", err)
	}
	if !strings.HasPrefix(me.Data.Subject, "account:") || len(me.Data.Roles) != 1 || me.Data.Roles[0] != "user" {
		t.Fatalf("me: %+v", me.Data)
	}

	// /me without a token
	if res, _ := app.Test(httptest.NewRequest(http.MethodGet, "/auth/me", nil), 5000); res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me unauth: status=%d", res.StatusCode)
	}
}

func TestRefresh(t *testing.T) {
	app, cfg := newAuthApp(t)

	res := postJSON(t, app, "/auth/register", RegisterRequest{Username: "paul", Password: "s3cret-pass"})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("register: status=%d", res.StatusCode)
	}
	var refresh string
	for _, c := range res.Cookies() {
		if c.Name == "refresh_token" {
			refresh = c.Value
		}
	}
	if refresh == "" {
		t.Fatalf("no refresh cookie")
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: refresh})
	rres, err := app.Test(req, 5000)
	if err != nil || rres.StatusCode != http.StatusOK {
		t.Fatalf("refresh: status=%d err=%v", rres.StatusCode, err)
	}
	tok := decodeToken(t, rres)
	if tok.AccessToken == "" {
		t.Fatalf("no access token")
	}
	claims, err := ParseAndValidate(cfg, tok.AccessToken)
	if err != nil || !strings.HasPrefix(claims.Subject, "account:") {
		t.Fatalf("claims: %+v err=%v", claims, err)
	}

	// no cookie
	if res, _ := app.Test(httptest.NewRequest(http.MethodPost, "/auth/refresh", nil), 5000); res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no cookie: status=%d", res.StatusCode)
	}
	// garbage cookie
	bad := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	bad.AddCookie(&http.Cookie{Name: "refresh_token", Value: "garbage"})
	if res, _ := app.Test(bad, 5000); res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("garbage cookie: status=%d", res.StatusCode)
	}
}

func TestSignAndParseRoundTrip(t *testing.T) {
	cfg := testConfig()
	token, err := SignAccess(cfg, "account:7", []string{"admin"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := ParseAndValidate(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "account:7" || len(claims.Roles) != 1 || claims.Roles[0] != "admin" {
		t.Fatalf("claims: %+v", claims)
	}

	// a different secret must reject the token
	other := testConfig()
	other.JWT.HSSecret = "other-secret"
	if _, err := ParseAndValidate(other, token); err == nil {
		t.Fatalf("wrong secret must fail")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("format: %q", hash)
	}
	if !VerifyPassword("s3cret-pass", hash) {
		t.Fatalf("verify should pass")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatalf("verify should fail")
	}
	// salts differ between hashes of the same password
	hash2, _ := HashPassword("s3cret-pass")
	if hash == hash2 {
		t.Fatalf("hashes must be salted")
	}
}
