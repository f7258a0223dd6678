package auth

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"previplan/ent"
	"previplan/ent/account"
	"previplan/internal/config"
	"previplan/internal/httpx/kit"
	"previplan/internal/httpx/mw"
)

// RegisterHandler creates an account and returns JWTs.
//
//	@Summary      Register
//	@Description  Create an account with username/password, then issue tokens
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body   auth.RegisterRequest  true  "register"
//	@Success      201   {object}  auth.TokenResponse
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      429   {object}  map[string]interface{}
//	@Router       /api/v1/auth/register [post]
func RegisterHandler(cfg *config.Config, client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil || req.Username == "" || req.Password == "" {
			return kit.BadRequest("username and password required", nil)
		}
		if len(req.Password) < 8 {
			return kit.BadRequest("password too short", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		hash, err := HashPassword(req.Password)
		if err != nil {
			return kit.InternalError("hash password failed", err.Error())
		}

		a, err := client.Account.Create().
			SetUsername(strings.ToLower(strings.TrimSpace(req.Username))).
			SetPasswordHash(hash).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return kit.BadRequest("username already exists", nil)
			}
			return kit.InternalError("create account failed", err.Error())
		}

		return issueTokens(c, cfg, a, fiber.StatusCreated)
	}
}

// LoginHandler authenticates an account and returns JWTs.
//
//	@Summary      Login
//	@Description  Authenticate by username/password and issue tokens
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body   auth.LoginRequest  true  "login"
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      401   {object}  map[string]interface{}
//	@Failure      429   {object}  map[string]interface{}
//	@Router       /api/v1/auth/login [post]
func LoginHandler(cfg *config.Config, client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil || req.Username == "" || req.Password == "" {
			return kit.BadRequest("username and password required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		a, err := client.Account.Query().
			Where(account.UsernameEQ(strings.ToLower(strings.TrimSpace(req.Username)))).
			Only(ctx)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		if !VerifyPassword(req.Password, a.PasswordHash) {
			return fiber.ErrUnauthorized
		}
		_ = client.Account.UpdateOne(a).SetLastLoginAt(time.Now().UTC()).Exec(ctx)

		return issueTokens(c, cfg, a, fiber.StatusOK)
	}
}

// RefreshHandler issues a new access token using the refresh cookie.
//
//	@Summary      Refresh Access Token
//	@Description  Mint new access token from refresh cookie
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Success      200   {object}  auth.TokenResponse
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/auth/refresh [post]
func RefreshHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rt := c.Cookies("refresh_token")
		if rt == "" {
			return fiber.ErrUnauthorized
		}
		claims, err := ParseAndValidate(cfg, rt)
		if err != nil {
			return fiber.ErrUnauthorized
		}
		access, err := SignAccess(cfg, claims.Subject, claims.Roles)
		if err != nil {
			return kit.InternalError("sign access failed", err.Error())
		}
		return kit.OK(c, TokenResponse{AccessToken: access, TokenType: "Bearer", ExpiresIn: cfg.JWT.AccessMin * 60})
	}
}

// LogoutHandler clears the refresh cookie.
//
//	@Summary      Logout
//	@Description  Clear refresh cookie; access tokens expire naturally
//	@Tags         auth
//	@Success      204   {string}  string  "no content"
//	@Router       /api/v1/auth/logout [post]
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ClearRefreshCookie(c)
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// MeHandler returns the auth context if present.
//
//	@Summary      Who am I
//	@Description  Return current auth context
//	@Tags         auth
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200   {object}  map[string]interface{}
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/auth/me [get]
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, _ := c.Locals("auth").(*mw.AuthContext)
		if ac == nil {
			return fiber.ErrUnauthorized
		}
		return kit.OK(c, fiber.Map{"subject": ac.Subject, "roles": ac.Roles})
	}
}

func issueTokens(c *fiber.Ctx, cfg *config.Config, a *ent.Account, status int) error {
	sub := "account:" + strconv.Itoa(a.ID)
	roles := []string{string(a.Role)}
	access, err := SignAccess(cfg, sub, roles)
	if err != nil {
		return kit.InternalError("sign access failed", err.Error())
	}
	refresh, err := SignRefresh(cfg, sub, roles)
	if err != nil {
		return kit.InternalError("sign refresh failed", err.Error())
	}
	SetRefreshCookie(c, refresh, cfg.JWT.RefreshDays)
	resp := TokenResponse{AccessToken: access, TokenType: "Bearer", ExpiresIn: cfg.JWT.AccessMin * 60, Role: string(a.Role)}
	if status == fiber.StatusCreated {
		return kit.Created(c, resp)
	}
	return kit.OK(c, resp)
}
