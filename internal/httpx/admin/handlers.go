// Package admin holds routes restricted to the admin role.
package admin

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"previplan/ent"
	"previplan/ent/account"
	"previplan/internal/httpx/kit"
)

// PingHandler is a protected probe for role checks.
//
//	@Summary      Admin Ping
//	@Description  Protected route requiring admin role
//	@Tags         admin
//	@Produce      json
//	@Security     BearerAuth
//	@Success      200  {object}  map[string]string  "pong"
//	@Failure      401  {object}  map[string]interface{}  "unauthorized"
//	@Failure      403  {object}  map[string]interface{}  "forbidden"
//	@Router       /api/v1/admin/ping [get]
func PingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error { return kit.OK(c, fiber.Map{"message": "pong"}) }
}

// PromoteAccountHandler grants the admin role to an account.
//
//	@Summary      Promote account to admin
//	@Description  Set account.role = admin
//	@Tags         admin
//	@Produce      json
//	@Security     BearerAuth
//	@Param        id   path      int  true  "Account ID"
//	@Success      200  {object}  map[string]string  "ok"
//	@Failure      400  {object}  map[string]interface{}
//	@Failure      401  {object}  map[string]interface{}
//	@Failure      403  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/admin/accounts/{id}/promote [post]
func PromoteAccountHandler(client *ent.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return kit.BadRequest("invalid account id", c.Params("id"))
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		if err := client.Account.UpdateOneID(id).SetRole(account.RoleAdmin).Exec(ctx); err != nil {
			return kit.NotFound("account not found")
		}
		return kit.OK(c, fiber.Map{"status": "ok"})
	}
}
