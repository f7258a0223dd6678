package httpx

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"previplan/internal/engine/view"
	"previplan/internal/httpx/entities"
	"previplan/internal/httpx/kit"
)

// SearchHandler serves cross-page search. With Elasticsearch wired the
// query goes remote; otherwise it falls back to the view's local
// substring filter over a full load.
//
//	@Summary      Search entities
//	@Tags         search
//	@Produce      json
//	@Param        type   query  string  true   "entity type tag"
//	@Param        q      query  string  true   "search term"
//	@Param        limit  query  int     false  "max results"
//	@Success      200  {array}   map[string]interface{}
//	@Failure      400  {object}  map[string]interface{}
//	@Router       /api/v1/search [get]
func SearchHandler(d *entities.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entityType := c.Query("type")
		query := c.Query("q")
		if entityType == "" || query == "" {
			return kit.BadRequest("type and q required", nil)
		}
		cfg, ok := d.Configs[entityType]
		if !ok {
			return kit.NotFound("unknown entity type " + entityType)
		}
		limit := lo.Clamp(c.QueryInt("limit", 20), 1, 100)
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if d.Searcher != nil {
			items, err := d.Searcher.Search(ctx, entityType, query, limit)
			if err != nil {
				return kit.InternalError("search failed", err.Error())
			}
			return kit.OK(c, items)
		}

		ops, ok := d.Store.Ops(entityType)
		if !ok {
			return kit.NotFound("unknown entity type " + entityType)
		}
		items, err := ops.GetAll(ctx)
		if err != nil {
			return kit.InternalError("loading collection failed", err.Error())
		}
		v := view.New(cfg, limit)
		v.SetItems(items)
		v.SetQuery(query)
		return kit.OK(c, v.Visible())
	}
}
