// Package httpx wires the HTTP surface: middleware, auth, the generic
// entity routes and the document relation routes.
package httpx

import (
	"time"

	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"previplan/ent"
	"previplan/internal/config"
	"previplan/internal/esx"
	"previplan/internal/httpx/admin"
	"previplan/internal/httpx/auth"
	"previplan/internal/httpx/entities"
	"previplan/internal/httpx/kit"
	"previplan/internal/httpx/mw"
	"previplan/internal/httpx/relations"
	"previplan/internal/mqx"
	"previplan/internal/redisx"
	"previplan/internal/refcache"
	"previplan/internal/store"
)

// Providers carries the optional infrastructure. Nil members degrade
// gracefully: no Redis means in-process caching and limiting, no MQ
// means no events, no ES means local search.
type Providers struct {
	Redis *redisx.Client
	MQ    mqx.Publisher
	ES    *esx.Client
}

// Register mounts every route on the app.
func Register(app *fiber.App, cfgStore *config.Store, client *ent.Client, p *Providers) {
	if p == nil {
		p = &Providers{}
	}
	cfg := cfgStore.Get()

	RegisterCommonMiddlewares(app)
	app.Use(mw.JWTMiddleware(auth.TokenParser(cfgStore)))
	app.Use(mw.RateLimitDefault(p.Redis, cfg.RateLimit.WindowSec, cfg.RateLimit.Max))

	app.Get("/health", HealthHandler)
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	st := store.New(client)
	var cache refcache.Cache
	if p.Redis != nil {
		cache = refcache.NewRedis(p.Redis, time.Duration(cfg.Engine.RefTTLSec)*time.Second)
	} else {
		cache = refcache.NewMemory()
	}

	deps := &entities.Deps{
		Store:    st,
		Configs:  store.Configs(),
		Resolver: refcache.NewResolver(cache, st),
		Cache:    cache,
		PageSize: cfg.Engine.PageSize,
	}
	if p.MQ != nil {
		deps.Events = mqx.NewEntityEvents(p.MQ)
	}
	if p.ES != nil {
		deps.ES = p.ES
		deps.ESIndex = esx.DefaultIndex
		deps.Searcher = esx.NewSearcher(p.ES, esx.DefaultIndex)
	}

	v1 := app.Group("/api/v1")

	ag := v1.Group("/auth")
	ag.Post("/register", auth.RegisterHandler(cfg, client))
	ag.Post("/login", auth.LoginHandler(cfg, client))
	ag.Post("/refresh", auth.RefreshHandler(cfg))
	ag.Post("/logout", auth.LogoutHandler())
	ag.Get("/me", auth.MeHandler())

	eg := v1.Group("/entities", mw.RequireUser())
	eg.Get("/:type", entities.ListHandler(deps))
	eg.Post("/:type", entities.CreateHandler(deps))
	eg.Get("/:type/export", entities.ExportHandler(deps))
	eg.Post("/:type/import", entities.ImportHandler(deps))
	eg.Get("/:type/schema", entities.SchemaHandler(deps))
	eg.Post("/:type/bulk-delete", entities.BulkDeleteHandler(deps))
	eg.Get("/:type/:id", entities.GetHandler(deps))
	eg.Put("/:type/:id", entities.UpdateHandler(deps))
	eg.Delete("/:type/:id", entities.DeleteHandler(deps))

	v1.Get("/refs/:refType", mw.RequireUser(), entities.RefsHandler(deps))

	dg := v1.Group("/documents", mw.RequireUser())
	dg.Get("/:docType/:id/relations", relations.ListHandler(st))
	dg.Post("/:docType/:id/relations", relations.LinkHandler(st))
	dg.Post("/:docType/:id/relations/:relID/answer", relations.AnswerHandler(st))

	v1.Get("/search", mw.RequireUser(), SearchHandler(deps))

	adm := v1.Group("/admin", mw.RequireRoles("admin"))
	adm.Get("/ping", admin.PingHandler())
	adm.Post("/accounts/:id/promote", admin.PromoteAccountHandler(client))
}

// ErrorHandler re-exports the kit error handler for app construction.
func ErrorHandler() fiber.ErrorHandler { return kit.ErrorHandler() }
