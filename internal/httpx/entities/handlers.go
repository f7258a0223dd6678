package entities

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"previplan/internal/engine/crud"
	"previplan/internal/engine/form"
	"previplan/internal/engine/format"
	"previplan/internal/engine/schema"
	"previplan/internal/engine/view"
	"previplan/internal/httpx/kit"
)

func emptyStateTag(s view.EmptyState) string {
	switch s {
	case view.CollectionEmpty:
		return "collection_empty"
	case view.NoMatches:
		return "no_matches"
	default:
		return ""
	}
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, kit.BadRequest("invalid id", c.Params("id"))
	}
	return id, nil
}

// ListHandler serves the collection page: load, search, sort, paginate,
// and render table rows through the formatter.
//
//	@Summary      List entities
//	@Description  Paginated, searchable, sortable collection of one entity type
//	@Tags         entities
//	@Produce      json
//	@Param        type    path   string  true   "entity type tag"
//	@Param        q       query  string  false  "search term"
//	@Param        sort    query  string  false  "field or field:desc"
//	@Param        limit   query  int     false  "page size"
//	@Param        offset  query  int     false  "page offset"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      400  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/entities/{type} [get]
func ListHandler(d *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pg := kit.ParsePaging(c)
		notes := &toastBuffer{}
		mgr, cfg, err := d.manager(c.Params("type"), pg.Limit, notes)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		// Remote search replaces the load; local search filters after it.
		if pg.Query == "" || d.Searcher == nil {
			if err := mgr.Load(ctx); err != nil {
				return kit.InternalError("loading collection failed", err.Error())
			}
		}
		if pg.Query != "" {
			if err := mgr.Search(ctx, pg.Query); err != nil {
				return kit.InternalError("search failed", err.Error())
			}
		}

		v := mgr.View()
		if field, asc, err := kit.ParseSortSpec(pg.Sort); err != nil {
			return err
		} else if field != "" {
			if cfg.Field(field) == nil {
				return kit.BadRequest("invalid sort field", field)
			}
			v.SetSort(field, asc)
		}
		v.SetPage(pg.Offset / pg.Limit)

		total := len(v.Filtered())
		items := v.Visible()
		offset := v.Page() * pg.Limit
		meta := kit.PageMeta{
			Limit:  pg.Limit,
			Offset: offset,
			Count:  len(items),
			Total:  &total,
			Sort:   pg.Sort,
			Query:  pg.Query,
		}
		if next := offset + len(items); next < total {
			meta.HasMore = true
			meta.NextOffset = &next
		}
		return kit.List(c, fiber.Map{
			"items":       items,
			"rows":        v.Rows(),
			"empty_state": emptyStateTag(v.Empty()),
		}, meta)
	}
}

// GetHandler serves one record plus its rendered detail fields.
//
//	@Summary      Get entity
//	@Tags         entities
//	@Produce      json
//	@Param        type  path  string  true  "entity type tag"
//	@Param        id    path  int     true  "record id"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/entities/{type}/{id} [get]
func GetHandler(d *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mgr, cfg, err := d.manager(c.Params("type"), 0, &toastBuffer{})
		if err != nil {
			return err
		}
		id, err := paramID(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		rec, err := mgr.Get(ctx, id)
		if err != nil {
			if errors.Is(err, crud.ErrNotFound) {
				return kit.NotFound(cfg.Name + " not found")
			}
			return kit.InternalError("get failed", err.Error())
		}
		display := map[string]format.Rendered{}
		for _, f := range cfg.VisibleFields() {
			display[f.Key] = format.Value(f, rec[f.Key])
		}
		return kit.OK(c, fiber.Map{"item": rec, "display": display})
	}
}

// decodeRecord reads the request body into a record, dropping the id so
// clients cannot smuggle key changes through create/update payloads.
func decodeRecord(c *fiber.Ctx, cfg *schema.EntityConfig) (schema.Record, error) {
	body := map[string]any{}
	if err := c.BodyParser(&body); err != nil {
		return nil, kit.BadRequest("invalid JSON body", err.Error())
	}
	delete(body, cfg.KeyField)
	return schema.Record(body), nil
}

// applyForm copies the decoded payload into an open form session, which
// enforces read-only fields and drives validation.
func applyForm(sess *form.Session, cfg *schema.EntityConfig, body schema.Record) {
	for _, f := range cfg.Fields {
		if v, ok := body[f.Key]; ok {
			sess.Set(f.Key, v)
		}
	}
}

// CreateHandler validates and persists a new record.
//
//	@Summary      Create entity
//	@Tags         entities
//	@Accept       json
//	@Produce      json
//	@Param        type  path  string          true  "entity type tag"
//	@Param        body  body  map[string]any  true  "record"
//	@Success      201  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Failure      422  {object}  map[string]interface{}  "field errors in details"
//	@Router       /api/v1/entities/{type} [post]
func CreateHandler(d *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes := &toastBuffer{}
		mgr, cfg, err := d.manager(c.Params("type"), 0, notes)
		if err != nil {
			return err
		}
		body, err := decodeRecord(c, cfg)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		sess := form.NewSession(cfg, d.Resolver)
		sess.OpenCreate()
		applyForm(sess, cfg, body)

		var created schema.Record
		ran, err := sess.Submit(ctx, func(ctx context.Context, rec schema.Record) error {
			var err error
			created, err = mgr.Create(ctx, rec)
			return err
		})
		if !ran {
			return kit.Unprocessable("validation failed", sess.Errors())
		}
		if err != nil {
			return kit.InternalError("create failed", err.Error())
		}
		return kit.Created(c, fiber.Map{"item": created, "toasts": notes.Items()})
	}
}

// UpdateHandler validates and persists changes to an existing record.
//
//	@Summary      Update entity
//	@Tags         entities
//	@Accept       json
//	@Produce      json
//	@Param        type  path  string          true  "entity type tag"
//	@Param        id    path  int             true  "record id"
//	@Param        body  body  map[string]any  true  "record"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Failure      422  {object}  map[string]interface{}
//	@Router       /api/v1/entities/{type}/{id} [put]
func UpdateHandler(d *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes := &toastBuffer{}
		mgr, cfg, err := d.manager(c.Params("type"), 0, notes)
		if err != nil {
			return err
		}
		id, err := paramID(c)
		if err != nil {
			return err
		}
		body, err := decodeRecord(c, cfg)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		existing, err := mgr.Get(ctx, id)
		if err != nil {
			if errors.Is(err, crud.ErrNotFound) {
				return kit.NotFound(cfg.Name + " not found")
			}
			return kit.InternalError("get failed", err.Error())
		}

		sess := form.NewSession(cfg, d.Resolver)
		sess.OpenEdit(existing)
		applyForm(sess, cfg, body)

		var updated schema.Record
		ran, err := sess.Submit(ctx, func(ctx context.Context, rec schema.Record) error {
			var err error
			updated, err = mgr.Update(ctx, id, rec)
			return err
		})
		if !ran {
			return kit.Unprocessable("validation failed", sess.Errors())
		}
		if err != nil {
			return kit.InternalError("update failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"item": updated, "toasts": notes.Items()})
	}
}

// DeleteHandler removes one record.
//
//	@Summary      Delete entity
//	@Tags         entities
//	@Produce      json
//	@Param        type  path  string  true  "entity type tag"
//	@Param        id    path  int     true  "record id"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/entities/{type}/{id} [delete]
func DeleteHandler(d *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes := &toastBuffer{}
		mgr, cfg, err := d.manager(c.Params("type"), 0, notes)
		if err != nil {
			return err
		}
		id, err := paramID(c)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		if err := mgr.Delete(ctx, id); err != nil {
			if errors.Is(err, crud.ErrNotFound) {
				return kit.NotFound(cfg.Name + " not found")
			}
			return kit.InternalError("delete failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"status": "ok", "toasts": notes.Items()})
	}
}

// BulkDeleteHandler deletes a set of ids one by one. A failure aborts the
// remainder; already-deleted records stay deleted.
//
//	@Summary      Bulk delete entities
//	@Tags         entities
//	@Accept       json
//	@Produce      json
//	@Param        type  path  string                true  "entity type tag"
//	@Param        body  body  map[string][]int64    true  "{\"ids\": [...]}"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      400  {object}  map[string]interface{}
//	@Router       /api/v1/entities/{type}/bulk-delete [post]
func BulkDeleteHandler(d *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes := &toastBuffer{}
		mgr, _, err := d.manager(c.Params("type"), 0, notes)
		if err != nil {
			return err
		}
		var body struct {
			IDs []int64 `json:"ids"`
		}
		if err := c.BodyParser(&body); err != nil || len(body.IDs) == 0 {
			return kit.BadRequest("ids required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()
		done, err := mgr.BulkDelete(ctx, body.IDs)
		return kit.OK(c, fiber.Map{
			"deleted":   done,
			"requested": len(body.IDs),
			"aborted":   err != nil,
			"toasts":    notes.Items(),
		})
	}
}

// ExportHandler downloads the current collection page as JSON.
//
//	@Summary      Export entities
//	@Tags         entities
//	@Produce      json
//	@Param        type   path   string  true   "entity type tag"
//	@Param        limit  query  int     false  "page size, up to 200"
//	@Success      200  {array}  map[string]interface{}
//	@Router       /api/v1/entities/{type}/export [get]
func ExportHandler(d *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 200)
		mgr, _, err := d.manager(c.Params("type"), limit, &toastBuffer{})
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()
		if err := mgr.Load(ctx); err != nil {
			return kit.InternalError("loading collection failed", err.Error())
		}
		data, filename, err := mgr.Export()
		if err != nil {
			return kit.InternalError("export failed", err.Error())
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.Send(data)
	}
}

// ImportHandler creates records from an exported JSON array. Records are
// created one by one and a failure aborts the rest, keeping the prefix.
//
//	@Summary      Import entities
//	@Tags         entities
//	@Accept       json
//	@Produce      json
//	@Param        type  path  string                  true  "entity type tag"
//	@Param        body  body  []map[string]any        true  "records"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      400  {object}  map[string]interface{}
//	@Router       /api/v1/entities/{type}/import [post]
func ImportHandler(d *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes := &toastBuffer{}
		mgr, _, err := d.manager(c.Params("type"), 0, notes)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
		defer cancel()
		count, err := mgr.Import(ctx, c.Body())
		if err != nil && count == 0 {
			return kit.BadRequest("import failed", err.Error())
		}
		return kit.OK(c, fiber.Map{
			"imported": count,
			"aborted":  err != nil,
			"toasts":   notes.Items(),
		})
	}
}

// SchemaHandler exposes the entity config the client renders from.
//
//	@Summary      Entity schema
//	@Tags         entities
//	@Produce      json
//	@Param        type  path  string  true  "entity type tag"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/entities/{type}/schema [get]
func SchemaHandler(d *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, ok := d.Configs[c.Params("type")]
		if !ok {
			return kit.NotFound("unknown entity type " + c.Params("type"))
		}
		return kit.OK(c, cfg)
	}
}

// RefsHandler returns the option list for reference fields, served
// through the cache the form sessions share.
//
//	@Summary      Reference options
//	@Tags         entities
//	@Produce      json
//	@Param        refType  path  string  true  "referenced entity type tag"
//	@Success      200  {array}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/refs/{refType} [get]
func RefsHandler(d *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// The resolver caches by entity type, so the param must outlive
		// the request buffer fiber will reuse.
		refType := utils.CopyString(c.Params("refType"))
		if _, ok := d.Configs[refType]; !ok {
			return kit.NotFound("unknown entity type " + refType)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		items, err := d.Resolver.GetReferences(ctx, refType)
		if err != nil {
			return kit.InternalError("resolving references failed", err.Error())
		}
		return kit.OK(c, items)
	}
}
