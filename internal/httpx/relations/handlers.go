// Package relations serves the links between a document (prevention
// plan or work order) and its safety entities.
package relations

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"previplan/internal/engine/crud"
	"previplan/internal/httpx/kit"
	"previplan/internal/store"
)

func paramInt64(c *fiber.Ctx, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || v <= 0 {
		return 0, kit.BadRequest("invalid "+name, c.Params(name))
	}
	return v, nil
}

// ListHandler returns every join row of a document with resolved children.
//
//	@Summary      List document relations
//	@Tags         relations
//	@Produce      json
//	@Param        docType  path  string  true  "pdp or bdt"
//	@Param        id       path  int     true  "document id"
//	@Success      200  {array}   store.RelationRow
//	@Failure      400  {object}  map[string]interface{}
//	@Router       /api/v1/documents/{docType}/{id}/relations [get]
func ListHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramInt64(c, "id")
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		rows, err := s.ListRelations(ctx, c.Params("docType"), id)
		if err != nil {
			if strings.Contains(err.Error(), "unknown document type") {
				return kit.BadRequest(err.Error(), nil)
			}
			return kit.InternalError("list relations failed", err.Error())
		}
		return kit.OK(c, rows)
	}
}

// LinkRequest is the link payload.
// swagger:model LinkRequest
type LinkRequest struct {
	ChildType string `json:"child_type" example:"risk"`
	ChildID   int64  `json:"child_id" example:"3"`
}

// LinkHandler attaches a child entity to a document. Linking an already
// linked pair revives the row instead of duplicating it.
//
//	@Summary      Link child to document
//	@Tags         relations
//	@Accept       json
//	@Produce      json
//	@Param        docType  path  string                 true  "pdp or bdt"
//	@Param        id       path  int                    true  "document id"
//	@Param        body     body  relations.LinkRequest  true  "child to link"
//	@Success      201  {object}  store.RelationRow
//	@Failure      400  {object}  map[string]interface{}
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/documents/{docType}/{id}/relations [post]
func LinkHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramInt64(c, "id")
		if err != nil {
			return err
		}
		var req LinkRequest
		if err := c.BodyParser(&req); err != nil || req.ChildType == "" || req.ChildID <= 0 {
			return kit.BadRequest("child_type and child_id required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		row, err := s.LinkChild(ctx, c.Params("docType"), id, req.ChildType, req.ChildID)
		if err != nil {
			if errors.Is(err, crud.ErrNotFound) {
				return kit.NotFound(err.Error())
			}
			if strings.Contains(err.Error(), "unknown") {
				return kit.BadRequest(err.Error(), nil)
			}
			return kit.InternalError("link failed", err.Error())
		}
		return kit.Created(c, row)
	}
}

// AnswerRequest records whether a linked child applies.
// swagger:model AnswerRequest
type AnswerRequest struct {
	Applies bool `json:"applies"`
}

// AnswerHandler flips the applies flag of a join row. Rows are never
// deleted; a "no" answer keeps the link with applies=false.
//
//	@Summary      Answer a relation
//	@Tags         relations
//	@Accept       json
//	@Produce      json
//	@Param        docType  path  string                   true  "pdp or bdt"
//	@Param        id       path  int                      true  "document id"
//	@Param        relID    path  int                      true  "relation row id"
//	@Param        body     body  relations.AnswerRequest  true  "answer"
//	@Success      200  {object}  store.RelationRow
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/documents/{docType}/{id}/relations/{relID}/answer [post]
func AnswerHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		relID, err := paramInt64(c, "relID")
		if err != nil {
			return err
		}
		var req AnswerRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid body", err.Error())
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		row, err := s.AnswerRelation(ctx, relID, req.Applies)
		if err != nil {
			if errors.Is(err, crud.ErrNotFound) {
				return kit.NotFound("relation not found")
			}
			return kit.InternalError("answer failed", err.Error())
		}
		return kit.OK(c, row)
	}
}
