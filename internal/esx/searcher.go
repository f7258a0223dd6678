package esx

import (
	"context"
	"strings"

	"previplan/internal/engine/schema"
)

// BuildDoc flattens a record into its indexed shape. Text concatenates
// the config's effective search fields so one match query covers them.
func BuildDoc(cfg *schema.EntityConfig, rec schema.Record) EntityDoc {
	var parts []string
	for _, key := range cfg.EffectiveSearchFields() {
		if s := rec.String(key); s != "" {
			parts = append(parts, s)
		}
	}
	id, _ := rec.ID()
	return EntityDoc{
		EntityType: cfg.Type,
		ID:         id,
		Text:       strings.Join(parts, " "),
		Fields:     map[string]any(rec),
	}
}

// Searcher serves the remote search seam of collection pages from the
// shared entity index.
type Searcher struct {
	es    *Client
	index string
}

func NewSearcher(es *Client, index string) *Searcher {
	if index == "" {
		index = DefaultIndex
	}
	return &Searcher{es: es, index: index}
}

func (s *Searcher) Search(ctx context.Context, entityType, query string, limit int) ([]schema.Record, error) {
	docs, err := SearchEntities(ctx, s.es, s.index, entityType, query, limit)
	if err != nil {
		return nil, err
	}
	out := make([]schema.Record, len(docs))
	for i, d := range docs {
		out[i] = schema.Record(d.Fields)
	}
	return out, nil
}
