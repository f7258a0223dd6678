// Package esx indexes entity records into Elasticsearch and serves the
// remote search path of the collection pages.
package esx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	es8 "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/samber/lo"

	"previplan/internal/config"
)

type Client = es8.Client

// DefaultIndex is the single index holding every entity type; documents
// carry an entity_type field used to scope queries.
const DefaultIndex = "entities"

func Open(cfg *config.Config) (*Client, func(), error) {
	if strings.TrimSpace(cfg.ES.Addrs) == "" {
		return nil, func() {}, nil
	}
	raw := strings.Split(cfg.ES.Addrs, ",")
	addrs := lo.FilterMap(raw, func(s string, _ int) (string, bool) {
		t := strings.TrimSpace(s)
		return t, t != ""
	})
	es, err := es8.NewClient(es8.Config{Addresses: addrs, Username: cfg.ES.Username, Password: cfg.ES.Password})
	if err != nil {
		return nil, func() {}, err
	}
	return es, func() {}, nil
}

// EntityDoc is the indexed shape of one record. Text concatenates the
// entity's searchable fields; Fields keeps the raw record for display.
type EntityDoc struct {
	EntityType string         `json:"entity_type"`
	ID         int64          `json:"id"`
	Text       string         `json:"text"`
	Fields     map[string]any `json:"fields"`
}

func docID(entityType string, id int64) string {
	return entityType + ":" + strconv.FormatInt(id, 10)
}

func IndexEntity(ctx context.Context, es *Client, index string, doc EntityDoc) error {
	if es == nil {
		return nil
	}
	b, _ := json.Marshal(doc)
	res, err := es.Index(index, bytes.NewReader(b),
		es.Index.WithContext(ctx),
		es.Index.WithDocumentID(docID(doc.EntityType, doc.ID)))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return fmtError(res)
	}
	return nil
}

func DeleteEntity(ctx context.Context, es *Client, index, entityType string, id int64) error {
	if es == nil {
		return nil
	}
	res, err := es.Delete(index, docID(entityType, id), es.Delete.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	// Deleting an unindexed doc is not worth surfacing.
	if res.StatusCode >= http.StatusBadRequest && res.StatusCode != http.StatusNotFound {
		return fmtError(res)
	}
	return nil
}

// SearchEntities runs a match query scoped to one entity type and returns
// the stored docs in score order.
func SearchEntities(ctx context.Context, es *Client, index, entityType, query string, size int) ([]EntityDoc, error) {
	if es == nil {
		return nil, nil
	}
	q := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"filter": []any{map[string]any{"term": map[string]any{"entity_type": entityType}}},
				"must":   []any{map[string]any{"match": map[string]any{"text": map[string]any{"query": query, "fuzziness": "AUTO"}}}},
			},
		},
	}
	b, _ := json.Marshal(q)
	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(bytes.NewReader(b)),
		es.Search.WithSize(size),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return nil, fmtError(res)
	}
	var out struct {
		Hits struct {
			Hits []struct {
				Source EntityDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	docs := make([]EntityDoc, len(out.Hits.Hits))
	for i, h := range out.Hits.Hits {
		docs[i] = h.Source
	}
	return docs, nil
}

func fmtError(res *esapi.Response) error { return fmt.Errorf("es error: %s", res.String()) }
