package mqx

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

type fakePublisher struct {
	keys   []string
	bodies [][]byte
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, routingKey string, body []byte) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, routingKey)
	f.bodies = append(f.bodies, body)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

func TestEntityEvent(t *testing.T) {
	pub := &fakePublisher{}
	e := NewEntityEvents(pub)

	e.EntityEvent(context.Background(), "created", "risk", 7)
	if len(pub.keys) != 1 || pub.keys[0] != "entity.risk.created" {
		t.Fatalf("keys: %v", pub.keys)
	}
	var payload struct {
		Action     string `json:"action"`
		EntityType string `json:"entity_type"`
		ID         int64  `json:"id"`
		At         string `json:"at"`
	}
	if err := json.Unmarshal(pub.bodies[0], &payload); err != nil {
		t.Fatalf("body: %v", err)
	}
	if payload.Action != "created" || payload.EntityType != "risk" || payload.ID != 7 || payload.At == "" {
		t.Fatalf("payload: %+v", payload)
	}
}

func TestEntityEvent_NilSafeAndErrorsSwallowed(t *testing.T) {
	var e *EntityEvents
	e.EntityEvent(context.Background(), "created", "risk", 1)

	NewEntityEvents(nil).EntityEvent(context.Background(), "created", "risk", 1)

	// a broker failure must not reach the caller
	e = NewEntityEvents(&fakePublisher{err: errors.New("down")})
	e.EntityEvent(context.Background(), "deleted", "site", 2)
}
