package mqx

import (
	"context"
	"encoding/json"
	"time"

	"previplan/internal/logx"
)

var mqLogger = logx.GetScope("mqx")

// EntityEvents publishes confirmed entity mutations to the events
// exchange with routing keys like entity.risk.created.
type EntityEvents struct {
	pub Publisher
}

func NewEntityEvents(pub Publisher) *EntityEvents {
	return &EntityEvents{pub: pub}
}

func (e *EntityEvents) EntityEvent(ctx context.Context, action, entityType string, id int64) {
	if e == nil || e.pub == nil {
		return
	}
	body, _ := json.Marshal(map[string]any{
		"action":      action,
		"entity_type": entityType,
		"id":          id,
		"at":          time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err := e.pub.Publish(ctx, "entity."+entityType+"."+action, body); err != nil {
		mqLogger.Sugar().Warnf("publish entity event failed: %v", err)
	}
}
