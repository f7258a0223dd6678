package manager

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"previplan/internal/engine/schema"
)

// Export serializes the currently filtered and paged view, exactly what
// the user sees, to a downloadable JSON document. Returns the payload
// and a suggested filename.
func (m *Manager) Export() ([]byte, string, error) {
	page := m.view.Visible()
	b, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("export %s: %w", m.cfg.Type, err)
	}
	name := fmt.Sprintf("%s-%s.json", m.cfg.Type, uuid.NewString()[:8])
	return b, name, nil
}

// Import reads a JSON array of records, strips any id so the store
// assigns fresh ones, and issues one create call per record sequentially.
// A failure aborts the remainder; records already created stay created.
func (m *Manager) Import(ctx context.Context, data []byte) (int, error) {
	var records []schema.Record
	if err := json.Unmarshal(data, &records); err != nil {
		m.notify(SeverityError, "Import file is not a valid JSON array")
		return 0, fmt.Errorf("import %s: %w", m.cfg.Type, err)
	}

	done := 0
	for _, rec := range records {
		delete(rec, "id")
		created, err := m.ops.Create(ctx, rec)
		if err != nil {
			m.notify(SeverityError, fmt.Sprintf("Import stopped after %d of %d", done, len(records)))
			return done, err
		}
		done++
		if id, ok := created.ID(); ok {
			m.emit(ctx, "created", id)
		}
	}
	m.invalidate(ctx)
	if err := m.Load(ctx); err != nil {
		return done, err
	}
	m.notify(SeveritySuccess, fmt.Sprintf("%d %s imported", done, m.cfg.PluralName))
	return done, nil
}
