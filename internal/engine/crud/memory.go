package crud

import (
	"context"
	"sync"

	"previplan/internal/engine/schema"
)

// Memory is a thread-safe in-memory Operations implementation. It backs
// demos and tests; records are deep-copied on the way in and out so
// callers cannot alias store state.
type Memory struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]schema.Record
	order  []int64
}

// NewMemory seeds an in-memory store. Seeds without an id get one
// assigned.
func NewMemory(seed ...schema.Record) *Memory {
	m := &Memory{items: map[int64]schema.Record{}, nextID: 1}
	for _, r := range seed {
		rec := r.Clone()
		id, ok := rec.ID()
		if !ok {
			id = m.nextID
			rec["id"] = id
		}
		if id >= m.nextID {
			m.nextID = id + 1
		}
		m.items[id] = rec
		m.order = append(m.order, id)
	}
	return m
}

func (m *Memory) GetAll(_ context.Context) ([]schema.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]schema.Record, 0, len(m.order))
	for _, id := range m.order {
		if rec, ok := m.items[id]; ok {
			out = append(out, rec.Clone())
		}
	}
	return out, nil
}

func (m *Memory) GetByID(_ context.Context, id int64) (schema.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec.Clone(), nil
}

func (m *Memory) Create(_ context.Context, rec schema.Record) (schema.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := rec.Clone()
	stored["id"] = m.nextID
	m.items[m.nextID] = stored
	m.order = append(m.order, m.nextID)
	m.nextID++
	return stored.Clone(), nil
}

func (m *Memory) Update(_ context.Context, id int64, rec schema.Record) (schema.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return nil, ErrNotFound
	}
	stored := rec.Clone()
	stored["id"] = id
	m.items[id] = stored
	return stored.Clone(), nil
}

func (m *Memory) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len reports the number of stored records.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
