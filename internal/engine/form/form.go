// Package form drives the create/edit dialog for any entity shape: one
// input per configured field, reference option loading, value-list item
// editing, and full-schema validation before submit. The session never
// performs persistence itself: submitting hands the validated record to
// a caller-supplied function, and closing after success is the caller's
// responsibility.
package form

import (
	"context"
	"fmt"

	"previplan/internal/engine/crud"
	"previplan/internal/engine/schema"
)

// Mode is the dialog state.
type Mode int

const (
	Closed Mode = iota
	Create
	Edit
)

// Session is the state of one open form.
type Session struct {
	cfg      *schema.EntityConfig
	resolver crud.ReferenceResolver

	mode   Mode
	values schema.Record
	errors map[string]string
	// options caches reference lookups per field for the lifetime of one
	// open dialog.
	options map[string][]schema.Record
}

// NewSession builds a closed session for the given config. The resolver
// may be nil when no field references other entities.
func NewSession(cfg *schema.EntityConfig, resolver crud.ReferenceResolver) *Session {
	return &Session{cfg: cfg, resolver: resolver, mode: Closed}
}

// Mode returns the current dialog state.
func (s *Session) Mode() Mode { return s.mode }

// OpenCreate opens the dialog with an empty record.
func (s *Session) OpenCreate() {
	s.mode = Create
	s.values = schema.Record{}
	s.reset()
}

// OpenEdit opens the dialog on a deep clone of the target, so edits never
// leak into the list view before the adapter confirms them.
func (s *Session) OpenEdit(target schema.Record) {
	s.mode = Edit
	s.values = target.Clone()
	s.reset()
}

// Close discards form state, errors and the per-open option cache.
func (s *Session) Close() {
	s.mode = Closed
	s.values = nil
	s.reset()
}

func (s *Session) reset() {
	s.errors = map[string]string{}
	s.options = map[string][]schema.Record{}
}

// Values returns the working record (live reference; the session owns it).
func (s *Session) Values() schema.Record { return s.values }

// Errors returns the validation errors of the last Validate/Submit call.
func (s *Session) Errors() map[string]string { return s.errors }

// Set writes one field value.
func (s *Session) Set(key string, v any) {
	if s.mode == Closed {
		return
	}
	f := s.cfg.Field(key)
	if f != nil && f.ReadOnly {
		return
	}
	s.values[key] = v
}

// Options returns the reference option list for an EntityRef/RefList
// field, resolving it through the adapter at most once per open dialog.
func (s *Session) Options(ctx context.Context, key string) ([]schema.Record, error) {
	f := s.cfg.Field(key)
	if f == nil || (f.Type != schema.TypeEntityRef && f.Type != schema.TypeRefList) {
		return nil, fmt.Errorf("field %q is not a reference field", key)
	}
	if cached, ok := s.options[key]; ok {
		return cached, nil
	}
	if s.resolver == nil {
		return nil, nil
	}
	opts, err := s.resolver.GetReferences(ctx, f.RefType)
	if err != nil {
		return nil, err
	}
	s.options[key] = opts
	return opts, nil
}

// SelectRef sets an EntityRef field to the chosen id.
func (s *Session) SelectRef(key string, id int64) { s.Set(key, id) }

// AddRef appends an id to a RefList field. Only the id is stored, never
// the full referenced object.
func (s *Session) AddRef(key string, id int64) {
	cur := s.values.RefIDs(key)
	for _, existing := range cur {
		if existing == id {
			return
		}
	}
	items := make([]any, 0, len(cur)+1)
	for _, v := range cur {
		items = append(items, v)
	}
	s.values[key] = append(items, id)
}

// RemoveRef drops an id from a RefList field.
func (s *Session) RemoveRef(key string, id int64) {
	cur := s.values.RefIDs(key)
	items := make([]any, 0, len(cur))
	for _, v := range cur {
		if v != id {
			items = append(items, v)
		}
	}
	s.values[key] = items
}

// AppendItem adds a new item to a ValueList field, defaulted to the
// element type's zero value.
func (s *Session) AppendItem(key string) {
	f := s.cfg.Field(key)
	if f == nil || f.Type != schema.TypeValueList {
		return
	}
	items := s.values.Slice(key)
	s.values[key] = append(items, f.ItemType.Zero())
}

// SetItem replaces the item at index in a ValueList field.
func (s *Session) SetItem(key string, index int, v any) {
	items := s.values.Slice(key)
	if index < 0 || index >= len(items) {
		return
	}
	items[index] = v
	s.values[key] = items
}

// RemoveItem deletes the item at index from a ValueList field.
func (s *Session) RemoveItem(key string, index int) {
	items := s.values.Slice(key)
	if index < 0 || index >= len(items) {
		return
	}
	s.values[key] = append(items[:index], items[index+1:]...)
}

// Submit validates the whole form and, only when clean, calls fn exactly
// once with the working record. It returns whether fn ran; adapter
// failures propagate unchanged so the caller can surface them. The dialog
// stays open either way.
func (s *Session) Submit(ctx context.Context, fn func(context.Context, schema.Record) error) (bool, error) {
	if s.mode == Closed {
		return false, fmt.Errorf("form is not open")
	}
	s.errors = Validate(s.cfg, s.values)
	if len(s.errors) > 0 {
		return false, nil
	}
	if err := fn(ctx, s.values); err != nil {
		return true, err
	}
	return true, nil
}
