package config

import (
	"sync"
	"sync/atomic"
)

// Watcher is notified after a config update has been committed. The
// changed map holds the keys that differ from the previous snapshot.
type Watcher func(newCfg *Config, changed map[string]bool)

// Validator can veto a pending update by returning an error.
type Validator func(newCfg *Config, changed map[string]bool) error

// Store holds the live configuration snapshot. Reads are lock-free;
// registration and updates are serialized by the mutex.
type Store struct {
	v      atomic.Value // *Config
	mu     sync.Mutex
	nextID int
	ws     map[int]Watcher
	vs     map[int]Validator
}

func NewStore(cfg *Config) *Store {
	s := &Store{
		ws: make(map[int]Watcher),
		vs: make(map[int]Validator),
	}
	s.v.Store(cfg)
	return s
}

// Get returns the current snapshot. Callers must treat it as read-only.
func (s *Store) Get() *Config {
	return s.v.Load().(*Config)
}

// Update commits a new snapshot unconditionally and notifies watchers.
func (s *Store) Update(newCfg *Config, changed map[string]bool) {
	s.v.Store(newCfg)
	s.mu.Lock()
	ws := make([]Watcher, 0, len(s.ws))
	for _, w := range s.ws {
		ws = append(ws, w)
	}
	s.mu.Unlock()
	for _, w := range ws {
		w(newCfg, changed)
	}
}

// Watch registers a watcher and returns its unregister function.
func (s *Store) Watch(w Watcher) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.ws[id] = w
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.ws, id)
		s.mu.Unlock()
	}
}

// AddValidator registers a validator and returns its unregister function.
func (s *Store) AddValidator(v Validator) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.vs[id] = v
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.vs, id)
		s.mu.Unlock()
	}
}

// UpdateValidated runs all validators against the candidate snapshot and
// commits it only when every one accepts. Returns whether the update was
// applied.
func (s *Store) UpdateValidated(newCfg *Config, changed map[string]bool) bool {
	s.mu.Lock()
	vs := make([]Validator, 0, len(s.vs))
	for _, v := range s.vs {
		vs = append(vs, v)
	}
	s.mu.Unlock()
	for _, v := range vs {
		if err := v(newCfg, changed); err != nil {
			return false
		}
	}
	s.Update(newCfg, changed)
	return true
}

// cloneConfig copies the top-level struct; nested values are plain data.
func cloneConfig(in *Config) *Config {
	out := *in
	return &out
}
