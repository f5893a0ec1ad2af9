package config

import "sync/atomic"

// Store publishes immutable Config snapshots to concurrent readers. A
// reload computes the next Config off to the side and installs it with one
// atomic pointer swap, so readers always observe either the old snapshot or
// the new one, never a mix.
type Store struct {
	current atomic.Pointer[Config]
}

// NewStore creates a store holding the given initial snapshot.
func NewStore(cfg *Config) *Store {
	s := &Store{}
	s.current.Store(cfg)
	return s
}

// Config returns the current snapshot.
func (s *Store) Config() *Config {
	return s.current.Load()
}

// Swap installs a new snapshot and returns the previous one.
func (s *Store) Swap(cfg *Config) *Config {
	return s.current.Swap(cfg)
}
