package storage

import (
	"sync"
)

// StorageTypeInMemory is the selection tag of the reference backend.
const StorageTypeInMemory = "in_memory"

// Store is an explicit in-process key/value store for data-node values.
//
// It replaces a process-wide shared map: each Store has its own lifecycle
// and is passed by reference to the backends that should share it, which
// keeps tests isolated and allows multiple independent stores per process.
//
// The mutex only makes individual Get/Set calls memory-safe. There is no
// cross-call isolation: concurrent read-modify-write sequences on the same
// ID remain last-write-wins.
type Store struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]any)}
}

// Get returns the value stored under id, and whether one exists.
func (s *Store) Get(id string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[id]
	return value, ok
}

// Set stores value under id, overwriting any previous entry.
func (s *Store) Set(id string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = value
}

// Delete removes the entry for id, if any.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// InMemory is the reference backend: values live in a Store and vanish
// with the process.
//
// Warning: this backend offers no durability and no isolation beyond
// single-key assignment atomicity. It is unsuitable for parallel task
// execution and exists for single-process development and debugging;
// production backends must outperform it on durability and concurrency
// safety while satisfying the same contract.
type InMemory struct {
	store *Store
}

// NewInMemory creates an in-memory backend over the given store. Passing
// the same store to several backends shares their values; passing nil
// gives the backend a fresh private store.
func NewInMemory(store *Store) *InMemory {
	if store == nil {
		store = NewStore()
	}
	return &InMemory{store: store}
}

// StorageType implements Backend.
func (b *InMemory) StorageType() string {
	return StorageTypeInMemory
}

// Read implements Backend. It never fails; absence is reported via ok.
func (b *InMemory) Read(id string) (any, bool, error) {
	value, ok := b.store.Get(id)
	return value, ok, nil
}

// Write implements Backend.
func (b *InMemory) Write(id string, data any) error {
	b.store.Set(id, data)
	return nil
}

// SerializeProperties implements Backend. Identity transform: in-memory
// properties need no conversion.
func (b *InMemory) SerializeProperties(props map[string]any) (map[string]any, error) {
	return props, nil
}

// DeserializeProperties implements Backend. Identity transform.
func (b *InMemory) DeserializeProperties(props map[string]any) (map[string]any, error) {
	return props, nil
}

func init() {
	// The reference backend is always selectable by tag.
	MustRegister(StorageTypeInMemory, func(props map[string]any) (Backend, error) {
		return NewInMemory(nil), nil
	})
}
