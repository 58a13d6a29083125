package storage

import (
	"sort"
	"sync"

	"github.com/loomworks/loom/errors"
)

// Factory builds a backend from backend-specific properties.
type Factory func(props map[string]any) (Backend, error)

// Registry maps storage-type tags to backend factories, so configuration
// code can instantiate the right backend class for a config entry by tag
// alone.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty backend registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under the given tag.
// Returns an error if the tag is already taken.
func (r *Registry) Register(tag string, factory Factory) error {
	if tag == "" {
		return errors.NewConfigurationError("storage type tag may not be empty")
	}
	if factory == nil {
		return errors.NewConfigurationError("nil factory for storage type %q", tag)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[tag]; exists {
		return errors.NewConfigurationError("storage type already registered: %s", tag)
	}
	r.factories[tag] = factory
	return nil
}

// New instantiates a backend for the given tag.
func (r *Registry) New(tag string, props map[string]any) (Backend, error) {
	r.mu.RLock()
	factory, ok := r.factories[tag]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NewConfigurationError("unknown storage type: %s", tag)
	}
	return factory(props)
}

// Types returns all registered tags in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// defaultRegistry holds the backends compiled into this process.
var defaultRegistry = NewRegistry()

// Register adds a factory to the process-wide registry.
func Register(tag string, factory Factory) error {
	return defaultRegistry.Register(tag, factory)
}

// MustRegister is Register for package init paths; it panics on conflict.
func MustRegister(tag string, factory Factory) {
	if err := Register(tag, factory); err != nil {
		panic(err)
	}
}

// New instantiates a backend from the process-wide registry.
func New(tag string, props map[string]any) (Backend, error) {
	return defaultRegistry.New(tag, props)
}

// Types lists the tags in the process-wide registry.
func Types() []string {
	return defaultRegistry.Types()
}
