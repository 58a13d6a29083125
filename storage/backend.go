// Package storage defines the contract a physical storage backend must
// satisfy to hold data-node values, and ships the reference in-memory
// implementation.
//
// A backend is keyed by the owning data node's ID and knows nothing about
// edit history, validity periods, or scope — those belong to the data-node
// layer. Backends are selected by a stable string tag via the Registry.
package storage

// Backend is the capability set every storage implementation must provide.
// Implementations can use any medium (memory, files, SQL, object stores).
type Backend interface {
	// StorageType returns the stable tag identifying this backend class.
	// Configuration-driven factory code uses it to pick an implementation.
	StorageType() string

	// Read returns the value stored under the given data-node ID.
	// ok is false when nothing has ever been written for that ID; that is
	// a normal state, not an error. err is reserved for backend failures.
	Read(id string) (value any, ok bool, err error)

	// Write unconditionally stores data under the given data-node ID.
	// Must be safe to call when no prior value exists.
	Write(id string, data any) error

	// SerializeProperties converts backend-specific properties into a
	// persistable form. A generic persistence layer round-trips property
	// bags through these hooks without knowing their shape.
	SerializeProperties(props map[string]any) (map[string]any, error)

	// DeserializeProperties is the inverse of SerializeProperties.
	DeserializeProperties(props map[string]any) (map[string]any, error)
}
