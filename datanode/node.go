// Package datanode models a named, versioned handle to a unit of pipeline
// data. A data node owns the metadata an orchestrator needs — who last
// wrote it, when, and whether it is still valid to read — and delegates
// physical storage to a pluggable backend.
package datanode

import (
	"fmt"
	"sync"
	"time"

	"github.com/loomworks/loom/errors"
	"github.com/loomworks/loom/logger"
	"github.com/loomworks/loom/scope"
	"github.com/loomworks/loom/storage"
	"github.com/loomworks/loom/version"
)

// DefaultDataKey is the reserved property consumed at construction time.
// Its value seeds the backend when no data exists yet for the node's ID;
// it never appears in the stored property set.
const DefaultDataKey = "default_data"

// Config carries the construction inputs for a data node. ConfigID and
// Scope come from the external configuration system; everything else is
// optional and takes documented defaults.
type Config struct {
	// ConfigID identifies the configuration template this node was
	// instantiated from. Required; must be a valid identifier token.
	ConfigID string

	// Scope is the externally-defined sharing granularity. Stored as an
	// attribute, never interpreted by the core.
	Scope scope.Scope

	// ID is the node's unique identifier. Generated when empty.
	ID ID

	// Name is a human-readable label. Defaults to ConfigID.
	Name string

	// OwnerID identifies the pipeline, scenario, or cycle owning this
	// node. Empty for root-level nodes.
	OwnerID string

	// ParentIDs are the upstream tasks producing this node's data.
	// Empty for source nodes.
	ParentIDs []string

	// LastEditDate is the timestamp of the most recent prior write, for
	// nodes reconstructed from persisted metadata. When zero it is
	// derived from the final entry of Edits.
	LastEditDate time.Time

	// Edits is the prior edit history, for reconstructed nodes.
	Edits []Edit

	// Version pins the node to an application version. Resolved via the
	// Resolver when empty.
	Version string

	// ValidityPeriod is how long a write stays fresh. Zero means the
	// node is always up to date once written.
	ValidityPeriod time.Duration

	// EditInProgress marks a write believed to be underway.
	EditInProgress bool

	// DefaultData seeds the backend at construction when it holds
	// nothing for this node's ID. The seeding counts as a real write.
	DefaultData any

	// Properties is the open bag of backend-specific and user-supplied
	// key/value pairs. A DefaultDataKey entry is consumed into
	// DefaultData (when that is nil) and removed before storage.
	Properties map[string]any

	// Resolver supplies the current application version when Version is
	// empty. Defaults to version.Default().
	Resolver version.Resolver
}

// DataNode is a versioned handle to a unit of pipeline data. Two instances
// are the same logical entity iff their IDs match, regardless of in-memory
// identity — orchestrators reconstruct nodes from persisted metadata.
//
// The node's own metadata (edits, last edit date, the in-progress flag) is
// guarded for memory safety, but the node imposes no locking around backend
// calls: concurrent writers racing on the same ID get whatever isolation
// the backend provides.
type DataNode struct {
	id             ID
	configID       string
	scope          scope.Scope
	name           string
	ownerID        string
	parentIDs      []string
	version        string
	validityPeriod time.Duration
	properties     map[string]any
	backend        storage.Backend

	// now is the node clock; swapped in tests for fixed readings.
	now func() time.Time

	mu             sync.Mutex
	edits          []Edit
	lastEdit       time.Time
	editInProgress bool
}

// New constructs a data node over the given backend.
//
// When cfg carries default data (directly or through the reserved
// property) and the backend holds nothing for the node's ID, the node is
// immediately written with it — appending an edit and setting the last
// edit date like any other write. An existing backend entry is never
// overwritten by seeding.
func New(backend storage.Backend, cfg Config) (*DataNode, error) {
	if err := ValidateConfigID(cfg.ConfigID); err != nil {
		return nil, err
	}
	if backend == nil {
		return nil, errors.NewConfigurationError("data node %q requires a storage backend", cfg.ConfigID)
	}

	id := cfg.ID
	if id == "" {
		id = NewID(cfg.ConfigID)
	}
	name := cfg.Name
	if name == "" {
		name = cfg.ConfigID
	}

	ver := cfg.Version
	if ver == "" {
		resolver := cfg.Resolver
		if resolver == nil {
			resolver = version.Default()
		}
		// Resolved exactly once; the node is pinned to it thereafter.
		ver = resolver.Latest()
	}

	properties := make(map[string]any, len(cfg.Properties))
	for k, v := range cfg.Properties {
		properties[k] = v
	}
	defaultData := cfg.DefaultData
	if raw, ok := properties[DefaultDataKey]; ok {
		if defaultData == nil {
			defaultData = raw
		}
		delete(properties, DefaultDataKey)
	}

	// parent_ids form a set; duplicates collapse, first-seen order kept.
	var parents []string
	seen := make(map[string]bool, len(cfg.ParentIDs))
	for _, p := range cfg.ParentIDs {
		if !seen[p] {
			seen[p] = true
			parents = append(parents, p)
		}
	}

	edits := append([]Edit(nil), cfg.Edits...)
	lastEdit := cfg.LastEditDate
	if lastEdit.IsZero() && len(edits) > 0 {
		lastEdit = edits[len(edits)-1].Timestamp()
	}

	n := &DataNode{
		id:             id,
		configID:       cfg.ConfigID,
		scope:          cfg.Scope,
		name:           name,
		ownerID:        cfg.OwnerID,
		parentIDs:      parents,
		version:        ver,
		validityPeriod: cfg.ValidityPeriod,
		properties:     properties,
		backend:        backend,
		now:            time.Now,
		edits:          edits,
		lastEdit:       lastEdit,
		editInProgress: cfg.EditInProgress,
	}

	if defaultData != nil {
		_, exists, err := backend.Read(string(n.id))
		if err != nil {
			return nil, errors.Wrapf(err, "checking existing data for node %s", n.id)
		}
		if !exists {
			if err := n.Write(defaultData); err != nil {
				return nil, err
			}
			logger.Debugw("Seeded data node with default data",
				"id", n.id,
				"config_id", n.configID,
				"storage_type", backend.StorageType(),
			)
		}
	}

	return n, nil
}

// ID returns the node's unique identifier.
func (n *DataNode) ID() ID {
	return n.id
}

// ConfigID returns the configuration template identifier.
func (n *DataNode) ConfigID() string {
	return n.configID
}

// Scope returns the node's sharing granularity.
func (n *DataNode) Scope() scope.Scope {
	return n.scope
}

// Name returns the human-readable label.
func (n *DataNode) Name() string {
	return n.name
}

// OwnerID returns the owning container's identifier, or "".
func (n *DataNode) OwnerID() string {
	return n.ownerID
}

// ParentIDs returns a copy of the upstream task identifiers.
func (n *DataNode) ParentIDs() []string {
	return append([]string(nil), n.parentIDs...)
}

// Version returns the application version this node is pinned to.
func (n *DataNode) Version() string {
	return n.version
}

// ValidityPeriod returns how long a write stays fresh; zero means always.
func (n *DataNode) ValidityPeriod() time.Duration {
	return n.validityPeriod
}

// StorageType returns the backend's selection tag.
func (n *DataNode) StorageType() string {
	return n.backend.StorageType()
}

// Properties returns a copy of the node's property bag. The reserved
// default-data key never appears here.
func (n *DataNode) Properties() map[string]any {
	out := make(map[string]any, len(n.properties))
	for k, v := range n.properties {
		out[k] = v
	}
	return out
}

// Edits returns a copy of the node's edit history, in chronological order.
func (n *DataNode) Edits() []Edit {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Edit(nil), n.edits...)
}

// LastEditDate returns the timestamp of the most recent write. ok is false
// when the node has never been written.
func (n *DataNode) LastEditDate() (time.Time, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.lastEdit, !n.lastEdit.IsZero()
}

// EditInProgress reports whether a write is believed to be underway. This
// is a cooperative signal set by the orchestrator, not a lock; the node
// never blocks callers based on it.
func (n *DataNode) EditInProgress() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.editInProgress
}

// SetEditInProgress toggles the cooperative write-in-progress signal.
func (n *DataNode) SetEditInProgress(inProgress bool) {
	n.mu.Lock()
	n.editInProgress = inProgress
	n.mu.Unlock()
}

// Read returns the backend's current value for this node, or nil when
// nothing has ever been written. Absence is a normal state, not an error;
// backend failures propagate unchanged.
func (n *DataNode) Read() (any, error) {
	value, ok, err := n.backend.Read(string(n.id))
	if err != nil {
		return nil, errors.Wrapf(err, "reading data node %s", n.id)
	}
	if !ok {
		logger.Warnw("Data node read before any write",
			"id", n.id,
			"config_id", n.configID,
		)
		return nil, nil
	}
	return value, nil
}

// Write stores data through the backend, then appends an edit record and
// updates the last edit date. A failed backend write leaves the edit
// history and last edit date untouched.
func (n *DataNode) Write(data any, opts ...EditOption) error {
	if err := n.backend.Write(string(n.id), data); err != nil {
		return errors.Wrapf(err, "writing data node %s", n.id)
	}

	edit := NewEdit(n.now(), opts...)
	n.mu.Lock()
	n.edits = append(n.edits, edit)
	n.lastEdit = edit.Timestamp()
	n.mu.Unlock()

	logger.Debugw("Data node written",
		"id", n.id,
		"storage_type", n.backend.StorageType(),
		"job_id", edit.JobID(),
	)
	return nil
}

// IsUpToDate reports whether the node can be read without recomputation,
// evaluated against the node clock.
func (n *DataNode) IsUpToDate() bool {
	return n.UpToDateAt(n.now())
}

// UpToDateAt is the pure form of IsUpToDate: false when the node has never
// been written; false when a validity period is set and more than that has
// elapsed since the last edit; true otherwise. Re-evaluating with the same
// clock reading always yields the same result.
func (n *DataNode) UpToDateAt(now time.Time) bool {
	n.mu.Lock()
	lastEdit := n.lastEdit
	n.mu.Unlock()

	if lastEdit.IsZero() {
		return false
	}
	if n.validityPeriod == 0 {
		return true
	}
	return now.Sub(lastEdit) <= n.validityPeriod
}

// Equals reports whether other is the same logical entity: IDs match,
// regardless of in-memory instance identity.
func (n *DataNode) Equals(other *DataNode) bool {
	return other != nil && n.id == other.id
}

// String implements fmt.Stringer for log output.
func (n *DataNode) String() string {
	return fmt.Sprintf("DataNode(%s, config_id=%s, version=%s)", n.id, n.configID, n.version)
}
