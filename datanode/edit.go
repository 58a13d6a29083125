package datanode

import (
	"time"
)

// Edit is an immutable log entry describing one write to a data node:
// when it happened, optionally which job produced it, and any free-form
// metadata the writer attached. Edits are append-only; a node's edit list
// is never truncated or reordered.
type Edit struct {
	timestamp time.Time
	jobID     string
	metadata  map[string]any
}

// EditOption customizes a single edit record at write time.
type EditOption func(*Edit)

// WithTimestamp overrides the edit timestamp, which otherwise defaults to
// the node clock at write time.
func WithTimestamp(t time.Time) EditOption {
	return func(e *Edit) {
		e.timestamp = t
	}
}

// WithJobID records the job or task whose execution produced the write.
func WithJobID(jobID string) EditOption {
	return func(e *Edit) {
		e.jobID = jobID
	}
}

// WithEditMetadata attaches one free-form metadata entry to the edit.
// Keys are not validated or bounded.
func WithEditMetadata(key string, value any) EditOption {
	return func(e *Edit) {
		if e.metadata == nil {
			e.metadata = make(map[string]any)
		}
		e.metadata[key] = value
	}
}

// NewEdit builds an edit stamped at the given time unless WithTimestamp
// overrides it.
func NewEdit(at time.Time, opts ...EditOption) Edit {
	e := Edit{timestamp: at}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Timestamp returns when the write happened.
func (e Edit) Timestamp() time.Time {
	return e.timestamp
}

// JobID returns the job reference attached to the edit, or "".
func (e Edit) JobID() string {
	return e.jobID
}

// Metadata returns a copy of the edit's free-form metadata, or nil.
func (e Edit) Metadata() map[string]any {
	if len(e.metadata) == 0 {
		return nil
	}
	out := make(map[string]any, len(e.metadata))
	for k, v := range e.metadata {
		out[k] = v
	}
	return out
}
