// Package scope defines the sharing granularity of a data node.
//
// Scope is an attribute supplied by the surrounding orchestration system;
// the data-node core stores it but never interprets it. Values are ordered:
// a Pipeline-scoped node is the narrowest, a Global node the widest.
package scope

import (
	"github.com/loomworks/loom/errors"
)

// Scope describes how widely a data node is shared.
type Scope int

const (
	// Pipeline scope: one instance per pipeline.
	Pipeline Scope = iota + 1
	// Scenario scope: one instance per scenario.
	Scenario
	// Cycle scope: one instance per cycle.
	Cycle
	// Global scope: a single instance shared everywhere.
	Global
)

var names = map[Scope]string{
	Pipeline: "pipeline",
	Scenario: "scenario",
	Cycle:    "cycle",
	Global:   "global",
}

// String returns the lowercase token used in persisted metadata.
func (s Scope) String() string {
	if name, ok := names[s]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether s is one of the defined scopes.
func (s Scope) Valid() bool {
	_, ok := names[s]
	return ok
}

// Parse converts a token back into a Scope.
func Parse(token string) (Scope, error) {
	for s, name := range names {
		if name == token {
			return s, nil
		}
	}
	return 0, errors.NewConfigurationError("unknown scope %q", token)
}

// MarshalText implements encoding.TextMarshaler.
func (s Scope) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.NewConfigurationError("cannot marshal unknown scope %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scope) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
