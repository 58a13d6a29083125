// Package version resolves the current application version for data nodes.
//
// A data node constructed without an explicit version asks a Resolver for
// the current one, exactly once, and is pinned to it thereafter. The
// reference Manager orders registered versions semantically so side-by-side
// application revisions resolve deterministically.
package version

import (
	"sync"

	"github.com/Masterminds/semver/v3"

	"github.com/loomworks/loom/errors"
)

// DevVersion is reported when no application version has been registered.
const DevVersion = "0.0.0-dev"

// Resolver reports the current application version string.
// Implementations must be safe for concurrent use.
type Resolver interface {
	// Latest returns the version new data nodes should be pinned to.
	Latest() string
}

// Manager tracks registered application versions and resolves the latest
// by semantic-version precedence.
type Manager struct {
	mu       sync.RWMutex
	versions map[string]*semver.Version
	latest   *semver.Version
	raw      string // original spelling of latest (Register preserves "v" prefixes etc.)
}

// NewManager creates an empty version manager.
func NewManager() *Manager {
	return &Manager{versions: make(map[string]*semver.Version)}
}

// Register records an application version. The string must parse as a
// semantic version; anything else is a configuration error.
func (m *Manager) Register(raw string) error {
	parsed, err := semver.NewVersion(raw)
	if err != nil {
		return errors.NewConfigurationError("unparsable version %q: %v", raw, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.versions[raw] = parsed
	if m.latest == nil || parsed.GreaterThan(m.latest) {
		m.latest = parsed
		m.raw = raw
	}
	return nil
}

// Latest returns the semantically-highest registered version, or DevVersion
// when nothing has been registered yet.
func (m *Manager) Latest() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.latest == nil {
		return DevVersion
	}
	return m.raw
}

// Registered returns all registered version strings.
func (m *Manager) Registered() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.versions))
	for raw := range m.versions {
		out = append(out, raw)
	}
	return out
}

var (
	defaultManager     *Manager
	defaultManagerOnce sync.Once
)

// Default returns the process-wide version manager, for callers that do
// not inject their own Resolver.
func Default() *Manager {
	defaultManagerOnce.Do(func() {
		defaultManager = NewManager()
	})
	return defaultManager
}
