// pkg/subsystem/registry.go
package subsystem

import "sync"

// State is the health of one named subsystem.
type State int

const (
	Starting State = iota
	Good
	Bad
	ShuttingDown
	Shutdown
)

func (s State) String() string {
	switch s {
	case Starting:
		return "Starting"
	case Good:
		return "Good"
	case Bad:
		return "Bad"
	case ShuttingDown:
		return "ShuttingDown"
	case Shutdown:
		return "Shutdown"
	default:
		return "Unknown"
	}
}

// StatusWriter is the producer half of the registry contract.
type StatusWriter interface {
	Set(name string, st State)
}

// StatusReader is the consumer half, used by health checks.
type StatusReader interface {
	GetAll() map[string]State
}

// Registry tracks the state of every named subsystem in the process. Every
// subsystem writes its own key and health checks read all of them. Safe for
// concurrent use; each subsystem gets the registry injected at construction
// rather than reaching for a package global.
type Registry struct {
	mu     sync.RWMutex
	states map[string]State
}

func NewRegistry() *Registry {
	return &Registry{states: make(map[string]State)}
}

func (r *Registry) Set(name string, st State) {
	r.mu.Lock()
	r.states[name] = st
	r.mu.Unlock()
}

// GetAll returns a snapshot copy; callers may range freely without holding
// any lock.
func (r *Registry) GetAll() map[string]State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]State, len(r.states))
	for k, v := range r.states {
		out[k] = v
	}
	return out
}

var (
	_ StatusWriter = (*Registry)(nil)
	_ StatusReader = (*Registry)(nil)
)
