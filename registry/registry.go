package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/signalsfoundry/tower-placement/core"
)

var (
	// ErrUnknownSolver is returned by Get for a name nobody registered.
	ErrUnknownSolver = errors.New("registry: unknown solver")
	// ErrDuplicateSolver is returned by Add when the name is taken.
	ErrDuplicateSolver = errors.New("registry: solver already registered")
)

// Registry is an in-memory, thread-safe store of solvers keyed by name.
type Registry struct {
	mu      sync.RWMutex
	solvers map[string]core.Solver
}

// New constructs a registry holding the given solvers.
func New(solvers ...core.Solver) (*Registry, error) {
	r := &Registry{solvers: make(map[string]core.Solver)}
	for _, s := range solvers {
		if err := r.Add(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add registers s under s.Name(). Names are case-insensitive.
func (r *Registry) Add(s core.Solver) error {
	if s == nil {
		return fmt.Errorf("registry: nil solver")
	}
	key := normalize(s.Name())
	if key == "" {
		return fmt.Errorf("registry: solver with empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.solvers[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateSolver, key)
	}
	r.solvers[key] = s
	return nil
}

// Get returns the solver registered under name.
func (r *Registry) Get(name string) (core.Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.solvers[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownSolver, name, strings.Join(r.namesLocked(), ", "))
	}
	return s, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	out := make([]string, 0, len(r.solvers))
	for name := range r.solvers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
