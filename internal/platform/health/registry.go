// Package health tracks the components the readiness probe reports on. In
// this service the only registered component is the todo API stub, which
// degrades after a failed call and recovers on the next successful one.
package health

import (
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/todo-api-stub/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a concurrency-safe [ports.HealthRegistry].
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds checker. Registering two checkers under the same name keeps
// both, and the later one wins in CheckAll results.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check and returns the results keyed by name.
// A nil value means healthy. Checks run outside the lock.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	results := make(map[string]error, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = c.HealthCheck(ctx)
	}
	return results
}

// Healthy reports whether every result in results is nil.
func Healthy(results map[string]error) bool {
	for _, err := range results {
		if err != nil {
			return false
		}
	}
	return true
}
