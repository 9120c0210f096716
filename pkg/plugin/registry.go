package plugin

import (
	"sync"

	"github.com/arthur-debert/plugreg/pkg/errors"
)

// Registry is an append-only, ordered collection of registration
// records for one plug-in family P. Entries are kept in registration
// order and are never removed or reordered. Writes normally happen only
// during init(); reads are safe concurrently at any time.
type Registry[P any] struct {
	mu      sync.RWMutex
	records []*Record[P]
}

// New creates an empty registry. Most callers want the process-wide
// per-family singleton from For instead; New exists for tests and for
// callers that need a private registry.
func New[P any]() *Registry[P] {
	return &Registry[P]{}
}

// Register appends a record to the registry. The registry never takes
// ownership of the instance; that stays with the record.
func (r *Registry[P]) Register(rec *Record[P]) error {
	if rec == nil {
		return errors.New(errors.ErrInvalidInput, "cannot register a nil record")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rec)
	return nil
}

// Records returns a snapshot of all registered records in registration
// order. The returned slice is a copy; mutating it does not affect the
// registry. An empty registry yields an empty, non-nil slice.
func (r *Registry[P]) Records() []*Record[P] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Record[P], len(r.records))
	copy(out, r.records)
	return out
}

// Plugins returns the registered instances in registration order,
// resolving each record's instance once per call. An empty registry
// yields an empty, non-nil slice.
func (r *Registry[P]) Plugins() []P {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]P, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec.Instance())
	}
	return out
}

// Each calls fn for every registered instance in registration order,
// stopping early if fn returns false. It iterates over a snapshot, so
// fn may safely query the registry.
func (r *Registry[P]) Each(fn func(P) bool) {
	for _, p := range r.Plugins() {
		if !fn(p) {
			return
		}
	}
}

// Len returns the number of registered records.
func (r *Registry[P]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.records)
}
