// Package registry holds the ordered, deduplicated collection of validated
// topics for one catalog build. The registry is the single source of truth
// consumed by the indexer, the auditor, and the exporter.
//
// Lifecycle: create empty, register N topics, freeze, export. The registry
// is process-scoped state for a single build and is never mutated after
// the freeze point.
package registry

import (
	"fmt"

	"github.com/studyforge/catalog/pkg/types"
)

// Registry is the insertion-ordered collection of validated topics.
// Not safe for concurrent use; a catalog build is single-threaded up to
// the freeze point, after which the registry is read-only.
type Registry struct {
	topics []*types.Topic
	byID   map[string]*types.Topic
	frozen bool
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		byID: make(map[string]*types.Topic),
	}
}

// Register appends a pre-validated topic. It returns ErrDuplicateID when
// the topic's id is already present, even if the payload is identical, and
// ErrRegistryFrozen after Freeze. The duplicate is not admitted; the first
// registration wins.
func (r *Registry) Register(t *types.Topic) error {
	if r.frozen {
		return types.ErrRegistryFrozen
	}
	if _, exists := r.byID[t.ID]; exists {
		return fmt.Errorf("register %q: %w", t.ID, types.ErrDuplicateID)
	}
	r.byID[t.ID] = t
	r.topics = append(r.topics, t)
	return nil
}

// All returns the registered topics in exactly the order Register was
// called. The returned slice is a copy; the topics themselves are shared.
func (r *Registry) All() []*types.Topic {
	out := make([]*types.Topic, len(r.topics))
	copy(out, r.topics)
	return out
}

// ByID looks up a topic by exact id match. A miss is an expected outcome
// during incremental authoring, so it is signaled by the bool rather than
// an error.
func (r *Registry) ByID(id string) (*types.Topic, bool) {
	t, ok := r.byID[id]
	return t, ok
}

// Len returns the number of registered topics.
func (r *Registry) Len() int {
	return len(r.topics)
}

// Freeze marks the end of the registration phase. Subsequent Register
// calls fail with ErrRegistryFrozen. Freeze is idempotent.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.frozen
}
