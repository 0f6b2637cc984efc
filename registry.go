package gqlpager

import (
	"fmt"
	"sync"

	"github.com/graphql-go/graphql"
	"github.com/samber/lo"
)

type registryEntry struct {
	target string
	object *graphql.Object
}

// typeRegistry keeps generated wrapper types so each name is defined once.
type typeRegistry struct {
	mu      sync.Mutex
	order   []string
	entries map[string]registryEntry
}

func newTypeRegistry() *typeRegistry {
	return &typeRegistry{
		entries: make(map[string]registryEntry),
	}
}

func (r *typeRegistry) has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.entries[name]
	return ok
}

// getOrCreate returns the object registered under name, calling create only
// when the name is new. A name bound to another target is a conflict.
func (r *typeRegistry) getOrCreate(name, target string, create func() *graphql.Object) (*graphql.Object, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.entries[name]; ok {
		if entry.target != target {
			return nil, false, fmt.Errorf("%w: '%s' wraps '%s', not '%s'", ErrTypeConflict, name, entry.target, target)
		}
		return entry.object, false, nil
	}

	obj := create()
	r.entries[name] = registryEntry{target: target, object: obj}
	r.order = append(r.order, name)

	return obj, true, nil
}

// objects returns registered objects in registration order.
func (r *typeRegistry) objects() []*graphql.Object {
	r.mu.Lock()
	defer r.mu.Unlock()

	return lo.Map(r.order, func(name string, _ int) *graphql.Object {
		return r.entries[name].object
	})
}
