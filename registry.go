package favorite

import (
	"context"
	"sort"
	"sync"
)

// Loader hydrates entities of one type by id. Ids that no longer exist are
// simply absent from the result.
type Loader func(ctx context.Context, ids []string) (map[string]any, error)

// Registry maps type discriminators to loaders.
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]Loader
}

func NewRegistry() *Registry {
	return &Registry{loaders: make(map[string]Loader)}
}

// Register installs the loader for typ, replacing any previous one.
func (r *Registry) Register(typ string, loader Loader) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders[typ] = loader
}

func (r *Registry) Has(typ string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.loaders[typ]
	return ok
}

// Types lists the registered discriminators in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.loaders))
	for typ := range r.loaders {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}

// Load hydrates ids of the given type. Duplicate ids are collapsed before the
// loader is called.
func (r *Registry) Load(ctx context.Context, typ string, ids []string) (map[string]any, error) {
	r.mu.RLock()
	loader, ok := r.loaders[typ]
	r.mu.RUnlock()
	if !ok {
		return nil, UnknownTypeError{Type: typ}
	}

	if len(ids) == 0 {
		return map[string]any{}, nil
	}

	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	result, err := loader(ctx, unique)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = map[string]any{}
	}
	return result, nil
}
