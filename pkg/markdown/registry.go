package markdown

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrUnknownExtension is returned when a name has no registered extension.
var ErrUnknownExtension = errors.New("unknown extension")

// Registry maps extension names to extensions, for selecting extensions
// from configuration.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Extension
	aliases map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:  make(map[string]Extension),
		aliases: make(map[string]string),
	}
}

// Register adds ext under ext.Name(), replacing any extension of that name.
func (r *Registry) Register(ext Extension) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[ext.Name()] = ext
}

// RegisterAlias makes alias resolve to the extension called name.
func (r *Registry) RegisterAlias(alias, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[alias] = name
}

// Get returns the extension registered under name or one of its aliases.
func (r *Registry) Get(name string) (Extension, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if ext, ok := r.byName[name]; ok {
		return ext, true
	}
	if canonical, ok := r.aliases[name]; ok {
		ext, ok := r.byName[canonical]
		return ext, ok
	}
	return nil, false
}

// Has reports whether name resolves to an extension.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns the canonical extension names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve looks up every name, in order, skipping repeats. All unknown
// names are reported together.
func (r *Registry) Resolve(names []string) ([]Extension, error) {
	exts := make([]Extension, 0, len(names))
	seen := make(map[string]bool, len(names))

	var errs []error
	for _, name := range names {
		ext, ok := r.Get(name)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownExtension, name))
			continue
		}
		if seen[ext.Name()] {
			continue
		}
		seen[ext.Name()] = true
		exts = append(exts, ext)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return exts, nil
}
