// Package registry provides a runtime fallback for property resolution:
// a thread-safe, case-insensitive mapping from property name to extractor.
//
// Generated resolvers cover the types known at generation time; the registry
// lets hosts register extractors for anything else. It is an explicit value
// owned by the host's composition root, passed to whoever needs it, never a
// package-level global.
package registry

import (
	"sort"
	"strings"
	"sync"
)

// ExtractFunc extracts a property value from v as text.
// The second result is false when v has no such property or the value is
// absent.
type ExtractFunc func(v any) (string, bool)

// Registry maps property names to extractors. Names are compared
// case-insensitively. The zero value is not usable; call New.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]ExtractFunc
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		byName: make(map[string]ExtractFunc),
	}
}

// Register installs fn as the extractor for name, replacing any previous
// registration under a case-insensitively equal name. Nil extractors and
// empty names are ignored.
func (r *Registry) Register(name string, fn ExtractFunc) {
	if name == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName[strings.ToLower(name)] = fn
}

// Lookup returns the extractor registered for name, if any.
func (r *Registry) Lookup(name string) (ExtractFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.byName[strings.ToLower(name)]

	return fn, ok
}

// Resolve extracts the named property from v using the registered
// extractor. It reports false when no extractor is registered or the
// extractor itself reports absence.
func (r *Registry) Resolve(name string, v any) (string, bool) {
	fn, ok := r.Lookup(name)
	if !ok {
		return "", false
	}

	return fn(v)
}

// Names returns the registered property names (lowered), sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
