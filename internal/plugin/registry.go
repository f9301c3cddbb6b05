package plugin

import "sort"

// Registry is the collection of every plugin known to the session, keyed by
// plugin name. The host creates one Registry at startup and passes it to the
// Loader and Settings explicitly.
//
// The Registry has no internal locking: the plugin subsystem runs on one
// thread during startup, shutdown, and direct user actions. A host calling
// in from multiple goroutines must provide its own mutual exclusion.
type Registry struct {
	plugins map[string]*Plugin
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]*Plugin),
	}
}

// GetOrCreate returns the record stored under name, inserting an invalid
// placeholder first if none exists. It never fails.
func (r *Registry) GetOrCreate(name string) *Plugin {
	if p, ok := r.plugins[name]; ok {
		return p
	}
	p := &Plugin{}
	r.plugins[name] = p
	return p
}

// Get returns the record stored under name, if any.
func (r *Registry) Get(name string) (*Plugin, bool) {
	p, ok := r.plugins[name]
	return p, ok
}

// All returns every record, placeholders included, sorted by key for
// deterministic enumeration.
func (r *Registry) All() []*Plugin {
	plugins := make([]*Plugin, 0, len(r.plugins))
	for _, name := range r.Names() {
		plugins = append(plugins, r.plugins[name])
	}
	return plugins
}

// Names returns every key in lexicographic order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of records, placeholders included.
func (r *Registry) Count() int {
	return len(r.plugins)
}

// Toggle flips the live state of the named plugin for the next restart.
// Toggling a name that was never loaded creates a placeholder and toggles
// that; degenerate, but never an error.
func (r *Registry) Toggle(name string) {
	p := r.GetOrCreate(name)
	p.CurrentState = !p.CurrentState
}

// HasChanged reports whether any plugin's live state differs from the state
// it launched with, i.e. whether a restart is needed to apply changes.
func (r *Registry) HasChanged() bool {
	for _, p := range r.plugins {
		if p.Enabled != p.CurrentState {
			return true
		}
	}
	return false
}
