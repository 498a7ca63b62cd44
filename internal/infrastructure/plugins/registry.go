// Package plugins hosts the local text transformations that run without a
// network connection. Actions reference them by name through the plugin
// field instead of carrying a prompt.
package plugins

import (
	"strings"

	"github.com/textact/textact/internal/ports"
)

// Registry resolves plugin names referenced by actions.
type Registry struct {
	plugins map[string]ports.Plugin
	order   []string
}

// NewRegistry returns a registry with all built-in plugins registered.
func NewRegistry() *Registry {
	r := &Registry{plugins: make(map[string]ports.Plugin)}
	for _, p := range []ports.Plugin{
		base64Plugin{},
		urlPlugin{},
		hashPlugin{},
		wordCountPlugin{},
		colorPlugin{},
		qrPlugin{},
	} {
		r.register(p)
	}
	return r
}

func (r *Registry) register(p ports.Plugin) {
	name := strings.ToLower(p.Name())
	if _, exists := r.plugins[name]; exists {
		return
	}
	r.plugins[name] = p
	r.order = append(r.order, name)
}

// Get resolves a plugin by case-insensitive name.
func (r *Registry) Get(name string) (ports.Plugin, bool) {
	p, ok := r.plugins[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// List returns the plugins in registration order.
func (r *Registry) List() []ports.Plugin {
	out := make([]ports.Plugin, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.plugins[name])
	}
	return out
}

var _ ports.PluginRegistry = (*Registry)(nil)
