package keymap

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Binding represents a keybinding mapping
type Binding struct {
	Key     string
	Action  Action
	Context Context
}

// Registry manages keybinding mappings and matching
type Registry struct {
	// bindings maps context -> key -> action
	bindings map[Context]map[string]Action
}

// NewRegistry creates an empty keybinding registry
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[Context]map[string]Action),
	}
}

// Register adds a keybinding to the registry, replacing any previous action
// for the same key in that context.
func (r *Registry) Register(context Context, k string, action Action) {
	if r.bindings[context] == nil {
		r.bindings[context] = make(map[string]Action)
	}
	r.bindings[context][Normalize(k)] = action
}

// RegisterMultiple registers multiple keybindings for the same action
func (r *Registry) RegisterMultiple(context Context, keys []string, action Action) {
	for _, k := range keys {
		r.Register(context, k, action)
	}
}

// Unregister removes a key from a context
func (r *Registry) Unregister(context Context, k string) {
	delete(r.bindings[context], Normalize(k))
}

// Match looks up a key in exactly one context. There is no fallback to the
// global context: callers consult it separately.
func (r *Registry) Match(context Context, k Key) (Action, bool) {
	action, ok := r.bindings[context][k.String()]
	return action, ok
}

// Keys returns the keys bound to an action in a context, sorted
func (r *Registry) Keys(context Context, action Action) []string {
	var keys []string
	for k, a := range r.bindings[context] {
		if a == action {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Bindings returns every binding in a context, ordered by action then key
func (r *Registry) Bindings(context Context) []Binding {
	var out []Binding
	for k, a := range r.bindings[context] {
		out = append(out, Binding{Key: k, Action: a, Context: context})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Action != out[j].Action {
			return out[i].Action < out[j].Action
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// HelpBinding builds a bubbles key.Binding for the action's keys in context.
// The binding is disabled when no key is bound.
func (r *Registry) HelpBinding(context Context, action Action) key.Binding {
	keys := r.Keys(context, action)
	b := key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), action.Description()),
	)
	if len(keys) == 0 {
		b.SetEnabled(false)
	}
	return b
}

// Clone returns an independent copy of the registry
func (r *Registry) Clone() *Registry {
	c := NewRegistry()
	for ctx, m := range r.bindings {
		for k, a := range m {
			c.Register(ctx, k, a)
		}
	}
	return c
}
