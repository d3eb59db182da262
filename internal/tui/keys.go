package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding ties one or more key chords to a named action. An empty Scopes
// list (or "*") makes the binding live everywhere.
type KeyBinding struct {
	Action      string
	Keys        []string
	Scopes      []string
	Description string
}

func (b KeyBinding) inScope(scope string) bool {
	if len(b.Scopes) == 0 {
		return true
	}
	for _, s := range b.Scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

// KeyRegistry resolves pressed keys to actions. Bindings are indexed by
// chord for lookup and kept in registration order for the help footer.
type KeyRegistry struct {
	byKey map[string][]KeyBinding
	order []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{byKey: make(map[string][]KeyBinding)}
	for _, b := range bindings {
		r.Register(b)
	}
	return r
}

func (r *KeyRegistry) Register(b KeyBinding) {
	r.order = append(r.order, b)
	for _, k := range b.Keys {
		chord := strings.ToLower(strings.TrimSpace(k))
		r.byKey[chord] = append(r.byKey[chord], b)
	}
}

// Lookup returns the action bound to the pressed key within scope. The first
// registered in-scope binding for the chord wins.
func (r *KeyRegistry) Lookup(msg tea.KeyMsg, scope string) (string, bool) {
	chord := strings.ToLower(strings.TrimSpace(msg.String()))
	for _, b := range r.byKey[chord] {
		if b.inScope(scope) {
			return b.Action, true
		}
	}
	return "", false
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	got, ok := r.Lookup(msg, scope)
	return ok && got == action
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.order))
	for _, b := range r.order {
		if b.inScope(scope) {
			out = append(out, b)
		}
	}
	return out
}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "open-palette", Description: "commands", Scopes: []string{"*"}},
		{Keys: []string{"q", "ctrl+c"}, Action: "quit", Description: "quit", Scopes: []string{"app"}},
		{Keys: []string{"j", "down"}, Action: "row-down", Description: "next ticket", Scopes: []string{"app"}},
		{Keys: []string{"k", "up"}, Action: "row-up", Description: "prev ticket", Scopes: []string{"app"}},
		{Keys: []string{"r"}, Action: "refresh", Description: "refresh", Scopes: []string{"app"}},
		{Keys: []string{"f"}, Action: "cycle-filter", Description: "filter", Scopes: []string{"app"}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"screen:palette"}},
		{Keys: []string{"enter"}, Action: "select", Description: "run", Scopes: []string{"screen:palette"}},
		{Keys: []string{"down", "ctrl+n"}, Action: "palette-down", Description: "next", Scopes: []string{"screen:palette"}},
		{Keys: []string{"up", "ctrl+p"}, Action: "palette-up", Description: "prev", Scopes: []string{"screen:palette"}},
		{Keys: []string{"ctrl+f"}, Action: "favorite", Description: "pin", Scopes: []string{"screen:palette"}},
	}
}

// ApplyActionKeybindings overlays per-action key overrides from config onto
// the defaults. Unknown actions are ignored.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
