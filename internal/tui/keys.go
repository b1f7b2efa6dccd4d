package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding declares the keys for one action in the scopes it applies to.
// An empty Scopes list, or "*", applies everywhere.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type scopedKey struct {
	action string
	scopes []string
	key.Binding
}

// KeyRegistry resolves key presses to actions for the active scope.
type KeyRegistry struct {
	bindings []scopedKey
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{bindings: make([]scopedKey, 0, len(bindings))}
	for _, b := range bindings {
		r.Register(b)
	}
	return r
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	keys := make([]string, 0, len(binding.Keys))
	for _, k := range binding.Keys {
		if k = normalizeKey(k); k != "" && !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}
	r.bindings = append(r.bindings, scopedKey{
		action: binding.Action,
		scopes: slices.Clone(binding.Scopes),
		Binding: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKey(keys), binding.Description),
		),
	})
}

// SetEnabled switches every binding of action on or off. Disabled bindings
// neither match nor show in the footer.
func (r *KeyRegistry) SetEnabled(action string, on bool) {
	for i := range r.bindings {
		if r.bindings[i].action == action {
			r.bindings[i].SetEnabled(on)
		}
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.scopes) {
			out = append(out, KeyBinding{Keys: b.Keys(), Action: b.action, Description: b.Help().Desc, Scopes: b.scopes})
		}
	}
	return out
}

// HelpForScope lists the help entries of the enabled bindings in scope.
func (r *KeyRegistry) HelpForScope(scope string) []key.Help {
	var out []key.Help
	for _, b := range r.bindings {
		if b.Enabled() && scopeMatch(scope, b.scopes) {
			out = append(out, b.Help())
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	for _, b := range r.bindings {
		if b.action == action && scopeMatch(scope, b.scopes) && key.Matches(msg, b.Binding) {
			return true
		}
	}
	return false
}

// KeyIndex returns the position of the pressed key within the binding's key
// list, or -1. Used for numbered actions such as open-recent.
func (r *KeyRegistry) KeyIndex(msg tea.KeyMsg, action, scope string) int {
	for _, b := range r.bindings {
		if b.action != action || !scopeMatch(scope, b.scopes) || !key.Matches(msg, b.Binding) {
			continue
		}
		return slices.Index(b.Keys(), msg.String())
	}
	return -1
}

// normalizeKey maps a configured key to the form tea.KeyMsg.String reports.
func normalizeKey(k string) string {
	if k == " " || strings.EqualFold(strings.TrimSpace(k), "space") {
		return " "
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
