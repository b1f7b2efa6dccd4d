package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestSpaceMatchesEitherSpelling(t *testing.T) {
	r := NewKeyRegistry(DefaultKeyBindings())
	require.True(t, r.IsAction(keyMsg(" "), "toggle", scopeSettings))
	require.True(t, r.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}, "toggle", scopeSettings))
	require.False(t, r.IsAction(keyMsg(" "), "toggle", scopeList))
}

func TestSearchScopeLeavesLettersToTheInput(t *testing.T) {
	r := NewKeyRegistry(DefaultKeyBindings())
	require.True(t, r.IsAction(keyMsg("j"), "down", scopeList))
	require.False(t, r.IsAction(keyMsg("j"), "down", scopeSearch))
	require.True(t, r.IsAction(keyMsg("down"), "down", scopeSearch))
	require.False(t, r.IsAction(keyMsg("q"), "quit", scopeSearch))
}

func TestKeyIndexForNumberedActions(t *testing.T) {
	r := NewKeyRegistry(DefaultKeyBindings())
	require.Equal(t, 0, r.KeyIndex(keyMsg("1"), "open-recent", scopeList))
	require.Equal(t, 2, r.KeyIndex(keyMsg("3"), "open-recent", scopeList))
	require.Equal(t, -1, r.KeyIndex(keyMsg("x"), "open-recent", scopeList))
	require.Equal(t, -1, r.KeyIndex(keyMsg("3"), "open-recent", scopeDetail))
}

func TestBindingsForScopeAndRegister(t *testing.T) {
	r := NewKeyRegistry(DefaultKeyBindings())
	actions := map[string]bool{}
	for _, b := range r.BindingsForScope(scopeDetail) {
		actions[b.Action] = true
	}
	require.True(t, actions["back"])
	require.True(t, actions["focus-playground"])
	require.False(t, actions["open-recent"])

	r.Register(KeyBinding{Keys: []string{"?"}, Action: "help", Scopes: []string{"*"}})
	require.True(t, r.IsAction(keyMsg("?"), "help", scopePlayground))
}

func TestHelpKeyLabels(t *testing.T) {
	require.Equal(t, "1-9", helpKey([]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}))
	require.Equal(t, "space", helpKey([]string{" "}))
	require.Equal(t, "esc", helpKey([]string{"esc", "backspace"}))
}

func TestSpaceAliasAndDisabledBindings(t *testing.T) {
	r := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"space"}, Action: "toggle", Description: "toggle"},
		{Keys: []string{"1", "2", "3"}, Action: "open-recent", Description: "recent", Scopes: []string{scopeList}},
	})
	require.True(t, r.IsAction(keyMsg(" "), "toggle", scopeDetail))
	require.Equal(t, 1, r.KeyIndex(keyMsg("2"), "open-recent", scopeList))
	require.Len(t, r.HelpForScope(scopeList), 2)

	r.SetEnabled("open-recent", false)
	require.False(t, r.IsAction(keyMsg("2"), "open-recent", scopeList))
	require.Equal(t, -1, r.KeyIndex(keyMsg("2"), "open-recent", scopeList))
	help := r.HelpForScope(scopeList)
	require.Len(t, help, 1)
	require.Equal(t, "space", help[0].Key)
	require.Equal(t, "toggle", help[0].Desc)
}
