package tui

const (
	scopeList       = "screen:list"
	scopeSearch     = "screen:search"
	scopeDetail     = "screen:detail"
	scopePlayground = "screen:playground"
	scopeSettings   = "screen:settings"
	scopeCommand    = "screen:command"
)

var pageScopes = []string{scopeList, scopeDetail}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{scopeList}},
		{Keys: []string{"j", "down"}, Action: "down", Description: "down", Scopes: []string{scopeList, scopeSettings}},
		{Keys: []string{"k", "up"}, Action: "up", Description: "up", Scopes: []string{scopeList, scopeSettings}},
		{Keys: []string{"down", "ctrl+n"}, Action: "down", Description: "down", Scopes: []string{scopeSearch, scopeCommand}},
		{Keys: []string{"up", "ctrl+p"}, Action: "up", Description: "up", Scopes: []string{scopeSearch, scopeCommand}},
		{Keys: []string{"enter"}, Action: "open", Description: "open", Scopes: []string{scopeList}},
		{Keys: []string{"/"}, Action: "search", Description: "search", Scopes: []string{scopeList}},
		{Keys: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, Action: "open-recent", Description: "recent", Scopes: []string{scopeList}},
		{Keys: []string{"f"}, Action: "favorite", Description: "favorite", Scopes: pageScopes},
		{Keys: []string{"tab"}, Action: "focus-playground", Description: "try it", Scopes: []string{scopeDetail}},
		{Keys: []string{"esc", "backspace"}, Action: "back", Description: "back", Scopes: []string{scopeDetail}},
		{Keys: []string{"s"}, Action: "open-settings", Description: "display", Scopes: pageScopes},
		{Keys: []string{"+", "="}, Action: "text-larger", Description: "text+", Scopes: pageScopes},
		{Keys: []string{"-"}, Action: "text-smaller", Description: "text-", Scopes: pageScopes},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: pageScopes},
		{Keys: []string{"esc", "tab"}, Action: "leave-playground", Description: "leave demo", Scopes: []string{scopePlayground}},
		{Keys: []string{"enter"}, Action: "search-done", Description: "done", Scopes: []string{scopeSearch}},
		{Keys: []string{"esc"}, Action: "search-clear", Description: "clear", Scopes: []string{scopeSearch}},
		{Keys: []string{"enter", "space", " "}, Action: "toggle", Description: "toggle", Scopes: []string{scopeSettings}},
		{Keys: []string{"left", "h"}, Action: "decrease", Description: "smaller", Scopes: []string{scopeSettings}},
		{Keys: []string{"right", "l"}, Action: "increase", Description: "larger", Scopes: []string{scopeSettings}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{scopeSettings, scopeCommand}},
		{Keys: []string{"enter"}, Action: "select", Description: "run", Scopes: []string{scopeCommand}},
	}
}
