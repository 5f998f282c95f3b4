package tui

import "strings"

// KeyBinding represents a key binding for the help bar
type KeyBinding struct {
	Key  string
	Desc string
}

var dashboardKeys = []KeyBinding{
	{"j/k", "move"},
	{"enter", "select"},
	{"s", "start"},
	{"e", "end"},
	{"t", "range"},
	{"r", "reload"},
	{"d", "demo"},
	{"q", "quit"},
}

func helpBar(styles *Styles, bindings []KeyBinding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		parts = append(parts, styles.HelpKey.Render(kb.Key)+styles.Muted.Render(":"+kb.Desc))
	}
	return styles.Help.Render(strings.Join(parts, " "))
}
