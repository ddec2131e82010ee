package views

import (
	"grove/internal/adapters/tui/styles"
	"grove/internal/keymap"
)

var helpSections = []struct {
	title   string
	context keymap.Context
}{
	{"File tree", keymap.ContextFileManager},
	{"Editor", keymap.ContextEditor},
	{"Everywhere", keymap.ContextGlobal},
}

// RenderHelp lists the effective key bindings by context
func RenderHelp(reg *keymap.Registry) string {
	v := NewViewBuilder().
		Title("grove").
		Subtitle("Key bindings")

	for _, section := range helpSections {
		v.Section(section.title)
		for _, action := range keymap.ActionsIn(section.context) {
			v.Binding(reg.HelpBinding(section.context, action))
		}
		v.BlankLine()
	}

	return v.Help(reg.HelpBinding(keymap.ContextGlobal, keymap.ActionHelp)).
		Raw(styles.HelpDesc.Render(" to close")).
		String()
}
