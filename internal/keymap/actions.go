package keymap

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	ContextFileManager Context = "file_manager" // Tree panel has focus
	ContextEditor      Context = "editor"       // Tab bar and editor have focus
	ContextGlobal      Context = "global"       // Checked after the focus context, always
)

// Contexts lists every context in dispatch order
var Contexts = []Context{ContextFileManager, ContextEditor, ContextGlobal}

const (
	// File manager actions
	ActionSelectNext     Action = "select_next"
	ActionSelectPrevious Action = "select_previous"
	ActionSelectFirst    Action = "select_first"
	ActionSelectLast     Action = "select_last"
	ActionSelectNone     Action = "select_none"
	ActionPanelShrink    Action = "panel_shrink"
	ActionPanelGrow      Action = "panel_grow"
	ActionActivate       Action = "activate" // toggle directory or open file

	// Editor actions
	ActionToggleMode   Action = "toggle_mode"
	ActionScrollUp     Action = "scroll_up"
	ActionScrollDown   Action = "scroll_down"
	ActionScrollLeft   Action = "scroll_left"
	ActionScrollRight  Action = "scroll_right"
	ActionPrevTab      Action = "prev_tab"
	ActionNextTab      Action = "next_tab"
	ActionCloseTab     Action = "close_tab"
	ActionCopyBuffer   Action = "copy_buffer"
	ActionOpenExternal Action = "open_external"

	// Global actions
	ActionToggleFocus Action = "toggle_focus"
	ActionQuit        Action = "quit"
	ActionHelp        Action = "help"

	// ActionNone unbinds a key in an override file
	ActionNone Action = "none"
)

// actionInfo describes where an action may be bound and how it is shown in help
type actionInfo struct {
	context Context
	desc    string
}

var actions = map[Action]actionInfo{
	ActionSelectNext:     {ContextFileManager, "next entry"},
	ActionSelectPrevious: {ContextFileManager, "previous entry"},
	ActionSelectFirst:    {ContextFileManager, "first entry"},
	ActionSelectLast:     {ContextFileManager, "last entry"},
	ActionSelectNone:     {ContextFileManager, "clear selection"},
	ActionPanelShrink:    {ContextFileManager, "shrink panel"},
	ActionPanelGrow:      {ContextFileManager, "grow panel"},
	ActionActivate:       {ContextFileManager, "open / toggle"},

	ActionToggleMode:   {ContextEditor, "view/write mode"},
	ActionScrollUp:     {ContextEditor, "scroll up"},
	ActionScrollDown:   {ContextEditor, "scroll down"},
	ActionScrollLeft:   {ContextEditor, "scroll left"},
	ActionScrollRight:  {ContextEditor, "scroll right"},
	ActionPrevTab:      {ContextEditor, "previous tab"},
	ActionNextTab:      {ContextEditor, "next tab"},
	ActionCloseTab:     {ContextEditor, "close tab"},
	ActionCopyBuffer:   {ContextEditor, "copy buffer"},
	ActionOpenExternal: {ContextEditor, "open in $EDITOR"},

	ActionToggleFocus: {ContextGlobal, "switch focus"},
	ActionQuit:        {ContextGlobal, "quit"},
	ActionHelp:        {ContextGlobal, "help"},
}

// actionOrder is the display order in help
var actionOrder = []Action{
	ActionSelectNext, ActionSelectPrevious, ActionSelectFirst, ActionSelectLast,
	ActionSelectNone, ActionActivate, ActionPanelShrink, ActionPanelGrow,
	ActionToggleMode, ActionScrollUp, ActionScrollDown, ActionScrollLeft, ActionScrollRight,
	ActionPrevTab, ActionNextTab, ActionCloseTab, ActionCopyBuffer, ActionOpenExternal,
	ActionToggleFocus, ActionHelp, ActionQuit,
}

// ActionsIn returns the actions that belong to ctx in display order
func ActionsIn(ctx Context) []Action {
	var out []Action
	for _, a := range actionOrder {
		if actions[a].context == ctx {
			out = append(out, a)
		}
	}
	return out
}

// Known reports whether a is a defined action
func (a Action) Known() bool {
	_, ok := actions[a]
	return ok
}

// Context returns the only context a may be bound in
func (a Action) Context() Context {
	return actions[a].context
}

// Description returns the help text for a
func (a Action) Description() string {
	if info, ok := actions[a]; ok {
		return info.desc
	}
	return string(a)
}

// ParseContext validates a context name from a config file
func ParseContext(name string) (Context, bool) {
	for _, c := range Contexts {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}
