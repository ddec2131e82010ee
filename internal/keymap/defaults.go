package keymap

// Defaults returns the built-in bindings
func Defaults() *Registry {
	r := NewRegistry()

	r.Register(ContextFileManager, "down", ActionSelectNext)
	r.Register(ContextFileManager, "up", ActionSelectPrevious)
	r.Register(ContextFileManager, "ctrl+up", ActionSelectFirst)
	r.Register(ContextFileManager, "ctrl+down", ActionSelectLast)
	r.Register(ContextFileManager, "esc", ActionSelectNone)
	r.Register(ContextFileManager, "shift+left", ActionPanelShrink)
	r.Register(ContextFileManager, "shift+right", ActionPanelGrow)
	r.Register(ContextFileManager, "enter", ActionActivate)

	r.Register(ContextEditor, "alt+c", ActionToggleMode)
	r.Register(ContextEditor, "up", ActionScrollUp)
	r.Register(ContextEditor, "down", ActionScrollDown)
	r.Register(ContextEditor, "left", ActionScrollLeft)
	r.Register(ContextEditor, "right", ActionScrollRight)
	r.Register(ContextEditor, "alt+left", ActionPrevTab)
	r.Register(ContextEditor, "alt+right", ActionNextTab)
	r.Register(ContextEditor, "alt+w", ActionCloseTab)
	r.Register(ContextEditor, "alt+y", ActionCopyBuffer)
	r.Register(ContextEditor, "alt+o", ActionOpenExternal)

	r.Register(ContextGlobal, "alt+e", ActionToggleFocus)
	r.Register(ContextGlobal, "ctrl+q", ActionQuit)
	r.Register(ContextGlobal, "f1", ActionHelp)

	return r
}
