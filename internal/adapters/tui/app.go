package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"grove/internal/adapters/tui/styles"
	"grove/internal/adapters/tui/views"
	"grove/internal/application"
	"grove/internal/domain"
	"grove/internal/keymap"
	"grove/internal/ports"
)

// App is the bubbletea model. It owns no UI state of its own beyond layout
// and the text area used while an editor is in Write mode.
type App struct {
	state      *application.State
	dispatcher *application.Dispatcher
	opener     ports.EditorOpener
	rootName   string

	input textarea.Model
	// bound is the editor whose buffer the text area holds
	bound *domain.Editor

	width  int
	height int
}

// NewApp creates the TUI over an initialized state. opener may be nil.
func NewApp(state *application.State, dispatcher *application.Dispatcher, opener ports.EditorOpener, rootName string) *App {
	return &App{
		state:      state,
		dispatcher: dispatcher,
		opener:     opener,
		rootName:   rootName,
		input:      newInput(),
	}
}

// newInput creates the unbounded text area used for Write mode
func newInput() textarea.Model {
	input := textarea.New()
	input.ShowLineNumbers = true
	input.CharLimit = 0
	input.MaxHeight = 0
	input.MaxWidth = 0
	input.Prompt = ""
	return input
}

// State returns the application state
func (a *App) State() *application.State {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle("grove: " + a.rootName)
}

type editorFinishedMsg struct {
	path string
	err  error
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeInput()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case editorFinishedMsg:
		if msg.err != nil {
			log.Printf("external editor: %v", msg.err)
			a.state.SetError(msg.err)
		} else if err := a.dispatcher.Reload(a.state, msg.path); err != nil {
			a.state.SetError(err)
		}
		// buffers were replaced from disk
		a.bound = nil
		return a, a.syncInput()
	}

	if a.bound != nil {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.state.ClearStatus()

	out := a.dispatcher.Dispatch(a.state, keymap.ParseKey(msg.String()))
	if a.state.Exit {
		return a, tea.Quit
	}
	// panel actions move the split
	if a.width > 0 {
		a.resizeInput()
	}

	if out.OpenExternal != "" {
		return a, a.openEditor(out.OpenExternal)
	}

	cmd := a.syncInput()
	if out.Handled() || a.bound == nil || a.state.Focus != application.FocusEditor {
		return a, cmd
	}

	// unbound keys edit the buffer in Write mode
	var inputCmd tea.Cmd
	a.input, inputCmd = a.input.Update(msg)
	a.bound.SetContent(a.input.Value())
	return a, tea.Batch(cmd, inputCmd)
}

// syncInput binds the text area to the active editor while it is focused
// and writable
func (a *App) syncInput() tea.Cmd {
	ed := a.state.ActiveEditor()
	if ed == nil || !ed.Writable() {
		a.bound = nil
		a.input.Blur()
		return nil
	}
	if a.bound != ed {
		a.input.SetValue(ed.Content)
		a.bound = ed
	}
	if a.state.Focus != application.FocusEditor {
		a.input.Blur()
		return nil
	}
	return a.input.Focus()
}

func (a *App) openEditor(path string) tea.Cmd {
	if a.opener == nil {
		return nil
	}

	cmd, err := a.opener.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{path: path, err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{path: path, err: err}
	})
}

// layout is the geometry of one frame
type layout struct {
	treeWidth, treeHeight int
	editorWidth           int
}

func (a *App) layout() layout {
	bodyHeight := max(a.height-1, 3)
	treeOuter := a.width * a.state.Panel.Width / 100
	return layout{
		treeWidth:   max(treeOuter-2, 1),
		treeHeight:  bodyHeight - 2,
		editorWidth: max(a.width-treeOuter-2, 1),
	}
}

func (a *App) resizeInput() {
	l := a.layout()
	a.input.SetWidth(l.editorWidth)
	a.input.SetHeight(max(l.treeHeight-1, 1))
}

// View renders the current frame. Nothing is drawn after exit.
func (a *App) View() string {
	if a.state.Exit {
		return ""
	}
	if a.width == 0 {
		return "Loading..."
	}
	if a.state.ShowHelp {
		return views.RenderHelp(a.dispatcher.Keys())
	}

	l := a.layout()
	focus := a.state.Focus

	tree := views.RenderTree(a.state.Rows(), a.state.Selection(), l.treeWidth, l.treeHeight, focus == application.FocusFileManager)
	treePanel := styles.PanelStyle(focus == application.FocusFileManager).
		Width(l.treeWidth).
		Height(l.treeHeight).
		Render(tree)

	editorPanel := styles.PanelStyle(focus == application.FocusEditor).
		Width(l.editorWidth).
		Height(l.treeHeight).
		Render(a.renderEditorPane(l))

	body := lipgloss.JoinHorizontal(lipgloss.Top, treePanel, editorPanel)
	return lipgloss.JoinVertical(lipgloss.Left, body, a.renderStatus())
}

func (a *App) renderEditorPane(l layout) string {
	tabs := views.RenderTabs(a.state.Tabs.Titles(), a.state.Tabs.SelectedIndex(), l.editorWidth)
	ed := a.state.ActiveEditor()

	var content string
	if ed != nil && ed.Writable() && a.bound == ed {
		content = a.input.View()
	} else {
		content = views.RenderEditor(ed, l.editorWidth, max(l.treeHeight-1, 0))
	}
	return tabs + "\n" + content
}

func (a *App) renderStatus() string {
	info := views.StatusInfo{
		Root:       a.rootName,
		Focus:      a.state.Focus.String(),
		Message:    a.state.Status,
		MessageErr: a.state.StatusErr,
	}
	if ed := a.state.ActiveEditor(); ed != nil {
		info.Focus += " " + views.RenderMode(ed.Mode)
	}

	keys := a.dispatcher.Keys()
	info.Hint = views.RenderHelpLine(
		keys.HelpBinding(keymap.ContextGlobal, keymap.ActionHelp),
		keys.HelpBinding(keymap.ContextGlobal, keymap.ActionQuit),
	)
	return views.RenderStatus(info, a.width)
}
