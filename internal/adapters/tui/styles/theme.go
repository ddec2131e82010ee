package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")
	Surface   = lipgloss.Color("#1F2937")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Panels
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted)

	PanelFocused = Panel.
			BorderForeground(Primary)

	// Tree node styles
	NodeDir = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#60A5FA")). // Blue
		Bold(true)

	NodeFile = lipgloss.NewStyle()

	NodeSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Selection kept while the tree is not focused
	NodeSelectedDim = lipgloss.NewStyle().
			Background(Surface).
			Foreground(White)

	// Tree indicators
	TreeBranch    = lipgloss.NewStyle().Foreground(Muted)
	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "
	TreeLeaf      = "  "

	// Tabs
	TabActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true).
			Padding(0, 1)

	TabInactive = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	TabGap = lipgloss.NewStyle().
		Foreground(Muted).
		SetString("│")

	// Editor
	LineNumber = lipgloss.NewStyle().
			Foreground(Muted)

	ModeView = lipgloss.NewStyle().
			Background(Secondary).
			Foreground(Black).
			Bold(true).
			Padding(0, 1)

	ModeWrite = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black).
			Bold(true).
			Padding(0, 1)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(Surface).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Section labels
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// PanelStyle returns the border style for a panel with or without focus
func PanelStyle(focused bool) lipgloss.Style {
	if focused {
		return PanelFocused
	}
	return Panel
}
