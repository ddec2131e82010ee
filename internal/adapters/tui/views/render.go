package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"grove/internal/adapters/tui/styles"
)

// keyColumn is the width of the key column on the help screen
const keyColumn = 20

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders the enabled key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a status message, red for errors
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderMuted renders muted/secondary text
func RenderMuted(text string) string {
	return styles.MutedText.Render(text)
}

// ViewBuilder assembles a full-screen page line by line
type ViewBuilder struct {
	b strings.Builder
}

func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

func (v *ViewBuilder) Title(title string) *ViewBuilder {
	v.b.WriteString(styles.Title.Render(title))
	v.b.WriteString("\n")
	return v
}

func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	v.b.WriteString(styles.Subtitle.Render(subtitle))
	v.b.WriteString("\n\n")
	return v
}

// Section starts a labelled group of lines
func (v *ViewBuilder) Section(label string) *ViewBuilder {
	v.b.WriteString(styles.InputLabel.Render(label))
	v.b.WriteString("\n")
	return v
}

// Binding adds an aligned "key  description" row. Disabled bindings are
// skipped.
func (v *ViewBuilder) Binding(b key.Binding) *ViewBuilder {
	if !b.Enabled() {
		return v
	}
	help := b.Help()
	keys := help.Key
	if pad := keyColumn - len(keys); pad > 0 {
		keys += strings.Repeat(" ", pad)
	}
	v.b.WriteString("  ")
	v.b.WriteString(styles.HelpKey.Render(keys))
	v.b.WriteString(styles.HelpDesc.Render(help.Desc))
	v.b.WriteString("\n")
	return v
}

// Help adds a help line with key bindings
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	v.b.WriteString(RenderHelpLine(bindings...))
	return v
}

func (v *ViewBuilder) Raw(text string) *ViewBuilder {
	v.b.WriteString(text)
	return v
}

func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteString("\n")
	return v
}

// String returns the page wrapped in the app padding
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}
