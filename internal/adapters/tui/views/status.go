package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"grove/internal/adapters/tui/styles"
)

// StatusInfo is what the status bar shows
type StatusInfo struct {
	Root       string
	Focus      string
	Message    string
	MessageErr bool
	// Hint is shown on the right when there is room
	Hint string
}

// RenderStatus draws a one-line status bar of the given width
func RenderStatus(info StatusInfo, width int) string {
	left := styles.StatusKey.Render(info.Root) + styles.StatusText.Render(info.Focus)
	if info.Message != "" {
		left += "  " + RenderMessage(info.Message, info.MessageErr)
	}

	inner := width - styles.StatusBar.GetHorizontalPadding()
	gap := inner - lipgloss.Width(left) - lipgloss.Width(info.Hint)
	line := left
	if info.Hint != "" && gap >= 1 {
		line += strings.Repeat(" ", gap) + info.Hint
	}
	return styles.StatusBar.Width(width).MaxWidth(width).Render(line)
}
