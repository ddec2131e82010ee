package views

import (
	"fmt"
	"strings"

	"grove/internal/adapters/tui/styles"
	"grove/internal/domain"
)

// RenderEditor draws the editor buffer from its scroll offsets with a line
// number gutter
func RenderEditor(ed *domain.Editor, width, height int) string {
	if ed == nil {
		return RenderMuted(fit("Select a file and press enter to open it", width))
	}

	lines := strings.Split(ed.Content, "\n")
	top := min(ed.VerticalScroll, len(lines))
	end := len(lines)
	if height > 0 {
		end = min(end, top+height)
	}

	gutter := len(fmt.Sprint(len(lines)))
	textWidth := width - gutter - 1

	out := make([]string, 0, end-top)
	for i := top; i < end; i++ {
		num := styles.LineNumber.Render(fmt.Sprintf("%*d", gutter, i+1))
		out = append(out, num+" "+clip(lines[i], ed.HorizontalScroll, textWidth))
	}
	return strings.Join(out, "\n")
}

// RenderMode draws the editor mode badge
func RenderMode(mode domain.EditMode) string {
	if mode == domain.ModeWrite {
		return styles.ModeWrite.Render(mode.String())
	}
	return styles.ModeView.Render(mode.String())
}
