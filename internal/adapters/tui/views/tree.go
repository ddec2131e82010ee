package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"grove/internal/adapters/tui/styles"
	"grove/internal/domain"
)

// TreeOffset returns the first row to draw so that selected stays within
// height rows
func TreeOffset(selected, height int) int {
	if height <= 0 || selected < height {
		return 0
	}
	return selected - height + 1
}

// RenderTree draws the visible rows into a width x height block. selected
// is a row index or negative for none.
func RenderTree(rows []domain.Row, selected int, width, height int, focused bool) string {
	if len(rows) == 0 {
		return RenderMuted(fit("(empty)", width))
	}

	offset := TreeOffset(selected, height)
	end := len(rows)
	if height > 0 {
		end = min(end, offset+height)
	}

	lines := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		lines = append(lines, renderRow(rows[i], i == selected, focused, width))
	}
	return strings.Join(lines, "\n")
}

func renderRow(row domain.Row, selected, focused bool, width int) string {
	indent := strings.Repeat("  ", row.Depth)

	var prefix string
	var style lipgloss.Style
	switch row.Kind() {
	case domain.RowDirOpen:
		prefix, style = styles.TreeExpanded, styles.NodeDir
	case domain.RowDirClosed:
		prefix, style = styles.TreeCollapsed, styles.NodeDir
	default:
		prefix, style = styles.TreeLeaf, styles.NodeFile
	}

	name := row.Node.Name
	if row.Node.IsDir() {
		name += "/"
	}
	name = fit(name, width-len(indent)-lipgloss.Width(prefix))

	if selected {
		if focused {
			style = styles.NodeSelected
		} else {
			style = styles.NodeSelectedDim
		}
	}
	return indent + styles.TreeBranch.Render(prefix) + style.Render(name)
}
