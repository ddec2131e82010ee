package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"grove/internal/adapters/tui/styles"
)

// RenderTabs draws the tab bar. The selected tab is always visible: tabs
// before it are dropped from the left when the bar is too narrow.
func RenderTabs(titles []string, selected, width int) string {
	if len(titles) == 0 {
		return RenderMuted(fit("no open files", width))
	}

	rendered := make([]string, len(titles))
	for i, title := range titles {
		if i == selected {
			rendered[i] = styles.TabActive.Render(title)
		} else {
			rendered[i] = styles.TabInactive.Render(title)
		}
	}

	first := 0
	for first < selected && barWidth(rendered[first:selected+1]) > width {
		first++
	}

	var b strings.Builder
	used := 0
	for i := first; i < len(rendered); i++ {
		w := barWidth(rendered[i : i+1])
		if i > first {
			w++
		}
		if used+w > width && i > selected {
			break
		}
		if i > first {
			b.WriteString(styles.TabGap.String())
		}
		b.WriteString(rendered[i])
		used += w
	}
	return b.String()
}

// barWidth is the display width of tabs joined by single-column gaps
func barWidth(tabs []string) int {
	w := 0
	for i, t := range tabs {
		if i > 0 {
			w++
		}
		w += lipgloss.Width(t)
	}
	return w
}
