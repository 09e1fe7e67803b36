package widgets

import "github.com/charmbracelet/lipgloss"

// Box frames page content in the main region.
type Box struct {
	Title   string
	Content string
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#585b70")).
		Padding(0, 1).
		Width(max(2, width-2)).
		Height(max(1, height-2))
	body := b.Content
	if b.Title != "" {
		body = "[" + b.Title + "]\n" + body
	}
	return style.Render(body)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
