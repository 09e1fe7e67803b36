package widgets

import "github.com/charmbracelet/lipgloss"

// SidebarLayout docks a menu column to the left of the content region.
type SidebarLayout struct {
	Menu         Widget
	Content      Widget
	SidebarWidth int
}

func (l SidebarLayout) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	sw := l.SidebarWidth
	if sw <= 0 {
		sw = width / 4
	}
	if sw >= width {
		sw = max(1, width-1)
	}
	left := ""
	if l.Menu != nil {
		left = l.Menu.Render(sw, height)
	}
	right := ""
	if l.Content != nil {
		right = l.Content.Render(width-sw, height)
	}
	leftCol := lipgloss.NewStyle().Width(sw).Height(height).Render(left)
	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, right)
}

// BannerLayout stacks a horizontal menu bar above the content region.
type BannerLayout struct {
	Menu    Widget
	Content Widget
}

func (l BannerLayout) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	bar := ""
	if l.Menu != nil {
		bar = l.Menu.Render(width, 1)
	}
	body := ""
	if l.Content != nil {
		body = l.Content.Render(width, max(1, height-lipgloss.Height(bar)))
	}
	if bar == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, body)
}
