package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tocboard/nav"
	"tocboard/widgets"
)

const sidebarWidth = 30

// stringWidget lets pre-rendered text participate in widget layouts.
type stringWidget string

func (s stringWidget) Render(width, height int) string { return string(s) }

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := m.renderHeader()
	status := m.renderStatus()
	footer := m.renderFooter()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body := m.renderBody(maxInt(1, m.width), bodyHeight)
	view := strings.Join([]string{header, status, fitHeight(body, bodyHeight), footer}, "\n")
	return appStyle.Width(maxInt(1, m.width)).MaxWidth(maxInt(1, m.width)).Render(view)
}

func (m Model) renderBody(width, height int) string {
	content := widgets.Box{Content: m.content}

	controls := m.renderControls(sidebarWidth - 2)
	if m.menu.Placement() == nav.Sidebar {
		menuView := m.menu.View(m.titles, m.icons, sidebarWidth, height)
		left := controls
		if menuView != "" {
			left = lipgloss.JoinVertical(lipgloss.Left, controls, "", menuView)
		}
		return widgets.SidebarLayout{
			Menu:         stringWidget(left),
			Content:      content,
			SidebarWidth: sidebarWidth,
		}.Render(width, height)
	}

	barWidth := maxInt(1, width-sidebarWidth)
	bar := m.menu.View(m.titles, m.icons, barWidth, 1)
	right := widgets.BannerLayout{
		Menu:    stringWidget(bar),
		Content: content,
	}
	return widgets.SidebarLayout{
		Menu:         stringWidget(controls),
		Content:      right,
		SidebarWidth: sidebarWidth,
	}.Render(width, height)
}

func (m Model) renderControls(width int) string {
	label := func(text string, focused bool) string {
		if focused {
			return labelFocusedStyle.Render(text)
		}
		return labelStyle.Render(text)
	}
	check := func(on bool) string {
		if on {
			return "[x] "
		}
		return "[ ] "
	}

	lines := []string{
		label("Username", m.focus == focusUsername),
		m.username.View(),
		"",
		label("Menu title", m.focus == focusMenuTitle),
		m.menuTitle.View(),
		"",
		label(check(m.menu.Placement() == nav.Sidebar)+"Menu in sidebar", m.focus == focusPlacement),
		label(check(m.showTitle)+"Show page title", m.focus == focusShowTitle),
	}
	return panelStyle.Width(maxInt(10, width)).Render(strings.Join(lines, "\n"))
}

func (m Model) renderHeader() string {
	left := headerAppStyle.Render("tocboard")
	right := labelStyle.Render("viewer: " + quoteViewer(m.store.Viewer()))
	return renderBar(headerBarStyle, maxInt(1, m.width), joinEnds(left, right, m.width), colorMantle)
}

func (m Model) renderStatus() string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, maxInt(1, m.width), msg, colorSurface0)
	}
	return renderBar(statusBarStyle, maxInt(1, m.width), msg, colorSurface0)
}

func (m Model) renderFooter() string {
	bindings := m.keys.helpFor(m.focus)
	space := lipgloss.NewStyle().Background(colorMantle).Render(" ")
	sep := lipgloss.NewStyle().Background(colorMantle).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+helpDescStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	return renderBar(footerStyle, maxInt(1, m.width), line, colorMantle)
}

func joinEnds(left, right string, width int) string {
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < width {
		gap = width - leftW - rightW
	}
	return left + strings.Repeat(" ", gap) + right
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
