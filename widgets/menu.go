package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	menuHeadingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#89b4fa")).
				Bold(true).
				Padding(0, 1)
	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a6adc8")).
			Padding(0, 1)
	menuSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#89b4fa")).
				Background(lipgloss.Color("#313244")).
				Bold(true).
				Padding(0, 1)
	menuSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#585b70"))
)

// Menu is a single-select option menu. Options and Icons are parallel
// arrays; icons missing or short are tolerated. Vertical menus render
// one option per row, horizontal menus render a single bar.
type Menu struct {
	Heading  string
	Options  []string
	Icons    []string
	Selected int
	Vertical bool
}

func (m Menu) Render(width, height int) string {
	if width <= 0 || height <= 0 || len(m.Options) == 0 {
		return ""
	}
	if m.Vertical {
		return m.renderVertical(width, height)
	}
	return m.renderHorizontal(width)
}

func (m Menu) renderVertical(width, height int) string {
	rows := make([]string, 0, len(m.Options)+1)
	if m.Heading != "" {
		rows = append(rows, ansi.Truncate(menuHeadingStyle.Render(m.Heading), width, ""))
	}
	for i, opt := range m.Options {
		label := m.label(i, opt)
		style := menuItemStyle
		if i == m.Selected {
			style = menuSelectedStyle
			label = "> " + label
		} else {
			label = "  " + label
		}
		rows = append(rows, ansi.Truncate(style.Render(label), width, ""))
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}

func (m Menu) renderHorizontal(width int) string {
	parts := make([]string, 0, len(m.Options))
	for i, opt := range m.Options {
		label := m.label(i, opt)
		if i == m.Selected {
			parts = append(parts, menuSelectedStyle.Render(label))
		} else {
			parts = append(parts, menuItemStyle.Render(label))
		}
	}
	bar := strings.Join(parts, menuSepStyle.Render("│"))
	if m.Heading != "" {
		bar = menuHeadingStyle.Render(m.Heading) + menuSepStyle.Render("┃") + bar
	}
	return ansi.Truncate(bar, width, "")
}

func (m Menu) label(i int, opt string) string {
	if i < len(m.Icons) && m.Icons[i] != "" {
		return m.Icons[i] + " " + opt
	}
	return opt
}
