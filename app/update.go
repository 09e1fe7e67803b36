package app

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tocboard/nav"
	"tocboard/toc"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		cmd := m.handleKey(msg)
		m.refresh()
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.NextFocus) {
		m.cycleFocus(1)
		return nil
	}
	if key.Matches(msg, m.keys.PrevFocus) {
		m.cycleFocus(-1)
		return nil
	}

	switch m.focus {
	case focusMenu:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.menu.Move(-1, len(m.titles))
			m.store.SetLastSelection(m.menu.Selected(m.titles))
		case key.Matches(msg, m.keys.Next):
			m.menu.Move(1, len(m.titles))
			m.store.SetLastSelection(m.menu.Selected(m.titles))
		}
	case focusUsername:
		var cmd tea.Cmd
		m.username, cmd = m.username.Update(msg)
		// The username field IS the viewer identity, free text by design.
		m.store.SetViewer(m.username.Value())
		return cmd
	case focusMenuTitle:
		var cmd tea.Cmd
		m.menuTitle, cmd = m.menuTitle.Update(msg)
		m.menu.SetHeading(m.menuTitle.Value())
		return cmd
	case focusPlacement:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return tea.Quit
		}
		if key.Matches(msg, m.keys.Toggle) {
			if m.menu.Placement() == nav.Sidebar {
				m.menu.SetPlacement(nav.Inline)
			} else {
				m.menu.SetPlacement(nav.Sidebar)
			}
		}
	case focusShowTitle:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return tea.Quit
		}
		if key.Matches(msg, m.keys.Toggle) {
			m.showTitle = !m.showTitle
		}
	}
	return nil
}

func (m *Model) cycleFocus(delta int) {
	m.focus = (m.focus + focusArea(delta) + focusAreaCount) % focusAreaCount
	m.username.Blur()
	m.menuTitle.Blur()
	switch m.focus {
	case focusUsername:
		m.username.Focus()
	case focusMenuTitle:
		m.menuTitle.Focus()
	}
}

// refresh is one render pass: rebuild the registry from the page source
// and the session viewer, restore the previous selection where it still
// exists, and dispatch the selected page into the canvas. Fresh
// registry, fresh pages, every pass.
func (m *Model) refresh() {
	viewer := m.store.Viewer()
	pages := m.source(m.canvas)
	reg, err := toc.NewRegistry(viewer, pages, toc.WithHeading(m.canvas.Heading))
	if err != nil {
		m.titles, m.icons = nil, nil
		m.content = ""
		m.setError(err)
		m.log.WithError(err).Error("registry construction failed")
		return
	}
	m.titles, m.icons = reg.Titles(), reg.Icons()

	if len(m.titles) == 0 {
		m.content = "No pages are visible to " + quoteViewer(viewer) + "."
		m.setStatus("Nothing to show")
		return
	}

	// A selection made on a previous pass may point at a page the
	// current viewer can no longer see. Surface that as the not-found
	// it is, then fall back to the clamped cursor.
	var staleErr error
	if last := m.store.LastSelection(); last != "" {
		if i := slices.Index(m.titles, last); i >= 0 {
			m.menu.Select(i, len(m.titles))
		} else {
			_, staleErr = reg.PageByTitle(last)
			m.store.SetLastSelection("")
		}
	}

	selected := m.menu.Selected(m.titles)
	m.canvas.Reset()
	if err := reg.LoadPage(selected, m.showTitle); err != nil {
		m.content = ""
		m.setError(err)
		m.log.WithError(err).WithField("page", selected).Warn("page dispatch failed")
		return
	}
	m.content = m.canvas.String()
	m.store.SetLastSelection(selected)

	if staleErr != nil {
		m.setError(staleErr)
		m.log.WithError(staleErr).Debug("stale selection dropped")
		return
	}
	m.setStatus("Viewing " + selected + " as " + quoteViewer(viewer))
}

func quoteViewer(viewer string) string {
	if viewer == "" {
		return "(anonymous)"
	}
	return viewer
}
