// Package app is the demo shell: a bubbletea model that rebuilds the
// page registry on every interaction, renders the navigation menu, and
// dispatches the selected page's contents into a canvas. The shell owns
// the session store and all input widgets; the toc core never sees them.
package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"tocboard/internal/config"
	"tocboard/internal/logging"
	"tocboard/internal/session"
	"tocboard/nav"
	"tocboard/toc"
	"tocboard/widgets"
)

// PageSource builds the page list for one render pass. Pages close over
// the canvas so their contents stay zero-argument.
type PageSource func(c *Canvas) []toc.Page

type focusArea int

const (
	focusMenu focusArea = iota
	focusUsername
	focusMenuTitle
	focusPlacement
	focusShowTitle
	focusAreaCount
)

// menuWidget adapts the widgets.Menu primitive to the nav collaborator
// contract.
type menuWidget struct{}

func (menuWidget) Render(heading string, options, icons []string, o nav.Orientation, selected, width, height int) string {
	return widgets.Menu{
		Heading:  heading,
		Options:  options,
		Icons:    icons,
		Selected: selected,
		Vertical: o == nav.Vertical,
	}.Render(width, height)
}

type Model struct {
	width  int
	height int

	store  *session.Store
	source PageSource
	canvas *Canvas
	menu   *nav.Renderer
	keys   keyMap
	log    *logrus.Entry

	username  textinput.Model
	menuTitle textinput.Model
	showTitle bool
	focus     focusArea

	// projections of the registry built on the last pass
	titles []string
	icons  []string

	content   string
	status    string
	statusErr bool
	quitting  bool
}

// New wires the shell from config defaults. The store is seeded with
// the configured username so the first pass has a viewer.
func New(cfg config.UIConfig, store *session.Store, source PageSource) Model {
	username := textinput.New()
	username.Prompt = ""
	username.Placeholder = "username"
	username.CharLimit = 32
	username.SetValue(cfg.Username)
	store.SetViewer(cfg.Username)

	menuTitle := textinput.New()
	menuTitle.Prompt = ""
	menuTitle.Placeholder = "optional"
	menuTitle.CharLimit = 40
	menuTitle.SetValue(cfg.MenuTitle)

	placement := nav.Inline
	if cfg.Sidebar {
		placement = nav.Sidebar
	}

	m := Model{
		width:     100,
		height:    32,
		store:     store,
		source:    source,
		canvas:    &Canvas{},
		menu:      nav.New(placement, cfg.MenuTitle, menuWidget{}),
		keys:      defaultKeyMap(),
		log:       logging.Component("shell"),
		username:  username,
		menuTitle: menuTitle,
		showTitle: cfg.ShowTitle,
		status:    "Ready",
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}
