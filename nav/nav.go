// Package nav bridges registry projections to a menu widget. The
// renderer owns only the transient cursor; selection persistence across
// render passes belongs to the host session store.
package nav

// Orientation is the menu layout direction.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Placement says where the menu is docked. Placement fixes orientation:
// a sidebar menu is vertical, an inline menu is horizontal. The two are
// deliberately not configurable independently.
type Placement int

const (
	Sidebar Placement = iota
	Inline
)

// Orientation returns the layout direction coupled to the placement.
func (p Placement) Orientation() Orientation {
	if p == Inline {
		return Horizontal
	}
	return Vertical
}

func (p Placement) String() string {
	if p == Inline {
		return "inline"
	}
	return "sidebar"
}

// MenuWidget draws a single-select menu. Options and icons are parallel
// arrays in registry order; the widget's internals are a black box to
// this package.
type MenuWidget interface {
	Render(heading string, options, icons []string, o Orientation, selected, width, height int) string
}

// Renderer draws the menu and reports the current selection. It holds
// no page state; callers pass fresh projections every render pass.
type Renderer struct {
	placement Placement
	heading   string
	widget    MenuWidget
	cursor    int
}

// New builds a Renderer drawing through w.
func New(placement Placement, heading string, w MenuWidget) *Renderer {
	return &Renderer{placement: placement, heading: heading, widget: w}
}

func (r *Renderer) Placement() Placement { return r.placement }

func (r *Renderer) SetPlacement(p Placement) { r.placement = p }

func (r *Renderer) SetHeading(h string) { r.heading = h }

// Cursor returns the raw cursor position. It may exceed the current
// option count after the visible set shrinks; Selected clamps.
func (r *Renderer) Cursor() int { return r.cursor }

// Select moves the cursor to i, clamped to [0, n).
func (r *Renderer) Select(i, n int) {
	if n <= 0 {
		r.cursor = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	r.cursor = i
}

// Move shifts the cursor by delta across n options, wrapping at both
// ends.
func (r *Renderer) Move(delta, n int) {
	if n <= 0 {
		r.cursor = 0
		return
	}
	r.Select(r.cursor, n)
	r.cursor = (r.cursor + delta%n + n) % n
}

// Selected returns the title under the cursor, or "" when titles is
// empty. An out-of-range cursor (stale after the visible set shrank)
// clamps to the last option.
func (r *Renderer) Selected(titles []string) string {
	if len(titles) == 0 {
		return ""
	}
	i := r.cursor
	if i < 0 {
		i = 0
	}
	if i >= len(titles) {
		i = len(titles) - 1
	}
	return titles[i]
}

// View draws the menu for the given projections. Zero options renders
// nothing; the widget is never called with an empty option list.
func (r *Renderer) View(titles, icons []string, width, height int) string {
	if r.widget == nil || len(titles) == 0 {
		return ""
	}
	i := r.cursor
	if i < 0 {
		i = 0
	}
	if i >= len(titles) {
		i = len(titles) - 1
	}
	return r.widget.Render(r.heading, titles, icons, r.placement.Orientation(), i, width, height)
}
