package toc

import (
	"fmt"
	"sort"
)

// Attr names a projectable Page attribute.
type Attr string

const (
	AttrUID   Attr = "uid"
	AttrTitle Attr = "title"
	AttrIcon  Attr = "icon"
)

// Registry owns the pages visible to one viewer for the lifetime of one
// render pass. The stored list is always sorted ascending by Index and
// contains only visible pages. Build a fresh Registry every pass; it
// holds no cross-pass state.
type Registry struct {
	pages   []Page
	heading func(title string)
}

// Option configures a Registry at construction.
type Option func(*Registry)

// WithHeading installs the hook LoadPage uses to emit a page title
// heading before invoking contents. Without it headings are skipped.
func WithHeading(fn func(title string)) Option {
	return func(r *Registry) { r.heading = fn }
}

// NewRegistry filters pages down to those visible to viewer and orders
// them by Index ascending, ties keeping input order. Duplicate UIDs
// anywhere in the input and duplicate titles within the visible set are
// rejected, so title lookup is never ambiguous. Zero visible pages is
// not an error.
func NewRegistry(viewer string, pages []Page, opts ...Option) (*Registry, error) {
	uids := make(map[string]string, len(pages))
	for _, p := range pages {
		if other, ok := uids[p.UID]; ok {
			return nil, fmt.Errorf("%w: uid %q shared by %q and %q", ErrDuplicatePage, p.UID, other, p.Title)
		}
		uids[p.UID] = p.Title
	}

	visible := make([]Page, 0, len(pages))
	titles := make(map[string]struct{}, len(pages))
	for _, p := range pages {
		if !p.VisibleTo(viewer) {
			continue
		}
		if _, ok := titles[p.Title]; ok {
			return nil, fmt.Errorf("%w: title %q visible twice to %q", ErrDuplicatePage, p.Title, viewer)
		}
		titles[p.Title] = struct{}{}
		visible = append(visible, p)
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Index < visible[j].Index
	})

	r := &Registry{pages: visible}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Len returns the number of visible pages.
func (r *Registry) Len() int { return len(r.pages) }

// Pages returns a copy of the visible pages in menu order.
func (r *Registry) Pages() []Page {
	out := make([]Page, len(r.pages))
	copy(out, r.pages)
	return out
}

// Project returns one attribute across the visible pages. Output order
// always matches menu order, so projections of different attributes stay
// positionally aligned for the menu widget. Unknown attributes yield nil.
func (r *Registry) Project(attr Attr) []string {
	out := make([]string, len(r.pages))
	for i, p := range r.pages {
		switch attr {
		case AttrUID:
			out[i] = p.UID
		case AttrTitle:
			out[i] = p.Title
		case AttrIcon:
			out[i] = p.Icon
		default:
			return nil
		}
	}
	return out
}

// Titles returns the visible page titles in menu order.
func (r *Registry) Titles() []string { return r.Project(AttrTitle) }

// Icons returns the visible page icons in menu order.
func (r *Registry) Icons() []string { return r.Project(AttrIcon) }

// UIDs returns the visible page UIDs in menu order.
func (r *Registry) UIDs() []string { return r.Project(AttrUID) }

// PageByTitle returns the visible page whose title matches exactly.
// A miss returns a *NotFoundError wrapping ErrPageNotFound.
func (r *Registry) PageByTitle(title string) (Page, error) {
	for _, p := range r.pages {
		if p.Title == title {
			return p, nil
		}
	}
	return Page{}, &NotFoundError{
		Title:      title,
		Suggestion: suggestTitle(title, r.Titles()),
	}
}

// LoadPage resolves title and invokes the page contents, optionally
// emitting the title heading first. Errors raised by the contents
// propagate unmodified.
func (r *Registry) LoadPage(title string, showTitle bool) error {
	p, err := r.PageByTitle(title)
	if err != nil {
		return err
	}
	if showTitle && r.heading != nil {
		r.heading(p.Title)
	}
	return p.Contents.Invoke()
}
