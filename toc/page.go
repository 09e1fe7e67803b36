package toc

import (
	"slices"

	"github.com/google/uuid"
)

// ContentModule is a named external content unit. The registry invokes
// its Load entry point with no arguments when the page is dispatched.
type ContentModule interface {
	Load() error
}

// Contents references a page body: either a direct callback or a handle
// to a ContentModule. The variant is fixed when the value is built, so
// dispatch never has to inspect capabilities. The zero value is empty
// and dispatches to nothing.
type Contents struct {
	fn     func() error
	module ContentModule
}

// Callback wraps a zero-argument content function.
func Callback(fn func() error) Contents {
	return Contents{fn: fn}
}

// ModuleHandle wraps a named content unit dispatched through Load.
func ModuleHandle(m ContentModule) Contents {
	return Contents{module: m}
}

// Invoke runs the content entry point. Errors from the content propagate
// unmodified; the registry never retries or suppresses them.
func (c Contents) Invoke() error {
	switch {
	case c.fn != nil:
		return c.fn()
	case c.module != nil:
		return c.module.Load()
	}
	return nil
}

// IsZero reports whether the value references no content.
func (c Contents) IsZero() bool {
	return c.fn == nil && c.module == nil
}

// Page is one navigable unit of content with display metadata and an
// optional access restriction. Pages are plain values; the registry
// copies them and never mutates them.
type Page struct {
	// UID is an opaque stable identifier, unique across a registry.
	UID string
	// Title is the display string and the external selection key.
	Title string
	// Icon names a visual glyph. Opaque here; the menu widget decides
	// how to draw it.
	Icon string
	// Contents is the page body entry point.
	Contents Contents
	// Index orders pages in the menu, ascending. Ties keep the order
	// pages were supplied in.
	Index int
	// ShowTo lists viewer identities allowed to see the page. Empty
	// means visible to everyone.
	ShowTo []string
}

// NewPage builds an unrestricted Page with a generated UID.
func NewPage(title, icon string, contents Contents, index int) Page {
	return Page{
		UID:      uuid.NewString(),
		Title:    title,
		Icon:     icon,
		Contents: contents,
		Index:    index,
	}
}

// VisibleTo reports whether viewer may see the page.
func (p Page) VisibleTo(viewer string) bool {
	if len(p.ShowTo) == 0 {
		return true
	}
	return slices.Contains(p.ShowTo, viewer)
}
