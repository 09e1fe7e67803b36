// Package demo defines the three showcase pages: two callback pages
// explaining the library and one admin-only page dispatched through a
// content module.
package demo

import (
	"tocboard/app"
	"tocboard/toc"
)

// Pages builds the demo page list for one render pass. They are
// declared out of index order on purpose: the registry sorts them.
func Pages(c *app.Canvas) []toc.Page {
	return []toc.Page{
		{
			UID:   "page2",
			Title: "Page 2",
			Icon:  "◆",
			Index: 1,
			Contents: toc.Callback(func() error {
				pageTwo(c)
				return nil
			}),
		},
		{
			UID:      "page3",
			Title:    "Secret page",
			Icon:     "▲",
			Index:    2,
			ShowTo:   []string{"admin"},
			Contents: toc.ModuleHandle(&secretPage{canvas: c}),
		},
		{
			UID:   "page1",
			Title: "Page 1",
			Icon:  "●",
			Index: 0,
			Contents: toc.Callback(func() error {
				pageOne(c)
				return nil
			}),
		},
	}
}

func pageOne(c *app.Canvas) {
	c.Text("Hello from tocboard!")
	c.Text("")
	c.Text("This demo manages a multi-page menu for a reactive terminal")
	c.Text("dashboard. Every keystroke re-runs the whole pass: the page")
	c.Text("list is rebuilt, filtered for the current viewer, sorted by")
	c.Text("index, and the selected page is dispatched.")
	c.Text("")
	c.Text("A page is a plain record:")
	c.Code("toc.Page{\n\tUID:      \"page1\",\n\tTitle:    \"Page 1\",\n\tIcon:     \"●\",\n\tContents: toc.Callback(load),\n\tIndex:    0,\n\tShowTo:   nil, // visible to everyone\n}")
	c.Text("")
	c.Text("Use the menu to proceed to Page 2.")
}

func pageTwo(c *app.Canvas) {
	c.Text("Pages are wrapped in a registry, built fresh per pass:")
	c.Code("reg, err := toc.NewRegistry(viewer, pages)\ntitles := reg.Titles()\nicons  := reg.Icons()")
	c.Text("")
	c.Bullet("ShowTo whitelists viewer identities; empty means public.")
	c.Bullet("Index orders the menu; ties keep declaration order.")
	c.Bullet("Titles and icons project in lock-step for the menu widget.")
	c.Text("")
	c.Text("Contents can be a callback or a module handle exposing Load.")
	c.Text("")
	c.Text("That's all... or is it? Maybe some never-seen-before username")
	c.Text("can reach a page the rest of us cannot. Try editing the")
	c.Text("Username field.")
}

// secretPage is a content module: a named unit with a Load entry point,
// the second arm of the Contents union.
type secretPage struct {
	canvas *app.Canvas
}

func (p *secretPage) Load() error {
	p.canvas.Text("Awesome, you found the secret page!")
	p.canvas.Text("")
	p.canvas.Text("This page declares ShowTo: [\"admin\"], so the registry")
	p.canvas.Text("filters it out for everyone else before the menu is even")
	p.canvas.Text("drawn. Selecting its title as another viewer fails with a")
	p.canvas.Text("not-found error instead of leaking contents.")
	return nil
}
