// Package toc is the page registry: the filtered, ordered collection of
// pages visible to one viewer in one render pass.
//
// Allowed here:
// - the Page record and its Contents union
// - registry construction (filter by viewer, stable sort by index)
// - attribute projections, title lookup, and content dispatch
//
// Not allowed here:
// - reading ambient session state (the viewer is a constructor argument)
// - widget rendering, key handling, or any host-framework types
package toc
