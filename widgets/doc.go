// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing helpers (menu, content box, region layouts)
//
// Not allowed here:
// - key handling, page policy, session state, or registry types
package widgets
