// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (stacks, pane chrome, popup compositor, badge flow)
//
// Not allowed here:
// - key handling, screen state transitions, scope logic, or catalog knowledge
package widgets
