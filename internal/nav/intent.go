// Package nav implements the contextual navigation decision protocol:
// observe window state, run the primary action blind, re-observe, and
// decide whether the caller's fallback action is still needed.
package nav

import "strings"

// Intent classifies a primary action by how its effect is verified.
// Focus actions are verified by whether keyboard focus landed on a
// different window; everything else is verified by whether the focused
// window's layout actually changed.
type Intent int

const (
	FocusIntent Intent = iota
	MoveIntent
)

// ClassifyAction maps an action name to its intent. The focus- name
// prefix is a caller contract, decided once here and branched on by
// tag everywhere else.
func ClassifyAction(name string) Intent {
	if strings.HasPrefix(name, "focus-") {
		return FocusIntent
	}
	return MoveIntent
}

func (i Intent) String() string {
	if i == FocusIntent {
		return "focus"
	}
	return "move"
}
