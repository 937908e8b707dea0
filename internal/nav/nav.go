// Package nav models the host's location bar: a current hash fragment
// plus the history behind it. The engine treats it as a collaborator —
// a source of the current fragment and a sink for push-URL effects.
package nav

// Location tracks the current fragment and push history.
type Location struct {
	fragment string
	history  []string
}

// NewLocation starts at the given fragment ("#/" when empty).
func NewLocation(fragment string) *Location {
	if fragment == "" {
		fragment = "#/"
	}
	return &Location{fragment: fragment}
}

// Fragment returns the current fragment, marker included.
func (l *Location) Fragment() string {
	return l.fragment
}

// Push records the current fragment in history and moves to the new
// one. Pushing the current fragment again is a no-op.
func (l *Location) Push(fragment string) {
	if fragment == l.fragment {
		return
	}
	l.history = append(l.history, l.fragment)
	l.fragment = fragment
}

// Back pops to the previous fragment, reporting whether there was one.
func (l *Location) Back() bool {
	if len(l.history) == 0 {
		return false
	}
	l.fragment = l.history[len(l.history)-1]
	l.history = l.history[:len(l.history)-1]
	return true
}
