package engine

import (
	"github.com/selin-ak/tickdo/internal/codec"
	"github.com/selin-ak/tickdo/internal/model"
	"github.com/selin-ak/tickdo/internal/route"
)

// Edit is the in-place editing buffer: a snapshot of one todo's text,
// decoupled from the todo itself. It back-references the todo by id
// only, so cancelling leaves the original untouched and the commit
// locates its target by lookup, never by aliasing.
type Edit struct {
	ID   int
	Text string
}

// State is the whole application state. It is a value: the reducer
// returns replacements, it never mutates in place.
type State struct {
	Todos   model.List
	Input   string
	Filter  route.Filter
	Editing *Edit
}

// Boot builds the initial state from the raw stored blob (ok=false
// when the store was empty) and the current navigation fragment.
func Boot(raw string, ok bool, fragment string) State {
	return State{
		Todos:  codec.Decode(raw, ok),
		Filter: route.Resolve(fragment),
	}
}

// Visible returns the todos that pass the active filter. Rendering
// only; counts always come from the unfiltered list.
func (s State) Visible() model.List {
	if s.Filter == route.All {
		return s.Todos
	}
	out := make(model.List, 0, len(s.Todos))
	for _, t := range s.Todos {
		if s.Filter.Match(t.Completed) {
			out = append(out, t)
		}
	}
	return out
}
