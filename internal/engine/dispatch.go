package engine

import (
	"github.com/selin-ak/tickdo/internal/codec"
	"github.com/selin-ak/tickdo/internal/model"
)

// Dispatcher owns the single current State and layers the persistence
// policy over Reduce: whenever a dispatch changes the todo list, a
// Persist effect carrying the encoded new list is appended. Changes to
// the input buffer, filter, or edit buffer alone never persist — only
// state that must survive a reload does.
//
// The host application holds exactly one Dispatcher and feeds it one
// event at a time; each event reduces to completion before the next.
type Dispatcher struct {
	state State
}

func NewDispatcher(initial State) *Dispatcher {
	return &Dispatcher{state: initial}
}

// State returns the current state value.
func (d *Dispatcher) State() State {
	return d.state
}

// Dispatch reduces one event, replaces the held state, and returns the
// new state with the effects to carry out.
func (d *Dispatcher) Dispatch(ev Event) (State, []Effect) {
	before := d.state.Todos
	next, effects := Reduce(d.state, ev)
	if todosChanged(before, next.Todos) {
		effects = append(effects, Persist{Data: codec.Encode(next.Todos)})
	}
	d.state = next
	return next, effects
}

// todosChanged checks list identity first (transitions return a fresh
// slice whenever todos change) and falls back to a structural walk for
// states not built by Reduce.
func todosChanged(before, after model.List) bool {
	if len(before) == len(after) && (len(before) == 0 || &before[0] == &after[0]) {
		return false
	}
	return !before.Equal(after)
}
