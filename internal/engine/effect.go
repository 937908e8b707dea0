package engine

import "fmt"

// Effect is a side action requested by the reducer and carried out by
// the host loop: storage writes, focus moves, location changes. The
// reducer never performs I/O itself; it only emits these values.
type Effect interface {
	isEffect()
}

// Persist asks the host to overwrite stored state with the encoded
// todo list. Emitted by the Dispatcher, not by Reduce.
type Persist struct{ Data string }

// Focus asks the host to move input focus to a named element. Failure
// to focus (element not rendered yet) is discarded by contract.
type Focus struct{ ElementID string }

// PushURL asks the host to record a new in-app location.
type PushURL struct{ URL string }

// LoadURL asks the host to leave the app for an external location.
type LoadURL struct{ URL string }

func (Persist) isEffect() {}
func (Focus) isEffect()   {}
func (PushURL) isEffect() {}
func (LoadURL) isEffect() {}

// EditFieldID names the focus target for a todo's inline edit input.
func EditFieldID(id int) string {
	return fmt.Sprintf("edit-todo-%d", id)
}

// NewFieldID is the focus target for the new-entry input.
const NewFieldID = "new-todo"
