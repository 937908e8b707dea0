package engine

import "github.com/selin-ak/tickdo/internal/route"

// Event is one discrete input to the reducer. The set is closed: the
// concrete types below are the only implementations.
type Event interface {
	isEvent()
}

// TextChanged updates the pending new-item buffer.
type TextChanged struct{ Text string }

// Submit turns the pending buffer into a new todo. Whitespace-only
// buffers are rejected silently.
type Submit struct{}

// Delete removes the todo with the given id; no-op when absent.
type Delete struct{ ID int }

// Toggle flips the completed flag for one todo; no-op when absent.
type Toggle struct{ ID int }

// ClearCompleted removes every completed todo.
type ClearCompleted struct{}

// MarkAll sets completed on every todo.
type MarkAll struct{ Completed bool }

// StartEdit opens in-place editing for one todo, snapshotting its
// current text into the edit buffer.
type StartEdit struct{ ID int }

// EditTextChanged updates the edit buffer; no-op when not editing.
type EditTextChanged struct{ Text string }

// CancelEdit discards the edit buffer without committing.
type CancelEdit struct{}

// CommitEdit writes the edit buffer back to the edited todo and ends
// editing. If the todo was deleted mid-edit, editing still ends.
type CommitEdit struct{}

// FilterChanged records a filter derived from external navigation.
type FilterChanged struct{ Filter route.Filter }

// Navigate requests a location change. Internal (fragment) targets
// become push-URL effects; anything else is a full external load.
type Navigate struct{ Target string }

func (TextChanged) isEvent()     {}
func (Submit) isEvent()          {}
func (Delete) isEvent()          {}
func (Toggle) isEvent()          {}
func (ClearCompleted) isEvent()  {}
func (MarkAll) isEvent()         {}
func (StartEdit) isEvent()       {}
func (EditTextChanged) isEvent() {}
func (CancelEdit) isEvent()      {}
func (CommitEdit) isEvent()      {}
func (FilterChanged) isEvent()   {}
func (Navigate) isEvent()        {}
