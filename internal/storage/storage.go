// Package storage provides the key-value persistence medium behind the
// engine's Persist effect: one blob, read once at startup and
// overwritten whole on change.
package storage

// Namespace is the fixed key the todo blob lives under, in every
// backend. Changing it orphans existing data.
const Namespace = "todos-tickdo"

// Store reads and writes the single persisted blob.
//
// Read reports ok=false when nothing has been stored yet; that is not
// an error. Write replaces the previous blob entirely.
type Store interface {
	Read() (raw string, ok bool, err error)
	Write(raw string) error
}
