// Package storage persists the full application state as a single JSON blob
// in a local key-value store. There is no row-level access: every save is a
// full-state overwrite and every load reads the whole blob back.
package storage

// Backend is the blob store contract. Implementations return the default
// empty state from Load when nothing has been saved yet; decoding failures
// are reported as errors so the caller can fall back to the default state.
type Backend interface {
	Load() (State, error)
	Save(State) error
	Clear() error
	Close() error
}
