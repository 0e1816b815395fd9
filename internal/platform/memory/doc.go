// Package memory provides an in-process implementation of store.TaskStore.
//
// All state lives in a slice guarded by a single sync.RWMutex, together with
// the ID counter. Nothing is persisted; a restart returns the store to its
// seed state.
package memory
