// Package store defines interfaces for task persistence operations.
// These interfaces abstract the underlying storage mechanism from the HTTP
// layer, so handlers depend only on the operations they call.
package store
