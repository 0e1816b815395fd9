// Package domain defines the task entity, partial updates to it, and the
// aggregate statistics computed over a set of tasks. It has no knowledge of
// storage or HTTP.
package domain
