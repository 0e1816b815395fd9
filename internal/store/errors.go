package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the root of every lookup miss. Handlers map it to 404.
	ErrNotFound = errors.New("not found")

	// ErrTaskNotFound is returned when no task has the requested id.
	ErrTaskNotFound = fmt.Errorf("task %w", ErrNotFound)
)

// IsNotFoundError reports whether err is, or wraps, ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError records which mutation failed and for which task id.
type StoreError struct {
	Op     string
	TaskID int64
	Err    error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s task %d failed", e.Op, e.TaskID)
	}
	return fmt.Sprintf("%s task %d: %v", e.Op, e.TaskID, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError returns a StoreError for op on the task with the given id.
func NewStoreError(op string, taskID int64, err error) *StoreError {
	return &StoreError{Op: op, TaskID: taskID, Err: err}
}
