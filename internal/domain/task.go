package domain

import "time"

// Task is a single tracked unit of work.
type Task struct {
	ID          int64
	Description string
	Completed   bool
	CreatedAt   time.Time
}

// NewTask creates a Task with the given ID and creation instant.
// createdAt is normalized to UTC with millisecond precision.
// Returns ErrMissingDescription if description is empty.
func NewTask(id int64, description string, completed bool, createdAt time.Time) (*Task, error) {
	task := &Task{
		ID:          id,
		Description: description,
		Completed:   completed,
		CreatedAt:   createdAt.UTC().Truncate(time.Millisecond),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID <= 0 {
		return ErrInvalidID
	}
	if t.Description == "" {
		return ErrMissingDescription
	}
	return nil
}

// TaskUpdate describes a partial update. Nil fields are left unchanged.
type TaskUpdate struct {
	Description *string
	Completed   *bool
}

// IsEmpty reports whether the update changes nothing.
func (u TaskUpdate) IsEmpty() bool {
	return u.Description == nil && u.Completed == nil
}

// Validate rejects an explicitly supplied empty description.
func (u TaskUpdate) Validate() error {
	if u.Description != nil && *u.Description == "" {
		return ErrEmptyDescription
	}
	return nil
}

// Apply validates the update and writes the present fields into t.
// ID and CreatedAt are never touched. t is left unchanged on error.
func (u TaskUpdate) Apply(t *Task) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Completed != nil {
		t.Completed = *u.Completed
	}
	return nil
}
