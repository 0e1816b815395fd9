package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tareas-api/internal/domain"
)

// Type identifies what happened to a task.
type Type string

const (
	TaskCreated Type = "task.created"
	TaskUpdated Type = "task.updated"
	TaskDeleted Type = "task.deleted"
)

// TaskEvent describes a single mutation of the task set.
type TaskEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID

	Type Type

	// Task is a snapshot of the task after the mutation, or just before
	// removal for TaskDeleted.
	Task domain.Task

	OccurredAt time.Time
}

// NewTaskEvent creates a TaskEvent for task stamped with the current time.
func NewTaskEvent(eventType Type, task domain.Task) *TaskEvent {
	return &TaskEvent{
		ID:         uuid.New(),
		Type:       eventType,
		Task:       task,
		OccurredAt: time.Now().UTC(),
	}
}

// Handler processes task events.
type Handler interface {
	HandleEvent(ctx context.Context, event *TaskEvent) error
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(ctx context.Context, event *TaskEvent) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *TaskEvent) error {
	return f(ctx, event)
}

// Emitter publishes events to whatever handlers are listening.
type Emitter interface {
	Emit(ctx context.Context, event *TaskEvent) error
}
