package store

import (
	"context"

	"github.com/phrazzld/tareas-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
// Implementations must serialize access so that no operation observes a
// partially applied create, update or delete. Returned tasks are copies.
type TaskStore interface {
	// Create assigns the next ID and the current time to a new task and appends it.
	// Returns a domain validation error if description is empty; in that case
	// nothing is stored and the ID counter does not advance.
	Create(ctx context.Context, description string, completed bool) (*domain.Task, error)

	// List returns all tasks in insertion order. The slice is never nil.
	List(ctx context.Context) ([]domain.Task, error)

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update applies a partial update to an existing task.
	// Returns ErrTaskNotFound if the task does not exist, checked before
	// the update itself is validated.
	Update(ctx context.Context, id int64, update domain.TaskUpdate) (*domain.Task, error)

	// Delete removes a task permanently, preserving the order of the others.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// Stats computes aggregate statistics over a consistent snapshot.
	Stats(ctx context.Context) (domain.TaskStats, error)
}
