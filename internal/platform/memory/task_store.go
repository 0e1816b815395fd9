package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/tareas-api/internal/domain"
	"github.com/phrazzld/tareas-api/internal/events"
	"github.com/phrazzld/tareas-api/internal/platform/logger"
	"github.com/phrazzld/tareas-api/internal/store"
)

// TaskStore implements the store.TaskStore interface in memory.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  []domain.Task
	nextID int64

	now     func() time.Time
	emitter events.Emitter
	logger  *slog.Logger
}

// Option configures a TaskStore.
type Option func(*TaskStore)

// WithSeed preloads the store with tasks. The ID counter starts at one past
// the highest seeded ID.
func WithSeed(tasks []domain.Task) Option {
	return func(s *TaskStore) {
		s.tasks = append(s.tasks[:0], tasks...)
		for _, t := range tasks {
			if t.ID >= s.nextID {
				s.nextID = t.ID + 1
			}
		}
	}
}

// WithClock overrides the time source used to stamp new tasks.
func WithClock(now func() time.Time) Option {
	return func(s *TaskStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithEmitter publishes a TaskEvent to emitter after every successful
// mutation. Events are emitted after the store lock is released.
func WithEmitter(emitter events.Emitter) Option {
	return func(s *TaskStore) {
		s.emitter = emitter
	}
}

// NewTaskStore creates an empty in-memory TaskStore, applying opts in order.
// If logger is nil, a default logger will be used.
func NewTaskStore(logger *slog.Logger, opts ...Option) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	s := &TaskStore{
		tasks:  make([]domain.Task, 0),
		nextID: 1,
		now:    time.Now,
		logger: logger.With(slog.String("component", "task_store")),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, description string, completed bool) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	task, err := domain.NewTask(s.nextID, description, completed, s.now())
	if err != nil {
		s.mu.Unlock()
		log.Debug("task validation failed during create", slog.String("error", err.Error()))
		return nil, err
	}
	s.nextID++
	s.tasks = append(s.tasks, *task)
	s.mu.Unlock()

	log.Info("task created successfully",
		slog.Int64("task_id", task.ID),
		slog.Bool("completed", task.Completed))

	s.emit(ctx, events.TaskCreated, *task)
	return task, nil
}

// List implements store.TaskStore.List
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)

	logger.FromContextOrDefault(ctx, s.logger).Debug("listed tasks", slog.Int("count", len(out)))
	return out, nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		logger.FromContextOrDefault(ctx, s.logger).Debug("task not found", slog.Int64("task_id", id))
		return nil, fmt.Errorf("get task %d: %w", id, store.ErrTaskNotFound)
	}

	out := s.tasks[i]
	return &out, nil
}

// Update implements store.TaskStore.Update
func (s *TaskStore) Update(ctx context.Context, id int64, update domain.TaskUpdate) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		log.Debug("task not found for update", slog.Int64("task_id", id))
		return nil, store.NewStoreError("update", id, store.ErrTaskNotFound)
	}
	if err := update.Apply(&s.tasks[i]); err != nil {
		s.mu.Unlock()
		log.Debug("task update rejected",
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}
	out := s.tasks[i]
	s.mu.Unlock()

	log.Info("task updated successfully",
		slog.Int64("task_id", id),
		slog.Bool("description_changed", update.Description != nil),
		slog.Bool("completed_changed", update.Completed != nil))

	if !update.IsEmpty() {
		s.emit(ctx, events.TaskUpdated, out)
	}
	return &out, nil
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		log.Debug("task not found for delete", slog.Int64("task_id", id))
		return store.NewStoreError("delete", id, store.ErrTaskNotFound)
	}
	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.mu.Unlock()

	log.Info("task deleted successfully", slog.Int64("task_id", id))

	s.emit(ctx, events.TaskDeleted, removed)
	return nil
}

// Stats implements store.TaskStore.Stats
func (s *TaskStore) Stats(ctx context.Context) (domain.TaskStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.ComputeStats(s.tasks), nil
}

// emit publishes a lifecycle event if an emitter is configured. Handler
// failures are logged; the mutation has already been committed.
func (s *TaskStore) emit(ctx context.Context, eventType events.Type, task domain.Task) {
	if s.emitter == nil {
		return
	}
	if err := s.emitter.Emit(ctx, events.NewTaskEvent(eventType, task)); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("task event delivery failed",
			slog.String("event_type", string(eventType)),
			slog.Int64("task_id", task.ID),
			slog.String("error", err.Error()))
	}
}

// indexOf returns the position of the task with the given ID, or -1.
// Callers must hold s.mu.
func (s *TaskStore) indexOf(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
