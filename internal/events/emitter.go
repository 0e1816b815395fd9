package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/tareas-api/internal/platform/logger"
)

// InMemoryEmitter dispatches events to handlers registered in-process.
type InMemoryEmitter struct {
	handlers []Handler
	mu       sync.RWMutex
	logger   *slog.Logger
}

// NewInMemoryEmitter creates an emitter with no handlers.
// If logger is nil, a default logger will be used.
func NewInMemoryEmitter(l *slog.Logger) *InMemoryEmitter {
	if l == nil {
		l = slog.Default()
	}
	return &InMemoryEmitter{
		logger: l.With("component", "event_emitter"),
	}
}

// RegisterHandler adds a handler that receives every subsequent event.
func (e *InMemoryEmitter) RegisterHandler(h Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, h)
	e.logger.Debug("registered event handler", "handler_count", len(e.handlers))
}

// Emit delivers event to all registered handlers. Every handler runs even if
// an earlier one fails; the first error encountered is returned.
func (e *InMemoryEmitter) Emit(ctx context.Context, event *TaskEvent) error {
	e.mu.RLock()
	handlers := make([]Handler, len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.RUnlock()

	log := logger.FromContextOrDefault(ctx, e.logger)
	if len(handlers) == 0 {
		log.Debug("no handlers registered for event",
			"event_id", event.ID,
			"event_type", event.Type)
		return nil
	}

	var firstErr error
	for i, h := range handlers {
		if err := h.HandleEvent(ctx, event); err != nil {
			log.Error("handler failed to process event",
				"error", err,
				"handler_index", i,
				"event_id", event.ID,
				"event_type", event.Type)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// NewLogHandler returns a Handler that records each event as an audit line.
func NewLogHandler(base *slog.Logger) Handler {
	return HandlerFunc(func(ctx context.Context, event *TaskEvent) error {
		logger.FromContextOrDefault(ctx, base).Info("task event",
			"event_id", event.ID.String(),
			"event_type", string(event.Type),
			"task_id", event.Task.ID,
			"completed", event.Task.Completed,
			"occurred_at", event.OccurredAt)
		return nil
	})
}
