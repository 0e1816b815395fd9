package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tareas-api/internal/domain"
	"github.com/phrazzld/tareas-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler collects the events it receives.
type recordingHandler struct {
	events []*TaskEvent
	err    error
}

func (h *recordingHandler) HandleEvent(_ context.Context, event *TaskEvent) error {
	h.events = append(h.events, event)
	return h.err
}

func sampleTask() domain.Task {
	return domain.Task{
		ID:          7,
		Description: "Regar las plantas",
		CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestNewTaskEvent(t *testing.T) {
	event := NewTaskEvent(TaskCreated, sampleTask())

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, TaskCreated, event.Type)
	assert.Equal(t, int64(7), event.Task.ID)
	assert.WithinDuration(t, time.Now(), event.OccurredAt, 2*time.Second)
	assert.Equal(t, time.UTC, event.OccurredAt.Location())
}

func TestInMemoryEmitter(t *testing.T) {
	l, _ := logger.NewTestLogger()

	t.Run("no handlers", func(t *testing.T) {
		emitter := NewInMemoryEmitter(l)
		assert.NoError(t, emitter.Emit(context.Background(), NewTaskEvent(TaskCreated, sampleTask())))
	})

	t.Run("delivers to every handler in order", func(t *testing.T) {
		emitter := NewInMemoryEmitter(l)
		var order []string
		emitter.RegisterHandler(HandlerFunc(func(context.Context, *TaskEvent) error {
			order = append(order, "first")
			return nil
		}))
		emitter.RegisterHandler(HandlerFunc(func(context.Context, *TaskEvent) error {
			order = append(order, "second")
			return nil
		}))

		require.NoError(t, emitter.Emit(context.Background(), NewTaskEvent(TaskUpdated, sampleTask())))
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("failing handler does not stop the others", func(t *testing.T) {
		emitter := NewInMemoryEmitter(l)
		failing := &recordingHandler{err: errors.New("handler error")}
		ok := &recordingHandler{}
		emitter.RegisterHandler(failing)
		emitter.RegisterHandler(ok)

		event := NewTaskEvent(TaskDeleted, sampleTask())
		err := emitter.Emit(context.Background(), event)

		assert.EqualError(t, err, "handler error")
		require.Len(t, ok.events, 1)
		assert.Same(t, event, ok.events[0])
		assert.Len(t, failing.events, 1)
	})

	t.Run("nil logger", func(t *testing.T) {
		emitter := NewInMemoryEmitter(nil)
		assert.NoError(t, emitter.Emit(context.Background(), NewTaskEvent(TaskCreated, sampleTask())))
	})
}

func TestLogHandler(t *testing.T) {
	l, buf := logger.NewTestLogger()
	h := NewLogHandler(l)

	event := NewTaskEvent(TaskCreated, sampleTask())
	require.NoError(t, h.HandleEvent(context.Background(), event))

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "task event", entries[0]["msg"])
	assert.Equal(t, "task.created", entries[0]["event_type"])
	assert.Equal(t, event.ID.String(), entries[0]["event_id"])
	assert.EqualValues(t, 7, entries[0]["task_id"])
}
