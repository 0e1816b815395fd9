package api

import (
	"time"

	"github.com/phrazzld/tareas-api/internal/domain"
)

// CreateTaskRequest defines the payload for POST /tareas.
type CreateTaskRequest struct {
	Description string `json:"descripcion" validate:"required"`
	Completed   bool   `json:"completada"`
}

// UpdateTaskRequest defines the payload for PUT /tareas/{id}.
// Absent (or null) fields leave the stored value unchanged.
type UpdateTaskRequest struct {
	Description *string `json:"descripcion"`
	Completed   *bool   `json:"completada"`
}

// toDomain converts the request into a partial domain update.
func (r UpdateTaskRequest) toDomain() domain.TaskUpdate {
	return domain.TaskUpdate{
		Description: r.Description,
		Completed:   r.Completed,
	}
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"descripcion"`
	Completed   bool      `json:"completada"`
	CreatedAt   time.Time `json:"fechaCreacion"`
}

// StatsResponse represents the response data for GET /estadisticas.
// MostRecent and Oldest are null when there are no tasks.
type StatsResponse struct {
	Total      int           `json:"totalTareas"`
	Completed  int           `json:"tareasCompletadas"`
	Pending    int           `json:"tareasPendientes"`
	MostRecent *TaskResponse `json:"tareaMasReciente"`
	Oldest     *TaskResponse `json:"tareaMasAntigua"`
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
	}
}

func tasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, taskToResponse(&tasks[i]))
	}
	return out
}

func statsToResponse(stats domain.TaskStats) StatsResponse {
	resp := StatsResponse{
		Total:     stats.Total,
		Completed: stats.Completed,
		Pending:   stats.Pending,
	}
	if stats.MostRecent != nil {
		t := taskToResponse(stats.MostRecent)
		resp.MostRecent = &t
	}
	if stats.Oldest != nil {
		t := taskToResponse(stats.Oldest)
		resp.Oldest = &t
	}
	return resp
}
