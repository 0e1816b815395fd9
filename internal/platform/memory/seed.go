package memory

import (
	"time"

	"github.com/phrazzld/tareas-api/internal/domain"
)

// DefaultSeed returns the three starter tasks loaded at startup.
func DefaultSeed() []domain.Task {
	return []domain.Task{
		{
			ID:          1,
			Description: "Hacer la compra",
			Completed:   false,
			CreatedAt:   time.Date(2023, 10, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:          2,
			Description: "Lavar el coche",
			Completed:   true,
			CreatedAt:   time.Date(2023, 10, 2, 15, 30, 0, 0, time.UTC),
		},
		{
			ID:          3,
			Description: "Estudiar para el examen",
			Completed:   false,
			CreatedAt:   time.Date(2023, 10, 3, 8, 45, 0, 0, time.UTC),
		},
	}
}
