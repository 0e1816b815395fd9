package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/tareas-api/internal/api"
	"github.com/phrazzld/tareas-api/internal/api/middleware"
	"github.com/phrazzld/tareas-api/internal/api/shared"
)

// setupRouter builds the application's HTTP handler.
// Recoverer must stay inside the trace middleware so panics are logged as 500s.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.NewTraceMiddleware(app.logger, app.tracerProvider))
	r.Use(middleware.Recoverer)

	api.NewTaskHandler(app.taskStore, app.logger).RegisterRoutes(r)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithText(w, r, http.StatusOK, "OK")
	})

	return r
}
