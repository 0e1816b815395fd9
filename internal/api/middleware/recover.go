package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/tareas-api/internal/api/shared"
	"github.com/phrazzld/tareas-api/internal/platform/logger"
	"github.com/phrazzld/tareas-api/internal/redact"
)

// InternalErrorBody is the plain-text body returned for unexpected failures.
const InternalErrorBody = "¡Algo salió mal!"

// Recoverer converts a panic in a downstream handler into a plain-text 500.
// The panic value and stack are logged in redacted form only.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("recovered from panic",
				slog.String("trace_id", shared.GetTraceID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("panic", redact.String(fmt.Sprint(rec))),
				slog.String("stack", redact.String(string(debug.Stack()))))

			shared.RespondWithText(w, r, http.StatusInternalServerError, InternalErrorBody)
		}()

		next.ServeHTTP(w, r)
	})
}
