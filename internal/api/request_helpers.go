package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tareas-api/internal/store"
)

// getPathID extracts a task ID from the URL path parameters.
// A missing or non-integer value cannot match any task, so it is reported
// as store.ErrTaskNotFound rather than as a validation failure.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", paramName, raw, store.ErrTaskNotFound)
	}

	return id, nil
}
