package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/tareas-api/internal/domain"
	"github.com/phrazzld/tareas-api/internal/store"
)

// User-facing error messages.
const (
	MsgDescriptionRequired = "La descripción es requerida"
	MsgDescriptionEmpty    = "La descripción no puede estar vacía"
	MsgTaskNotFound        = "Tarea no encontrada"
	MsgInvalidRequest      = "Formato de solicitud inválido"
	MsgInvalidTask         = "Datos de tarea inválidos"
	MsgInternal            = "Error interno del servidor"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var verrs validator.ValidationErrors

	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation),
		errors.As(err, &verrs):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	var verrs validator.ValidationErrors

	switch {
	case err == nil:
		return MsgInternal

	case errors.Is(err, store.ErrNotFound):
		return MsgTaskNotFound

	case errors.Is(err, domain.ErrMissingDescription):
		return MsgDescriptionRequired

	case errors.Is(err, domain.ErrEmptyDescription):
		return MsgDescriptionEmpty

	case errors.As(err, &verrs):
		return validationMessage(verrs)

	case errors.Is(err, domain.ErrValidation):
		return MsgInvalidTask

	default:
		return MsgInternal
	}
}

// validationMessage maps struct validation failures on request payloads to
// user-facing messages.
func validationMessage(verrs validator.ValidationErrors) string {
	for _, fe := range verrs {
		if fe.Field() == "Description" && fe.Tag() == "required" {
			return MsgDescriptionRequired
		}
	}
	return MsgInvalidTask
}
