package webapp

import (
	"errors"
	"log"
	"net/http"

	"github.com/nzsnyn/bejalen/app"
)

const serverErrorMessage = "Terjadi kesalahan server"

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (webapp *WebApp) renderError(w http.ResponseWriter, code int, customMessage string) {
	message := customMessage
	if message == "" {
		message = http.StatusText(code)
	}
	writeJSON(w, code, errorResponse{Success: false, Error: message})
}

// renderServiceError maps domain errors to their status code. Anything else
// is logged with context and reported as a generic server error.
func (webapp *WebApp) renderServiceError(w http.ResponseWriter, err error, context string) {
	switch {
	case errors.Is(err, app.ErrValidation):
		webapp.renderError(w, http.StatusBadRequest, app.ErrorMessage(err))
	case errors.Is(err, app.ErrUnauthorized):
		webapp.renderError(w, http.StatusUnauthorized, app.ErrorMessage(err))
	case errors.Is(err, app.ErrNotFound):
		webapp.renderError(w, http.StatusNotFound, app.ErrorMessage(err))
	case errors.Is(err, app.ErrVersionConflict):
		webapp.renderError(w, http.StatusConflict, app.ErrorMessage(err))
	default:
		log.Printf("%s error: %v", context, err)
		webapp.renderError(w, http.StatusInternalServerError, serverErrorMessage)
	}
}

func (webapp *WebApp) notFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		webapp.renderError(w, http.StatusNotFound, "")
	}
}
