package webapp

import (
	"net/http"

	"github.com/nzsnyn/bejalen/app"
)

func (webapp *WebApp) getContent(kind, label string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := webapp.Services.Content.Get(r.Context(), kind)
		if err != nil {
			webapp.renderServiceError(w, err, "Get "+kind+" content")
			return
		}
		renderSuccess(w, http.StatusOK, content, label+" content retrieved successfully")
	}
}

func (webapp *WebApp) putContent(kind, label string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var upd app.ContentUpdate
		if err := decodeJSON(r, &upd); err != nil {
			webapp.renderError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		content, err := webapp.Services.Content.Update(r.Context(), kind, upd)
		if err != nil {
			webapp.renderServiceError(w, err, "Update "+kind+" content")
			return
		}
		renderSuccess(w, http.StatusOK, content, label+" content updated successfully")
	}
}
