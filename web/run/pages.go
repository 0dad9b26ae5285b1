package webapp

import (
	"net/http"

	"github.com/nzsnyn/bejalen/app"
)

func (webapp *WebApp) homepage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := webapp.Services.Homepage(r.Context())
		if err != nil {
			webapp.renderServiceError(w, err, "Get homepage")
			return
		}
		renderSuccess(w, http.StatusOK, page, "Data homepage berhasil diambil")
	}
}

func (webapp *WebApp) attraction(slug string) http.HandlerFunc {
	message := app.Attractions[slug].SuccessMessage
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := webapp.Services.AttractionPage(r.Context(), slug)
		if err != nil {
			webapp.renderServiceError(w, err, "Get "+slug)
			return
		}
		renderSuccess(w, http.StatusOK, page, message)
	}
}

func (webapp *WebApp) dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := webapp.Services.Dashboard(r.Context())
		if err != nil {
			webapp.renderServiceError(w, err, "Dashboard stats")
			return
		}
		renderSuccess(w, http.StatusOK, stats, "")
	}
}
