package webapp

import (
	"net/http"

	"github.com/nzsnyn/bejalen/app"
	"github.com/nzsnyn/bejalen/models"
)

func (webapp *WebApp) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in app.ContactInput
		if err := decodeJSON(r, &in); err != nil {
			webapp.renderError(w, http.StatusBadRequest, "Nama, email, subjek, dan pesan harus diisi")
			return
		}
		contact, err := webapp.Services.Contacts.Create(r.Context(), in)
		if err != nil {
			webapp.renderServiceError(w, err, "Create contact")
			return
		}
		renderSuccess(w, http.StatusCreated, contact, "Pesan berhasil dikirim")
	}
}

func (webapp *WebApp) listContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := webapp.Services.Contacts.List(r.Context())
		if err != nil {
			webapp.renderServiceError(w, err, "Get contacts")
			return
		}
		if contacts == nil {
			contacts = []models.Contact{}
		}
		renderSuccess(w, http.StatusOK, contacts, "")
	}
}
