package webapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nzsnyn/bejalen/app"
	"github.com/nzsnyn/bejalen/models"
)

func (webapp *WebApp) createBooking() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in app.BookingInput
		if err := decodeJSON(r, &in); err != nil {
			webapp.renderError(w, http.StatusBadRequest, "Semua field wajib harus diisi")
			return
		}
		booking, err := webapp.Services.Bookings.Create(r.Context(), in)
		if err != nil {
			webapp.renderServiceError(w, err, "Create booking")
			return
		}
		renderSuccess(w, http.StatusCreated, booking, "Booking berhasil dibuat")
	}
}

func (webapp *WebApp) listBookings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := webapp.Services.Bookings.List(r.Context())
		if err != nil {
			webapp.renderServiceError(w, err, "Get bookings")
			return
		}
		if bookings == nil {
			bookings = []models.Booking{}
		}
		renderSuccess(w, http.StatusOK, bookings, "")
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

func (webapp *WebApp) updateBookingStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req statusRequest
		if err := decodeJSON(r, &req); err != nil {
			webapp.renderError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		booking, err := webapp.Services.Bookings.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
		if err != nil {
			webapp.renderServiceError(w, err, "Update booking status")
			return
		}
		renderSuccess(w, http.StatusOK, booking, "Booking status updated")
	}
}
