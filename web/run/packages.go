package webapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nzsnyn/bejalen/app"
	"github.com/nzsnyn/bejalen/models"
)

func (webapp *WebApp) listPackages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			pkgs []models.TourPackage
			err  error
		)
		if r.URL.Query().Get("admin") == "true" {
			pkgs, err = webapp.Services.Packages.ListAll(r.Context())
		} else {
			pkgs, err = webapp.Services.Packages.ListActive(r.Context())
		}
		if err != nil {
			webapp.renderServiceError(w, err, "Get packages")
			return
		}
		if pkgs == nil {
			pkgs = []models.TourPackage{}
		}
		renderSuccess(w, http.StatusOK, pkgs, "Paket wisata berhasil diambil")
	}
}

func (webapp *WebApp) getPackage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pkg, err := webapp.Services.Packages.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			webapp.renderServiceError(w, err, "Get package")
			return
		}
		renderSuccess(w, http.StatusOK, pkg, "")
	}
}

func (webapp *WebApp) createPackage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in app.PackageInput
		if err := decodeJSON(r, &in); err != nil {
			webapp.renderError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		pkg, err := webapp.Services.Packages.Create(r.Context(), in)
		if err != nil {
			webapp.renderServiceError(w, err, "Create package")
			return
		}
		renderSuccess(w, http.StatusCreated, pkg, "Package created successfully")
	}
}

func (webapp *WebApp) updatePackage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in app.PackageInput
		if err := decodeJSON(r, &in); err != nil {
			webapp.renderError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		pkg, err := webapp.Services.Packages.Update(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			webapp.renderServiceError(w, err, "Update package")
			return
		}
		renderSuccess(w, http.StatusOK, pkg, "Package updated successfully")
	}
}

func (webapp *WebApp) deletePackage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := webapp.Services.Packages.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			webapp.renderServiceError(w, err, "Delete package")
			return
		}
		renderSuccess(w, http.StatusOK, nil, "Package deleted successfully")
	}
}
