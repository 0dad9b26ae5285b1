package webapp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nzsnyn/bejalen/app"
)

const multipartOverhead = 1 << 20

func (webapp *WebApp) listGallery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listing, err := webapp.Services.Gallery.List(r.Context(), r.URL.Query().Get("category"), queryInt(r, "limit", 0))
		if err != nil {
			webapp.renderServiceError(w, err, "Get gallery")
			return
		}
		renderSuccess(w, http.StatusOK, listing, "")
	}
}

func (webapp *WebApp) uploadGallery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		maxSize := webapp.Services.Gallery.MaxSize()
		r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)
		if err := r.ParseMultipartForm(maxSize); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				webapp.renderError(w, http.StatusBadRequest, fmt.Sprintf("File size too large. Maximum size is %dMB", maxSize/(1<<20)))
				return
			}
			webapp.renderError(w, http.StatusBadRequest, "No file uploaded")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			webapp.renderError(w, http.StatusBadRequest, "No file uploaded")
			return
		}
		defer file.Close()

		item, err := webapp.Services.Gallery.Upload(r.Context(), app.GalleryUpload{
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			Category:    r.FormValue("category"),
			Size:        header.Size,
			Body:        file,
		})
		if err != nil {
			webapp.renderServiceError(w, err, "Upload gallery")
			return
		}
		renderSuccess(w, http.StatusCreated, item, "Image uploaded successfully")
	}
}

func (webapp *WebApp) deleteGallery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := webapp.Services.Gallery.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			webapp.renderServiceError(w, err, "Delete gallery")
			return
		}
		renderSuccess(w, http.StatusOK, nil, "Gallery item deleted successfully")
	}
}
