package webapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nzsnyn/bejalen/models"
)

func router(webapp *WebApp) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", webapp.login())

		r.Get("/homepage", webapp.homepage())
		r.With(webapp.requireAdmin).Put("/homepage", webapp.putContent(models.ContentHomepage, "Homepage"))

		webapp.contentRoutes(r, "/info-paket/content", models.ContentInfoPaket, "Info paket")
		webapp.contentRoutes(r, "/perahu-mesin/content", models.ContentPerahuMesin, "Perahu mesin")
		webapp.contentRoutes(r, "/kampoeng-content", models.ContentKampoengRawa, "Kampoeng rawa")
		webapp.contentRoutes(r, "/kampoeng-rawa/content", models.ContentKampoengRawa, "Kampoeng rawa")
		webapp.contentRoutes(r, "/lucky-content", models.ContentLuckyLand, "Lucky land")
		webapp.contentRoutes(r, "/rawa-pening-content", models.ContentRawaPening, "Rawa pening")

		r.Get("/perahu-mesin", webapp.attraction("perahu-mesin"))
		r.Get("/rawa-pening", webapp.attraction("rawa-pening"))
		r.Get("/kampoeng-rawa", webapp.attraction("kampoeng-rawa"))

		r.Get("/info-paket", webapp.listPackages())
		r.With(webapp.requireAdmin).Post("/info-paket", webapp.createPackage())
		r.Get("/info-paket/{id}", webapp.getPackage())
		r.With(webapp.requireAdmin).Put("/info-paket/{id}", webapp.updatePackage())
		r.With(webapp.requireAdmin).Delete("/info-paket/{id}", webapp.deletePackage())

		r.Post("/booking", webapp.createBooking())
		r.With(webapp.requireAdmin).Get("/booking", webapp.listBookings())
		r.With(webapp.requireAdmin).Patch("/booking/{id}/status", webapp.updateBookingStatus())

		r.Post("/contact", webapp.createContact())
		r.With(webapp.requireAdmin).Get("/contact", webapp.listContacts())

		r.Get("/gallery", webapp.listGallery())
		r.Group(func(r chi.Router) {
			r.Use(webapp.requireAdmin)
			r.Get("/gallery/scan-public", webapp.scanPublic())
			r.Post("/gallery/upload", webapp.uploadGallery())
			r.Delete("/gallery/{id}", webapp.deleteGallery())
			r.Get("/admin/dashboard", webapp.dashboard())
		})

		r.NotFound(webapp.notFoundHandler())
	})

	fileServer := http.FileServer(http.Dir(webapp.AppConfig.Server.PublicDir))
	r.Handle("/*", fileServer)

	return r
}

func (webapp *WebApp) contentRoutes(r chi.Router, pattern, kind, label string) {
	r.Get(pattern, webapp.getContent(kind, label))
	r.With(webapp.requireAdmin).Put(pattern, webapp.putContent(kind, label))
}
