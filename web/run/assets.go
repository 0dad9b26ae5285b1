package webapp

import (
	"log"
	"net/http"
)

func (webapp *WebApp) scanPublic() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scan, err := webapp.Services.Walker.Discover(webapp.AppConfig.Server.PublicDir)
		if err != nil {
			log.Printf("Scan public folder error: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		renderSuccess(w, http.StatusOK, scan, "Public folder images scanned successfully")
	}
}
