package webapp

import (
	"fmt"
	"net/http"

	"github.com/nzsnyn/bejalen/app"
	"github.com/nzsnyn/bejalen/models"
)

type WebApp struct {
	Router    http.Handler
	AppConfig *models.AppConfig
	Services  *app.Services
}

func NewWebApp(cfg *models.AppConfig, services *app.Services) *WebApp {
	webapp := &WebApp{
		AppConfig: cfg,
		Services:  services,
	}
	webapp.Router = router(webapp)
	return webapp
}

func (webapp *WebApp) GetListenAddr() string {
	port := 8080
	if webapp.AppConfig != nil && webapp.AppConfig.Server.Port > 0 {
		port = webapp.AppConfig.Server.Port
	}
	return fmt.Sprintf(":%d", port)
}

func (webapp *WebApp) GetRouter() http.Handler {
	if webapp.Router == nil {
		webapp.Router = router(webapp)
	}
	return webapp.Router
}

// NewServer builds the HTTP server with the configured timeouts.
func (webapp *WebApp) NewServer(addr string) *http.Server {
	if addr == "" {
		addr = webapp.GetListenAddr()
	}
	return &http.Server{
		Addr:         addr,
		Handler:      webapp.GetRouter(),
		ReadTimeout:  webapp.AppConfig.Server.ReadTimeout,
		WriteTimeout: webapp.AppConfig.Server.WriteTimeout,
	}
}
