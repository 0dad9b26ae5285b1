package webapp

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/nzsnyn/bejalen/models"
)

const (
	adminCookieName = "admin-token"
	adminCookieTTL  = 24 * time.Hour
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	User *models.Admin `json:"user"`
}

func (webapp *WebApp) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(r, &req); err != nil {
			webapp.renderError(w, http.StatusBadRequest, "Username dan password harus diisi")
			return
		}

		admin, err := webapp.Services.Auth.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			webapp.renderServiceError(w, err, "Login")
			return
		}

		token, err := json.Marshal(admin)
		if err != nil {
			webapp.renderServiceError(w, err, "Login")
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     adminCookieName,
			Value:    url.QueryEscape(string(token)),
			Path:     "/",
			Expires:  time.Now().Add(adminCookieTTL),
			SameSite: http.SameSiteLaxMode,
		})
		renderSuccess(w, http.StatusOK, loginResponse{User: admin}, "Login berhasil")
	}
}

// adminFromRequest decodes the admin-token cookie. It only checks that the
// cookie holds a user record, it does not look the user up.
func adminFromRequest(r *http.Request) (*models.Admin, bool) {
	c, err := r.Cookie(adminCookieName)
	if err != nil || c.Value == "" {
		return nil, false
	}
	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		return nil, false
	}
	var admin models.Admin
	if err := json.Unmarshal([]byte(raw), &admin); err != nil || admin.Username == "" {
		return nil, false
	}
	return &admin, true
}

func (webapp *WebApp) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := adminFromRequest(r); !ok {
			webapp.renderError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
