package webapp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nzsnyn/bejalen/app"
	"github.com/nzsnyn/bejalen/models"
)

// setupTestWebApp creates a WebApp over a seeded temp database and a public
// dir holding a few images.
func setupTestWebApp(t *testing.T) (*WebApp, string) {
	t.Helper()

	tmpDir := t.TempDir()
	publicDir := filepath.Join(tmpDir, "public")

	files := map[string]string{
		"logo.png":                "png",
		"header-home.png":         "png",
		"gallery/rawa1.JPG":       "jpg",
		"gallery/boats/b1.webp":   "webp",
		"docs/readme.txt":         "txt",
		"node_modules/x/icon.png": "png",
	}
	for name, content := range files {
		p := filepath.Join(publicDir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}

	cfg := &models.AppConfig{}
	cfg.Server.PublicDir = publicDir
	cfg.Database.Path = filepath.Join(tmpDir, "test.db")
	cfg.Uploads.MaxSize = app.DefaultMaxUploadSize

	db, err := app.OpenDB(cfg.Database.Path)
	require.NoError(t, err)
	t.Cleanup(func() { app.CloseDB(db) })

	t.Setenv("BEJALEN_ADMIN_PASSWORD", "admin123")
	_, err = app.Seed(context.Background(), db, false)
	require.NoError(t, err)

	services, err := app.NewServicesWith(cfg, db, app.NewLocalStorage(publicDir))
	require.NoError(t, err)

	return NewWebApp(cfg, services), publicDir
}

func adminCookie() *http.Cookie {
	token, _ := json.Marshal(models.Admin{ID: "1", Username: "admin", Role: "admin"})
	return &http.Cookie{Name: adminCookieName, Value: url.QueryEscape(string(token))}
}

func doRequest(t *testing.T, webapp *WebApp, method, target string, body any, admin bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.AddCookie(adminCookie())
	}
	rr := httptest.NewRecorder()
	webapp.GetRouter().ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), "body: %s", rr.Body.String())
	return env
}

func TestScanPublic(t *testing.T) {
	webapp, _ := setupTestWebApp(t)

	rr := doRequest(t, webapp, http.MethodGet, "/api/gallery/scan-public", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)

	env := decodeEnvelope(t, rr)
	assert.True(t, env.Success)
	assert.Equal(t, "Public folder images scanned successfully", env.Message)

	var scan models.AssetScan
	require.NoError(t, json.Unmarshal(env.Data, &scan))
	assert.Equal(t, 4, scan.TotalImages)
	assert.Len(t, scan.AllImages, 4)
	assert.Len(t, scan.GroupedImages[app.RootGroup], 2)
	assert.Len(t, scan.GroupedImages["gallery"], 1)
	assert.Len(t, scan.GroupedImages["gallery/boats"], 1)
	assert.NotContains(t, scan.GroupedImages, "node_modules/x")

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &raw))
	for _, key := range []string{"structure", "allImages", "groupedImages", "totalImages"} {
		assert.Contains(t, raw, key)
	}

	for _, img := range scan.AllImages {
		assert.Equal(t, "/"+img.Path, img.URL)
	}
}

func TestScanPublic_MissingRoot(t *testing.T) {
	webapp, publicDir := setupTestWebApp(t)
	require.NoError(t, os.RemoveAll(publicDir))

	rr := doRequest(t, webapp, http.MethodGet, "/api/gallery/scan-public", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)

	env := decodeEnvelope(t, rr)
	assert.JSONEq(t, `{"structure":[],"allImages":[],"groupedImages":{},"totalImages":0}`, string(env.Data))
}

func TestAdminRoutesRequireCookie(t *testing.T) {
	webapp, _ := setupTestWebApp(t)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/gallery/scan-public"},
		{http.MethodPut, "/api/homepage"},
		{http.MethodPut, "/api/lucky-content"},
		{http.MethodPost, "/api/info-paket"},
		{http.MethodDelete, "/api/info-paket/abc"},
		{http.MethodGet, "/api/booking"},
		{http.MethodPatch, "/api/booking/abc/status"},
		{http.MethodGet, "/api/contact"},
		{http.MethodPost, "/api/gallery/upload"},
		{http.MethodDelete, "/api/gallery/abc"},
		{http.MethodGet, "/api/admin/dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rr := doRequest(t, webapp, tt.method, tt.target, nil, false)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			env := decodeEnvelope(t, rr)
			assert.False(t, env.Success)
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: adminCookieName, Value: "not-json"})
	rr := httptest.NewRecorder()
	webapp.GetRouter().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogin(t *testing.T) {
	webapp, _ := setupTestWebApp(t)

	rr := doRequest(t, webapp, http.MethodPost, "/api/auth/login", loginRequest{Username: "admin", Password: "admin123"}, false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "password")

	var cookie *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == adminCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.AddCookie(cookie)
	rr = httptest.NewRecorder()
	webapp.GetRouter().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, webapp, http.MethodPost, "/api/auth/login", loginRequest{Username: "admin", Password: "wrong"}, false)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Username atau password salah", decodeEnvelope(t, rr).Error)

	rr = doRequest(t, webapp, http.MethodPost, "/api/auth/login", loginRequest{Username: "admin"}, false)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestContentEndpoints(t *testing.T) {
	webapp, _ := setupTestWebApp(t)

	rr := doRequest(t, webapp, http.MethodGet, "/api/perahu-mesin/content", nil, false)
	require.Equal(t, http.StatusOK, rr.Code)
	var got app.PageContent
	got.Content = &models.PerahuMesinContent{}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &got))
	assert.Equal(t, 1, got.Version)
	assert.Equal(t, "IDR. 120.000", got.Content.(*models.PerahuMesinContent).WeekdayPrice)

	rr = doRequest(t, webapp, http.MethodPut, "/api/perahu-mesin/content",
		`{"content":{"weekdayPrice":"IDR. 130.000"},"version":1}`, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"version":2`)
	assert.Contains(t, rr.Body.String(), "IDR. 130.000")

	rr = doRequest(t, webapp, http.MethodPut, "/api/perahu-mesin/content",
		`{"content":{"weekdayPrice":"IDR. 140.000"},"version":1}`, true)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = doRequest(t, webapp, http.MethodPut, "/api/perahu-mesin/content", `{"content":{"title":""}}`, true)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "missing required fields: title", decodeEnvelope(t, rr).Error)

	rr = doRequest(t, webapp, http.MethodPut, "/api/perahu-mesin/content", `{`, true)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestContentAliasesShareStorage(t *testing.T) {
	webapp, _ := setupTestWebApp(t)

	rr := doRequest(t, webapp, http.MethodPut, "/api/kampoeng-content",
		`{"content":{"websiteUrl":"https://bejalen.example/"}}`, true)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, webapp, http.MethodGet, "/api/kampoeng-rawa/content", nil, false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "https://bejalen.example/")
}

func TestHomepageAndAttractions(t *testing.T) {
	webapp, _ := setupTestWebApp(t)

	rr := doRequest(t, webapp, http.MethodGet, "/api/homepage", nil, false)
	require.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.Equal(t, "Data homepage berhasil diambil", env.Message)
	var home struct {
		FeaturedPackages []models.TourPackage `json:"featuredPackages"`
		Stats            app.HomepageStats    `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &home))
	assert.Len(t, home.FeaturedPackages, 3)
	assert.EqualValues(t, 3, home.Stats.TotalGallery)

	for _, slug := range []string{"perahu-mesin", "rawa-pening", "kampoeng-rawa"} {
		t.Run(slug, func(t *testing.T) {
			rr := doRequest(t, webapp, http.MethodGet, "/api/"+slug, nil, false)
			require.Equal(t, http.StatusOK, rr.Code)
			var page app.AttractionPage
			require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &page))
			require.NotNil(t, page.Package)
			assert.Len(t, page.Gallery, 1)
		})
	}
}

func TestPackageEndpoints(t *testing.T) {
	webapp, _ := setupTestWebApp(t)

	rr := doRequest(t, webapp, http.MethodPost, "/api/info-paket",
		map[string]any{"title": "Paket Lucky Land", "price": 50000, "duration": "3 jam", "isActive": false}, true)
	require.Equal(t, http.StatusCreated, rr.Code)
	var created models.TourPackage
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &created))

	var list []models.TourPackage
	rr = doRequest(t, webapp, http.MethodGet, "/api/info-paket", nil, false)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &list))
	assert.Len(t, list, 3, "inactive packages are hidden")

	rr = doRequest(t, webapp, http.MethodGet, "/api/info-paket?admin=true", nil, false)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &list))
	assert.Len(t, list, 4)

	rr = doRequest(t, webapp, http.MethodPut, "/api/info-paket/"+created.ID, map[string]any{"price": 60000}, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"price":60000`)

	rr = doRequest(t, webapp, http.MethodPost, "/api/info-paket", map[string]any{"name": "X"}, true)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, webapp, http.MethodDelete, "/api/info-paket/"+created.ID, nil, true)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, webapp, http.MethodGet, "/api/info-paket/"+created.ID, nil, false)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Package not found", decodeEnvelope(t, rr).Error)
}

func TestBookingAndContactEndpoints(t *testing.T) {
	webapp, _ := setupTestWebApp(t)

	pkgs, err := webapp.Services.Packages.ListActive(context.Background())
	require.NoError(t, err)

	rr := doRequest(t, webapp, http.MethodPost, "/api/booking", app.BookingInput{
		CustomerName: "Dewi",
		Email:        "dewi@example.com",
		Phone:        "0812 3456",
		PackageID:    pkgs[0].ID,
		BookingDate:  "2099-12-31",
	}, false)
	require.Equal(t, http.StatusCreated, rr.Code)
	var booking models.Booking
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &booking))
	assert.Equal(t, pkgs[0].Price, booking.TotalPrice)

	rr = doRequest(t, webapp, http.MethodPost, "/api/booking", app.BookingInput{CustomerName: "Dewi"}, false)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Semua field wajib harus diisi", decodeEnvelope(t, rr).Error)

	rr = doRequest(t, webapp, http.MethodPatch, "/api/booking/"+booking.ID+"/status", statusRequest{Status: "confirmed"}, true)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, webapp, http.MethodGet, "/api/booking", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"confirmed"`)

	rr = doRequest(t, webapp, http.MethodPost, "/api/contact", app.ContactInput{
		Name: "Dewi", Email: "dewi@example.com", Subject: "Tanya", Message: "Buka jam berapa?",
	}, false)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doRequest(t, webapp, http.MethodGet, "/api/admin/dashboard", nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &stats))
	assert.EqualValues(t, 1, stats.TotalBookings)
	assert.EqualValues(t, 1, stats.TotalContacts)
	assert.Equal(t, pkgs[0].Price, stats.TotalRevenue)
}

func newUploadRequest(t *testing.T, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/gallery/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(adminCookie())
	return req
}

func TestGalleryEndpoints(t *testing.T) {
	webapp, publicDir := setupTestWebApp(t)

	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
	req := newUploadRequest(t, map[string]string{"title": "Senja", "category": "general"}, "senja.png", png)
	rr := httptest.NewRecorder()
	webapp.GetRouter().ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var item models.GalleryItem
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &item))
	_, err := os.Stat(filepath.Join(publicDir, filepath.FromSlash(strings.TrimPrefix(item.ImageURL, "/"))))
	require.NoError(t, err)

	rr = doRequest(t, webapp, http.MethodGet, item.ImageURL, nil, false)
	assert.Equal(t, http.StatusOK, rr.Code, "uploads are served from the public dir")

	rr = doRequest(t, webapp, http.MethodGet, "/api/gallery?category=general", nil, false)
	require.Equal(t, http.StatusOK, rr.Code)
	var listing app.GalleryListing
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &listing))
	assert.Equal(t, 1, listing.Total)

	req = newUploadRequest(t, map[string]string{"title": "Teks"}, "notes.txt", []byte("plain text"))
	rr = httptest.NewRecorder()
	webapp.GetRouter().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	req = newUploadRequest(t, map[string]string{"title": "Kosong"}, "", nil)
	rr = httptest.NewRecorder()
	webapp.GetRouter().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "No file uploaded", decodeEnvelope(t, rr).Error)

	rr = doRequest(t, webapp, http.MethodDelete, "/api/gallery/"+item.ID, nil, true)
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = doRequest(t, webapp, http.MethodDelete, "/api/gallery/"+item.ID, nil, true)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStaticFilesAndNotFound(t *testing.T) {
	webapp, _ := setupTestWebApp(t)

	rr := doRequest(t, webapp, http.MethodGet, "/logo.png", nil, false)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "png", rr.Body.String())

	rr = doRequest(t, webapp, http.MethodGet, "/api/does-not-exist", nil, false)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.False(t, decodeEnvelope(t, rr).Success)
}
