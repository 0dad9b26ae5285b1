package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/nzsnyn/bejalen/models"
)

const adminCookieName = "admin-token"

// Client talks to the Bejalen admin API.
type Client struct {
	BaseURL string
	client  *resty.Client
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func New(baseURL string) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(baseURL, "/"))
	client.SetHeader("Accept", "application/json")
	client.SetTimeout(30 * time.Second)
	// the admin cookie is set explicitly after Login
	client.SetCookieJar(nil)

	return &Client{
		BaseURL: baseURL,
		client:  client,
	}
}

// Login authenticates and keeps the admin cookie for later requests.
func (c *Client) Login(ctx context.Context, username, password string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"username": username, "password": password}).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.BaseURL, err)
	}
	if _, err := decode(resp); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == adminCookieName {
			c.client.SetCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
			return nil
		}
	}
	return fmt.Errorf("login failed: no %s cookie in response", adminCookieName)
}

// ScanAssets fetches the image catalogue of the public directory.
func (c *Client) ScanAssets(ctx context.Context) (*models.AssetScan, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/gallery/scan-public")
	if err != nil {
		return nil, fmt.Errorf("failed to scan assets: %w", err)
	}
	data, err := decode(resp)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	var scan models.AssetScan
	if err := json.Unmarshal(data, &scan); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &scan, nil
}

func decode(resp *resty.Response) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("status %d: unexpected response", resp.StatusCode())
	}
	if resp.StatusCode() != http.StatusOK || !env.Success {
		if env.Error == "" {
			env.Error = http.StatusText(resp.StatusCode())
		}
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode(), env.Error)
	}
	return env.Data, nil
}
