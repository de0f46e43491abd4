// Package configsvc fetches machine-stats/shift-pattern config bundles
// from a remote fleet-management service, grounded on the teacher's
// GridStatusClient (internal/data/gridstatus.go): an API-key-bearing
// http.Client wrapper with a generate-key + check-cache step in front
// of every request.
package configsvc

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"gopkg.in/yaml.v3"

	"prodsched/internal/config"
)

// Client fetches a Config bundle for a named fleet from a remote
// service, keyed by an API token.
type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a Client. If baseURL is empty it defaults to the
// well-known fleet-config service root.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://fleetconfig.internal"
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchBundleParams identifies which bundle to fetch.
type FetchBundleParams struct {
	FleetID string
	Version string // empty means "latest"
}

// ResponseError is returned for a non-2xx response.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("configsvc: status %d: %s", e.StatusCode, e.Body)
}

// FetchBundle retrieves a Config bundle, consulting the shared cache
// first so repeated fetches of the same fleet/version during one
// process lifetime don't re-hit the network.
func (c *Client) FetchBundle(p FetchBundleParams) (*config.Config, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("configsvc: missing API key")
	}
	if p.FleetID == "" {
		return nil, fmt.Errorf("configsvc: fleet_id is required")
	}

	cache := GetCache()
	key := GenerateCacheKey(p)
	if cache != nil {
		if cached, found := cache.Get(key); found {
			log.Printf("[configsvc] cache hit: fleet=%s version=%s", p.FleetID, p.Version)
			return cached, nil
		}
	}

	path := fmt.Sprintf("/v1/fleets/%s/config", p.FleetID)
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return nil, fmt.Errorf("configsvc: invalid base url: %w", err)
	}
	q := u.Query()
	if p.Version != "" {
		q.Set("version", p.Version)
	}
	u.RawQuery = q.Encode()

	log.Printf("[configsvc] request: GET %s", u.String())

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("configsvc: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/yaml")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("configsvc: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("configsvc: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ResponseError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var cfg config.Config
	if err := yaml.Unmarshal(body, &cfg); err != nil {
		return nil, fmt.Errorf("configsvc: decode response: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configsvc: invalid bundle: %w", err)
	}

	if cache != nil {
		cache.Set(key, &cfg)
	}
	return &cfg, nil
}
