package ebird

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Fetcher defines the observation queries used by the sighting views.
// It is implemented by *Client and can be faked in tests.
type Fetcher interface {
	FetchRecentNearby(ctx context.Context, lat, lng float64) ([]Observation, error)
	FetchNotableByRegion(ctx context.Context, regionCode string) ([]Observation, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the eBird HTTP API.
type Client struct {
	baseURL       *url.URL
	http          *http.Client
	token         string
	countryPrefix string
	userAgent     string
	limiter       *rate.Limiter
}

// Options configure a Client.
type Options struct {
	BaseURL       string
	Token         string
	CountryPrefix string
	UserAgent     string
	// Timeout bounds a whole request. Zero means no timeout.
	Timeout time.Duration
	// HTTPClient overrides the transport; Timeout is ignored when set.
	HTTPClient *http.Client
	// RequestsPerMinute throttles outgoing requests. Zero disables the limit.
	RequestsPerMinute int
	// Burst is how many requests may go out back to back; defaults to 1.
	Burst int
}

const (
	DefaultBaseURL       = "https://api.ebird.org/v2"
	DefaultCountryPrefix = "US"
	defaultUserAgent     = "backyard/0.1"
	tokenHeader          = "X-eBirdApiToken"
)

// NewClient builds a Client from opts, filling defaults for empty fields.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	prefix := strings.TrimSpace(opts.CountryPrefix)
	if prefix == "" {
		prefix = DefaultCountryPrefix
	}
	ua := strings.TrimSpace(opts.UserAgent)
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Client{
		baseURL:       base,
		http:          httpClient,
		token:         strings.TrimSpace(opts.Token),
		countryPrefix: prefix,
		userAgent:     ua,
		limiter:       newLimiter(opts.RequestsPerMinute, opts.Burst),
	}, nil
}

func newLimiter(perMinute, burst int) *rate.Limiter {
	if perMinute <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)
}

// FetchRecentNearby retrieves recent observations around lat/lng, sorted by species.
func (c *Client) FetchRecentNearby(ctx context.Context, lat, lng float64) ([]Observation, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("lat", formatCoord(lat))
	values.Set("lng", formatCoord(lng))
	values.Set("sort", "species")
	return c.fetchObservations(ctx, "data/obs/geo/recent", values)
}

// FetchNotableByRegion retrieves notable observations for regionCode within
// the client's country prefix, with full detail.
func (c *Client) FetchNotableByRegion(ctx context.Context, regionCode string) ([]Observation, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	code := strings.TrimSpace(regionCode)
	if code == "" {
		return nil, fmt.Errorf("region code required")
	}
	if !validRegionCode(code) {
		return nil, fmt.Errorf("invalid region code %q", code)
	}
	values := url.Values{}
	values.Set("detail", "full")
	return c.fetchObservations(ctx, "data/obs/"+Region{Code: code}.ID(c.countryPrefix)+"/recent/notable", values)
}

func (c *Client) fetchObservations(ctx context.Context, path string, query url.Values) ([]Observation, error) {
	rel := &url.URL{Path: path, RawQuery: query.Encode()}
	body, err := c.get(ctx, rel)
	if err != nil {
		log.Printf("ebird: GET %s failed: %v", path, err)
		return nil, err
	}
	records, err := decodeObservations(body)
	if err != nil {
		log.Printf("ebird: GET %s decode failed: %v", path, err)
		return nil, err
	}
	log.Printf("ebird: GET %s returned %d records", path, len(records))
	return records, nil
}

func (c *Client) get(ctx context.Context, rel *url.URL) ([]byte, error) {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(tokenHeader, c.token)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, newNetworkError(err)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, newNetworkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{Status: resp.StatusCode, Path: rel.Path}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newNetworkError(err)
	}
	return body, nil
}

// decodeObservations parses a JSON array body. Empty and null bodies yield an
// empty, non-nil slice.
func decodeObservations(body []byte) ([]Observation, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []Observation{}, nil
	}
	var records []Observation
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, &ParseError{Err: err}
	}
	if records == nil {
		records = []Observation{}
	}
	return records, nil
}

func validRegionCode(code string) bool {
	for _, r := range code {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
		default:
			return false
		}
	}
	return true
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseBaseURL normalizes the API root. Unlike a bare host, the eBird base
// carries a version path ("/v2") which must survive so relative endpoint paths
// resolve beneath it.
func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_base %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
