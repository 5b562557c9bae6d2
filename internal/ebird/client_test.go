package ebird

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(Options{BaseURL: baseURL, Token: testToken})
	require.NoError(t, err)
	return c
}

func intPtr(v int) *int { return &v }

func TestParseBaseURL_DefaultsAndKeepsVersionPath(t *testing.T) {
	u, err := parseBaseURL("")
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "api.ebird.org", u.Host)
	assert.Equal(t, "/v2/", u.Path)

	u, err = parseBaseURL("http://example.com:1234/v2?x=1#frag")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com:1234/v2/", u.String())

	u, err = parseBaseURL("proxy.local/ebird/")
	require.NoError(t, err)
	assert.Equal(t, "https://proxy.local/ebird/", u.String())
}

func TestParseBaseURL_MissingHostFails(t *testing.T) {
	_, err := parseBaseURL("http://")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing host")
}

func TestClient_FetchRecentNearby_EncodesQueryAndHeaders(t *testing.T) {
	var gotPath, gotToken, gotAgent string
	var gotQuery map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotToken = r.Header.Get(tokenHeader)
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode([]Observation{
			{SpeciesCode: "amecro", ComName: "American Crow", HowMany: intPtr(3)},
			{SpeciesCode: "annhum", ComName: "Anna's Hummingbird"},
		}))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL+"/v2")
	got, err := c.FetchRecentNearby(context.Background(), 34.08, -118.2)
	require.NoError(t, err)

	assert.Equal(t, "/v2/data/obs/geo/recent", gotPath)
	assert.Equal(t, "34.08", gotQuery["lat"][0])
	assert.Equal(t, "-118.2", gotQuery["lng"][0])
	assert.Equal(t, "species", gotQuery["sort"][0])
	assert.Equal(t, testToken, gotToken)
	assert.True(t, strings.HasPrefix(gotAgent, "backyard/"), "User-Agent = %q", gotAgent)

	require.Len(t, got, 2)
	assert.Equal(t, "amecro", got[0].SpeciesCode)
	assert.Equal(t, "annhum", got[1].SpeciesCode)
	require.NotNil(t, got[0].HowMany)
	assert.Equal(t, 3, *got[0].HowMany)
	assert.Nil(t, got[1].HowMany)
}

func TestClient_FetchNotableByRegion_BuildsRegionPath(t *testing.T) {
	var gotPath, gotDetail string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotDetail = r.URL.Query().Get("detail")
		_, _ = w.Write([]byte(`[{"speciesCode":"vermfly","comName":"Vermilion Flycatcher","userDisplayName":"Pat Lee"}]`))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL)
	got, err := c.FetchNotableByRegion(context.Background(), "  ca ")
	require.NoError(t, err)

	assert.Equal(t, "/data/obs/US-CA/recent/notable", gotPath)
	assert.Equal(t, "full", gotDetail)
	require.Len(t, got, 1)
	assert.Equal(t, "Pat Lee", got[0].UserDisplayName)
}

func TestClient_FetchNotableByRegion_UsesCountryPrefix(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{BaseURL: srv.URL, CountryPrefix: "mx"})
	require.NoError(t, err)
	_, err = c.FetchNotableByRegion(context.Background(), "BCN")
	require.NoError(t, err)
	assert.Equal(t, "/data/obs/MX-BCN/recent/notable", gotPath)
}

func TestClient_FetchNotableByRegion_RejectsBadCodes(t *testing.T) {
	c := newTestClient(t, "127.0.0.1:1")

	_, err := c.FetchNotableByRegion(context.Background(), "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "region code required")

	_, err = c.FetchNotableByRegion(context.Background(), "CA/../x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid region code")
}

func TestClient_EmptyBodiesYieldEmptySlices(t *testing.T) {
	for _, body := range []string{"", "null", "[]", "  \n"} {
		t.Run(fmt.Sprintf("%q", body), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			t.Cleanup(srv.Close)

			got, err := newTestClient(t, srv.URL).FetchRecentNearby(context.Background(), 1, 2)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestClient_HTTPErrorCarriesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL)
	for name, call := range map[string]func() error{
		"geo": func() error {
			_, err := c.FetchRecentNearby(context.Background(), 1, 2)
			return err
		},
		"notable": func() error {
			_, err := c.FetchNotableByRegion(context.Background(), "CA")
			return err
		},
	} {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			assert.Equal(t, "HTTP error! status: 503", err.Error())

			var herr *HTTPError
			require.True(t, errors.As(err, &herr))
			assert.Equal(t, 503, herr.Status)
			assert.Equal(t, 503, StatusCode(err))
		})
	}
}

func TestClient_DecodeErrorIsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not-json`))
	}))
	t.Cleanup(srv.Close)

	_, err := newTestClient(t, srv.URL).FetchRecentNearby(context.Background(), 1, 2)
	require.Error(t, err)
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Contains(t, err.Error(), "invalid response body")
}

func TestClient_ObjectBodyIsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[]}`))
	}))
	t.Cleanup(srv.Close)

	_, err := newTestClient(t, srv.URL).FetchRecentNearby(context.Background(), 1, 2)
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestClient_TransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	_, err := newTestClient(t, base).FetchRecentNearby(context.Background(), 1, 2)
	require.Error(t, err)
	var nerr *NetworkError
	require.True(t, errors.As(err, &nerr))
	assert.NotContains(t, err.Error(), "lat=", "message should not leak the request URL")
	assert.Zero(t, StatusCode(err))
}

func TestClient_TimeoutOptionBoundsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(Options{BaseURL: srv.URL, Timeout: 20 * time.Millisecond})
	require.NoError(t, err)
	_, err = c.FetchRecentNearby(context.Background(), 1, 2)
	var nerr *NetworkError
	assert.True(t, errors.As(err, &nerr))
}

func TestClient_ContextCancelStopsRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestClient(t, srv.URL).FetchRecentNearby(ctx, 1, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	_, err := c.FetchRecentNearby(context.Background(), 1, 2)
	assert.Error(t, err)
	_, err = c.FetchNotableByRegion(context.Background(), "CA")
	assert.Error(t, err)
}

func TestClient_RateLimitHoldsSecondRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c, err := NewClient(Options{BaseURL: srv.URL, Token: testToken, RequestsPerMinute: 1})
	require.NoError(t, err)

	_, err = c.FetchRecentNearby(context.Background(), 1, 2)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.FetchRecentNearby(ctx, 1, 2)
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, int32(1), hits.Load())
}

func TestNewLimiter(t *testing.T) {
	assert.Nil(t, newLimiter(0, 5))

	l := newLimiter(120, 0)
	require.NotNil(t, l)
	assert.Equal(t, 1, l.Burst())
	assert.InDelta(t, 2.0, float64(l.Limit()), 1e-9)
}
