// Package ebird provides an HTTP client for the eBird observation API.
//
// # Overview
//
// The client covers the two read-only endpoints the birding pages need:
//
//   - GET {base}/data/obs/geo/recent: recent observations near a coordinate
//   - GET {base}/data/obs/{region}/recent/notable: notable observations for a region
//
// Every request carries the X-eBirdApiToken header. The token and base URL come
// from configuration and are never compiled into the binary.
//
// # Usage
//
//	client, err := ebird.NewClient(ebird.Options{
//		BaseURL:       cfg.APIBase,
//		Token:         cfg.APIToken,
//		CountryPrefix: cfg.CountryPrefix,
//	})
//	if err != nil {
//		return err
//	}
//	recent, err := client.FetchRecentNearby(ctx, 34.08, -118.20)
//	notable, err := client.FetchNotableByRegion(ctx, "CA")
//
// # Error Handling
//
// Failures are reported as one of three types, all usable with errors.As:
//
//   - *HTTPError: non-2xx status, message "HTTP error! status: 503"
//   - *NetworkError: transport failure, message is the underlying error text
//   - *ParseError: response body is not a JSON array of observations
//
// An empty, null, or [] body is not an error; it decodes to an empty slice.
//
// # Timeouts
//
// No timeout is applied unless Options.Timeout is set. Callers cancel through
// the request context.
//
// # Throttling
//
// Options.RequestsPerMinute enables a token-bucket limiter
// (golang.org/x/time/rate). A request waits for a token before it is sent; a
// context that ends first fails the request with a *NetworkError.
//
// # Testing Considerations
//
// Use httptest.Server and pass its URL as BaseURL. Views depend on the Fetcher
// interface, so they can also be driven by in-memory fakes.
package ebird
