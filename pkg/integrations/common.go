package integrations

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/matzehuels/pipseek/pkg/buildinfo"
)

const httpTimeout = 5 * time.Second

// userAgent identifies this client to the remote services.
var userAgent = "pipseek/" + buildinfo.Version

var (
	// ErrNotFound is returned when a package or resource doesn't exist upstream.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors,
	// unexpected response statuses).
	ErrNetwork = errors.New("network error")

	// ErrRateLimited is returned when the remote service denies the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrParse is returned when an expected structure is absent from a response.
	ErrParse = errors.New("unexpected response structure")
)

// RepoMetrics holds repository popularity counters fetched from a code host.
// Both counts are always present when a RepoMetrics exists; fields the API
// omits default to zero.
type RepoMetrics struct {
	Stars int `json:"stars"` // Stargazer count
	Forks int `json:"forks"` // Fork count
}

// NewHTTPClient creates an HTTP client with the standard per-request timeout
// and a cookie jar. The jar matters: the search index hands out a session
// cookie once its proof-of-work challenge is answered, and subsequent fetches
// must present it.
func NewHTTPClient() *http.Client {
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	return &http.Client{Timeout: httpTimeout, Jar: jar}
}

// IsTimeout reports whether err was caused by a request exceeding its deadline.
func IsTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// IsTransient reports whether err is a timeout or connection-level failure,
// as opposed to an HTTP status or response-shape error. Retry policies use
// this to qualify errors; statuses never qualify.
func IsTransient(err error) bool {
	return IsTimeout(err) || errors.As(err, new(*url.Error))
}

// URLEncode percent-encodes a string for use in URLs.
// This is a convenience wrapper around [url.QueryEscape].
func URLEncode(s string) string { return url.QueryEscape(s) }
