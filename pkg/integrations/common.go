package integrations

import (
	"errors"
	"net/http"
	"time"
)

var (
	// ErrNotFound is returned when the upstream responds with 404.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for transport failures and non-2xx responses other than 404.
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client. A zero timeout means no client-side
// limit beyond the transport defaults.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
