package github

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"time"

	errs "github.com/matzehuels/trending/pkg/errors"
	"github.com/matzehuels/trending/pkg/integrations"
	"github.com/matzehuels/trending/pkg/trending"
)

const (
	// DefaultBaseURL is the origin serving the trending pages.
	DefaultBaseURL = trending.Origin

	// DefaultUserAgent identifies the client as a desktop browser. GitHub
	// serves a different (or no) listing to clients that do not.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

// Options configures a [Client]. Zero values select the defaults.
type Options struct {
	BaseURL   string        // Origin of the trending pages (default DefaultBaseURL)
	UserAgent string        // User-Agent header (default DefaultUserAgent)
	Timeout   time.Duration // HTTP client timeout; 0 keeps transport defaults
}

// Client fetches GitHub Trending pages.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a trending page client.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	headers := map[string]string{
		"User-Agent": opts.UserAgent,
		"Accept":     "text/html,application/xhtml+xml",
	}

	return &Client{
		Client:  integrations.NewClient(opts.Timeout, headers),
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
	}
}

// BaseURL returns the origin the client fetches from.
func (c *Client) BaseURL() string { return c.baseURL }

// TrendingURL returns the trending page URL for language.
func (c *Client) TrendingURL(language string) string {
	return c.baseURL + "/trending/" + url.PathEscape(language)
}

// Fetch issues a single GET for the trending page of language and returns
// the raw HTML. A 404 is reported with code LANGUAGE_NOT_FOUND, every other
// failure with NETWORK_ERROR (or TIMEOUT). Context cancellation is returned
// unwrapped.
func (c *Client) Fetch(ctx context.Context, language string) (string, error) {
	if err := errs.ValidateLanguage(language); err != nil {
		return "", err
	}

	u := c.TrendingURL(language)
	body, err := c.GetText(ctx, u, nil)
	switch {
	case err == nil:
		return body, nil
	case errors.Is(err, context.Canceled):
		return "", err
	case errors.Is(err, integrations.ErrNotFound):
		return "", errs.Wrap(errs.ErrCodeLanguageNotFound, err, "language %q not found on GitHub Trending", language)
	case isTimeout(err):
		return "", errs.Wrap(errs.ErrCodeTimeout, err, "timed out fetching %s", u)
	default:
		return "", errs.Wrap(errs.ErrCodeNetwork, err, "failed to fetch %s", u)
	}
}

// Trending fetches the page for language and extracts its repositories.
func (c *Client) Trending(ctx context.Context, language string) ([]trending.Repository, error) {
	body, err := c.Fetch(ctx, language)
	if err != nil {
		return nil, err
	}
	repos, err := trending.ExtractContext(ctx, strings.NewReader(body), c.baseURL)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "failed to parse trending page")
	}
	return repos, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
