package pokeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fetcher retrieves a species record by name. *Client implements it; the
// presenter depends on this interface so tests can substitute a mock.
type Fetcher interface {
	FetchSubjectInfo(ctx context.Context, name string) (SubjectInfo, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the PokeAPI HTTP API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

const (
	// DefaultBaseURL is the public PokeAPI v2 root.
	DefaultBaseURL = "https://pokeapi.co/api/v2"
	// DefaultTimeout bounds a single lookup when the config does not override it.
	DefaultTimeout = 10 * time.Second

	pokemonPath = "pokemon"
)

// Options configure a Client.
type Options struct {
	BaseURL string        // empty uses DefaultBaseURL
	Timeout time.Duration // zero disables the client-side timeout
	// HTTPClient overrides the transport; Timeout is ignored when set.
	HTTPClient *http.Client
}

// NewClient builds a Client for the given options.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{baseURL: base, http: httpClient}, nil
}

// LookupURL returns the request URL for name. The catalog is case-sensitive
// on the path segment and only knows lower-case names. The name always stays
// a single segment: slashes and dot segments are escaped.
func (c *Client) LookupURL(name string) string {
	segment := strings.ToLower(name)
	base := strings.TrimSuffix(c.baseURL.Path, "/") + "/" + pokemonPath + "/"
	rawBase := strings.TrimSuffix(c.baseURL.EscapedPath(), "/") + "/" + pokemonPath + "/"

	u := *c.baseURL
	u.Path = base + segment
	u.RawPath = rawBase + escapeSegment(segment)
	return u.String()
}

// escapeSegment path-escapes s. "." and ".." are escaped too, since
// url.PathEscape leaves them alone and they would resolve to a parent.
func escapeSegment(s string) string {
	if s == "." || s == ".." {
		return strings.Repeat("%2E", len(s))
	}
	return url.PathEscape(s)
}

// FetchSubjectInfo performs one GET for name and shapes the response. It never
// returns a partial record: any failure is a *Error.
func (c *Client) FetchSubjectInfo(ctx context.Context, name string) (SubjectInfo, error) {
	if c == nil {
		return SubjectInfo{}, fmt.Errorf("client is nil")
	}
	if name == "" {
		return SubjectInfo{}, fmt.Errorf("species name required")
	}

	reqURL := c.LookupURL(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return SubjectInfo{}, transportError(reqURL, fmt.Errorf("create request: %w", err))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return SubjectInfo{}, transportError(reqURL, fmt.Errorf("execute request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return SubjectInfo{}, statusError(reqURL, resp.StatusCode)
	}

	info, err := decodeSubjectInfo(resp.Body)
	if err != nil {
		return SubjectInfo{}, parseError(reqURL, err)
	}
	return info, nil
}

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
		return nil, fmt.Errorf("parse api_base_url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_base_url %q: missing host", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
