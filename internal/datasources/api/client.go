// Package api provides an HTTP client for the news site's endpoints.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/claraboia/jcreader/internal/datasources"
)

var (
	_ datasources.PreferenceServer  = (*Client)(nil)
	_ datasources.SessionFetcher    = (*Client)(nil)
	_ datasources.Authenticator     = (*Client)(nil)
	_ datasources.SessionPersister  = (*Client)(nil)
	_ datasources.FeedbackSubmitter = (*Client)(nil)
)

var (
	// ErrServerRejected is returned when the site answers with success false.
	ErrServerRejected = errors.New("server rejected request")
	// ErrUnexpectedResponse is returned for non-2xx statuses and bodies that
	// do not have the expected shape.
	ErrUnexpectedResponse = errors.New("unexpected server response")
)

const (
	sessionCookieName = "sessionid"
	csrfCookieName    = "csrftoken"
	csrfHeader        = "X-CSRFToken"
	csrfFormField     = "csrfmiddlewaretoken"
)

// serverCookies are the cookies the site issues. Only these are carried
// between runs; client-tier cookies are owned by the cookie store.
var serverCookies = []string{sessionCookieName, csrfCookieName}

// CookiePersister stores the site's cookies between runs.
type CookiePersister interface {
	SetCookie(ctx context.Context, c *http.Cookie) error
	ListCookies(ctx context.Context) ([]*http.Cookie, error)
}

// Client talks to the site the way its pages' scripts do: cookie session,
// CSRF header and JSON bodies.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	jar        http.CookieJar
	persister  CookiePersister

	mu            sync.Mutex
	formCSRFToken string
}

// NewClient creates a client for the site at baseURL. persister may be nil,
// in which case the session lives only as long as the process.
func NewClient(baseURL string, persister CookiePersister) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base URL must be http or https, got [%s]", baseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	return &Client{
		baseURL: u,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
		jar:       jar,
		persister: persister,
	}, nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL.String() + path
}

func (c *Client) rootURL() *url.URL {
	u := *c.baseURL
	u.Path = "/"
	return &u
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// withCSRF adds the headers Django's CSRF check wants on unsafe methods.
func (c *Client) withCSRF(req *http.Request) {
	if token := c.csrfToken(); token != "" {
		req.Header.Set(csrfHeader, token)
	}
	req.Header.Set("Referer", c.rootURL().String())
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	return resp, nil
}

func (c *Client) csrfToken() string {
	if v := c.cookie(csrfCookieName); v != "" {
		return v
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.formCSRFToken
}

func (c *Client) cookie(name string) string {
	for _, ck := range c.jar.Cookies(c.rootURL()) {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}

// decodeJSON decodes the body into result when the status is 2xx.
func decodeJSON(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w (status %d): %s", ErrUnexpectedResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: decoding body: %v", ErrUnexpectedResponse, err)
	}
	return nil
}

// decodeFormJSON decodes the body of a form submission. The site answers
// validation failures with a 4xx status and a JSON body, so the body is
// decoded for those too.
func decodeFormJSON(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w (status %d)", ErrUnexpectedResponse, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w (status %d): decoding body: %v", ErrUnexpectedResponse, resp.StatusCode, err)
	}
	return nil
}
