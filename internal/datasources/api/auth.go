package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/claraboia/jcreader/internal/domain"
)

const (
	loginPath    = "/login/"
	registerPath = "/cadastro/"
	logoutPath   = "/logout/"
)

// authResponse is the site's login/registration answer. Field errors arrive
// either as a single message or as a list of messages per field.
type authResponse struct {
	Success     bool                       `json:"success"`
	Message     string                     `json:"message"`
	RedirectURL string                     `json:"redirect_url"`
	Errors      map[string]json.RawMessage `json:"errors"`
}

func (r authResponse) toDomain() domain.AuthResult {
	result := domain.AuthResult{
		Success:     r.Success,
		Message:     r.Message,
		RedirectURL: r.RedirectURL,
	}
	if len(r.Errors) == 0 {
		return result
	}

	result.Errors = make(map[string][]string, len(r.Errors))
	for field, raw := range r.Errors {
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil {
			result.Errors[field] = list
			continue
		}
		var single string
		if err := json.Unmarshal(raw, &single); err == nil {
			result.Errors[field] = []string{single}
		}
	}
	return result
}

// Login posts the login form. A refused login is a result with Success
// false, not an error.
func (c *Client) Login(ctx context.Context, credentials domain.Credentials) (domain.AuthResult, error) {
	form := url.Values{}
	form.Set("email", strings.TrimSpace(credentials.Email))
	form.Set("senha", credentials.Password)
	if token := c.csrfToken(); token != "" {
		form.Set(csrfFormField, token)
	}

	req, err := c.newRequest(ctx, http.MethodPost, loginPath, strings.NewReader(form.Encode()))
	if err != nil {
		return domain.AuthResult{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	c.withCSRF(req)

	return c.doAuth(req, "logging in")
}

// Register posts the registration form as JSON.
func (c *Client) Register(ctx context.Context, registration domain.Registration) (domain.AuthResult, error) {
	registration.Name = strings.TrimSpace(registration.Name)
	registration.Email = strings.TrimSpace(registration.Email)

	body, err := json.Marshal(registration)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("marshaling registration: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, registerPath, bytes.NewReader(body))
	if err != nil {
		return domain.AuthResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	c.withCSRF(req)

	return c.doAuth(req, "registering")
}

func (c *Client) doAuth(req *http.Request, action string) (domain.AuthResult, error) {
	resp, err := c.do(req)
	if err != nil {
		return domain.AuthResult{}, err
	}

	var result authResponse
	if err := decodeFormJSON(resp, &result); err != nil {
		return domain.AuthResult{}, fmt.Errorf("%s: %w", action, err)
	}
	return result.toDomain(), nil
}

// Logout ends the server session. The site redirects afterwards, which the
// client follows.
func (c *Client) Logout(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, logoutPath, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/html")

	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("logging out: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("logging out: %w (status %d)", ErrUnexpectedResponse, resp.StatusCode)
	}

	// The site clears the session cookie; drop it locally too in case the
	// response did not.
	c.jar.SetCookies(c.rootURL(), []*http.Cookie{{Name: sessionCookieName, Path: "/", MaxAge: -1}})
	return nil
}
