package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/claraboia/jcreader/internal/domain"
)

type pageMarkup struct {
	authenticatedFlag string
	csrfToken         string
}

// FetchSession loads the home page and reads the server-rendered
// authentication flag from its body element. The CSRF token in the page's
// forms is kept for later form posts.
func (c *Client) FetchSession(ctx context.Context) (domain.Session, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return domain.Session{}, err
	}
	req.Header.Set("Accept", "text/html")

	resp, err := c.do(req)
	if err != nil {
		return domain.Session{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Session{}, fmt.Errorf("%w (status %d)", ErrUnexpectedResponse, resp.StatusCode)
	}

	page, err := parsePage(resp.Body)
	if err != nil {
		return domain.Session{}, err
	}

	if page.csrfToken != "" {
		c.mu.Lock()
		c.formCSRFToken = page.csrfToken
		c.mu.Unlock()
	}

	return domain.Session{
		Authenticated: domain.ParseAuthenticatedFlag(page.authenticatedFlag),
	}, nil
}

func parsePage(r io.Reader) (pageMarkup, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return pageMarkup{}, fmt.Errorf("parsing page markup: %w", err)
	}

	var page pageMarkup
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Body:
				page.authenticatedFlag = attr(n, domain.AuthenticatedFlagAttribute)
			case atom.Input:
				if page.csrfToken == "" && attr(n, "name") == csrfFormField {
					page.csrfToken = attr(n, "value")
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return page, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// RestoreCookies loads the site's cookies saved by a previous run into the
// client's jar.
func (c *Client) RestoreCookies(ctx context.Context) error {
	if c.persister == nil {
		return nil
	}

	stored, err := c.persister.ListCookies(ctx)
	if err != nil {
		return fmt.Errorf("listing stored cookies: %w", err)
	}

	var restore []*http.Cookie
	for _, ck := range stored {
		if slices.Contains(serverCookies, ck.Name) {
			restore = append(restore, &http.Cookie{Name: ck.Name, Value: ck.Value, Path: "/"})
		}
	}
	if len(restore) > 0 {
		c.jar.SetCookies(c.rootURL(), restore)
	}
	return nil
}

// PersistSession saves the site's cookies from the jar. Server cookies the
// jar no longer holds, such as the session after a logout, are removed.
func (c *Client) PersistSession(ctx context.Context) error {
	if c.persister == nil {
		return nil
	}

	for _, name := range serverCookies {
		value := c.cookie(name)
		ck := &http.Cookie{Name: name, Value: value, Path: "/"}
		if value == "" {
			ck.MaxAge = -1
		}
		if err := c.persister.SetCookie(ctx, ck); err != nil {
			return fmt.Errorf("persisting cookie [%s]: %w", name, err)
		}
	}
	return nil
}
