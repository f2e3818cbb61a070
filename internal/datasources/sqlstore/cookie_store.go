package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/claraboia/jcreader/internal/datasources"
)

var (
	_ datasources.KeyValueStore = (*CookieStore)(nil)
	_ datasources.KeyLister     = (*CookieStore)(nil)
)

// DefaultCookieMaxAge is the expiry horizon for cookies set without one.
const DefaultCookieMaxAge = 365 * 24 * time.Hour

const rootPath = "/"

// CookieStore is the cookie tier. It stands in for the browser cookie jar:
// values written through the key/value interface are query-escaped and expire
// after MaxAge, and expired rows read as absent.
type CookieStore struct {
	db     *DB
	maxAge time.Duration
	now    func() time.Time
}

func NewCookieStore(db *DB, maxAge time.Duration) *CookieStore {
	if maxAge <= 0 {
		maxAge = DefaultCookieMaxAge
	}
	return &CookieStore{db: db, maxAge: maxAge, now: time.Now}
}

func (s *CookieStore) GetValue(ctx context.Context, key string) (string, bool, error) {
	c, ok, err := s.getCookie(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}

	value, err := url.QueryUnescape(c.Value)
	if err != nil {
		return "", false, fmt.Errorf("unescaping cookie [%s]: %w", key, err)
	}
	return value, true, nil
}

func (s *CookieStore) SetValue(ctx context.Context, key, value string) error {
	return s.SetCookie(ctx, &http.Cookie{
		Name:    key,
		Value:   url.QueryEscape(value),
		Path:    rootPath,
		Expires: s.now().Add(s.maxAge),
	})
}

func (s *CookieStore) DeleteValue(ctx context.Context, key string) error {
	del := s.db.Flavor.NewDeleteBuilder()
	del.DeleteFrom(cookiesTable).Where(del.Equal("cookie_name", key))

	query, args := del.Build()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting cookie [%s]: %w", key, err)
	}
	return nil
}

// SetCookie stores c with its value as given. A negative MaxAge deletes the
// cookie; a cookie with no expiry gets the store's default horizon.
func (s *CookieStore) SetCookie(ctx context.Context, c *http.Cookie) error {
	if c.MaxAge < 0 {
		return s.DeleteValue(ctx, c.Name)
	}

	expires := c.Expires
	switch {
	case c.MaxAge > 0:
		expires = s.now().Add(time.Duration(c.MaxAge) * time.Second)
	case expires.IsZero():
		expires = s.now().Add(s.maxAge)
	}

	path := c.Path
	if path == "" {
		path = rootPath
	}

	ib := s.db.Flavor.NewInsertBuilder()
	ib.ReplaceInto(cookiesTable).
		Cols("cookie_name", "cookie_value", "cookie_path", "expires_at").
		Values(c.Name, c.Value, path, expires.Unix())

	query, args := ib.Build()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("writing cookie [%s]: %w", c.Name, err)
	}
	return nil
}

// ListCookies returns every unexpired cookie, raw values included.
func (s *CookieStore) ListCookies(ctx context.Context) ([]*http.Cookie, error) {
	sb := s.db.Flavor.NewSelectBuilder()
	sb.Select("cookie_name", "cookie_value", "cookie_path", "expires_at").
		From(cookiesTable).
		Where(sb.GreaterThan("expires_at", s.now().Unix())).
		OrderBy("cookie_name")

	query, args := sb.Build()
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing cookies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cookies []*http.Cookie
	for rows.Next() {
		var (
			c         http.Cookie
			expiresAt int64
		)
		if err := rows.Scan(&c.Name, &c.Value, &c.Path, &expiresAt); err != nil {
			return nil, fmt.Errorf("scanning cookie: %w", err)
		}
		c.Expires = time.Unix(expiresAt, 0)
		cookies = append(cookies, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cookies: %w", err)
	}
	return cookies, nil
}

func (s *CookieStore) ListKeys(ctx context.Context) ([]string, error) {
	cookies, err := s.ListCookies(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(cookies))
	for _, c := range cookies {
		keys = append(keys, c.Name)
	}
	return keys, nil
}

func (s *CookieStore) getCookie(ctx context.Context, name string) (*http.Cookie, bool, error) {
	sb := s.db.Flavor.NewSelectBuilder()
	sb.Select("cookie_value", "cookie_path", "expires_at").
		From(cookiesTable).
		Where(
			sb.Equal("cookie_name", name),
			sb.GreaterThan("expires_at", s.now().Unix()),
		)

	query, args := sb.Build()
	c := &http.Cookie{Name: name}
	var expiresAt int64
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&c.Value, &c.Path, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cookie [%s]: %w", name, err)
	}
	c.Expires = time.Unix(expiresAt, 0)
	return c, true, nil
}
