package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
)

var (
	_ Command[domain.Credentials, domain.AuthResult]  = (*Login)(nil)
	_ Command[domain.Registration, domain.AuthResult] = (*Register)(nil)
	_ Command[Empty, Empty]                           = (*Logout)(nil)
)

// Login validates the credentials and signs in. A successful login has its
// session cookies persisted for later runs.
type Login struct {
	Authenticator    datasources.Authenticator
	SessionPersister datasources.SessionPersister
}

func (c *Login) Execute(ctx context.Context, credentials domain.Credentials) (domain.AuthResult, error) {
	credentials.Email = strings.TrimSpace(credentials.Email)
	if err := validateForm(credentials); err != nil {
		return domain.AuthResult{}, err
	}

	result, err := c.Authenticator.Login(ctx, credentials)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("logging in: %w", err)
	}
	if result.Success {
		persistSession(ctx, c.SessionPersister)
	}
	return result, nil
}

type Register struct {
	Authenticator    datasources.Authenticator
	SessionPersister datasources.SessionPersister
}

func (c *Register) Execute(ctx context.Context, registration domain.Registration) (domain.AuthResult, error) {
	registration.Name = strings.TrimSpace(registration.Name)
	registration.Email = strings.TrimSpace(registration.Email)
	if err := validateForm(registration); err != nil {
		return domain.AuthResult{}, err
	}

	result, err := c.Authenticator.Register(ctx, registration)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("registering: %w", err)
	}
	if result.Success {
		persistSession(ctx, c.SessionPersister)
	}
	return result, nil
}

type Logout struct {
	Authenticator    datasources.Authenticator
	SessionPersister datasources.SessionPersister
}

func (c *Logout) Execute(ctx context.Context, _ Empty) (Empty, error) {
	if err := c.Authenticator.Logout(ctx); err != nil {
		return Empty{}, fmt.Errorf("logging out: %w", err)
	}
	persistSession(ctx, c.SessionPersister)
	return Empty{}, nil
}

func persistSession(ctx context.Context, persister datasources.SessionPersister) {
	if persister == nil {
		return
	}
	if err := persister.PersistSession(ctx); err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx,
			"failed to persist session cookies, the next run will start logged out", "error", err)
	}
}
