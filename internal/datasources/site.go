package datasources

import (
	"context"

	"github.com/claraboia/jcreader/internal/domain"
)

type SessionFetcher interface {
	FetchSession(ctx context.Context) (domain.Session, error)
}

type Authenticator interface {
	Login(ctx context.Context, credentials domain.Credentials) (domain.AuthResult, error)
	Register(ctx context.Context, registration domain.Registration) (domain.AuthResult, error)
	Logout(ctx context.Context) error
}

// SessionPersister saves the server-issued cookies so the next run reuses
// the login.
type SessionPersister interface {
	PersistSession(ctx context.Context) error
}

type FeedbackSubmitter interface {
	SubmitFeedback(ctx context.Context, feedback domain.Feedback) (domain.FeedbackReceipt, error)
}

// NullSessionFetcher always reports an anonymous session.
type NullSessionFetcher struct{}

var _ SessionFetcher = NullSessionFetcher{}

func (NullSessionFetcher) FetchSession(_ context.Context) (domain.Session, error) {
	return domain.Session{}, nil
}

// NullSite stands in for the site when none is configured. Every account
// call fails with ErrOffline; persisting a session is a no-op.
type NullSite struct{}

var (
	_ Authenticator     = NullSite{}
	_ FeedbackSubmitter = NullSite{}
	_ SessionPersister  = NullSite{}
)

func (NullSite) Login(_ context.Context, _ domain.Credentials) (domain.AuthResult, error) {
	return domain.AuthResult{}, ErrOffline
}

func (NullSite) Register(_ context.Context, _ domain.Registration) (domain.AuthResult, error) {
	return domain.AuthResult{}, ErrOffline
}

func (NullSite) Logout(_ context.Context) error {
	return ErrOffline
}

func (NullSite) SubmitFeedback(_ context.Context, _ domain.Feedback) (domain.FeedbackReceipt, error) {
	return domain.FeedbackReceipt{}, ErrOffline
}

func (NullSite) PersistSession(_ context.Context) error {
	return nil
}
