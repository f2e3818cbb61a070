package datasources

import (
	"context"
	"errors"
)

// ErrOffline is returned by collaborators that have no server to talk to.
var ErrOffline = errors.New("no server configured")

// PreferenceServer is the authoritative preference store for logged-in readers.
type PreferenceServer interface {
	PreferenceFetcher
	PreferenceSetter
}

type PreferenceFetcher interface {
	FetchPreferences(ctx context.Context) ([]string, error)
}

type PreferenceSetter interface {
	SetPreferences(ctx context.Context, categories []string) error
}

// NullPreferenceServer is used when no site is configured. Every call fails,
// which sends callers down their client-tier fallback.
type NullPreferenceServer struct{}

var _ PreferenceServer = NullPreferenceServer{}

func (NullPreferenceServer) FetchPreferences(_ context.Context) ([]string, error) {
	return nil, ErrOffline
}

func (NullPreferenceServer) SetPreferences(_ context.Context, _ []string) error {
	return ErrOffline
}

// Confirmer asks the reader a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}
