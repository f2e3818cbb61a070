package command

import (
	"context"

	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
)

var _ Command[domain.Session, domain.StringSet] = (*LoadPreferences)(nil)

// LoadPreferences resolves the reader's preference set from the tier the
// session makes authoritative. A server read that succeeds is written
// through to the client tiers; one that fails falls back to them.
type LoadPreferences struct {
	PreferenceFetcher datasources.PreferenceFetcher
	CookieStore       datasources.KeyValueStore
	LocalStore        datasources.KeyValueStore
	LocalLoader       Command[Empty, domain.StringSet]
}

// Execute never fails; every server problem ends in the client-tier read.
func (c *LoadPreferences) Execute(ctx context.Context, session domain.Session) (domain.StringSet, error) {
	logger := domain.LoggerFromContext(ctx)

	if session.AuthoritativeTier() != domain.TierServer || c.PreferenceFetcher == nil {
		return c.LocalLoader.Execute(ctx, Empty{})
	}

	categories, err := c.PreferenceFetcher.FetchPreferences(ctx)
	if err != nil {
		logger.WarnContext(ctx, "failed to load preferences from server, falling back to client tiers",
			"error", err)
		return c.LocalLoader.Execute(ctx, Empty{})
	}

	set := domain.NewStringSet(categories...)
	fanOut(ctx, domain.PreferencesKey, set,
		clientTier{Tier: domain.TierCookie, Store: c.CookieStore},
		clientTier{Tier: domain.TierLocal, Store: c.LocalStore},
	)
	return set, nil
}
