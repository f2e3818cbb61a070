package command

import (
	"context"

	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
)

var _ Command[Empty, domain.StringSet] = (*LoadLocalPreferences)(nil)

// LoadLocalPreferences resolves the preference set from the client tiers.
// The cookie tier wins over the local tier, and a cookie value is copied
// into the local tier when it is read.
type LoadLocalPreferences struct {
	CookieStore datasources.KeyValueStore
	LocalStore  datasources.KeyValueStore
}

// Execute never fails. With nothing usable stored it returns the empty set.
func (c *LoadLocalPreferences) Execute(ctx context.Context, _ Empty) (domain.StringSet, error) {
	logger := domain.LoggerFromContext(ctx)
	cookie := clientTier{Tier: domain.TierCookie, Store: c.CookieStore}
	local := clientTier{Tier: domain.TierLocal, Store: c.LocalStore}

	if set, ok := readSet(ctx, cookie, domain.PreferencesKey); ok {
		if c.LocalStore != nil {
			if err := writeSet(ctx, local, domain.PreferencesKey, set); err != nil {
				logger.WarnContext(ctx, "failed to migrate cookie preferences to local tier", "error", err)
			}
		}
		return set, nil
	}

	if set, ok := readSet(ctx, local, domain.PreferencesKey); ok {
		return set, nil
	}

	return domain.StringSet{}, nil
}
