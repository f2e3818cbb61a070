package command

import (
	"context"
	"fmt"

	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
)

const ClearPreferencesPrompt = "Deseja remover todas as preferências e ver todas as notícias?"

type ClearPreferencesResult struct {
	Confirmed bool
	// Cleared lists the tiers that no longer hold preferences.
	Cleared []domain.Tier
}

var _ Command[domain.Session, ClearPreferencesResult] = (*ClearAllPreferences)(nil)

// ClearAllPreferences removes the preference set from every tier once the
// reader confirms. Each deletion stands alone: a failing tier neither blocks
// nor rolls back the others.
type ClearAllPreferences struct {
	Confirmer        datasources.Confirmer
	PreferenceSetter datasources.PreferenceSetter
	CookieStore      datasources.KeyValueStore
	LocalStore       datasources.KeyValueStore
}

func (c *ClearAllPreferences) Execute(ctx context.Context, session domain.Session) (ClearPreferencesResult, error) {
	logger := domain.LoggerFromContext(ctx)

	if c.Confirmer == nil {
		logger.DebugContext(ctx, "no confirmer available, not clearing preferences")
		return ClearPreferencesResult{}, nil
	}

	confirmed, err := c.Confirmer.Confirm(ctx, ClearPreferencesPrompt)
	if err != nil {
		return ClearPreferencesResult{}, fmt.Errorf("asking for confirmation: %w", err)
	}
	if !confirmed {
		return ClearPreferencesResult{}, nil
	}

	cleared := deleteFrom(ctx, domain.PreferencesKey,
		clientTier{Tier: domain.TierCookie, Store: c.CookieStore},
		clientTier{Tier: domain.TierLocal, Store: c.LocalStore},
	)

	if session.Authenticated && c.PreferenceSetter != nil {
		if err := c.PreferenceSetter.SetPreferences(ctx, []string{}); err != nil {
			logger.WarnContext(ctx, "failed to clear preferences on server", "error", err)
		} else {
			cleared = append(cleared, domain.TierServer)
		}
	}

	return ClearPreferencesResult{Confirmed: true, Cleared: cleared}, nil
}
