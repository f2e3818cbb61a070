package command

import (
	"context"
	"errors"

	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
)

// ErrNotPersisted is returned when a save reached no tier at all.
var ErrNotPersisted = errors.New("preferences were not persisted to any tier")

const (
	NoticeSavedToServer = "Preferências salvas com sucesso!"
	NoticeSavedLocally  = "Preferências salvas localmente!"
)

// SaveOutcome says which tier ended up authoritative for a save.
type SaveOutcome string

const (
	SaveOutcomeServer SaveOutcome = "server"
	SaveOutcomeLocal  SaveOutcome = "local"
)

type SavePreferencesRequest struct {
	Session    domain.Session
	Categories domain.StringSet
}

type SavePreferencesResult struct {
	Outcome SaveOutcome
	// Degraded is set when the reader is logged in but the server write
	// failed, so the preferences only live on this device.
	Degraded bool
	Notice   string
	Tiers    []domain.Tier
}

var _ Command[SavePreferencesRequest, SavePreferencesResult] = (*SavePreferences)(nil)

// SavePreferences persists a preference set wholesale. The client tiers are
// always written; logged-in readers also get a server write.
type SavePreferences struct {
	PreferenceSetter datasources.PreferenceSetter
	CookieStore      datasources.KeyValueStore
	LocalStore       datasources.KeyValueStore
}

func (c *SavePreferences) Execute(ctx context.Context, req SavePreferencesRequest) (SavePreferencesResult, error) {
	logger := domain.LoggerFromContext(ctx)
	set := domain.NewStringSet(req.Categories...)

	tiers := fanOut(ctx, domain.PreferencesKey, set,
		clientTier{Tier: domain.TierCookie, Store: c.CookieStore},
		clientTier{Tier: domain.TierLocal, Store: c.LocalStore},
	)

	result := SavePreferencesResult{
		Outcome: SaveOutcomeLocal,
		Notice:  NoticeSavedToServer,
	}

	if req.Session.Authenticated {
		if err := c.setOnServer(ctx, set); err != nil {
			logger.WarnContext(ctx, "failed to save preferences to server, kept on this device", "error", err)
			result.Degraded = true
			result.Notice = NoticeSavedLocally
		} else {
			result.Outcome = SaveOutcomeServer
			tiers = append([]domain.Tier{domain.TierServer}, tiers...)
		}
	}

	result.Tiers = tiers
	if len(tiers) == 0 {
		return result, ErrNotPersisted
	}
	return result, nil
}

func (c *SavePreferences) setOnServer(ctx context.Context, set domain.StringSet) error {
	if c.PreferenceSetter == nil {
		return datasources.ErrOffline
	}
	return c.PreferenceSetter.SetPreferences(ctx, set.Items())
}
