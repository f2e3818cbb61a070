package command

import (
	"context"
	"slices"

	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
)

var inspectedKeys = []string{
	domain.PreferencesKey,
	domain.SavedArticlesKey,
	domain.SearchHistoryKey,
	domain.ReadingVersionKey,
}

var _ Command[Empty, []domain.StorageRecord] = (*InspectTiers)(nil)

// InspectTiers lists what each client tier holds for the known keys. Values
// are returned raw, including ones that would fail to parse.
type InspectTiers struct {
	CookieStore datasources.KeyValueStore
	LocalStore  datasources.KeyValueStore
}

func (c *InspectTiers) Execute(ctx context.Context, _ Empty) ([]domain.StorageRecord, error) {
	logger := domain.LoggerFromContext(ctx)

	var records []domain.StorageRecord
	for _, t := range []clientTier{
		{Tier: domain.TierCookie, Store: c.CookieStore},
		{Tier: domain.TierLocal, Store: c.LocalStore},
	} {
		if t.Store == nil {
			continue
		}
		for _, key := range presentKeys(ctx, t) {
			value, ok, err := t.Store.GetValue(ctx, key)
			if err != nil {
				logger.WarnContext(ctx, "failed to read tier", "error", err, "tier", t.Tier, "key", key)
				continue
			}
			if ok {
				records = append(records, domain.StorageRecord{Tier: t.Tier, Key: key, Value: value})
			}
		}
	}
	return records, nil
}

// presentKeys narrows the known keys to those a listable store holds, so
// absent keys are not read one by one. Other stores get every known key.
func presentKeys(ctx context.Context, t clientTier) []string {
	lister, ok := t.Store.(datasources.KeyLister)
	if !ok {
		return inspectedKeys
	}

	stored, err := lister.ListKeys(ctx)
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to list tier keys, reading every known key",
			"error", err, "tier", t.Tier)
		return inspectedKeys
	}

	var keys []string
	for _, key := range inspectedKeys {
		if slices.Contains(stored, key) {
			keys = append(keys, key)
		}
	}
	return keys
}
