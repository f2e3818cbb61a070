package command

import (
	"context"
	"fmt"

	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
)

// clientTier is one client-side storage tier. A nil Store means the tier is
// not available and every operation on it is skipped.
type clientTier struct {
	Tier  domain.Tier
	Store datasources.KeyValueStore
}

// loadSet reads a set from a client tier ahead of a read-modify-write.
// Missing keys and malformed values are reported as absent. A failed read is
// returned, so the caller never overwrites a value it could not see.
func loadSet(ctx context.Context, t clientTier, key string) (domain.StringSet, bool, error) {
	if t.Store == nil {
		return nil, false, nil
	}

	raw, ok, err := t.Store.GetValue(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("reading %s from %s tier: %w", key, t.Tier, err)
	}
	if !ok {
		return nil, false, nil
	}

	set, err := domain.DecodeStringList(raw)
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "stored set is malformed, treating as absent",
			"error", err, "tier", t.Tier, "key", key)
		return nil, false, nil
	}
	return set, true, nil
}

// readSet is loadSet for read-only callers: storage errors are logged and
// reported as absent too.
func readSet(ctx context.Context, t clientTier, key string) (domain.StringSet, bool) {
	set, ok, err := loadSet(ctx, t, key)
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to read stored set, treating as absent",
			"error", err, "tier", t.Tier, "key", key)
		return nil, false
	}
	return set, ok
}

func writeSet(ctx context.Context, t clientTier, key string, set domain.StringSet) error {
	if t.Store == nil {
		return fmt.Errorf("%s tier not available", t.Tier)
	}

	value, err := domain.EncodeStringList(set)
	if err != nil {
		return err
	}
	if err := t.Store.SetValue(ctx, key, value); err != nil {
		return fmt.Errorf("writing %s to %s tier: %w", key, t.Tier, err)
	}
	return nil
}

// fanOut writes set to each tier independently. Failures are logged and do
// not stop the remaining writes. It returns the tiers that were written.
func fanOut(ctx context.Context, key string, set domain.StringSet, tiers ...clientTier) []domain.Tier {
	logger := domain.LoggerFromContext(ctx)

	var written []domain.Tier
	for _, t := range tiers {
		if t.Store == nil {
			logger.DebugContext(ctx, "tier not available, skipping write", "tier", t.Tier, "key", key)
			continue
		}
		if err := writeSet(ctx, t, key, set); err != nil {
			logger.WarnContext(ctx, "failed to write set to tier", "error", err, "tier", t.Tier, "key", key)
			continue
		}
		written = append(written, t.Tier)
	}
	return written
}

// deleteFrom removes key from each tier independently, returning the tiers
// that were cleared.
func deleteFrom(ctx context.Context, key string, tiers ...clientTier) []domain.Tier {
	logger := domain.LoggerFromContext(ctx)

	var cleared []domain.Tier
	for _, t := range tiers {
		if t.Store == nil {
			continue
		}
		if err := t.Store.DeleteValue(ctx, key); err != nil {
			logger.WarnContext(ctx, "failed to delete key from tier", "error", err, "tier", t.Tier, "key", key)
			continue
		}
		cleared = append(cleared, t.Tier)
	}
	return cleared
}
