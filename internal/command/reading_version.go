package command

import (
	"context"
	"fmt"

	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
)

var (
	_ Command[Empty, domain.ReadingVersion]                 = (*GetReadingVersion)(nil)
	_ Command[domain.ReadingVersion, domain.ReadingVersion] = (*SetReadingVersion)(nil)
)

// GetReadingVersion reads the preferred article length from the local tier,
// defaulting to the full version.
type GetReadingVersion struct {
	LocalStore datasources.KeyValueStore
}

func (c *GetReadingVersion) Execute(ctx context.Context, _ Empty) (domain.ReadingVersion, error) {
	if c.LocalStore == nil {
		return domain.ReadingVersionFull, nil
	}

	raw, ok, err := c.LocalStore.GetValue(ctx, domain.ReadingVersionKey)
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to read reading version, using default",
			"error", err)
		return domain.ReadingVersionFull, nil
	}

	if ok && domain.ReadingVersion(raw) == domain.ReadingVersionShort {
		return domain.ReadingVersionShort, nil
	}
	return domain.ReadingVersionFull, nil
}

type SetReadingVersion struct {
	LocalStore datasources.KeyValueStore
}

func (c *SetReadingVersion) Execute(ctx context.Context, version domain.ReadingVersion) (domain.ReadingVersion, error) {
	if version != domain.ReadingVersionShort && version != domain.ReadingVersionFull {
		return "", fmt.Errorf("unrecognised reading version: %s", version)
	}
	if c.LocalStore == nil {
		return "", fmt.Errorf("%s tier not available", domain.TierLocal)
	}
	if err := c.LocalStore.SetValue(ctx, domain.ReadingVersionKey, string(version)); err != nil {
		return "", fmt.Errorf("saving reading version: %w", err)
	}
	return version, nil
}
