package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
)

// ErrEmptyArticleID is returned for a blank article identifier.
var ErrEmptyArticleID = errors.New("article id is empty")

// The read-later list lives only in the local tier, in insertion order.
func savedArticlesTier(store datasources.KeyValueStore) clientTier {
	return clientTier{Tier: domain.TierLocal, Store: store}
}

func loadSavedArticles(ctx context.Context, store datasources.KeyValueStore) domain.StringSet {
	set, ok := readSet(ctx, savedArticlesTier(store), domain.SavedArticlesKey)
	if !ok {
		return domain.StringSet{}
	}
	return set
}

// currentSavedArticles reads the list ahead of a change to it. Unlike
// loadSavedArticles, a failed read is an error.
func currentSavedArticles(ctx context.Context, store datasources.KeyValueStore) (domain.StringSet, error) {
	set, ok, err := loadSet(ctx, savedArticlesTier(store), domain.SavedArticlesKey)
	if err != nil {
		return nil, fmt.Errorf("loading read-later list: %w", err)
	}
	if !ok {
		return domain.StringSet{}, nil
	}
	return set, nil
}

func storeSavedArticles(ctx context.Context, store datasources.KeyValueStore, set domain.StringSet) error {
	if err := writeSet(ctx, savedArticlesTier(store), domain.SavedArticlesKey, set); err != nil {
		return fmt.Errorf("saving read-later list: %w", err)
	}
	return nil
}

func validateArticleID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyArticleID
	}
	return nil
}

type ToggleSavedArticleResult struct {
	Saved         bool
	SavedArticles domain.StringSet
}

var _ Command[string, ToggleSavedArticleResult] = (*ToggleSavedArticle)(nil)

// ToggleSavedArticle flips an article's membership in the read-later list
// and persists the whole list.
type ToggleSavedArticle struct {
	LocalStore datasources.KeyValueStore
}

func (c *ToggleSavedArticle) Execute(ctx context.Context, articleID string) (ToggleSavedArticleResult, error) {
	if err := validateArticleID(articleID); err != nil {
		return ToggleSavedArticleResult{}, err
	}

	current, err := currentSavedArticles(ctx, c.LocalStore)
	if err != nil {
		return ToggleSavedArticleResult{}, err
	}

	var (
		next  domain.StringSet
		saved bool
	)
	if current.Contains(articleID) {
		next, _ = current.Remove(articleID)
	} else {
		next, _ = current.Add(articleID)
		saved = true
	}

	if err := storeSavedArticles(ctx, c.LocalStore, next); err != nil {
		return ToggleSavedArticleResult{}, err
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "toggled saved article",
		"articleID", articleID, "saved", saved)
	return ToggleSavedArticleResult{Saved: saved, SavedArticles: next}, nil
}

var _ Command[string, bool] = (*RemoveSavedArticle)(nil)

// RemoveSavedArticle drops an article from the read-later list. Removing an
// article that is not saved is a no-op; the result reports whether the list
// changed.
type RemoveSavedArticle struct {
	LocalStore datasources.KeyValueStore
}

func (c *RemoveSavedArticle) Execute(ctx context.Context, articleID string) (bool, error) {
	if err := validateArticleID(articleID); err != nil {
		return false, err
	}

	current, err := currentSavedArticles(ctx, c.LocalStore)
	if err != nil {
		return false, err
	}
	next, removed := current.Remove(articleID)
	if !removed {
		return false, nil
	}
	if err := storeSavedArticles(ctx, c.LocalStore, next); err != nil {
		return false, err
	}
	return true, nil
}

type ListSavedArticlesRequest struct {
	NewestFirst bool
}

var _ Command[ListSavedArticlesRequest, domain.StringSet] = (*ListSavedArticles)(nil)

type ListSavedArticles struct {
	LocalStore datasources.KeyValueStore
}

func (c *ListSavedArticles) Execute(ctx context.Context, req ListSavedArticlesRequest) (domain.StringSet, error) {
	saved := loadSavedArticles(ctx, c.LocalStore)
	if req.NewestFirst {
		slices.Reverse(saved)
	}
	return saved, nil
}
