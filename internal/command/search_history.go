package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
)

const (
	SearchHistoryLimit = 10
	SuggestionLimit    = 5
)

func searchHistoryTier(store datasources.KeyValueStore) clientTier {
	return clientTier{Tier: domain.TierLocal, Store: store}
}

func loadSearchHistory(ctx context.Context, store datasources.KeyValueStore) domain.StringSet {
	history, ok := readSet(ctx, searchHistoryTier(store), domain.SearchHistoryKey)
	if !ok {
		return domain.StringSet{}
	}
	return history
}

var _ Command[string, domain.StringSet] = (*RecordSearch)(nil)

// RecordSearch puts a term at the front of the search history, dropping an
// earlier copy of it and anything past the history limit.
type RecordSearch struct {
	LocalStore datasources.KeyValueStore
}

func (c *RecordSearch) Execute(ctx context.Context, term string) (domain.StringSet, error) {
	term = strings.TrimSpace(term)
	history, ok, err := loadSet(ctx, searchHistoryTier(c.LocalStore), domain.SearchHistoryKey)
	if err != nil {
		return nil, fmt.Errorf("loading search history: %w", err)
	}
	if !ok {
		history = domain.StringSet{}
	}
	if term == "" {
		return history, nil
	}

	rest, _ := history.Remove(term)
	next := append(domain.StringSet{term}, rest...)
	if len(next) > SearchHistoryLimit {
		next = next[:SearchHistoryLimit]
	}

	if err := writeSet(ctx, searchHistoryTier(c.LocalStore), domain.SearchHistoryKey, next); err != nil {
		return history, err
	}
	return next, nil
}

var _ Command[Empty, domain.StringSet] = (*ListSearchHistory)(nil)

type ListSearchHistory struct {
	LocalStore datasources.KeyValueStore
}

func (c *ListSearchHistory) Execute(ctx context.Context, _ Empty) (domain.StringSet, error) {
	return loadSearchHistory(ctx, c.LocalStore), nil
}

var _ Command[string, []string] = (*SuggestSearchTerms)(nil)

// SuggestSearchTerms offers earlier searches containing the typed text,
// then category names that match it.
type SuggestSearchTerms struct {
	LocalStore datasources.KeyValueStore
	Vocabulary domain.Vocabulary
}

func (c *SuggestSearchTerms) Execute(ctx context.Context, typed string) ([]string, error) {
	needle := strings.ToLower(strings.TrimSpace(typed))

	var candidates []string
	candidates = append(candidates, loadSearchHistory(ctx, c.LocalStore)...)
	for _, tag := range c.Vocabulary.Tags() {
		candidates = append(candidates, strings.ToLower(domain.CategoryDisplayName(tag)))
	}

	var suggestions domain.StringSet
	for _, candidate := range candidates {
		if len(suggestions) == SuggestionLimit {
			break
		}
		if strings.Contains(strings.ToLower(candidate), needle) {
			suggestions, _ = suggestions.Add(candidate)
		}
	}
	return suggestions.Items(), nil
}
