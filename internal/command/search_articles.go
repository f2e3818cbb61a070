package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
)

var ErrEmptySearchTerm = errors.New("search term is empty")

type SearchArticlesRequest struct {
	Term     string
	Category string
	Window   domain.DateWindow
	Ordering domain.ArticleOrdering
}

var _ Command[SearchArticlesRequest, []domain.Article] = (*SearchArticles)(nil)

// SearchArticles matches the term against article titles, case-insensitively,
// and records it in the search history.
type SearchArticles struct {
	ArticleFetcher datasources.ArticleFetcher
	History        Command[string, domain.StringSet]
	Now            func() time.Time
}

func (c *SearchArticles) Execute(ctx context.Context, req SearchArticlesRequest) ([]domain.Article, error) {
	logger := domain.LoggerFromContext(ctx)

	term := strings.TrimSpace(req.Term)
	if term == "" {
		return nil, ErrEmptySearchTerm
	}
	if !slices.Contains(domain.ValidDateWindows, req.Window) {
		return nil, fmt.Errorf("unrecognised date window: %s", req.Window)
	}
	if !slices.Contains(domain.ValidOrderings, req.Ordering) {
		return nil, fmt.Errorf("unrecognised ordering: %s", req.Ordering)
	}

	articles, err := c.ArticleFetcher.FetchArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching articles: %w", err)
	}

	if c.History != nil {
		if _, err := c.History.Execute(ctx, term); err != nil {
			logger.WarnContext(ctx, "failed to record search term", "error", err)
		}
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	var since time.Time
	if d := req.Window.Duration(); d > 0 {
		since = now().Add(-d)
	}

	needle := strings.ToLower(term)
	var results []domain.Article
	for _, a := range articles {
		if !strings.Contains(strings.ToLower(a.Title), needle) {
			continue
		}
		if req.Category != "" && a.Category != req.Category {
			continue
		}
		if !since.IsZero() && a.PublishedAt.Before(since) {
			continue
		}
		results = append(results, a)
	}

	switch req.Ordering {
	case domain.ArticleOrderingRecent:
		slices.SortStableFunc(results, newestFirst)
	case domain.ArticleOrderingRelevance:
		slices.SortStableFunc(results, func(a, b domain.Article) int {
			if diff := relevance(b, needle) - relevance(a, needle); diff != 0 {
				return diff
			}
			return newestFirst(a, b)
		})
	}

	return results, nil
}

func newestFirst(a, b domain.Article) int {
	return b.PublishedAt.Compare(a.PublishedAt)
}

// relevance counts the term's occurrences in the title and summary, with
// title hits weighted double.
func relevance(a domain.Article, needle string) int {
	return 2*strings.Count(strings.ToLower(a.Title), needle) +
		strings.Count(strings.ToLower(a.Summary), needle)
}
