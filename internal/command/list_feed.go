package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
)

type ListFeedRequest struct {
	State   domain.ReaderState
	Options domain.ArticleListOptions
}

var _ Command[ListFeedRequest, domain.FeedPage] = (*ListFeed)(nil)

// ListFeed pages through the site feed, newest first. When the reader has
// preferred categories only those are shown.
type ListFeed struct {
	ArticleFetcher datasources.ArticleFetcher
}

func (c *ListFeed) Execute(ctx context.Context, req ListFeedRequest) (domain.FeedPage, error) {
	page, pageSize := req.Options.Page, req.Options.PageSize
	if page < 1 {
		return domain.FeedPage{}, fmt.Errorf("invalid page value [%d]", page)
	}
	if pageSize < 1 {
		return domain.FeedPage{}, fmt.Errorf("invalid page size value [%d]", pageSize)
	}

	articles, err := c.ArticleFetcher.FetchArticles(ctx)
	if err != nil {
		return domain.FeedPage{}, fmt.Errorf("fetching articles: %w", err)
	}

	prefs := req.State.Preferences
	var matching []domain.Article
	for _, a := range articles {
		if prefs.Len() > 0 && !prefs.Contains(a.Category) {
			continue
		}
		matching = append(matching, a)
	}
	slices.SortStableFunc(matching, newestFirst)

	result := domain.FeedPage{Page: page, Total: len(matching)}
	start := (page - 1) * pageSize
	if start >= len(matching) {
		return result, nil
	}
	end := min(start+pageSize, len(matching))

	for _, a := range matching[start:end] {
		result.Entries = append(result.Entries, domain.FeedEntry{
			Article: a,
			Saved:   req.State.SavedArticles.Contains(a.ID),
		})
	}
	result.HasMore = end < len(matching)
	return result, nil
}
