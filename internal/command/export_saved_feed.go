package command

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/feeds"

	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
)

type FeedFormat string

const (
	FeedFormatRSS  FeedFormat = "rss"
	FeedFormatAtom FeedFormat = "atom"
	FeedFormatJSON FeedFormat = "json"
)

type ExportSavedFeedRequest struct {
	Format FeedFormat
	// SiteURL is the link the exported feed points back to.
	SiteURL string
}

type ExportSavedFeedResult struct {
	Document string
	// Unresolved lists saved ids that are no longer in the site feed.
	Unresolved []string
}

var _ Command[ExportSavedFeedRequest, ExportSavedFeedResult] = (*ExportSavedFeed)(nil)

// ExportSavedFeed renders the read-later list as a feed, resolving each
// saved id against the site's current articles.
type ExportSavedFeed struct {
	ArticleFetcher datasources.ArticleFetcher
	LocalStore     datasources.KeyValueStore
	Now            func() time.Time
}

func (c *ExportSavedFeed) Execute(ctx context.Context, req ExportSavedFeedRequest) (ExportSavedFeedResult, error) {
	logger := domain.LoggerFromContext(ctx)

	saved := loadSavedArticles(ctx, c.LocalStore)

	articles, err := c.ArticleFetcher.FetchArticles(ctx)
	if err != nil {
		return ExportSavedFeedResult{}, fmt.Errorf("fetching articles: %w", err)
	}
	byID := make(map[string]domain.Article, len(articles))
	for _, a := range articles {
		byID[a.ID] = a
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	feed := &feeds.Feed{
		Title:       "Jornal do Commercio - Salvos para ler depois",
		Link:        &feeds.Link{Href: req.SiteURL},
		Description: "Notícias salvas para ler depois",
		Created:     now(),
	}

	var result ExportSavedFeedResult
	for _, id := range saved {
		a, ok := byID[id]
		if !ok {
			result.Unresolved = append(result.Unresolved, id)
			continue
		}
		item := &feeds.Item{
			Id:          a.ID,
			IsPermaLink: "false",
			Title:       a.Title,
			Link:        &feeds.Link{Href: a.Link},
			Description: a.Summary,
			Created:     a.PublishedAt,
		}
		if a.Author != "" {
			item.Author = &feeds.Author{Name: a.Author}
		}
		feed.Items = append(feed.Items, item)
	}
	if len(result.Unresolved) > 0 {
		logger.InfoContext(ctx, "some saved articles are no longer in the feed", "count", len(result.Unresolved))
	}

	var doc string
	switch req.Format {
	case FeedFormatRSS, "":
		doc, err = feed.ToRss()
	case FeedFormatAtom:
		doc, err = feed.ToAtom()
	case FeedFormatJSON:
		doc, err = feed.ToJSON()
	default:
		return ExportSavedFeedResult{}, fmt.Errorf("unrecognised feed format: %s", req.Format)
	}
	if err != nil {
		return ExportSavedFeedResult{}, fmt.Errorf("formatting feed as %s: %w", req.Format, err)
	}

	result.Document = doc
	return result, nil
}
