package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
)

var ErrArticleNotFound = errors.New("article not found in the feed")

var _ Command[string, domain.ShareLinks] = (*ShareArticle)(nil)

// ShareArticle builds the share links for an article in the site feed.
type ShareArticle struct {
	ArticleFetcher datasources.ArticleFetcher
	SiteURL        string
}

func (c *ShareArticle) Execute(ctx context.Context, articleID string) (domain.ShareLinks, error) {
	if err := validateArticleID(articleID); err != nil {
		return domain.ShareLinks{}, err
	}

	articles, err := c.ArticleFetcher.FetchArticles(ctx)
	if err != nil {
		return domain.ShareLinks{}, fmt.Errorf("fetching articles: %w", err)
	}

	for _, a := range articles {
		if a.ID != articleID {
			continue
		}
		links, err := domain.NewShareLinks(a, c.SiteURL)
		if err != nil {
			return domain.ShareLinks{}, fmt.Errorf("building share links for [%s]: %w", articleID, err)
		}
		return links, nil
	}
	return domain.ShareLinks{}, fmt.Errorf("%w: [%s]", ErrArticleNotFound, articleID)
}
