package datasources

import (
	"context"

	"github.com/claraboia/jcreader/internal/domain"
)

// ArticleFetcher returns the site's current feed.
type ArticleFetcher interface {
	FetchArticles(ctx context.Context) ([]domain.Article, error)
}

// NullArticleFetcher is used when no feed URL is configured.
type NullArticleFetcher struct{}

var _ ArticleFetcher = NullArticleFetcher{}

func (NullArticleFetcher) FetchArticles(_ context.Context) ([]domain.Article, error) {
	return nil, nil
}
