// Package rss reads the site's article feed.
package rss

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
)

var _ datasources.ArticleFetcher = (*Fetcher)(nil)

const summaryMaxLen = 300

type Fetcher struct {
	feedURL string
	parser  *gofeed.Parser
	now     func() time.Time
}

func NewFetcher(feedURL string) *Fetcher {
	return &Fetcher{
		feedURL: feedURL,
		parser:  gofeed.NewParser(),
		now:     time.Now,
	}
}

// FetchArticles parses the feed. Items keep the feed's order.
func (f *Fetcher) FetchArticles(ctx context.Context) ([]domain.Article, error) {
	feed, err := f.parser.ParseURLWithContext(f.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching feed %s: %w", f.feedURL, err)
	}

	articles := make([]domain.Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		id := item.GUID
		if id == "" {
			id = item.Link
		}
		if id == "" {
			continue
		}

		pub := f.now()
		if item.PublishedParsed != nil {
			pub = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			pub = *item.UpdatedParsed
		}

		summary := item.Description
		if summary == "" {
			summary = item.Content
		}

		article := domain.Article{
			ID:          id,
			Title:       strings.TrimSpace(item.Title),
			Link:        item.Link,
			Summary:     truncate(stripHTML(summary), summaryMaxLen),
			PublishedAt: pub,
		}
		if len(item.Categories) > 0 {
			article.Category = CategoryTag(item.Categories[0])
		}
		if len(item.Authors) > 0 && item.Authors[0] != nil {
			article.Author = item.Authors[0].Name
		}
		if item.Image != nil {
			article.ImageURL = item.Image.URL
		}
		articles = append(articles, article)
	}
	return articles, nil
}

// CategoryTag turns a feed category label such as "Política" into the
// vocabulary tag "politica".
func CategoryTag(label string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(label))
	if err != nil {
		folded = label
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), "-")
}

func stripHTML(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
			b.WriteByte(' ')
		}
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
