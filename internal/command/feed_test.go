package command

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/claraboia/jcreader/internal/datasources/memory"
	"github.com/claraboia/jcreader/internal/datasources/mocks"
	"github.com/claraboia/jcreader/internal/domain"
)

func TestListFeed_Execute(t *testing.T) {
	cases := []struct {
		name        string
		prefs       domain.StringSet
		options     domain.ArticleListOptions
		wantIDs     []string
		wantHasMore bool
		wantTotal   int
	}{
		{
			name:        "no_preferences_shows_everything_newest_first",
			options:     domain.ArticleListOptions{Page: 1, PageSize: 10},
			wantIDs:     []string{"5", "1", "2", "3", "4"},
			wantTotal:   5,
			wantHasMore: false,
		},
		{
			name:      "preferences_filter",
			prefs:     domain.StringSet{"cultura", "esportes"},
			options:   domain.ArticleListOptions{Page: 1, PageSize: 10},
			wantIDs:   []string{"1", "3"},
			wantTotal: 2,
		},
		{
			name:        "first_page",
			options:     domain.ArticleListOptions{Page: 1, PageSize: 2},
			wantIDs:     []string{"5", "1"},
			wantTotal:   5,
			wantHasMore: true,
		},
		{
			name:      "last_page",
			options:   domain.ArticleListOptions{Page: 3, PageSize: 2},
			wantIDs:   []string{"4"},
			wantTotal: 5,
		},
		{
			name:      "past_the_end",
			options:   domain.ArticleListOptions{Page: 4, PageSize: 2},
			wantIDs:   []string{},
			wantTotal: 5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockArticleFetcher(t)
			fetcher.EXPECT().FetchArticles(mock.Anything).Return(testArticles(), nil)

			page, err := (&ListFeed{ArticleFetcher: fetcher}).Execute(testContext(), ListFeedRequest{
				State: domain.ReaderState{
					Preferences:   tc.prefs,
					SavedArticles: domain.StringSet{"1", "4"},
				},
				Options: tc.options,
			})
			require.NoError(t, err)

			ids := []string{}
			for _, e := range page.Entries {
				ids = append(ids, e.Article.ID)
				assert.Equal(t, e.Article.ID == "1" || e.Article.ID == "4", e.Saved)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, tc.wantHasMore, page.HasMore)
			assert.Equal(t, tc.wantTotal, page.Total)
			assert.Equal(t, tc.options.Page, page.Page)
		})
	}
}

func TestListFeed_Execute_InvalidOptions(t *testing.T) {
	cmd := &ListFeed{ArticleFetcher: mocks.NewMockArticleFetcher(t)}

	_, err := cmd.Execute(testContext(), ListFeedRequest{Options: domain.ArticleListOptions{Page: 0, PageSize: 10}})
	require.Error(t, err)

	_, err = cmd.Execute(testContext(), ListFeedRequest{Options: domain.ArticleListOptions{Page: 1, PageSize: 0}})
	require.Error(t, err)
}

func TestExportSavedFeed_Execute(t *testing.T) {
	cases := []struct {
		name     string
		format   FeedFormat
		contains []string
	}{
		{name: "rss", format: FeedFormatRSS, contains: []string{"<rss", "Sport vence o Náutico", "Festival de cultura no Recife"}},
		{name: "default_is_rss", format: "", contains: []string{"<rss"}},
		{name: "atom", format: FeedFormatAtom, contains: []string{"<feed", "Festival de cultura no Recife"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockArticleFetcher(t)
			fetcher.EXPECT().FetchArticles(mock.Anything).Return(testArticles(), nil)
			local := memory.NewWithValues(map[string]string{domain.SavedArticlesKey: `["3","gone","1"]`})

			cmd := &ExportSavedFeed{
				ArticleFetcher: fetcher,
				LocalStore:     local,
				Now:            func() time.Time { return testNow },
			}
			result, err := cmd.Execute(testContext(), ExportSavedFeedRequest{
				Format:  tc.format,
				SiteURL: "https://jc.example.com/",
			})
			require.NoError(t, err)

			for _, want := range tc.contains {
				assert.Contains(t, result.Document, want)
			}
			assert.Equal(t, []string{"gone"}, result.Unresolved)
		})
	}
}

func TestExportSavedFeed_Execute_JSONKeepsSaveOrder(t *testing.T) {
	fetcher := mocks.NewMockArticleFetcher(t)
	fetcher.EXPECT().FetchArticles(mock.Anything).Return(testArticles(), nil)
	local := memory.NewWithValues(map[string]string{domain.SavedArticlesKey: `["3","1"]`})

	result, err := (&ExportSavedFeed{ArticleFetcher: fetcher, LocalStore: local}).Execute(testContext(),
		ExportSavedFeedRequest{Format: FeedFormatJSON, SiteURL: "https://jc.example.com/"})
	require.NoError(t, err)

	var doc struct {
		Items []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Document), &doc))
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "3", doc.Items[0].ID)
	assert.Equal(t, "1", doc.Items[1].ID)
	assert.Empty(t, result.Unresolved)
}

func TestExportSavedFeed_Execute_UnknownFormat(t *testing.T) {
	fetcher := mocks.NewMockArticleFetcher(t)
	fetcher.EXPECT().FetchArticles(mock.Anything).Return(nil, nil)

	_, err := (&ExportSavedFeed{ArticleFetcher: fetcher, LocalStore: memory.New()}).Execute(testContext(),
		ExportSavedFeedRequest{Format: "opml"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "opml"))
}
