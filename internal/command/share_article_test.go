package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/claraboia/jcreader/internal/datasources/mocks"
	"github.com/claraboia/jcreader/internal/domain"
)

func TestShareArticle_Execute(t *testing.T) {
	fetcher := mocks.NewMockArticleFetcher(t)
	fetcher.EXPECT().FetchArticles(mock.Anything).Return(testArticles(), nil)

	links, err := (&ShareArticle{ArticleFetcher: fetcher, SiteURL: "https://jc.example.com/"}).
		Execute(testContext(), "1")
	require.NoError(t, err)
	assert.Equal(t, "https://jc.example.com/#noticia-1", links.URL)
	assert.Equal(t,
		"https://twitter.com/intent/tweet?text=Sport+vence+o+N%C3%A1utico&url=https%3A%2F%2Fjc.example.com%2F%23noticia-1",
		links.Twitter)
}

func TestShareArticle_Execute_Errors(t *testing.T) {
	cases := []struct {
		name      string
		articleID string
		siteURL   string
		setup     func(f *mocks.MockArticleFetcher)
		wantErr   error
	}{
		{
			name:      "empty_id",
			articleID: " ",
			wantErr:   ErrEmptyArticleID,
		},
		{
			name:      "not_in_feed",
			articleID: "99",
			siteURL:   "https://jc.example.com/",
			setup: func(f *mocks.MockArticleFetcher) {
				f.EXPECT().FetchArticles(mock.Anything).Return(testArticles(), nil)
			},
			wantErr: ErrArticleNotFound,
		},
		{
			name:      "no_url_to_share",
			articleID: "1",
			setup: func(f *mocks.MockArticleFetcher) {
				f.EXPECT().FetchArticles(mock.Anything).Return(testArticles(), nil)
			},
			wantErr: domain.ErrNoShareURL,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockArticleFetcher(t)
			if tc.setup != nil {
				tc.setup(fetcher)
			}

			_, err := (&ShareArticle{ArticleFetcher: fetcher, SiteURL: tc.siteURL}).Execute(testContext(), tc.articleID)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestShareArticle_Execute_FetchError(t *testing.T) {
	fetcher := mocks.NewMockArticleFetcher(t)
	fetcher.EXPECT().FetchArticles(mock.Anything).Return(nil, errors.New("feed down"))

	_, err := (&ShareArticle{ArticleFetcher: fetcher, SiteURL: "https://jc.example.com/"}).Execute(testContext(), "1")
	require.Error(t, err)
}
