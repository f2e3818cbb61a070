package command

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
)

var (
	_ Command[Empty, domain.ReaderState] = (*LoadReaderState)(nil)
	_ Command[Empty, domain.Session]     = (*GetSession)(nil)
)

// LoadReaderState builds the reader's state for this run: the session from
// the site, then the preferences it selects, alongside the saved list.
type LoadReaderState struct {
	SessionFetcher    datasources.SessionFetcher
	LoadPreferences   Command[domain.Session, domain.StringSet]
	ListSavedArticles Command[ListSavedArticlesRequest, domain.StringSet]
}

func (c *LoadReaderState) Execute(ctx context.Context, _ Empty) (domain.ReaderState, error) {
	var state domain.ReaderState

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		state.Session = FetchSession(gctx, c.SessionFetcher)
		prefs, err := c.LoadPreferences.Execute(gctx, state.Session)
		if err != nil {
			return err
		}
		state.Preferences = prefs
		return nil
	})
	g.Go(func() error {
		saved, err := c.ListSavedArticles.Execute(gctx, ListSavedArticlesRequest{})
		if err != nil {
			return err
		}
		state.SavedArticles = saved
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.ReaderState{}, err
	}
	return state, nil
}

// GetSession reports the login state without touching any preference tier.
type GetSession struct {
	SessionFetcher datasources.SessionFetcher
}

func (c *GetSession) Execute(ctx context.Context, _ Empty) (domain.Session, error) {
	return FetchSession(ctx, c.SessionFetcher), nil
}

// FetchSession asks the site for the login state. A session attached to ctx
// wins; without a fetcher, or when the site cannot be reached, the reader is
// treated as anonymous.
func FetchSession(ctx context.Context, fetcher datasources.SessionFetcher) domain.Session {
	if session, ok := domain.SessionFromContext(ctx); ok {
		return session
	}
	if fetcher == nil {
		return domain.Session{}
	}

	session, err := fetcher.FetchSession(ctx)
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to fetch session, continuing anonymously",
			"error", err)
		return domain.Session{}
	}
	return session
}
