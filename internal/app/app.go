package app

import (
	"context"
	"fmt"

	"github.com/claraboia/jcreader/internal/command"
	"github.com/claraboia/jcreader/internal/config"
	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/datasources/api"
	"github.com/claraboia/jcreader/internal/datasources/memory"
	"github.com/claraboia/jcreader/internal/datasources/rss"
	"github.com/claraboia/jcreader/internal/datasources/sqlstore"
	"github.com/claraboia/jcreader/internal/domain"
	"github.com/claraboia/jcreader/internal/transport/cli"
)

var _ cli.SetupFunc = Setup

// Setup loads the config and wires every command for one run.
func Setup(ctx context.Context, opts cli.Options) (*cli.Commands, func() error, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	applyEnvOverrides(ctx, cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("validating config: %w", err)
	}

	tiers, err := setupTiers(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("setting up storage tiers: %w", err)
	}

	site, err := setupSite(ctx, cfg, tiers)
	if err != nil {
		_ = tiers.close()
		return nil, nil, fmt.Errorf("setting up site client: %w", err)
	}

	return newCommands(cfg, tiers, site, setupArticleFetcher(cfg), opts.Confirmer), tiers.close, nil
}

type storageTiers struct {
	cookie datasources.KeyValueStore
	local  datasources.KeyValueStore
	// jar is nil when the cookie tier cannot hold the site's cookies.
	jar   api.CookiePersister
	close func() error
}

func setupTiers(ctx context.Context, cfg *config.Config) (storageTiers, error) {
	var dsn string
	switch driver := cfg.Storage.Driver; driver {
	case config.StorageMemory:
		return storageTiers{
			cookie: memory.New(),
			local:  memory.New(),
			close:  func() error { return nil },
		}, nil
	case config.StorageSQLite:
		dsn = cfg.SQLitePath()
	case config.StorageMySQL:
		dsn = cfg.Storage.MySQLURI
	default:
		return storageTiers{}, fmt.Errorf("unknown storage driver [%s]", driver)
	}

	db, err := sqlstore.Connect(ctx, cfg.Storage.Driver, dsn)
	if err != nil {
		return storageTiers{}, fmt.Errorf("connecting to %s: %w", cfg.Storage.Driver, err)
	}

	cookies := sqlstore.NewCookieStore(db, cfg.CookieMaxAgeDuration())
	return storageTiers{
		cookie: cookies,
		local:  sqlstore.NewLocalStorage(db),
		jar:    cookies,
		close:  db.Close,
	}, nil
}

type siteClient struct {
	preferences datasources.PreferenceServer
	session     datasources.SessionFetcher
	auth        datasources.Authenticator
	persister   datasources.SessionPersister
	feedback    datasources.FeedbackSubmitter
}

func setupSite(ctx context.Context, cfg *config.Config, tiers storageTiers) (siteClient, error) {
	if cfg.Offline() {
		domain.LoggerFromContext(ctx).InfoContext(ctx, "no base_url configured, running offline")
		return siteClient{
			preferences: datasources.NullPreferenceServer{},
			session:     datasources.NullSessionFetcher{},
			auth:        datasources.NullSite{},
			persister:   datasources.NullSite{},
			feedback:    datasources.NullSite{},
		}, nil
	}

	client, err := api.NewClient(cfg.BaseURL, tiers.jar)
	if err != nil {
		return siteClient{}, err
	}
	if err := client.RestoreCookies(ctx); err != nil {
		// Not fatal: the reader is just logged out for this run.
		domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to restore session cookies", "error", err)
	}

	return siteClient{
		preferences: client,
		session:     client,
		auth:        client,
		persister:   client,
		feedback:    client,
	}, nil
}

func setupArticleFetcher(cfg *config.Config) datasources.ArticleFetcher {
	if cfg.FeedURL == "" {
		return datasources.NullArticleFetcher{}
	}
	return rss.NewFetcher(cfg.FeedURL)
}

func newCommands(
	cfg *config.Config,
	tiers storageTiers,
	site siteClient,
	articles datasources.ArticleFetcher,
	confirmer datasources.Confirmer,
) *cli.Commands {
	vocabulary := domain.NewVocabulary(cfg.Categories...)

	localLoader := &command.LoadLocalPreferences{
		CookieStore: tiers.cookie,
		LocalStore:  tiers.local,
	}
	loadPreferences := &command.LoadPreferences{
		PreferenceFetcher: site.preferences,
		CookieStore:       tiers.cookie,
		LocalStore:        tiers.local,
		LocalLoader:       localLoader,
	}
	listSaved := &command.ListSavedArticles{LocalStore: tiers.local}
	recordSearch := &command.RecordSearch{LocalStore: tiers.local}

	return &cli.Commands{
		GetSession: &command.GetSession{SessionFetcher: site.session},
		LoadReaderState: &command.LoadReaderState{
			SessionFetcher:    site.session,
			LoadPreferences:   loadPreferences,
			ListSavedArticles: listSaved,
		},
		SavePreferences: &command.SavePreferences{
			PreferenceSetter: site.preferences,
			CookieStore:      tiers.cookie,
			LocalStore:       tiers.local,
		},
		ClearAllPreferences: &command.ClearAllPreferences{
			Confirmer:        confirmer,
			PreferenceSetter: site.preferences,
			CookieStore:      tiers.cookie,
			LocalStore:       tiers.local,
		},
		InspectTiers: &command.InspectTiers{CookieStore: tiers.cookie, LocalStore: tiers.local},

		ToggleSavedArticle: &command.ToggleSavedArticle{LocalStore: tiers.local},
		RemoveSavedArticle: &command.RemoveSavedArticle{LocalStore: tiers.local},
		ListSavedArticles:  listSaved,
		ExportSavedFeed:    &command.ExportSavedFeed{ArticleFetcher: articles, LocalStore: tiers.local},
		ShareArticle:       &command.ShareArticle{ArticleFetcher: articles, SiteURL: cfg.BaseURL},

		ListFeed: &command.ListFeed{ArticleFetcher: articles},
		SearchArticles: &command.SearchArticles{
			ArticleFetcher: articles,
			History:        recordSearch,
		},
		ListSearchHistory:  &command.ListSearchHistory{LocalStore: tiers.local},
		SuggestSearchTerms: &command.SuggestSearchTerms{LocalStore: tiers.local, Vocabulary: vocabulary},

		Login:          &command.Login{Authenticator: site.auth, SessionPersister: site.persister},
		Register:       &command.Register{Authenticator: site.auth, SessionPersister: site.persister},
		Logout:         &command.Logout{Authenticator: site.auth, SessionPersister: site.persister},
		SubmitFeedback: &command.SubmitFeedback{FeedbackSubmitter: site.feedback},

		GetReadingVersion: &command.GetReadingVersion{LocalStore: tiers.local},
		SetReadingVersion: &command.SetReadingVersion{LocalStore: tiers.local},

		Vocabulary: vocabulary,
		SiteURL:    siteURL(cfg),
		PageSize:   cfg.PageSize(),
	}
}

func siteURL(cfg *config.Config) string {
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	return cfg.FeedURL
}
