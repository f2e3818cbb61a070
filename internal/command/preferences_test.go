package command

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/datasources/memory"
	"github.com/claraboia/jcreader/internal/datasources/mocks"
	"github.com/claraboia/jcreader/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}

func storedValue(t *testing.T, store datasources.KeyValueGetter, key string) (string, bool) {
	t.Helper()
	v, ok, err := store.GetValue(context.Background(), key)
	require.NoError(t, err)
	return v, ok
}

func newLocalLoader(cookie, local datasources.KeyValueStore) *LoadLocalPreferences {
	return &LoadLocalPreferences{CookieStore: cookie, LocalStore: local}
}

func TestLoadLocalPreferences_Execute(t *testing.T) {
	cases := []struct {
		name      string
		cookie    map[string]string
		local     map[string]string
		want      domain.StringSet
		wantLocal string
	}{
		{
			name:      "cookie_wins_and_migrates_to_local",
			cookie:    map[string]string{domain.PreferencesKey: `["esportes"]`},
			local:     map[string]string{domain.PreferencesKey: `["cultura"]`},
			want:      domain.StringSet{"esportes"},
			wantLocal: `["esportes"]`,
		},
		{
			name:      "malformed_cookie_falls_back_to_local",
			cookie:    map[string]string{domain.PreferencesKey: `{not json`},
			local:     map[string]string{domain.PreferencesKey: `["politica"]`},
			want:      domain.StringSet{"politica"},
			wantLocal: `["politica"]`,
		},
		{
			name:      "null_cookie_is_absent",
			cookie:    map[string]string{domain.PreferencesKey: `null`},
			local:     map[string]string{domain.PreferencesKey: `["mundo"]`},
			want:      domain.StringSet{"mundo"},
			wantLocal: `["mundo"]`,
		},
		{
			name:      "local_only",
			local:     map[string]string{domain.PreferencesKey: `["economia","mobilidade"]`},
			want:      domain.StringSet{"economia", "mobilidade"},
			wantLocal: `["economia","mobilidade"]`,
		},
		{
			name:      "cookie_empty_list_is_a_value",
			cookie:    map[string]string{domain.PreferencesKey: `[]`},
			local:     map[string]string{domain.PreferencesKey: `["cultura"]`},
			want:      domain.StringSet{},
			wantLocal: `[]`,
		},
		{
			name:   "everything_malformed",
			cookie: map[string]string{domain.PreferencesKey: `[1,2]`},
			local:  map[string]string{domain.PreferencesKey: `"cultura"`},
			want:   domain.StringSet{},
		},
		{
			name: "nothing_stored",
			want: domain.StringSet{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cookie := memory.NewWithValues(tc.cookie)
			local := memory.NewWithValues(tc.local)

			got, err := newLocalLoader(cookie, local).Execute(testContext(), Empty{})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			if tc.wantLocal != "" {
				v, ok := storedValue(t, local, domain.PreferencesKey)
				require.True(t, ok)
				assert.JSONEq(t, tc.wantLocal, v)
			}
		})
	}
}

func TestLoadLocalPreferences_Execute_TierReadErrors(t *testing.T) {
	cookie := mocks.NewMockKeyValueStore(t)
	cookie.EXPECT().GetValue(mock.Anything, domain.PreferencesKey).Return("", false, errors.New("disk error"))

	local := memory.NewWithValues(map[string]string{domain.PreferencesKey: `["cultura"]`})

	got, err := newLocalLoader(cookie, local).Execute(testContext(), Empty{})
	require.NoError(t, err)
	assert.Equal(t, domain.StringSet{"cultura"}, got)
}

func TestLoadLocalPreferences_Execute_MissingTiers(t *testing.T) {
	got, err := newLocalLoader(nil, nil).Execute(testContext(), Empty{})
	require.NoError(t, err)
	assert.Equal(t, domain.StringSet{}, got)
}

func TestLoadPreferences_Execute(t *testing.T) {
	cases := []struct {
		name        string
		session     domain.Session
		serverPrefs []string
		serverErr   error
		wantFetch   bool
		want        domain.StringSet
		wantCookie  string
	}{
		{
			name:        "authenticated_reads_server_and_writes_through",
			session:     domain.Session{Authenticated: true},
			serverPrefs: []string{"mundo", "economia"},
			wantFetch:   true,
			want:        domain.StringSet{"mundo", "economia"},
			wantCookie:  `["mundo","economia"]`,
		},
		{
			name:        "authenticated_empty_server_set_is_authoritative",
			session:     domain.Session{Authenticated: true},
			serverPrefs: []string{},
			wantFetch:   true,
			want:        domain.StringSet{},
			wantCookie:  `[]`,
		},
		{
			name:       "authenticated_server_failure_falls_back",
			session:    domain.Session{Authenticated: true},
			serverErr:  errors.New("connection refused"),
			wantFetch:  true,
			want:       domain.StringSet{"esportes"},
			wantCookie: `["esportes"]`,
		},
		{
			name:       "anonymous_never_calls_server",
			session:    domain.Session{},
			want:       domain.StringSet{"esportes"},
			wantCookie: `["esportes"]`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cookie := memory.NewWithValues(map[string]string{domain.PreferencesKey: `["esportes"]`})
			local := memory.NewWithValues(map[string]string{domain.PreferencesKey: `["cultura"]`})
			server := mocks.NewMockPreferenceServer(t)
			if tc.wantFetch {
				server.EXPECT().FetchPreferences(mock.Anything).Return(tc.serverPrefs, tc.serverErr)
			}

			cmd := &LoadPreferences{
				PreferenceFetcher: server,
				CookieStore:       cookie,
				LocalStore:        local,
				LocalLoader:       newLocalLoader(cookie, local),
			}

			got, err := cmd.Execute(testContext(), tc.session)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			v, ok := storedValue(t, cookie, domain.PreferencesKey)
			require.True(t, ok)
			assert.JSONEq(t, tc.wantCookie, v)

			v, ok = storedValue(t, local, domain.PreferencesKey)
			require.True(t, ok)
			assert.JSONEq(t, tc.wantCookie, v, "local tier follows the resolved set")
		})
	}
}

func TestLoadPreferences_Execute_ServerFailureWithNothingStored(t *testing.T) {
	server := mocks.NewMockPreferenceServer(t)
	server.EXPECT().FetchPreferences(mock.Anything).Return(nil, datasources.ErrOffline)

	cookie, local := memory.New(), memory.New()
	cmd := &LoadPreferences{
		PreferenceFetcher: server,
		CookieStore:       cookie,
		LocalStore:        local,
		LocalLoader:       newLocalLoader(cookie, local),
	}

	var (
		got domain.StringSet
		err error
	)
	require.NotPanics(t, func() {
		got, err = cmd.Execute(testContext(), domain.Session{Authenticated: true})
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StringSet{}, got)
}

func TestSavePreferences_Execute(t *testing.T) {
	cases := []struct {
		name         string
		session      domain.Session
		serverErr    error
		wantServer   bool
		wantOutcome  SaveOutcome
		wantDegraded bool
		wantNotice   string
		wantTiers    []domain.Tier
	}{
		{
			name:        "authenticated_server_success",
			session:     domain.Session{Authenticated: true},
			wantServer:  true,
			wantOutcome: SaveOutcomeServer,
			wantNotice:  NoticeSavedToServer,
			wantTiers:   []domain.Tier{domain.TierServer, domain.TierCookie, domain.TierLocal},
		},
		{
			name:         "authenticated_server_failure_saves_locally",
			session:      domain.Session{Authenticated: true},
			serverErr:    errors.New("csrf failure"),
			wantServer:   true,
			wantOutcome:  SaveOutcomeLocal,
			wantDegraded: true,
			wantNotice:   NoticeSavedLocally,
			wantTiers:    []domain.Tier{domain.TierCookie, domain.TierLocal},
		},
		{
			name:        "anonymous_client_tiers_only",
			session:     domain.Session{},
			wantOutcome: SaveOutcomeLocal,
			wantNotice:  NoticeSavedToServer,
			wantTiers:   []domain.Tier{domain.TierCookie, domain.TierLocal},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			categories := domain.StringSet{"cultura", "educacao"}
			cookie, local := memory.New(), memory.New()
			server := mocks.NewMockPreferenceServer(t)
			if tc.wantServer {
				server.EXPECT().SetPreferences(mock.Anything, []string{"cultura", "educacao"}).Return(tc.serverErr)
			}

			cmd := &SavePreferences{PreferenceSetter: server, CookieStore: cookie, LocalStore: local}
			result, err := cmd.Execute(testContext(), SavePreferencesRequest{
				Session:    tc.session,
				Categories: categories,
			})
			require.NoError(t, err)

			assert.Equal(t, tc.wantOutcome, result.Outcome)
			assert.Equal(t, tc.wantDegraded, result.Degraded)
			assert.Equal(t, tc.wantNotice, result.Notice)
			assert.Equal(t, tc.wantTiers, result.Tiers)

			for _, store := range []datasources.KeyValueGetter{cookie, local} {
				v, ok := storedValue(t, store, domain.PreferencesKey)
				require.True(t, ok)
				assert.JSONEq(t, `["cultura","educacao"]`, v)
			}
		})
	}
}

func TestSavePreferences_Execute_TierFailures(t *testing.T) {
	failing := func(t *testing.T) *mocks.MockKeyValueStore {
		store := mocks.NewMockKeyValueStore(t)
		store.EXPECT().SetValue(mock.Anything, domain.PreferencesKey, mock.Anything).Return(errors.New("quota exceeded"))
		return store
	}

	t.Run("cookie_failure_does_not_block_local", func(t *testing.T) {
		local := memory.New()
		cmd := &SavePreferences{CookieStore: failing(t), LocalStore: local}

		result, err := cmd.Execute(testContext(), SavePreferencesRequest{Categories: domain.StringSet{"mundo"}})
		require.NoError(t, err)
		assert.Equal(t, []domain.Tier{domain.TierLocal}, result.Tiers)

		v, ok := storedValue(t, local, domain.PreferencesKey)
		require.True(t, ok)
		assert.JSONEq(t, `["mundo"]`, v)
	})

	t.Run("server_success_is_enough", func(t *testing.T) {
		server := mocks.NewMockPreferenceServer(t)
		server.EXPECT().SetPreferences(mock.Anything, []string{"mundo"}).Return(nil)

		cmd := &SavePreferences{PreferenceSetter: server, CookieStore: failing(t), LocalStore: failing(t)}
		result, err := cmd.Execute(testContext(), SavePreferencesRequest{
			Session:    domain.Session{Authenticated: true},
			Categories: domain.StringSet{"mundo"},
		})
		require.NoError(t, err)
		assert.Equal(t, SaveOutcomeServer, result.Outcome)
	})

	t.Run("nothing_persisted", func(t *testing.T) {
		server := mocks.NewMockPreferenceServer(t)
		server.EXPECT().SetPreferences(mock.Anything, []string{"mundo"}).Return(datasources.ErrOffline)

		cmd := &SavePreferences{PreferenceSetter: server, CookieStore: failing(t), LocalStore: failing(t)}
		_, err := cmd.Execute(testContext(), SavePreferencesRequest{
			Session:    domain.Session{Authenticated: true},
			Categories: domain.StringSet{"mundo"},
		})
		require.ErrorIs(t, err, ErrNotPersisted)
	})
}

func TestPreferences_AnonymousRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		set  domain.StringSet
	}{
		{name: "empty", set: domain.StringSet{}},
		{name: "single", set: domain.StringSet{"pernambuco"}},
		{name: "several", set: domain.StringSet{"esportes", "cultura", "mundo"}},
		{name: "case_and_spacing_kept", set: domain.StringSet{"Esportes", "esportes", " mundo "}},
		{name: "cookie_unsafe_characters", set: domain.StringSet{"política", `tag "com aspas"`, "a;b=c"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cookie, local := memory.New(), memory.New()
			save := &SavePreferences{CookieStore: cookie, LocalStore: local}

			_, err := save.Execute(testContext(), SavePreferencesRequest{Categories: tc.set})
			require.NoError(t, err)

			got, err := newLocalLoader(cookie, local).Execute(testContext(), Empty{})
			require.NoError(t, err)
			assert.True(t, tc.set.Equal(got), "want %v, got %v", tc.set, got)
		})
	}
}

func TestClearAllPreferences_Execute(t *testing.T) {
	cases := []struct {
		name        string
		session     domain.Session
		confirmed   bool
		serverErr   error
		wantServer  bool
		wantCleared []domain.Tier
	}{
		{
			name:      "declined_leaves_tiers",
			session:   domain.Session{Authenticated: true},
			confirmed: false,
		},
		{
			name:        "anonymous_clears_client_tiers",
			session:     domain.Session{},
			confirmed:   true,
			wantCleared: []domain.Tier{domain.TierCookie, domain.TierLocal},
		},
		{
			name:        "authenticated_clears_server_too",
			session:     domain.Session{Authenticated: true},
			confirmed:   true,
			wantServer:  true,
			wantCleared: []domain.Tier{domain.TierCookie, domain.TierLocal, domain.TierServer},
		},
		{
			name:        "server_failure_does_not_roll_back",
			session:     domain.Session{Authenticated: true},
			confirmed:   true,
			wantServer:  true,
			serverErr:   errors.New("503"),
			wantCleared: []domain.Tier{domain.TierCookie, domain.TierLocal},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cookie := memory.NewWithValues(map[string]string{domain.PreferencesKey: `["esportes"]`})
			local := memory.NewWithValues(map[string]string{domain.PreferencesKey: `["cultura"]`})

			confirmer := mocks.NewMockConfirmer(t)
			confirmer.EXPECT().Confirm(mock.Anything, ClearPreferencesPrompt).Return(tc.confirmed, nil)

			server := mocks.NewMockPreferenceServer(t)
			if tc.wantServer {
				server.EXPECT().SetPreferences(mock.Anything, []string{}).Return(tc.serverErr)
			}

			cmd := &ClearAllPreferences{
				Confirmer:        confirmer,
				PreferenceSetter: server,
				CookieStore:      cookie,
				LocalStore:       local,
			}
			result, err := cmd.Execute(testContext(), tc.session)
			require.NoError(t, err)
			assert.Equal(t, tc.confirmed, result.Confirmed)
			assert.Equal(t, tc.wantCleared, result.Cleared)

			_, cookieOK := storedValue(t, cookie, domain.PreferencesKey)
			_, localOK := storedValue(t, local, domain.PreferencesKey)
			assert.Equal(t, !tc.confirmed, cookieOK)
			assert.Equal(t, !tc.confirmed, localOK)
		})
	}
}

func TestClearAllPreferences_Execute_IndependentDeletions(t *testing.T) {
	cookie := mocks.NewMockKeyValueStore(t)
	cookie.EXPECT().DeleteValue(mock.Anything, domain.PreferencesKey).Return(errors.New("locked"))
	local := memory.NewWithValues(map[string]string{domain.PreferencesKey: `["cultura"]`})

	confirmer := mocks.NewMockConfirmer(t)
	confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(true, nil)

	cmd := &ClearAllPreferences{Confirmer: confirmer, CookieStore: cookie, LocalStore: local}
	result, err := cmd.Execute(testContext(), domain.Session{})
	require.NoError(t, err)
	assert.Equal(t, []domain.Tier{domain.TierLocal}, result.Cleared)

	_, ok := storedValue(t, local, domain.PreferencesKey)
	assert.False(t, ok)
}

func TestClearAllPreferences_Execute_ConfirmerError(t *testing.T) {
	local := memory.NewWithValues(map[string]string{domain.PreferencesKey: `["cultura"]`})

	confirmer := mocks.NewMockConfirmer(t)
	confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(false, errors.New("stdin closed"))

	cmd := &ClearAllPreferences{Confirmer: confirmer, LocalStore: local}
	result, err := cmd.Execute(testContext(), domain.Session{})
	require.Error(t, err)
	assert.False(t, result.Confirmed)

	_, ok := storedValue(t, local, domain.PreferencesKey)
	assert.True(t, ok)
}
