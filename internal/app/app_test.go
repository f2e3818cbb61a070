package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claraboia/jcreader/internal/command"
	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
	"github.com/claraboia/jcreader/internal/transport/cli"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSetup_OfflineRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		config func(dir string) string
	}{
		{
			name:   "memory",
			config: func(string) string { return "base_url: \"\"\nstorage:\n  driver: memory\n" },
		},
		{
			name: "sqlite",
			config: func(dir string) string {
				return fmt.Sprintf("base_url: \"\"\nstorage:\n  driver: sqlite\n  sqlite_path: %q\n",
					filepath.Join(dir, "jcreader.db"))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := testContext()
			path := writeConfig(t, tc.config(t.TempDir()))

			cmds, closer, err := Setup(ctx, cli.Options{ConfigPath: path, Confirmer: cli.AlwaysConfirm{}})
			require.NoError(t, err)
			t.Cleanup(func() { require.NoError(t, closer()) })

			session, err := cmds.GetSession.Execute(ctx, command.Empty{})
			require.NoError(t, err)
			assert.False(t, session.Authenticated, "offline readers are anonymous")

			result, err := cmds.SavePreferences.Execute(ctx, command.SavePreferencesRequest{
				Session:    session,
				Categories: domain.StringSet{"esportes", "cultura"},
			})
			require.NoError(t, err)
			assert.Equal(t, command.SaveOutcomeLocal, result.Outcome)
			assert.False(t, result.Degraded)

			state, err := cmds.LoadReaderState.Execute(ctx, command.Empty{})
			require.NoError(t, err)
			assert.Equal(t, domain.StringSet{"esportes", "cultura"}, state.Preferences)

			cleared, err := cmds.ClearAllPreferences.Execute(ctx, session)
			require.NoError(t, err)
			assert.True(t, cleared.Confirmed)

			state, err = cmds.LoadReaderState.Execute(ctx, command.Empty{})
			require.NoError(t, err)
			assert.Empty(t, state.Preferences)

			_, err = cmds.Login.Execute(ctx, domain.Credentials{Email: "ana@jc.com.br", Password: "x"})
			require.ErrorIs(t, err, datasources.ErrOffline)
		})
	}
}

func TestSetup_Defaults(t *testing.T) {
	path := writeConfig(t, "base_url: \"https://jc.example.com\"\nstorage:\n  driver: memory\ncategories: [tecnologia]\n")

	cmds, closer, err := Setup(testContext(), cli.Options{ConfigPath: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	assert.Equal(t, 50, cmds.PageSize)
	assert.Equal(t, "https://jc.example.com", cmds.SiteURL)
	assert.True(t, cmds.Vocabulary.Contains("tecnologia"))
	assert.True(t, cmds.Vocabulary.Contains("esportes"))
}

func TestSetup_InvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "unknown_driver", body: "storage:\n  driver: redis\n"},
		{name: "bad_base_url", body: "base_url: \"ftp://jc.example.com\"\nstorage:\n  driver: memory\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Setup(testContext(), cli.Options{ConfigPath: writeConfig(t, tc.body)})
			require.Error(t, err)
		})
	}
}

func TestSetup_EnvOverridesConfig(t *testing.T) {
	t.Setenv("JCREADER_STORAGE_DRIVER", "memory")
	t.Setenv("JCREADER_BASE_URL", "")
	path := writeConfig(t, "storage:\n  driver: redis\n")

	_, closer, err := Setup(testContext(), cli.Options{ConfigPath: path})
	require.NoError(t, err)
	require.NoError(t, closer())
}
