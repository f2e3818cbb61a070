// Package cli is the jcreader terminal front end. Each subcommand parses its
// flags, runs one command and renders the result.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/claraboia/jcreader/internal/command"
	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

func SetVersionInfo(v, c string) {
	version = v
	commit = c
}

// Commands is everything the subcommands can run.
type Commands struct {
	GetSession          command.Command[command.Empty, domain.Session]
	LoadReaderState     command.Command[command.Empty, domain.ReaderState]
	SavePreferences     command.Command[command.SavePreferencesRequest, command.SavePreferencesResult]
	ClearAllPreferences command.Command[domain.Session, command.ClearPreferencesResult]
	InspectTiers        command.Command[command.Empty, []domain.StorageRecord]

	ToggleSavedArticle command.Command[string, command.ToggleSavedArticleResult]
	RemoveSavedArticle command.Command[string, bool]
	ListSavedArticles  command.Command[command.ListSavedArticlesRequest, domain.StringSet]
	ExportSavedFeed    command.Command[command.ExportSavedFeedRequest, command.ExportSavedFeedResult]
	ShareArticle       command.Command[string, domain.ShareLinks]

	ListFeed           command.Command[command.ListFeedRequest, domain.FeedPage]
	SearchArticles     command.Command[command.SearchArticlesRequest, []domain.Article]
	ListSearchHistory  command.Command[command.Empty, domain.StringSet]
	SuggestSearchTerms command.Command[string, []string]

	Login          command.Command[domain.Credentials, domain.AuthResult]
	Register       command.Command[domain.Registration, domain.AuthResult]
	Logout         command.Command[command.Empty, command.Empty]
	SubmitFeedback command.Command[domain.Feedback, domain.FeedbackReceipt]

	GetReadingVersion command.Command[command.Empty, domain.ReadingVersion]
	SetReadingVersion command.Command[domain.ReadingVersion, domain.ReadingVersion]

	Vocabulary domain.Vocabulary
	SiteURL    string
	PageSize   int
}

// Options carries what the root command knows once its flags are parsed.
type Options struct {
	ConfigPath string
	Confirmer  datasources.Confirmer
}

// SetupFunc builds the commands for one run. The returned func releases
// whatever the commands hold open.
type SetupFunc func(ctx context.Context, opts Options) (*Commands, func() error, error)

type CLI struct {
	setup  SetupFunc
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cmds   *Commands
	closer func() error

	configPath string
	assumeYes  bool
}

func New(setup SetupFunc, in io.Reader, out, errOut io.Writer) *CLI {
	return &CLI{setup: setup, in: in, out: out, errOut: errOut}
}

// Execute runs the command line in args and releases the setup afterwards.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.rootCommand()
	root.SetArgs(args)
	root.SetIn(c.in)
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	err := root.ExecuteContext(ctx)
	if c.closer != nil {
		if cerr := c.closer(); cerr != nil {
			domain.LoggerFromContext(ctx).WarnContext(ctx, "failed to release resources", "error", cerr)
		}
	}
	return err
}

func (c *CLI) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "jcreader",
		Short:        "Terminal reader for the JC news site",
		Long:         "jcreader browses the site's feed and keeps category preferences and saved articles in sync across the site, the cookie jar and the local cache.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationNoSetup] == "true" {
				return nil
			}
			return c.runSetup(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to config file")
	root.PersistentFlags().BoolVarP(&c.assumeYes, "yes", "y", false, "answer yes to confirmation prompts")

	root.AddCommand(
		c.versionCommand(),
		c.statusCommand(),
		c.prefsCommand(),
		c.savedCommand(),
		c.shareCommand(),
		c.feedCommand(),
		c.searchCommand(),
		c.feedbackCommand(),
		c.loginCommand(),
		c.registerCommand(),
		c.logoutCommand(),
		c.versionModeCommand(),
	)
	return root
}

const annotationNoSetup = "no-setup"

func (c *CLI) runSetup(ctx context.Context) error {
	var confirmer datasources.Confirmer = &PromptConfirmer{In: c.in, Out: c.out}
	if c.assumeYes {
		confirmer = AlwaysConfirm{}
	}

	cmds, closer, err := c.setup(ctx, Options{ConfigPath: c.configPath, Confirmer: confirmer})
	if err != nil {
		return fmt.Errorf("setting up: %w", err)
	}
	c.cmds = cmds
	c.closer = closer
	return nil
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Annotations: map[string]string{annotationNoSetup: "true"},
		Args:        cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jcreader %s (commit: %s)\n", version, commit)
		},
	}
}
