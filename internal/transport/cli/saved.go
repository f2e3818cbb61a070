package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/claraboia/jcreader/internal/command"
)

func (c *CLI) savedCommand() *cobra.Command {
	saved := &cobra.Command{
		Use:   "saved",
		Short: "Manage the read-later list",
	}
	saved.AddCommand(
		c.savedToggleCommand(),
		c.savedRemoveCommand(),
		c.savedListCommand(),
		c.savedExportCommand(),
	)
	return saved
}

func (c *CLI) savedToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <article-id>",
		Short: "Save an article, or unsave it if it is already saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.cmds.ToggleSavedArticle.Execute(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("toggling saved article: %w", err)
			}

			if result.Saved {
				printNotice(cmd.OutOrStdout(), "Notícia salva para ler depois.", false)
			} else {
				printNotice(cmd.OutOrStdout(), "Notícia removida das salvas.", false)
			}
			return nil
		},
	}
}

func (c *CLI) savedRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <article-id>",
		Short: "Remove an article from the read-later list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := c.cmds.RemoveSavedArticle.Execute(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("removing saved article: %w", err)
			}

			if removed {
				printNotice(cmd.OutOrStdout(), "Notícia removida das salvas.", false)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("A notícia não estava salva."))
			}
			return nil
		},
	}
}

func (c *CLI) savedListCommand() *cobra.Command {
	var newestFirst bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved article ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			ids, err := c.cmds.ListSavedArticles.Execute(cmd.Context(),
				command.ListSavedArticlesRequest{NewestFirst: newestFirst})
			if err != nil {
				return fmt.Errorf("listing saved articles: %w", err)
			}
			if len(ids) == 0 {
				fmt.Fprintln(out, dimStyle.Render("Nenhuma notícia salva."))
				return nil
			}
			for _, id := range ids {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&newestFirst, "newest-first", false, "list the most recently saved first")
	return cmd
}

func (c *CLI) savedExportCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the saved articles as an RSS, Atom or JSON feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			result, err := c.cmds.ExportSavedFeed.Execute(ctx, command.ExportSavedFeedRequest{
				Format:  command.FeedFormat(format),
				SiteURL: c.cmds.SiteURL,
			})
			if err != nil {
				return fmt.Errorf("exporting saved articles: %w", err)
			}
			for _, id := range result.Unresolved {
				fmt.Fprintln(cmd.ErrOrStderr(), degradedStyle.Render("Notícia não encontrada no feed: "+id))
			}

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), result.Document)
				return nil
			}
			if err := os.WriteFile(output, []byte(result.Document), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(command.FeedFormatRSS), "feed format: rss, atom or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}
