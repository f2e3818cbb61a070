package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claraboia/jcreader/internal/command"
	"github.com/claraboia/jcreader/internal/domain"
)

func (c *CLI) searchCommand() *cobra.Command {
	var (
		category string
		window   string
		ordering string
	)

	search := &cobra.Command{
		Use:   "search <term...>",
		Short: "Search article titles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			term := strings.Join(args, " ")
			articles, err := c.cmds.SearchArticles.Execute(ctx, command.SearchArticlesRequest{
				Term:     term,
				Category: strings.ToLower(strings.TrimSpace(category)),
				Window:   domain.DateWindow(window),
				Ordering: domain.ArticleOrdering(ordering),
			})
			if err != nil {
				return fmt.Errorf("searching: %w", err)
			}

			saved, err := c.cmds.ListSavedArticles.Execute(ctx, command.ListSavedArticlesRequest{})
			if err != nil {
				return fmt.Errorf("listing saved articles: %w", err)
			}

			printHeader(out, fmt.Sprintf("Resultados para %q", term))
			if len(articles) == 0 {
				fmt.Fprintln(out, dimStyle.Render("Nenhuma notícia encontrada."))
				return nil
			}
			for _, a := range articles {
				printArticle(out, a, saved.Contains(a.ID))
			}
			return nil
		},
	}
	search.Flags().StringVarP(&category, "category", "c", "", "only this category")
	search.Flags().StringVarP(&window, "window", "w", "", "hoje, semana or mes")
	search.Flags().StringVarP(&ordering, "order", "o", "", "recentes or relevancia")

	search.AddCommand(c.searchHistoryCommand(), c.searchSuggestCommand())
	return search
}

func (c *CLI) searchHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show recent search terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			history, err := c.cmds.ListSearchHistory.Execute(cmd.Context(), command.Empty{})
			if err != nil {
				return fmt.Errorf("loading search history: %w", err)
			}
			printList(cmd, history, "Nenhuma busca recente.")
			return nil
		},
	}
}

func (c *CLI) searchSuggestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [prefix]",
		Short: "Suggest search terms from history and categories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var prefix string
			if len(args) == 1 {
				prefix = args[0]
			}

			suggestions, err := c.cmds.SuggestSearchTerms.Execute(cmd.Context(), prefix)
			if err != nil {
				return fmt.Errorf("suggesting search terms: %w", err)
			}
			printList(cmd, suggestions, "Nenhuma sugestão.")
			return nil
		},
	}
}

func printList(cmd *cobra.Command, items []string, empty string) {
	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintln(out, dimStyle.Render(empty))
		return
	}
	for _, item := range items {
		fmt.Fprintln(out, item)
	}
}
