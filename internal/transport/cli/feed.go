package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claraboia/jcreader/internal/command"
	"github.com/claraboia/jcreader/internal/domain"
)

const (
	defaultPage = 1
	maxPageSize = 200
)

func parsePagination(page, pageSize int) (domain.ArticleListOptions, error) {
	if page < 1 {
		return domain.ArticleListOptions{}, fmt.Errorf("invalid page value [%d]", page)
	}
	if pageSize > maxPageSize {
		return domain.ArticleListOptions{}, fmt.Errorf("page size [%d] exceeds limit [%d]", pageSize, maxPageSize)
	}
	if pageSize < 1 {
		return domain.ArticleListOptions{}, fmt.Errorf("invalid page size value [%d]", pageSize)
	}
	return domain.ArticleListOptions{Page: page, PageSize: pageSize}, nil
}

func (c *CLI) feedCommand() *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "List the latest articles in the preferred categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if !cmd.Flags().Changed("page-size") {
				pageSize = c.cmds.PageSize
			}
			options, err := parsePagination(page, pageSize)
			if err != nil {
				return err
			}

			state, err := c.cmds.LoadReaderState.Execute(ctx, command.Empty{})
			if err != nil {
				return fmt.Errorf("loading reader state: %w", err)
			}

			feed, err := c.cmds.ListFeed.Execute(ctx, command.ListFeedRequest{State: state, Options: options})
			if err != nil {
				return fmt.Errorf("listing feed: %w", err)
			}

			printHeader(out, fmt.Sprintf("Notícias: %s", displayCategories(state.Preferences)))
			if len(feed.Entries) == 0 {
				fmt.Fprintln(out, dimStyle.Render("Nenhuma notícia encontrada."))
				return nil
			}
			for _, entry := range feed.Entries {
				printArticle(out, entry.Article, entry.Saved)
			}
			footer := fmt.Sprintf("Página %d · %d notícias", feed.Page, feed.Total)
			if feed.HasMore {
				footer += fmt.Sprintf(" · próxima: --page %d", feed.Page+1)
			}
			fmt.Fprintln(out, dimStyle.Render(footer))
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", defaultPage, "page number, starting at 1")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, fmt.Sprintf("articles per page, at most %d (default from config)", maxPageSize))
	return cmd
}
