package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claraboia/jcreader/internal/domain"
)

func shareLinkFor(links domain.ShareLinks, network string) (string, error) {
	switch network {
	case "whatsapp":
		return links.WhatsApp, nil
	case "facebook":
		return links.Facebook, nil
	case "twitter":
		return links.Twitter, nil
	case "link":
		return links.URL, nil
	default:
		return "", fmt.Errorf("unknown network [%s], use whatsapp, facebook, twitter or link", network)
	}
}

func (c *CLI) shareCommand() *cobra.Command {
	var network string

	cmd := &cobra.Command{
		Use:   "share <article-id>",
		Short: "Print the links for sharing an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			links, err := c.cmds.ShareArticle.Execute(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("sharing article: %w", err)
			}

			out := cmd.OutOrStdout()
			if network != "" {
				link, err := shareLinkFor(links, network)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, link)
				return nil
			}

			printHeader(out, "Compartilhar notícia")
			printField(out, "WhatsApp", links.WhatsApp)
			printField(out, "Facebook", links.Facebook)
			printField(out, "Twitter", links.Twitter)
			printField(out, "Copiar link", links.URL)
			return nil
		},
	}
	cmd.Flags().StringVarP(&network, "network", "n", "", "print only one link: whatsapp, facebook, twitter or link")
	return cmd
}
