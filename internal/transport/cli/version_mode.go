package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claraboia/jcreader/internal/command"
	"github.com/claraboia/jcreader/internal/domain"
)

func (c *CLI) versionModeCommand() *cobra.Command {
	versionMode := &cobra.Command{
		Use:   "version-mode",
		Short: "Choose between short and full article versions",
	}

	versionMode.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Show the preferred article version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				v, err := c.cmds.GetReadingVersion.Execute(cmd.Context(), command.Empty{})
				if err != nil {
					return fmt.Errorf("loading reading version: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			},
		},
		&cobra.Command{
			Use:       "set <curta|completa>",
			Short:     "Set the preferred article version",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{string(domain.ReadingVersionShort), string(domain.ReadingVersionFull)},
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := c.cmds.SetReadingVersion.Execute(cmd.Context(), domain.ReadingVersion(args[0]))
				if err != nil {
					return fmt.Errorf("saving reading version: %w", err)
				}
				printNotice(cmd.OutOrStdout(), fmt.Sprintf("Versão %s selecionada.", v), false)
				return nil
			},
		},
	)
	return versionMode
}
