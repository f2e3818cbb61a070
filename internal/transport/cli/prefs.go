package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claraboia/jcreader/internal/command"
	"github.com/claraboia/jcreader/internal/domain"
)

func (c *CLI) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the login state, preferences and saved articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			state, err := c.cmds.LoadReaderState.Execute(ctx, command.Empty{})
			if err != nil {
				return fmt.Errorf("loading reader state: %w", err)
			}
			readingVersion, err := c.cmds.GetReadingVersion.Execute(ctx, command.Empty{})
			if err != nil {
				return fmt.Errorf("loading reading version: %w", err)
			}

			login := "anônimo"
			if state.Session.Authenticated {
				login = "autenticado"
			}
			printField(out, "Sessão", login)
			printField(out, "Fonte", string(state.Session.AuthoritativeTier()))
			printField(out, "Preferências", displayCategories(state.Preferences))
			printField(out, "Salvas", fmt.Sprintf("%d", len(state.SavedArticles)))
			printField(out, "Versão", string(readingVersion))
			return nil
		},
	}
}

func (c *CLI) prefsCommand() *cobra.Command {
	prefs := &cobra.Command{
		Use:   "prefs",
		Short: "Manage category preferences",
	}
	prefs.AddCommand(
		c.prefsShowCommand(),
		c.prefsSaveCommand(),
		c.prefsClearCommand(),
		c.prefsTiersCommand(),
	)
	return prefs
}

func (c *CLI) prefsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the selected categories and the available ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			state, err := c.cmds.LoadReaderState.Execute(cmd.Context(), command.Empty{})
			if err != nil {
				return fmt.Errorf("loading preferences: %w", err)
			}

			printHeader(out, "Categorias")
			for _, tag := range c.cmds.Vocabulary.Tags() {
				mark := "[ ]"
				if state.Preferences.Contains(tag) {
					mark = successStyle.Render("[x]")
				}
				fmt.Fprintf(out, "%s %s %s\n", mark, domain.CategoryDisplayName(tag), dimStyle.Render(tag))
			}
			for _, tag := range c.cmds.Vocabulary.Unknown(state.Preferences) {
				fmt.Fprintf(out, "%s %s %s\n", successStyle.Render("[x]"), tag, dimStyle.Render("(fora do catálogo)"))
			}
			return nil
		},
	}
}

func (c *CLI) prefsSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save [category...]",
		Short: "Replace the preference set; with no categories every article is shown",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			categories := domain.NewStringSet(normaliseTags(args)...)
			if unknown := c.cmds.Vocabulary.Unknown(categories); len(unknown) > 0 {
				return fmt.Errorf("unknown categories: %s (valid: %s)",
					strings.Join(unknown, ", "), strings.Join(c.cmds.Vocabulary.Tags(), ", "))
			}

			session, err := c.cmds.GetSession.Execute(ctx, command.Empty{})
			if err != nil {
				return fmt.Errorf("checking login: %w", err)
			}

			result, err := c.cmds.SavePreferences.Execute(ctx, command.SavePreferencesRequest{
				Session:    session,
				Categories: categories,
			})
			if err != nil {
				return fmt.Errorf("saving preferences: %w", err)
			}

			printNotice(cmd.OutOrStdout(), result.Notice, result.Degraded)
			return nil
		},
	}
}

func (c *CLI) prefsClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the preferences from every tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			session, err := c.cmds.GetSession.Execute(ctx, command.Empty{})
			if err != nil {
				return fmt.Errorf("checking login: %w", err)
			}

			result, err := c.cmds.ClearAllPreferences.Execute(ctx, session)
			if err != nil {
				return fmt.Errorf("clearing preferences: %w", err)
			}
			if !result.Confirmed {
				fmt.Fprintln(out, dimStyle.Render("Nada foi alterado."))
				return nil
			}

			tiers := make([]string, 0, len(result.Cleared))
			for _, t := range result.Cleared {
				tiers = append(tiers, string(t))
			}
			printNotice(out, "Preferências removidas.", false)
			printField(out, "Removidas de", strings.Join(tiers, ", "))
			return nil
		},
	}
}

func (c *CLI) prefsTiersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "Show what the cookie and local tiers hold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			records, err := c.cmds.InspectTiers.Execute(cmd.Context(), command.Empty{})
			if err != nil {
				return fmt.Errorf("inspecting tiers: %w", err)
			}
			if len(records) == 0 {
				fmt.Fprintln(out, dimStyle.Render("Nenhum dado armazenado."))
				return nil
			}
			for _, r := range records {
				fmt.Fprintf(out, "%s %s\n", keyStyle.Render(fmt.Sprintf("%s/%s", r.Tier, r.Key)), r.Value)
			}
			return nil
		},
	}
}

// normaliseTags splits comma lists and folds typed tags to the lowercase
// vocabulary form. Stored sets are never rewritten.
func normaliseTags(args []string) []string {
	tags := make([]string, 0, len(args))
	for _, arg := range args {
		for _, tag := range strings.Split(arg, ",") {
			if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
