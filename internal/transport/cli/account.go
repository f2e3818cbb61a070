package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claraboia/jcreader/internal/command"
	"github.com/claraboia/jcreader/internal/domain"
)

func (c *CLI) loginCommand() *cobra.Command {
	var credentials domain.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the site; the password is read from stdin when not given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if credentials.Password == "" {
				password, err := promptLine(cmd.InOrStdin(), cmd.OutOrStdout(), "Senha: ")
				if err != nil {
					return err
				}
				credentials.Password = password
			}

			result, err := c.cmds.Login.Execute(cmd.Context(), credentials)
			if err != nil {
				return formError(err)
			}
			return printAuthResult(cmd.OutOrStdout(), result, "Login realizado com sucesso!")
		},
	}
	cmd.Flags().StringVar(&credentials.Email, "email", "", "account e-mail")
	cmd.Flags().StringVar(&credentials.Password, "password", "", "account password")
	return cmd
}

func (c *CLI) registerCommand() *cobra.Command {
	var registration domain.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account on the site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if registration.PasswordConfirmation == "" {
				registration.PasswordConfirmation = registration.Password
			}

			result, err := c.cmds.Register.Execute(cmd.Context(), registration)
			if err != nil {
				return formError(err)
			}
			return printAuthResult(cmd.OutOrStdout(), result, "Cadastro realizado com sucesso!")
		},
	}
	cmd.Flags().StringVar(&registration.Name, "name", "", "full name")
	cmd.Flags().StringVar(&registration.Email, "email", "", "account e-mail")
	cmd.Flags().StringVar(&registration.Password, "password", "", "password, at least 8 characters")
	cmd.Flags().StringVar(&registration.PasswordConfirmation, "confirm", "", "password confirmation (defaults to --password)")
	return cmd
}

func (c *CLI) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out of the site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.cmds.Logout.Execute(cmd.Context(), command.Empty{}); err != nil {
				return fmt.Errorf("logging out: %w", err)
			}
			printNotice(cmd.OutOrStdout(), "Você saiu da sua conta.", false)
			return nil
		},
	}
}

func (c *CLI) feedbackCommand() *cobra.Command {
	var feedback domain.Feedback

	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Send a rating and comment to the site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			receipt, err := c.cmds.SubmitFeedback.Execute(cmd.Context(), feedback)
			if err != nil {
				return formError(err)
			}
			if !receipt.Success {
				return fmt.Errorf("feedback refused: %s", receipt.Message)
			}

			message := receipt.Message
			if message == "" {
				message = "Obrigado pelo seu feedback!"
			}
			printNotice(cmd.OutOrStdout(), message, false)
			printField(cmd.OutOrStdout(), "Avaliação", fmt.Sprintf("%d (%s)", feedback.Rating, domain.RatingLabel(feedback.Rating)))
			return nil
		},
	}
	cmd.Flags().IntVarP(&feedback.Rating, "rating", "r", 0, "rating from 1 (Ruim) to 5 (Excelente)")
	cmd.Flags().StringVarP(&feedback.Comment, "comment", "m", "", fmt.Sprintf("comment, at most %d characters", domain.FeedbackCommentMaxLen))
	cmd.Flags().StringVar(&feedback.Name, "name", "", "sender name (anonymous when empty)")
	cmd.Flags().StringVar(&feedback.Email, "email", "", "sender e-mail")
	cmd.Flags().StringVar(&feedback.ImagePath, "image", "", "screenshot to attach")
	return cmd
}

func printAuthResult(w io.Writer, result domain.AuthResult, fallback string) error {
	if result.Success {
		message := result.Message
		if message == "" {
			message = fallback
		}
		printNotice(w, message, false)
		return nil
	}

	if result.Message != "" {
		fmt.Fprintln(w, errorStyle.Render(result.Message))
	}
	fields := make([]string, 0, len(result.Errors))
	for field := range result.Errors {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	for _, field := range fields {
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("%s: %s", field, strings.Join(result.Errors[field], " "))))
	}
	return fmt.Errorf("the site refused the request")
}

func promptLine(in io.Reader, out io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(out, prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	return readLine(in)
}
