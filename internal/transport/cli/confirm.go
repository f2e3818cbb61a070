package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/claraboia/jcreader/internal/datasources"
)

var (
	_ datasources.Confirmer = (*PromptConfirmer)(nil)
	_ datasources.Confirmer = AlwaysConfirm{}
)

// PromptConfirmer asks on the terminal. Only an explicit yes confirms; an
// empty answer or end of input declines.
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (p *PromptConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if _, err := fmt.Fprintf(p.Out, "%s [s/N] ", prompt); err != nil {
		return false, fmt.Errorf("writing prompt: %w", err)
	}

	answer, err := readLine(p.In)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "s", "sim", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

type AlwaysConfirm struct{}

func (AlwaysConfirm) Confirm(_ context.Context, _ string) (bool, error) {
	return true, nil
}

// readLine returns the next trimmed line of r, or "" at end of input.
func readLine(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", nil
	}
	return strings.TrimSpace(scanner.Text()), nil
}
