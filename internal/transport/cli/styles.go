package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/claraboia/jcreader/internal/domain"
)

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#C4161C", Dark: "#F25D5D"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}
	colorAmber   = lipgloss.AdaptiveColor{Light: "#B7791F", Dark: "#F6AD55"}
	colorRed     = lipgloss.AdaptiveColor{Light: "#C53030", Dark: "#FC8181"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	titleStyle = lipgloss.NewStyle().Bold(true)

	savedMarkStyle = lipgloss.NewStyle().
			Foreground(colorAmber).
			Bold(true)

	categoryStyle = lipgloss.NewStyle().Foreground(colorGreen)

	dimStyle = lipgloss.NewStyle().Foreground(colorDim)

	successStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	degradedStyle = lipgloss.NewStyle().
			Foreground(colorAmber).
			Bold(true)

	errorStyle = lipgloss.NewStyle().Foreground(colorRed)

	keyStyle = lipgloss.NewStyle().Foreground(colorDim)
)

func printNotice(w io.Writer, notice string, degraded bool) {
	style := successStyle
	if degraded {
		style = degradedStyle
	}
	fmt.Fprintln(w, style.Render(notice))
}

func printField(w io.Writer, key, value string) {
	fmt.Fprintf(w, "%s %s\n", keyStyle.Render(fmt.Sprintf("%-15s", key)), value)
}

func printHeader(w io.Writer, text string) {
	fmt.Fprintln(w, headerStyle.Render(text))
}

func printArticle(w io.Writer, article domain.Article, saved bool) {
	mark := "  "
	if saved {
		mark = savedMarkStyle.Render("★ ")
	}

	meta := []string{article.PublishedAt.Format("02/01/2006 15:04")}
	if article.Category != "" {
		meta = append(meta, categoryStyle.Render(domain.CategoryDisplayName(article.Category)))
	}
	if article.Author != "" {
		meta = append(meta, article.Author)
	}

	fmt.Fprintf(w, "%s%s %s\n", mark, titleStyle.Render(article.Title), dimStyle.Render("["+article.ID+"]"))
	fmt.Fprintf(w, "  %s\n", strings.Join(meta, dimStyle.Render(" · ")))
	if article.Link != "" {
		fmt.Fprintf(w, "  %s\n", dimStyle.Render(article.Link))
	}
}

func displayCategories(set domain.StringSet) string {
	if len(set) == 0 {
		return dimStyle.Render("(todas as categorias)")
	}
	names := make([]string, 0, len(set))
	for _, tag := range set {
		names = append(names, domain.CategoryDisplayName(tag))
	}
	return strings.Join(names, ", ")
}
