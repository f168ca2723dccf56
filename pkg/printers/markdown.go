package printers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"tableflip.dev/keepcmd/pkg/category"
)

// MarkdownDoc renders a category as a markdown document, one fenced shell
// block per command.
func MarkdownDoc(cat *category.Category) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", cat.Title)
	if cat.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", cat.Description)
	}
	if len(cat.Commands) == 0 {
		b.WriteString("_No commands yet._\n")
		return b.String()
	}
	for _, c := range cat.Commands {
		if c.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", c.Description)
		}
		fmt.Fprintf(&b, "```sh\n%s\n```\n\n", c.Command)
	}
	return b.String()
}

func markdownStyle() string {
	switch {
	case color.NoColor:
		return "notty"
	case termenv.HasDarkBackground():
		return "dark"
	default:
		return "light"
	}
}

// Markdown renders cat through glamour, wrapped to width.
func (pp *PrettyPrint) Markdown(cat *category.Category, width int) error {
	if width < 20 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(MarkdownDoc(cat))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(pp.out(), out)
	return err
}
