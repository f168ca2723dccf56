// Package printers renders categories and commands for the terminal.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/keepcmd/pkg/category"
)

const maxDescription = 60

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	switch count {
	case 1:
		_, _ = c.Fprintf(pp.out(), " - %d command\n", count)
	default:
		_, _ = c.Fprintf(pp.out(), " - %d commands\n", count)
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Categories prints one row per category.
func (pp *PrettyPrint) Categories(c category.Collection) {
	if len(c) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, cat := range c {
		row := []interface{}{}
		if pp.ShowID {
			row = append(row, y.Sprint(cat.ID))
		}
		row = append(row,
			bold.Sprint(cat.Title),
			f.Sprintf("%d", len(cat.Commands)),
			truncate.StringWithTail(cat.Description, maxDescription, "…"),
		)
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Commands prints the commands of cat under its title.
func (pp *PrettyPrint) Commands(cat *category.Category) {
	pp.TitleWithCount(cat.Title, len(cat.Commands))
	if cat.Description != "" {
		_, _ = color.New(color.Faint).Fprintln(pp.out(), cat.Description)
	}
	if len(cat.Commands) == 0 {
		pp.none()
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	for _, cmd := range cat.Commands {
		row := []interface{}{}
		if pp.ShowID {
			row = append(row, y.Sprint(cmd.ID))
		}
		row = append(row, "$ "+cmd.Command, f.Sprint(cmd.Description))
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Announce prints a drag announcement.
func (pp *PrettyPrint) Announce(lines ...string) {
	f := color.New(color.Faint, color.Italic)
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		_, _ = f.Fprintln(pp.out(), l)
	}
}

// Notice prints a non-fatal warning.
func (pp *PrettyPrint) Notice(msg string) {
	if msg == "" {
		return
	}
	_, _ = color.New(color.FgYellow).Fprintln(pp.out(), "warning: "+msg)
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v interface{}) error {
	if w == nil {
		w = color.Output
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
