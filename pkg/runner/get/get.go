package get

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/keepcmd/pkg/app"
	"tableflip.dev/keepcmd/pkg/category"
	"tableflip.dev/keepcmd/pkg/printers"
)

type Get struct {
	Board *app.Board
	// Keyword filters the category list.
	Keyword string
	// Category lists the commands of one category instead.
	Category string
	ShowID   bool
	JSON     bool
	// Markdown renders the category through glamour.
	Markdown bool
	Width    int

	Out io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Board == nil {
		return errors.New("can not get, no board")
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}

	if n.Category != "" {
		cat := n.Board.All().Find(n.Category)
		if cat == nil {
			return fmt.Errorf("%w: category %q", category.ErrNotFound, n.Category)
		}
		if n.JSON {
			return printers.JSON(n.Out, cat)
		}
		if n.Markdown {
			return pp.Markdown(cat, n.Width)
		}
		pp.NewLine()
		pp.Commands(cat)
		return nil
	}

	n.Board.Filter(n.Keyword)
	cats := n.Board.Categories()
	if n.JSON {
		return printers.JSON(n.Out, cats)
	}
	pp.NewLine()
	title := "Categories"
	if n.Keyword != "" {
		title = fmt.Sprintf("Categories matching %q", n.Keyword)
	}
	pp.Title(title)
	pp.Categories(cats)
	return nil
}
