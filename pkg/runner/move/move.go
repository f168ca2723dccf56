// Package move reorders categories and commands from the command line by
// replaying a drag: pick up, hover over the target, drop.
package move

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/keepcmd/pkg/app"
	"tableflip.dev/keepcmd/pkg/category"
	"tableflip.dev/keepcmd/pkg/dnd"
	"tableflip.dev/keepcmd/pkg/printers"
)

type Move struct {
	Board    *app.Board
	List     dnd.List
	ID       string
	Over     string
	Category string
	Verbose  bool

	Out io.Writer
}

func (n *Move) Do(ctx context.Context) error {
	if n.Board == nil {
		return errors.New("can not move, no board")
	}
	if n.List == dnd.CommandList {
		if n.Category == "" {
			return errors.New("can not move a command without its category")
		}
		if u := n.Board.Navigate(n.Category); n.Board.SelectedID() != n.Category {
			return fmt.Errorf("%w: category %q (%s)", category.ErrNotFound, n.Category, u.Navigation)
		}
	}

	active := dnd.Item{List: n.List, ID: n.ID}
	over := dnd.Item{List: n.List, ID: n.Over}
	_, announcements, err := n.Board.Replay(active, over)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.Verbose {
		pp.Announce(announcements...)
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "moved %s %s\n", n.List, n.ID)
	return nil
}
