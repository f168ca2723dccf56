package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/keepcmd/pkg/app"
	"tableflip.dev/keepcmd/pkg/dnd"
)

type Remove struct {
	Board    *app.Board
	List     dnd.List
	ID       string
	Category string

	Out io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Board == nil {
		return errors.New("can not remove, no board")
	}

	var u app.Update
	switch n.List {
	case dnd.CategoryList:
		u = n.Board.RemoveCategory(n.ID)
	case dnd.CommandList:
		if n.Category == "" {
			return errors.New("can not remove a command without its category")
		}
		u = n.Board.RemoveCommand(n.Category, n.ID)
	}
	if err := u.Err(); err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "removed %s %s\n", n.List, n.ID)
	return nil
}
