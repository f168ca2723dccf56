package edit

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/keepcmd/pkg/app"
	"tableflip.dev/keepcmd/pkg/category"
	"tableflip.dev/keepcmd/pkg/dnd"
)

// Edit changes the fields of an existing category or command. Nil fields are
// left as they are.
type Edit struct {
	Board    *app.Board
	List     dnd.List
	ID       string
	Category string

	Title       *string
	Command     *string
	Description *string

	Out io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Board == nil {
		return errors.New("can not edit, no board")
	}

	var u app.Update
	switch n.List {
	case dnd.CategoryList:
		cur := n.Board.All().Find(n.ID)
		if cur == nil {
			return fmt.Errorf("%w: category %q", category.ErrNotFound, n.ID)
		}
		next := *cur
		set(&next.Title, n.Title)
		set(&next.Description, n.Description)
		u = n.Board.ModifyCategory(n.ID, next)
	case dnd.CommandList:
		owner := n.Board.All().Find(n.Category)
		if owner == nil {
			return fmt.Errorf("%w: category %q", category.ErrNotFound, n.Category)
		}
		cur := owner.FindCommand(n.ID)
		if cur == nil {
			return fmt.Errorf("%w: command %q", category.ErrNotFound, n.ID)
		}
		next := *cur
		set(&next.Command, n.Command)
		set(&next.Description, n.Description)
		u = n.Board.ModifyCommand(n.Category, n.ID, next)
	}
	if err := u.Err(); err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "updated %s %s\n", n.List, n.ID)
	return nil
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
