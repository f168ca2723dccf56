package add

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/keepcmd/pkg/app"
	"tableflip.dev/keepcmd/pkg/category"
	"tableflip.dev/keepcmd/pkg/dnd"
	"tableflip.dev/keepcmd/pkg/printers"
)

type Add struct {
	Board *app.Board
	List  dnd.List

	// Category owns a new command.
	Category    string
	Text        string
	Description string

	JSON bool
	Out  io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Board == nil {
		return errors.New("can not add, no board")
	}
	text := strings.TrimSpace(n.Text)
	if text == "" {
		return fmt.Errorf("can not add an empty %s", n.List)
	}

	var u app.Update
	switch n.List {
	case dnd.CategoryList:
		u = n.Board.ModifyCategory("", category.Category{Title: text, Description: n.Description})
	case dnd.CommandList:
		u = n.Board.ModifyCommand(n.Category, "", category.Command{Command: text, Description: n.Description})
	}
	if err := u.Err(); err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.JSON {
		return printers.JSON(out, map[string]string{"id": u.Change.ID, "kind": n.List.String()})
	}
	_, _ = fmt.Fprintf(out, "added %s %s\n", n.List, u.Change.ID)
	return nil
}
