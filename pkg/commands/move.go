package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/keepcmd/pkg/commands/options"
	"tableflip.dev/keepcmd/pkg/dnd"
	"tableflip.dev/keepcmd/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Reorder categories or commands",
		Long: options.Wrap80(`Move an entry to the position of another entry in the same list.
The move is performed as a drag: the entry is picked up, hovered over the target and dropped.
Use -v to print what a screen reader would announce along the way.`),
		Example: `
keepcmd move category <id> --over <other-id> -v
keepcmd move command <id> --over <other-id> -c <category-id>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addMoveCategory(cmd)
	addMoveCommand(cmd)

	topLevel.AddCommand(cmd)
}

func addMoveCategory(topLevel *cobra.Command) {
	mo := &options.MoveOptions{}

	cmd := &cobra.Command{
		Use:               "category <id>",
		Short:             "Move a category",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeCategories,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			m := move.Move{
				Board:   ws.Board,
				List:    dnd.CategoryList,
				ID:      args[0],
				Over:    mo.Over,
				Verbose: mo.Verbose,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(m.Do(cmd.Context()))
		},
	}

	options.AddMoveArgs(cmd, mo)
	_ = cmd.RegisterFlagCompletionFunc("over", completeCategories)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addMoveCommand(topLevel *cobra.Command) {
	mo := &options.MoveOptions{}
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:   "command <id>",
		Short: "Move a command inside its category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			cat, err := pickCategory(cmd, ws, co.Category)
			if err != nil {
				return oo.HandleError(err)
			}
			m := move.Move{
				Board:    ws.Board,
				List:     dnd.CommandList,
				ID:       args[0],
				Over:     mo.Over,
				Category: cat,
				Verbose:  mo.Verbose,
				Out:      cmd.OutOrStdout(),
			}
			return oo.HandleError(m.Do(cmd.Context()))
		},
	}

	options.AddMoveArgs(cmd, mo)
	options.AddCategoryArgs(cmd, co)
	registerCategoryCompletion(cmd)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
