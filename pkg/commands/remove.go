package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/keepcmd/pkg/commands/options"
	"tableflip.dev/keepcmd/pkg/dnd"
	"tableflip.dev/keepcmd/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a category or a command",
		Example: `
keepcmd rm category <id>
keepcmd rm command <id> -c <category-id>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addRemoveCategory(cmd)
	addRemoveCommand(cmd)

	topLevel.AddCommand(cmd)
}

func addRemoveCategory(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "category <id>",
		Short:             "Remove a category and its commands",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeCategories,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			r := remove.Remove{
				Board: ws.Board,
				List:  dnd.CategoryList,
				ID:    args[0],
				Out:   cmd.OutOrStdout(),
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addRemoveCommand(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:   "command <id>",
		Short: "Remove a command from a category",
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
			r := remove.Remove{
				Board:    ws.Board,
				List:     dnd.CommandList,
				ID:       args[0],
				Category: cat,
				Out:      cmd.OutOrStdout(),
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddCategoryArgs(cmd, co)
	registerCategoryCompletion(cmd)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
