package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/keepcmd/pkg/commands/options"
	"tableflip.dev/keepcmd/pkg/dnd"
	"tableflip.dev/keepcmd/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a category or a command",
		Example: `
keepcmd add category Git -d "version control"
keepcmd add command -c <category-id> -d "pretty history" git log --oneline --graph
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddCategory(cmd)
	addAddCommand(cmd)

	topLevel.AddCommand(cmd)
}

func addAddCategory(topLevel *cobra.Command) {
	fo := &options.FieldOptions{}

	cmd := &cobra.Command{
		Use:   "category <title...>",
		Short: "Add a category at the top of the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			a := add.Add{
				Board:       ws.Board,
				List:        dnd.CategoryList,
				Text:        strings.Join(args, " "),
				Description: fo.Description,
				JSON:        oo.JSON,
				Out:         cmd.OutOrStdout(),
			}
			return oo.HandleError(a.Do(cmd.Context()))
		},
	}

	options.AddDescriptionArg(cmd, fo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addAddCommand(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	fo := &options.FieldOptions{}

	cmd := &cobra.Command{
		Use:   "command <command...>",
		Short: "Add a command at the end of a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			cat, err := pickCategory(cmd, ws, co.Category)
			if err != nil {
				return oo.HandleError(err)
			}
			a := add.Add{
				Board:       ws.Board,
				List:        dnd.CommandList,
				Category:    cat,
				Text:        strings.Join(args, " "),
				Description: fo.Description,
				JSON:        oo.JSON,
				Out:         cmd.OutOrStdout(),
			}
			return oo.HandleError(a.Do(cmd.Context()))
		},
	}
	// Flags go first; everything from the first word on is the stored command.
	cmd.Flags().SetInterspersed(false)

	options.AddCategoryArgs(cmd, co)
	registerCategoryCompletion(cmd)
	options.AddDescriptionArg(cmd, fo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
