package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/keepcmd/pkg/commands/options"
	"tableflip.dev/keepcmd/pkg/dnd"
	"tableflip.dev/keepcmd/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a category or a command",
		Example: `
keepcmd edit category <id> --title Kubernetes
keepcmd edit command <id> -c <category-id> --command "kubectl get pods -A"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEditCategory(cmd)
	addEditCommand(cmd)

	topLevel.AddCommand(cmd)
}

// changed returns a pointer to v when the flag was given.
func changed(cmd *cobra.Command, flag string, v string) *string {
	if cmd.Flags().Changed(flag) {
		return &v
	}
	return nil
}

func addEditCategory(topLevel *cobra.Command) {
	fo := &options.FieldOptions{}

	cmd := &cobra.Command{
		Use:               "category <id>",
		Short:             "Edit the title or description of a category",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeCategories,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			e := edit.Edit{
				Board:       ws.Board,
				List:        dnd.CategoryList,
				ID:          args[0],
				Title:       changed(cmd, "title", fo.Title),
				Description: changed(cmd, "description", fo.Description),
				Out:         cmd.OutOrStdout(),
			}
			return oo.HandleError(e.Do(cmd.Context()))
		},
	}

	options.AddTitleArg(cmd, fo)
	options.AddDescriptionArg(cmd, fo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addEditCommand(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	fo := &options.FieldOptions{}

	cmd := &cobra.Command{
		Use:   "command <id>",
		Short: "Edit a stored command",
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
			e := edit.Edit{
				Board:       ws.Board,
				List:        dnd.CommandList,
				ID:          args[0],
				Category:    cat,
				Command:     changed(cmd, "command", fo.Command),
				Description: changed(cmd, "description", fo.Description),
				Out:         cmd.OutOrStdout(),
			}
			return oo.HandleError(e.Do(cmd.Context()))
		},
	}

	options.AddCategoryArgs(cmd, co)
	registerCategoryCompletion(cmd)
	options.AddCommandArg(cmd, fo)
	options.AddDescriptionArg(cmd, fo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
