// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// CategoryOptions selects the category a command operates in.
type CategoryOptions struct {
	Category string
}

func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		Wrap80("Specify the category id. Commands that need one prompt for it on a terminal."))
}

// FieldOptions carry the text fields of a category or command.
type FieldOptions struct {
	Title       string
	Command     string
	Description string
}

func AddDescriptionArg(cmd *cobra.Command, o *FieldOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Specify the description.")
}

func AddTitleArg(cmd *cobra.Command, o *FieldOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "",
		"Specify a new title.")
}

func AddCommandArg(cmd *cobra.Command, o *FieldOptions) {
	cmd.Flags().StringVar(&o.Command, "command", "",
		"Specify a new command line.")
}
