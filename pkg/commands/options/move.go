package options

import (
	"github.com/spf13/cobra"
)

// MoveOptions
type MoveOptions struct {
	Over    string
	Verbose bool
}

func AddMoveArgs(cmd *cobra.Command, o *MoveOptions) {
	cmd.Flags().StringVar(&o.Over, "over", "",
		Wrap80("Id of the entry whose position the moved entry takes."))
	_ = cmd.MarkFlagRequired("over")
	cmd.Flags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Print the drag announcements.")
}
