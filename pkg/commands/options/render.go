package options

import (
	"github.com/spf13/cobra"
)

type RenderOptions struct {
	Markdown bool
	Width    int
}

func AddRenderArgs(cmd *cobra.Command, o *RenderOptions) {
	cmd.Flags().BoolVar(&o.Markdown, "markdown", false,
		"Render the category as markdown (with --category).")
	cmd.Flags().IntVar(&o.Width, "width", 80,
		"Wrap width for --markdown.")
}
