package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/keepcmd/pkg/commands/options"
	"tableflip.dev/keepcmd/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the board",
		Long: options.Wrap80(`Open the two-column board: categories on one side, the commands of the
selected category on the other. Press ? inside the board for key bindings.`),
		Example: `
keepcmd ui
keepcmd ui -f docker
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			i := ui.UI{
				Board:    ws.Board,
				Disk:     ws.Disk,
				Logger:   ws.Logger,
				LogLevel: ws.Config.LogLevel,
				Filter:   fo.Keyword,
			}
			return i.Do(cmd.Context())
		},
	}

	options.AddFilterArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
