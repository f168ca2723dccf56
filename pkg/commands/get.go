package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/keepcmd/pkg/commands/options"
	"tableflip.dev/keepcmd/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	io := &options.IDOptions{}
	ro := &options.RenderOptions{}

	cmd := &cobra.Command{
		Use:     "get [keyword...]",
		Aliases: []string{"ls", "list"},
		Short:   "List categories, or the commands of one category",
		Long: options.Wrap80(`Without a category, list every category whose title, description or
commands contain the keyword (case-insensitive). With --category, list the commands of that category.`),
		Example: `
keepcmd get
keepcmd get docker
keepcmd get -c <category-id> -k
keepcmd get -c <category-id> --markdown
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			g := get.Get{
				Board:    ws.Board,
				Keyword:  strings.Join(args, " "),
				Category: co.Category,
				ShowID:   io.ShowID,
				JSON:     oo.JSON,
				Markdown: ro.Markdown,
				Width:    ro.Width,
				Out:      cmd.OutOrStdout(),
			}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}

	options.AddCategoryArgs(cmd, co)
	registerCategoryCompletion(cmd)
	options.AddShowIDArgs(cmd, io)
	options.AddRenderArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
