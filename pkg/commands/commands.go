package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/keepcmd/pkg/app"
	"tableflip.dev/keepcmd/pkg/commands/options"
	"tableflip.dev/keepcmd/pkg/dnd"
	"tableflip.dev/keepcmd/pkg/id"
	"tableflip.dev/keepcmd/pkg/logging"
	"tableflip.dev/keepcmd/pkg/snapshot"
	"tableflip.dev/keepcmd/pkg/store"
)

var (
	oo = &options.OutputOptions{}
	gg = &options.GlobalOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "keepcmd",
		Short: options.Wrap80("Keep the shell commands you use, grouped by category and ordered the way you like."),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			oo.Out = cmd.OutOrStdout()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	options.AddGlobalArgs(cmd, gg)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGet(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addMove(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// workspace is everything a verb needs to operate on the board.
type workspace struct {
	Config *store.FileConfig
	Logger *slog.Logger
	Disk   *store.Disk
	Board  *app.Board
}

func openWorkspace(ctx context.Context) (*workspace, error) {
	cfg, err := store.LoadConfig(gg.Overrides())
	if err != nil {
		return nil, err
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)
	if cfg.File != "" {
		logger.Debug("using config", "file", cfg.File)
	}

	disk, err := store.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	left, err := dnd.ParseList(cfg.Left)
	if err != nil {
		logger.Warn("ignoring left column setting", "err", err)
	}

	b, err := app.Open(ctx, app.Options{
		Store:  snapshot.NewStore(disk, logger),
		IDs:    id.UUID{},
		Logger: logger,
		Left:   left,
	})
	if err != nil {
		return nil, err
	}
	return &workspace{Config: cfg, Logger: logger, Disk: disk, Board: b}, nil
}
