package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/keepcmd/pkg/store"
)

// GlobalOptions are persistent flags shared by every verb.
type GlobalOptions struct {
	Path     string
	LogLevel string
}

func AddGlobalArgs(cmd *cobra.Command, o *GlobalOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "path", "",
		Wrap80("Directory holding the keepcmd data. Overrides the config file and KEEPCMD_PATH."))
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "",
		"Log level: debug, info, warn or error.")
}

// Overrides converts the flags into store overrides.
func (o *GlobalOptions) Overrides() store.Overrides {
	return store.Overrides{Path: o.Path, LogLevel: o.LogLevel}
}
