package options

import (
	"errors"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/keepcmd/pkg/category"
	"tableflip.dev/keepcmd/pkg/printers"
)

// OutputOptions selects between the pretty printer and JSON output.
type OutputOptions struct {
	JSON bool

	// Out receives JSON errors. Defaults to color.Output.
	Out io.Writer
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

type jsonError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HandleError reports err as a JSON object when --json is set and passes it
// through unchanged otherwise.
func (o *OutputOptions) HandleError(err error) error {
	if !o.JSON || err == nil {
		return err
	}
	out := o.Out
	if out == nil {
		out = color.Output
	}
	code := "error"
	if errors.Is(err, category.ErrNotFound) {
		code = "not_found"
	}
	return printers.JSON(out, jsonError{Error: err.Error(), Code: code})
}
