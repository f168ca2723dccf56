package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/keepcmd/pkg/commands/options"
	"tableflip.dev/keepcmd/pkg/runner/mcp"
)

type mcpOptions struct {
	Transport string
	Host      string
	Port      int
	Path      string
	CertFile  string
	KeyFile   string
}

func addMCP(topLevel *cobra.Command) {
	mo := &mcpOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve categories and commands over the Model Context Protocol",
		Long: options.Wrap80(`Launch an MCP server exposing search, edits and reordering of the saved
commands. Speaks stdio by default so it can be registered directly with an assistant; use
--transport http to serve the streamable HTTP transport instead.`),
		Example: `
keepcmd mcp
keepcmd mcp --transport http --http-port 0
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			transport, err := mcp.ParseTransport(mo.Transport)
			if err != nil {
				return err
			}
			if mo.Port < 0 || mo.Port > 65535 {
				return fmt.Errorf("invalid http-port %d", mo.Port)
			}

			ws, err := openWorkspace(cmd.Context())
			if err != nil {
				return err
			}
			r := mcp.Runner{
				Board:     ws.Board,
				Logger:    ws.Logger,
				Version:   version,
				Transport: transport,
				In:        cmd.InOrStdin(),
				Out:       cmd.OutOrStdout(),
				Addr:      net.JoinHostPort(strings.TrimSpace(mo.Host), strconv.Itoa(mo.Port)),
				Path:      strings.TrimSpace(mo.Path),
				CertFile:  strings.TrimSpace(mo.CertFile),
				KeyFile:   strings.TrimSpace(mo.KeyFile),
				Ready: func(url string) {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on %s\n", url)
				},
			}
			return r.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&mo.Transport, "transport", string(mcp.TransportStdio), "Transport to use: stdio or http.")
	cmd.Flags().StringVar(&mo.Host, "http-host", "127.0.0.1", "Interface for the HTTP transport.")
	cmd.Flags().IntVar(&mo.Port, "http-port", 8080, "Port for the HTTP transport (0 picks a free one).")
	cmd.Flags().StringVar(&mo.Path, "http-path", "/mcp", "HTTP endpoint path.")
	cmd.Flags().StringVar(&mo.CertFile, "http-tls-cert", "", "TLS certificate file for HTTPS.")
	cmd.Flags().StringVar(&mo.KeyFile, "http-tls-key", "", "TLS private key file for HTTPS.")

	topLevel.AddCommand(cmd)
}
