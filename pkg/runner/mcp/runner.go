package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/keepcmd/pkg/app"
	"tableflip.dev/keepcmd/pkg/logging"
)

// Transport selects how the server talks to its client.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

// ParseTransport accepts the names used on the command line.
func ParseTransport(s string) (Transport, error) {
	switch t := Transport(strings.ToLower(strings.TrimSpace(s))); t {
	case "", TransportStdio:
		return TransportStdio, nil
	case TransportHTTP:
		return TransportHTTP, nil
	default:
		return "", fmt.Errorf("unsupported transport %q (expected stdio or http)", s)
	}
}

const defaultPath = "/mcp"

// Runner serves the board until the context is cancelled or the client goes
// away.
type Runner struct {
	Board   *app.Board
	Logger  *slog.Logger
	Version string

	Transport Transport

	// In and Out carry the stdio transport. They default to os.Stdin and
	// os.Stdout.
	In  io.Reader
	Out io.Writer

	// Addr is the host:port the HTTP transport listens on. Port 0 picks one.
	Addr     string
	Path     string
	CertFile string
	KeyFile  string
	// Ready is called with the endpoint URL once the HTTP listener is up.
	Ready func(url string)
}

func (r Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return logging.Discard()
	}
	return r.Logger
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.Board == nil {
		return errors.New("mcp runner requires a board")
	}
	srv := r.newServer()

	switch r.Transport {
	case "", TransportStdio:
		return r.serveStdio(ctx, srv)
	case TransportHTTP:
		return r.serveHTTP(ctx, srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", r.Transport)
	}
}

func (r Runner) newServer() *server.MCPServer {
	version := r.Version
	if version == "" {
		version = "dev"
	}
	srv := server.NewMCPServer(
		"keepcmd",
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Browse, search, edit and reorder saved shell commands grouped by category. "+
			"Categories and commands keep the order the user gave them; use the move tools to change it."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	svc := NewService(r.Board)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

func (r Runner) serveStdio(ctx context.Context, srv *server.MCPServer) error {
	in, out := r.In, r.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	stdio := server.NewStdioServer(srv)
	stdio.SetErrorLogger(slog.NewLogLogger(r.logger().Handler(), slog.LevelWarn))

	r.logger().Debug("mcp serving stdio")
	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	if (r.CertFile == "") != (r.KeyFile == "") {
		return errors.New("both tls cert and key must be provided")
	}
	path := r.Path
	if path == "" {
		path = defaultPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	addr := r.Addr
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	mux := http.NewServeMux()
	// Every call reloads the snapshot, so no session state is kept.
	mux.Handle(path, server.NewStreamableHTTPServer(srv,
		server.WithEndpointPath(path),
		server.WithStateLess(true),
	))
	httpSrv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("mcp: %w", err)
	}

	scheme := "http"
	if r.CertFile != "" {
		scheme = "https"
	}
	url := fmt.Sprintf("%s://%s%s", scheme, ln.Addr(), path)
	r.logger().Info("mcp listening", "url", url)
	if r.Ready != nil {
		r.Ready(url)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if r.CertFile != "" {
		err = httpSrv.ServeTLS(ln, r.CertFile, r.KeyFile)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
