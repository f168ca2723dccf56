// Package ui runs the interactive board.
package ui

import (
	"context"
	"errors"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"tableflip.dev/keepcmd/pkg/app"
	"tableflip.dev/keepcmd/pkg/logging"
	"tableflip.dev/keepcmd/pkg/snapshot"
	"tableflip.dev/keepcmd/pkg/store"
	"tableflip.dev/keepcmd/pkg/tui/board"
	"tableflip.dev/keepcmd/pkg/tui/theme"
)

// ErrNoTerminal is returned when stdout is not an interactive terminal.
var ErrNoTerminal = errors.New("ui: stdout is not a terminal")

type UI struct {
	Board *app.Board
	// Disk, when set, is watched so edits from other keepcmd processes show up live.
	Disk   *store.Disk
	Logger *slog.Logger
	// LogLevel is the configured level; the board shows warnings and above
	// on its notice line while it owns the terminal.
	LogLevel string
	// Filter is the initial category filter.
	Filter string
}

func (d *UI) Do(ctx context.Context) error {
	if d.Board == nil {
		return errors.New("ui: no board")
	}
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNoTerminal
	}
	logger := d.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	level, err := logging.ParseLevel(d.LogLevel)
	if err != nil {
		logger.Warn("unknown log level", "level", d.LogLevel)
		level = slog.LevelWarn
	}
	// The notice line shows warnings and errors only.
	if level < slog.LevelWarn {
		level = slog.LevelWarn
	}
	handler := board.NewLogHandler(level)
	tuiLogger := slog.New(handler)
	d.Board.SetLogger(tuiLogger)
	if d.Disk != nil {
		d.Disk.SetLogger(tuiLogger)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var events <-chan store.Event
	if d.Disk != nil {
		ch, err := d.Disk.Watch(ctx, snapshot.Key)
		if err != nil {
			tuiLogger.Warn("live reload disabled", "err", err)
		} else {
			events = ch
		}
	}

	d.Board.Filter(d.Filter)
	model := board.New(board.Options{
		Board:  d.Board,
		Theme:  theme.Default(),
		Events: events,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	handler.SetProgram(p)
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
