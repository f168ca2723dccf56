// Package store persists snapshots on disk with diskv and resolves the
// keepcmd configuration.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/keepcmd/pkg/logging"
	"tableflip.dev/keepcmd/pkg/snapshot"
)

const tempDir = ".tmp"

// Disk is a snapshot.KV backed by a diskv directory. Every key is a single
// file directly under the base path; writes go through a temp file and a
// rename so readers never observe a partial snapshot.
type Disk struct {
	d        *diskv.Diskv
	basePath string
	log      *slog.Logger
}

var _ snapshot.KV = (*Disk)(nil)

// Open creates a Disk rooted at cfg.BasePath(), creating the directory if needed.
func Open(cfg Config, logger *slog.Logger) (*Disk, error) {
	if cfg == nil {
		return nil, errors.New("store: config required")
	}
	if logger == nil {
		logger = logging.Discard()
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(filepath.Join(basePath, tempDir), 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	return &Disk{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			TempDir:           filepath.Join(basePath, tempDir),
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			// No read cache: Watch-triggered reloads must see files
			// rewritten by other processes.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
		log:      logger.With("store", basePath),
	}, nil
}

// BasePath returns the directory holding the data files.
func (p *Disk) BasePath() string {
	return p.basePath
}

// SetLogger replaces the logger. Call it before Watch.
func (p *Disk) SetLogger(l *slog.Logger) {
	if l != nil {
		p.log = l.With("store", p.basePath)
	}
}

// Get implements snapshot.KV.
func (p *Disk) Get(key string) ([]byte, error) {
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", snapshot.ErrNotFound, key)
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

// Set implements snapshot.KV.
func (p *Disk) Set(key string, value []byte) error {
	if err := p.d.Write(key, value); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	p.log.Debug("wrote key", "key", key, "bytes", len(value))
	return nil
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
