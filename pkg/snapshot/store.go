package snapshot

import (
	"errors"
	"fmt"
	"log/slog"

	"tableflip.dev/keepcmd/pkg/category"
	"tableflip.dev/keepcmd/pkg/logging"
)

// KV is the byte store snapshots are written to.
type KV interface {
	// Get returns the value for key or an error wrapping ErrNotFound.
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Store loads and saves the collection under a single key.
type Store struct {
	KV     KV
	Key    string
	Logger *slog.Logger
}

// NewStore returns a Store using the default Key.
func NewStore(kv KV, logger *slog.Logger) *Store {
	return &Store{KV: kv, Key: Key, Logger: logger}
}

func (s *Store) key() string {
	if s.Key == "" {
		return Key
	}
	return s.Key
}

func (s *Store) logger() *slog.Logger {
	if s.Logger == nil {
		return logging.Discard()
	}
	return s.Logger
}

// Load reads the snapshot. It never fails: an absent key, an unreadable store,
// or a document that cannot be decoded all produce an empty collection.
func (s *Store) Load() category.Collection {
	log := s.logger().With("key", s.key())
	data, err := s.KV.Get(s.key())
	switch {
	case errors.Is(err, ErrNotFound):
		log.Debug("no snapshot, starting empty")
		return category.Collection{}
	case err != nil:
		log.Warn("read snapshot", "err", err)
		return category.Collection{}
	}

	c, err := Decode(data)
	if err != nil {
		log.Warn("discarding unreadable snapshot", "err", err)
		return category.Collection{}
	}
	log.Debug("snapshot loaded", "categories", len(c))
	return c
}

// Save writes the full collection.
func (s *Store) Save(c category.Collection) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	if err := s.KV.Set(s.key(), data); err != nil {
		return fmt.Errorf("snapshot: write %s: %w", s.key(), err)
	}
	return nil
}

// Memory is an in-process KV, handy for tests and dry runs.
type Memory struct {
	values map[string][]byte
	// SetErr, when non-nil, is returned by every Set call.
	SetErr error
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Get implements KV.
func (m *Memory) Get(key string) ([]byte, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return append([]byte(nil), v...), nil
}

// Set implements KV.
func (m *Memory) Set(key string, value []byte) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	if m.values == nil {
		m.values = make(map[string][]byte)
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}
