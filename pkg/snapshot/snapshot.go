// Package snapshot encodes the category collection as a versioned JSON
// document and moves it in and out of a key/value store.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"tableflip.dev/keepcmd/pkg/category"
)

const (
	// Version is the schema version written into every snapshot.
	Version = "1"
	// Key is the store key holding the snapshot. It changes with Version.
	Key = "categories-v" + Version
)

var (
	// ErrNotFound is returned by KV.Get when the key does not exist.
	ErrNotFound = errors.New("snapshot: key not found")
	// ErrMalformed is returned by Decode for data that is not a snapshot document.
	ErrMalformed = errors.New("snapshot: malformed document")
	// ErrVersion is returned by Decode for a snapshot written with another schema version.
	ErrVersion = errors.New("snapshot: unsupported version")
)

// Snapshot is the unit of persistence.
type Snapshot struct {
	Version    string              `json:"version"`
	Categories category.Collection `json:"categories"`
}

// Encode serialises the full collection.
func Encode(c category.Collection) ([]byte, error) {
	s := Snapshot{Version: Version, Categories: normalize(c)}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}
	return data, nil
}

// Decode parses a document produced by Encode.
func Decode(data []byte) (category.Collection, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if s.Version != Version {
		return nil, fmt.Errorf("%w: %q", ErrVersion, s.Version)
	}
	return normalize(s.Categories), nil
}

// normalize drops nil categories and nil commands and turns absent command
// lists into empty ones, so that a decoded collection compares equal to the
// one that was encoded.
func normalize(c category.Collection) category.Collection {
	out := make(category.Collection, 0, len(c))
	for _, cat := range c {
		if cat == nil {
			continue
		}
		if cat.Commands == nil || hasNilCommand(cat.Commands) {
			cp := *cat
			cp.Commands = make([]*category.Command, 0, len(cat.Commands))
			for _, cmd := range cat.Commands {
				if cmd != nil {
					cp.Commands = append(cp.Commands, cmd)
				}
			}
			cat = &cp
		}
		out = append(out, cat)
	}
	return out
}

func hasNilCommand(cmds []*category.Command) bool {
	for _, cmd := range cmds {
		if cmd == nil {
			return true
		}
	}
	return false
}
