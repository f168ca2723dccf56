// Package id produces identifiers for categories and commands.
package id

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator hands out identifiers that are unique for the lifetime of a store.
type Generator interface {
	New() string
}

// UUID generates random (version 4) identifiers.
type UUID struct{}

// New returns a fresh random identifier.
func (UUID) New() string {
	return uuid.New().String()
}

// Sequence generates predictable identifiers: "<prefix>-1", "<prefix>-2", ...
// It is meant for tests and for fixtures that need stable output.
type Sequence struct {
	Prefix string

	mu   sync.Mutex
	next int
}

// NewSequence returns a Sequence that starts counting at 1.
func NewSequence(prefix string) *Sequence {
	return &Sequence{Prefix: prefix}
}

// New returns the next identifier in the sequence.
func (s *Sequence) New() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	prefix := s.Prefix
	if prefix == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s-%d", prefix, s.next)
}

// Func adapts a plain function to a Generator.
type Func func() string

// New calls f.
func (f Func) New() string { return f() }
