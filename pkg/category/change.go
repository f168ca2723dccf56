package category

import (
	"errors"
	"fmt"
)

// ErrNotFound is reported when an operation references an unknown category or
// command. The collection is returned unchanged in that case.
var ErrNotFound = errors.New("category: not found")

// ChangeKind classifies the effect of an operation.
type ChangeKind int

const (
	// Unchanged means the operation was a valid no-op (e.g. an item moved onto itself).
	Unchanged ChangeKind = iota
	// Created means a new category or command was added.
	Created
	// Replaced means an existing category or command was overwritten in place.
	Replaced
	// Removed means a category or command was deleted.
	Removed
	// Moved means an entry changed position.
	Moved
	// NotFound means a referenced id does not exist.
	NotFound
)

func (k ChangeKind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Created:
		return "created"
	case Replaced:
		return "replaced"
	case Removed:
		return "removed"
	case Moved:
		return "moved"
	case NotFound:
		return "not found"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// Change reports what an operation did and which entity it concerned.
type Change struct {
	Kind ChangeKind
	// ID is the id of the created, replaced, removed or moved entity. For a
	// NotFound change it is the id that could not be resolved.
	ID string
}

// Mutated reports whether the returned collection differs from the input.
func (c Change) Mutated() bool {
	switch c.Kind {
	case Created, Replaced, Removed, Moved:
		return true
	default:
		return false
	}
}

// Err returns ErrNotFound (wrapped with the id) for NotFound changes and nil otherwise.
func (c Change) Err() error {
	if c.Kind != NotFound {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrNotFound, c.ID)
}
