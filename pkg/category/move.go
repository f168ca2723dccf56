package category

// Move relocates the element at from to index to, shifting the elements in
// between. The input slice is never modified. Out of range indexes return a
// copy of the input.
func Move[T any](s []T, from, to int) []T {
	out := append([]T(nil), s...)
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) || from == to {
		return out
	}
	v := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]T{v}, out[to:]...)...)
	return out
}

// MoveCategory removes activeID from the collection and reinserts it at the
// position currently held by overID.
func MoveCategory(c Collection, activeID, overID string) (Collection, Change) {
	from, to := c.Index(activeID), c.Index(overID)
	switch {
	case from < 0:
		return c, Change{Kind: NotFound, ID: activeID}
	case to < 0:
		return c, Change{Kind: NotFound, ID: overID}
	case from == to:
		return c, Change{Kind: Unchanged, ID: activeID}
	}
	return Move(c, from, to), Change{Kind: Moved, ID: activeID}
}

// MoveCommand reorders the commands of categoryID the same way MoveCategory
// reorders categories. Only the owning category is copied; every other
// category keeps its identity.
func MoveCommand(c Collection, categoryID, activeID, overID string) (Collection, Change) {
	ci := c.Index(categoryID)
	if ci < 0 {
		return c, Change{Kind: NotFound, ID: categoryID}
	}
	owner := c[ci]
	from, to := owner.CommandIndex(activeID), owner.CommandIndex(overID)
	switch {
	case from < 0:
		return c, Change{Kind: NotFound, ID: activeID}
	case to < 0:
		return c, Change{Kind: NotFound, ID: overID}
	case from == to:
		return c, Change{Kind: Unchanged, ID: activeID}
	}

	moved := *owner
	moved.Commands = Move(owner.Commands, from, to)
	return replaceAt(c, ci, &moved), Change{Kind: Moved, ID: activeID}
}
