package dnd

import (
	"fmt"

	"tableflip.dev/keepcmd/pkg/category"
)

// Outcome is the result of a drag transition.
type Outcome struct {
	Board Board
	// Reordered is set when Board.Categories differs from the input and has to
	// be persisted.
	Reordered bool
	// Swapped is set when the left and right columns traded places.
	Swapped bool
	// Announcement describes the transition for assistive technology. It is
	// informational only.
	Announcement string
}

// Machine tracks the single active drag: Idle until Start, Dragging until End
// or Cancel. The zero value is an idle machine.
type Machine struct {
	active   Subject
	pickedUp List
}

// Active returns the subject being dragged, or nil.
func (m *Machine) Active() Subject { return m.active }

// Dragging reports whether a drag is in progress.
func (m *Machine) Dragging() bool { return m.active != nil }

// Start picks up s. It is ignored while another drag is active and for items
// that do not exist on the board.
func (m *Machine) Start(s Subject, b Board) Outcome {
	out := Outcome{Board: b}
	if m.active != nil || s == nil {
		return out
	}

	switch s := s.(type) {
	case Column:
		m.active = s
		out.Announcement = fmt.Sprintf("Picked up column %s at position %d of 2.",
			s.List.Title(), b.ColumnPosition(s.List))
	case Item:
		i := b.Index(s.List, s.ID)
		if i < 0 {
			return out
		}
		m.active = s
		m.pickedUp = s.List
		out.Announcement = fmt.Sprintf("Picked up %s %q at position %d of %d in column %s.",
			s.List, b.Label(s), i+1, b.Len(s.List), s.List.Title())
	}
	return out
}

// Over is called continuously while the active subject hovers over. Items
// hovering items of the same list are reordered immediately, so the board
// previews the drop. Everything else leaves the data untouched.
func (m *Machine) Over(over Subject, b Board) Outcome {
	out := Outcome{Board: b}
	if over == nil || m.active == nil || over == m.active {
		return out
	}

	switch active := m.active.(type) {
	case Column:
		o, ok := over.(Column)
		if !ok {
			return out
		}
		out.Announcement = fmt.Sprintf("Column %s was moved over column %s at position %d of 2.",
			active.List.Title(), o.List.Title(), b.ColumnPosition(o.List))

	case Item:
		o, ok := over.(Item)
		if !ok {
			return out
		}
		if o.List != m.pickedUp {
			i := b.Index(o.List, o.ID)
			out.Announcement = fmt.Sprintf("%s %q was moved over column %s in position %d of %d.",
				m.pickedUp.Title(), b.Label(active), o.List.Title(), i+1, b.Len(o.List))
			return out
		}

		var (
			next   category.Collection
			change category.Change
		)
		switch m.pickedUp {
		case CategoryList:
			next, change = category.MoveCategory(b.Categories, active.ID, o.ID)
		case CommandList:
			next, change = category.MoveCommand(b.Categories, b.Selected, active.ID, o.ID)
		}
		if !change.Mutated() {
			return out
		}
		out.Board.Categories = next
		out.Reordered = true
		out.Announcement = fmt.Sprintf("%s %q was moved over position %d of %d in column %s.",
			m.pickedUp.Title(), out.Board.Label(active), out.Board.Index(active.List, active.ID)+1,
			out.Board.Len(active.List), active.List.Title())
	}
	return out
}

// End drops the active subject on over (which may be nil). Dropping a column
// on the other column swaps the columns. Reorders applied by Over stay.
func (m *Machine) End(over Subject, b Board) Outcome {
	out := Outcome{Board: b}
	active := m.active
	m.active = nil
	if active == nil {
		return out
	}

	switch active := active.(type) {
	case Column:
		o, ok := over.(Column)
		if !ok || o == active {
			out.Announcement = fmt.Sprintf("Column %s was dropped.", active.List.Title())
			return out
		}
		out.Board.Left = b.Left.Other()
		out.Swapped = true
		out.Announcement = fmt.Sprintf("Column %s was dropped into position %d of 2.",
			active.List.Title(), out.Board.ColumnPosition(active.List))

	case Item:
		label := b.Label(active)
		o, ok := over.(Item)
		switch {
		case !ok:
			out.Announcement = fmt.Sprintf("%s %q was dropped.", m.pickedUp.Title(), label)
		case o.List != m.pickedUp:
			i := b.Index(o.List, o.ID)
			out.Announcement = fmt.Sprintf("%s %q was dropped into column %s in position %d of %d.",
				m.pickedUp.Title(), label, o.List.Title(), i+1, b.Len(o.List))
		default:
			out.Announcement = fmt.Sprintf("%s %q was dropped into position %d of %d in column %s.",
				m.pickedUp.Title(), label, b.Index(active.List, active.ID)+1, b.Len(active.List), active.List.Title())
		}
	}
	return out
}

// Cancel abandons the drag. Reorders already applied by Over are kept; only
// the drag itself is cleared.
func (m *Machine) Cancel(b Board) Outcome {
	out := Outcome{Board: b}
	active := m.active
	m.active = nil

	switch active := active.(type) {
	case Column:
		out.Announcement = fmt.Sprintf("Dragging column %s cancelled.", active.List.Title())
	case Item:
		out.Announcement = fmt.Sprintf("Dragging %s %q cancelled.", active.List, b.Label(active))
	}
	return out
}
