package app

import (
	"fmt"

	"tableflip.dev/keepcmd/pkg/category"
	"tableflip.dev/keepcmd/pkg/dnd"
)

// Replay runs a complete drag of active onto over: start, one hover, drop.
// It returns the hover update and every announcement in order. Command
// items are taken from the selected category.
func (b *Board) Replay(active, over dnd.Item) (Update, []string, error) {
	if b.drag.Dragging() {
		return Update{}, nil, fmt.Errorf("app: a drag of %s is in progress", b.drag.Active())
	}
	start := b.DragStart(active)
	if !b.drag.Dragging() {
		return Update{}, nil, fmt.Errorf("%w: %s %q", category.ErrNotFound, active.List, active.ID)
	}
	hover := b.DragOver(over)
	drop := b.DragEnd(over)

	var said []string
	for _, u := range []Update{start, hover, drop} {
		if u.Announcement != "" {
			said = append(said, u.Announcement)
		}
	}
	if err := hover.Err(); err != nil {
		return hover, said, err
	}
	if hover.Change.Kind != category.Moved && active != over {
		if over.List != active.List || b.dndBoard().Index(over.List, over.ID) < 0 {
			return hover, said, fmt.Errorf("%w: %s %q", category.ErrNotFound, over.List, over.ID)
		}
	}
	return hover, said, nil
}
