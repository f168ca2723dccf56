// Package app glues the category engine, the drag machine and selection
// reconciliation to snapshot persistence. UIs and CLIs share it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tableflip.dev/keepcmd/pkg/category"
	"tableflip.dev/keepcmd/pkg/dnd"
	"tableflip.dev/keepcmd/pkg/id"
	"tableflip.dev/keepcmd/pkg/logging"
	"tableflip.dev/keepcmd/pkg/selection"
	"tableflip.dev/keepcmd/pkg/snapshot"
)

// Options configure Open.
type Options struct {
	Store *snapshot.Store
	// IDs generates ids for new categories and commands. Defaults to id.UUID.
	IDs    id.Generator
	Logger *slog.Logger
	// Left is the column shown on the left. Defaults to the category list.
	Left dnd.List
}

// Update is what a Board call did. Callers render from the board afterwards.
type Update struct {
	Change     category.Change
	Navigation selection.Navigation
	// Announcement is the drag progress sentence, if any.
	Announcement string
	// Notice reports a failed write-through. The in-memory state already
	// holds the change.
	Notice string
	// SaveErr is the write-through error behind Notice.
	SaveErr error
}

// Err returns the lookup failure or the write-through failure, if any.
func (u Update) Err() error {
	if err := u.Change.Err(); err != nil {
		return err
	}
	return u.SaveErr
}

// Board is the single writer over the category collection. It is not safe
// for concurrent use.
type Board struct {
	store *snapshot.Store
	ids   id.Generator
	log   *slog.Logger

	categories category.Collection
	selected   string
	left       dnd.List
	keyword    string

	drag       dnd.Machine
	reconciler selection.Reconciler
}

// Open loads the snapshot and selects the first category, if any.
func Open(ctx context.Context, o Options) (*Board, error) {
	if o.Store == nil {
		return nil, errors.New("app: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if o.IDs == nil {
		o.IDs = id.UUID{}
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	b := &Board{
		store: o.Store,
		ids:   o.IDs,
		log:   o.Logger,
		left:  o.Left,
	}
	b.categories = b.store.Load()
	b.settle()
	return b, nil
}

// All returns every category, ignoring the filter.
func (b *Board) All() category.Collection { return b.categories }

// Categories returns the categories matching the current filter.
func (b *Board) Categories() category.Collection {
	return category.Filter(b.categories, b.keyword)
}

// Keyword returns the current filter keyword.
func (b *Board) Keyword() string { return b.keyword }

// Selected returns the selected category, or nil.
func (b *Board) Selected() *category.Category {
	return selection.Select(b.categories, b.selected)
}

// SelectedID returns the selected category id; empty means root.
func (b *Board) SelectedID() string { return b.selected }

// Commands returns the commands of the selected category.
func (b *Board) Commands() []*category.Command {
	if sel := b.Selected(); sel != nil {
		return sel.Commands
	}
	return nil
}

// Left returns the list shown in the left column.
func (b *Board) Left() dnd.List { return b.left }

// Dragging reports whether a drag is in progress.
func (b *Board) Dragging() bool { return b.drag.Dragging() }

// Active returns the dragged subject, or nil.
func (b *Board) Active() dnd.Subject { return b.drag.Active() }

// Filter sets the keyword used by Categories.
func (b *Board) Filter(keyword string) {
	b.keyword = keyword
}

// Navigate requests categoryID and reconciles the selection against it. The
// returned navigation is Stay when the selection already equals its target:
// Navigate("") on an empty board leaves the board at the root and reports
// Stay, not ToRoot.
func (b *Board) Navigate(categoryID string) Update {
	b.selected = categoryID
	return Update{Navigation: b.settle()}
}

// ModifyCategory creates the category when categoryID is unknown or empty and
// replaces it otherwise. A created category becomes the selection.
func (b *Board) ModifyCategory(categoryID string, cat category.Category) Update {
	next, change := category.UpsertCategory(b.categories, b.ids, categoryID, cat)
	focus := ""
	if change.Kind == category.Created {
		focus = change.ID
	}
	return b.commit(next, change, focus)
}

// RemoveCategory deletes categoryID. Removing the selected category moves the
// selection to the first remaining one, or to root.
func (b *Board) RemoveCategory(categoryID string) Update {
	next, change := category.RemoveCategory(b.categories, categoryID)
	return b.commit(next, change, "")
}

// ModifyCommand creates or replaces a command inside categoryID.
func (b *Board) ModifyCommand(categoryID, commandID string, cmd category.Command) Update {
	next, change := category.UpsertCommand(b.categories, b.ids, b.owner(categoryID), commandID, cmd)
	return b.commit(next, change, "")
}

// RemoveCommand deletes commandID from categoryID.
func (b *Board) RemoveCommand(categoryID, commandID string) Update {
	next, change := category.RemoveCommand(b.categories, b.owner(categoryID), commandID)
	return b.commit(next, change, "")
}

// MoveCategory puts activeID at overID's position.
func (b *Board) MoveCategory(activeID, overID string) Update {
	next, change := category.MoveCategory(b.categories, activeID, overID)
	return b.commit(next, change, "")
}

// MoveCommand puts activeID at overID's position inside categoryID.
func (b *Board) MoveCommand(categoryID, activeID, overID string) Update {
	next, change := category.MoveCommand(b.categories, b.owner(categoryID), activeID, overID)
	return b.commit(next, change, "")
}

// SetLogger replaces the logger, e.g. once a UI owns the terminal.
func (b *Board) SetLogger(l *slog.Logger) {
	if l != nil {
		b.log = l
		b.store.Logger = l
	}
}

// SetLeft chooses the list shown in the left column.
func (b *Board) SetLeft(l dnd.List) { b.left = l }

// DragStart picks up s.
func (b *Board) DragStart(s dnd.Subject) Update {
	return b.apply(b.drag.Start(s, b.dndBoard()), s)
}

// DragOver hovers the active subject over s. Same-list hovers reorder and
// persist immediately.
func (b *Board) DragOver(s dnd.Subject) Update {
	active := b.drag.Active()
	return b.apply(b.drag.Over(s, b.dndBoard()), active)
}

// DragEnd drops the active subject on s, which may be nil.
func (b *Board) DragEnd(s dnd.Subject) Update {
	active := b.drag.Active()
	return b.apply(b.drag.End(s, b.dndBoard()), active)
}

// DragCancel abandons the drag.
func (b *Board) DragCancel() Update {
	active := b.drag.Active()
	return b.apply(b.drag.Cancel(b.dndBoard()), active)
}

// Reload re-reads the snapshot, keeping the selection when it still exists.
// It does nothing while a drag is in progress.
func (b *Board) Reload() Update {
	if b.drag.Dragging() {
		b.log.Debug("reload skipped while dragging")
		return Update{}
	}
	b.categories = b.store.Load()
	return Update{Navigation: b.settle()}
}

func (b *Board) dndBoard() dnd.Board {
	return dnd.Board{Categories: b.categories, Selected: b.selected, Left: b.left}
}

func (b *Board) apply(out dnd.Outcome, subject dnd.Subject) Update {
	u := Update{Announcement: out.Announcement}
	b.left = out.Board.Left
	if out.Reordered {
		var moved string
		if it, ok := subject.(dnd.Item); ok {
			moved = it.ID
		}
		u2 := b.commit(out.Board.Categories, category.Change{Kind: category.Moved, ID: moved}, "")
		u.Change, u.Navigation = u2.Change, u2.Navigation
		u.Notice, u.SaveErr = u2.Notice, u2.SaveErr
	}
	if out.Announcement != "" {
		b.log.Debug("drag", "announcement", out.Announcement)
	}
	return u
}

// owner resolves an empty category id to the selection.
func (b *Board) owner(categoryID string) string {
	if categoryID == "" {
		return b.selected
	}
	return categoryID
}

// commit installs next, writes it through and reconciles the selection. A
// non-empty focus becomes the selection.
func (b *Board) commit(next category.Collection, change category.Change, focus string) Update {
	u := Update{Change: change}
	if !change.Mutated() {
		if err := change.Err(); err != nil {
			b.log.Debug("no change", "err", err)
		}
		return u
	}

	b.categories = next
	if err := b.store.Save(next); err != nil {
		b.log.Warn("write-through failed", "change", change.Kind.String(), "id", change.ID, "err", err)
		u.Notice = fmt.Sprintf("changes kept in memory but not saved: %v", err)
		u.SaveErr = err
	}

	if focus != "" {
		b.selected = focus
		b.reconciler.Reset()
		u.Navigation = selection.GoTo(focus)
		return u
	}
	u.Navigation = b.settle()
	return u
}

// settle applies the reconciliation rule to the current selection.
func (b *Board) settle() selection.Navigation {
	nav := b.reconciler.Evaluate(b.categories, b.selected)
	switch nav.Kind {
	case selection.ToCategory:
		b.selected = nav.ID
	case selection.ToRoot:
		b.selected = ""
	}
	return nav
}
