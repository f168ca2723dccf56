package dnd

import "tableflip.dev/keepcmd/pkg/category"

// Board is the state a drag operates on.
type Board struct {
	Categories category.Collection
	// Selected is the id of the category whose commands form the CommandList.
	Selected string
	// Left is the list displayed in the left column.
	Left List
}

// Commands returns the command list of the selected category.
func (b Board) Commands() []*category.Command {
	if cat := b.Categories.Find(b.Selected); cat != nil {
		return cat.Commands
	}
	return nil
}

// Len reports the number of entries in l.
func (b Board) Len(l List) int {
	if l == CategoryList {
		return len(b.Categories)
	}
	return len(b.Commands())
}

// Index returns the 0-based position of id in l, or -1.
func (b Board) Index(l List, id string) int {
	if l == CategoryList {
		return b.Categories.Index(id)
	}
	if cat := b.Categories.Find(b.Selected); cat != nil {
		return cat.CommandIndex(id)
	}
	return -1
}

// ColumnPosition is the 1-based position of the column showing l.
func (b Board) ColumnPosition(l List) int {
	if b.Left == l {
		return 1
	}
	return 2
}

// Label is a short human name for an item: the category title or the command
// text, falling back to the id.
func (b Board) Label(it Item) string {
	switch it.List {
	case CategoryList:
		if cat := b.Categories.Find(it.ID); cat != nil && cat.Title != "" {
			return cat.Title
		}
	case CommandList:
		if cat := b.Categories.Find(b.Selected); cat != nil {
			if cmd := cat.FindCommand(it.ID); cmd != nil && cmd.Command != "" {
				return cmd.Command
			}
		}
	}
	return it.ID
}
