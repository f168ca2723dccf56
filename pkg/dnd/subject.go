// Package dnd interprets drag gestures over the two lists of the board (the
// category list and the command list of the selected category) and turns them
// into reorders of the category collection.
package dnd

import "fmt"

// List names one of the two fixed lists on the board.
type List int

const (
	// CategoryList holds every category.
	CategoryList List = iota
	// CommandList holds the commands of the selected category.
	CommandList
)

func (l List) String() string {
	switch l {
	case CategoryList:
		return "category"
	case CommandList:
		return "command"
	default:
		return fmt.Sprintf("List(%d)", int(l))
	}
}

// Title is the column heading for the list.
func (l List) Title() string {
	switch l {
	case CategoryList:
		return "Category"
	case CommandList:
		return "Command"
	default:
		return l.String()
	}
}

// Other returns the opposite list.
func (l List) Other() List {
	if l == CategoryList {
		return CommandList
	}
	return CategoryList
}

// ParseList accepts "category" or "command".
func ParseList(s string) (List, error) {
	switch s {
	case "category", "categories":
		return CategoryList, nil
	case "command", "commands":
		return CommandList, nil
	default:
		return CategoryList, fmt.Errorf("dnd: unknown list %q", s)
	}
}

// Subject is something that can be dragged or hovered: either a whole Column
// or a single Item inside one. The set of implementations is closed.
type Subject interface {
	subject()
	String() string
}

// Column is one of the two board columns.
type Column struct {
	List List
}

// Item is one entry of a list, identified by the category or command id.
type Item struct {
	List List
	ID   string
}

func (Column) subject() {}
func (Item) subject()   {}

func (c Column) String() string { return "column " + c.List.Title() }
func (i Item) String() string   { return fmt.Sprintf("%s %s", i.List, i.ID) }
