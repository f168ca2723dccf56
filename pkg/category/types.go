// Package category defines categories of shell commands and the pure
// operations that add, edit, remove, reorder and filter them.
//
// Every operation takes a Collection and returns a new one. Categories that
// are not touched by an operation keep their pointer identity; a category that
// changes is replaced by a fresh value, so callers can detect changes with a
// plain pointer comparison.
package category

// Command is a single reusable shell command owned by a Category.
type Command struct {
	ID          string `json:"id"`
	Command     string `json:"command"`
	Description string `json:"description"`
}

// Category groups an ordered list of commands.
type Category struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Commands    []*Command `json:"commands"`
}

// Collection is the ordered list of categories. Position is significant: it is
// both the display order and the persisted order.
type Collection []*Category

// Clone returns a shallow copy of the category with its own command slice.
func (c *Category) Clone() *Category {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Commands = append(make([]*Command, 0, len(c.Commands)), c.Commands...)
	return &cp
}

// Index returns the position of the category with id, or -1.
func (c Collection) Index(id string) int {
	for i, cat := range c {
		if cat != nil && cat.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the category with id, or nil.
func (c Collection) Find(id string) *Category {
	if i := c.Index(id); i >= 0 {
		return c[i]
	}
	return nil
}

// IDs lists category ids in order.
func (c Collection) IDs() []string {
	ids := make([]string, 0, len(c))
	for _, cat := range c {
		ids = append(ids, cat.ID)
	}
	return ids
}

// CommandIndex returns the position of the command with id, or -1.
func (c *Category) CommandIndex(id string) int {
	if c == nil {
		return -1
	}
	for i, cmd := range c.Commands {
		if cmd != nil && cmd.ID == id {
			return i
		}
	}
	return -1
}

// FindCommand returns the command with id, or nil.
func (c *Category) FindCommand(id string) *Command {
	if i := c.CommandIndex(id); i >= 0 {
		return c.Commands[i]
	}
	return nil
}
