package category

import "tableflip.dev/keepcmd/pkg/id"

// UpsertCategory adds or replaces a category.
//
// When no category in c has categoryID, cat is given a fresh id from ids and
// prepended; the returned Change is Created and carries the new id. Otherwise
// the category at categoryID's position is replaced by cat (keeping
// categoryID) and the Change is Replaced.
func UpsertCategory(c Collection, ids id.Generator, categoryID string, cat Category) (Collection, Change) {
	cat.Commands = copyCommands(cat.Commands)

	i := c.Index(categoryID)
	if categoryID == "" || i < 0 {
		cat.ID = ids.New()
		out := make(Collection, 0, len(c)+1)
		out = append(out, &cat)
		out = append(out, c...)
		return out, Change{Kind: Created, ID: cat.ID}
	}

	cat.ID = categoryID
	out := append(Collection(nil), c...)
	out[i] = &cat
	return out, Change{Kind: Replaced, ID: categoryID}
}

// RemoveCategory deletes the category with categoryID together with all of
// its commands.
func RemoveCategory(c Collection, categoryID string) (Collection, Change) {
	i := c.Index(categoryID)
	if i < 0 {
		return c, Change{Kind: NotFound, ID: categoryID}
	}
	out := make(Collection, 0, len(c)-1)
	out = append(out, c[:i]...)
	out = append(out, c[i+1:]...)
	return out, Change{Kind: Removed, ID: categoryID}
}

// UpsertCommand adds or replaces a command inside the category categoryID.
//
// An unknown category leaves c untouched and reports NotFound. An unknown
// commandID appends cmd with a fresh id; a known one is replaced in place.
func UpsertCommand(c Collection, ids id.Generator, categoryID, commandID string, cmd Command) (Collection, Change) {
	ci := c.Index(categoryID)
	if ci < 0 {
		return c, Change{Kind: NotFound, ID: categoryID}
	}
	owner := c[ci].Clone()

	var change Change
	if i := owner.CommandIndex(commandID); commandID != "" && i >= 0 {
		cmd.ID = commandID
		owner.Commands[i] = &cmd
		change = Change{Kind: Replaced, ID: commandID}
	} else {
		cmd.ID = ids.New()
		owner.Commands = append(owner.Commands, &cmd)
		change = Change{Kind: Created, ID: cmd.ID}
	}

	return replaceAt(c, ci, owner), change
}

// RemoveCommand deletes commandID from the category categoryID.
func RemoveCommand(c Collection, categoryID, commandID string) (Collection, Change) {
	ci := c.Index(categoryID)
	if ci < 0 {
		return c, Change{Kind: NotFound, ID: categoryID}
	}
	i := c[ci].CommandIndex(commandID)
	if i < 0 {
		return c, Change{Kind: NotFound, ID: commandID}
	}

	owner := *c[ci]
	owner.Commands = make([]*Command, 0, len(c[ci].Commands)-1)
	owner.Commands = append(owner.Commands, c[ci].Commands[:i]...)
	owner.Commands = append(owner.Commands, c[ci].Commands[i+1:]...)

	return replaceAt(c, ci, &owner), Change{Kind: Removed, ID: commandID}
}

func replaceAt(c Collection, i int, cat *Category) Collection {
	out := append(Collection(nil), c...)
	out[i] = cat
	return out
}

func copyCommands(cmds []*Command) []*Command {
	out := make([]*Command, 0, len(cmds))
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		cp := *cmd
		out = append(out, &cp)
	}
	return out
}
