package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/keepcmd/pkg/category"
	"tableflip.dev/keepcmd/pkg/dnd"
	"tableflip.dev/keepcmd/pkg/id"
	"tableflip.dev/keepcmd/pkg/selection"
	"tableflip.dev/keepcmd/pkg/snapshot"
)

func seed(t *testing.T, kv *snapshot.Memory, ids ...string) {
	t.Helper()
	c := category.Collection{}
	for _, i := range ids {
		c = append(c, &category.Category{ID: i, Title: "cat " + i, Commands: []*category.Command{}})
	}
	require.NoError(t, snapshot.NewStore(kv, nil).Save(c))
}

func open(t *testing.T, kv *snapshot.Memory) *Board {
	t.Helper()
	b, err := Open(context.Background(), Options{
		Store: snapshot.NewStore(kv, nil),
		IDs:   id.NewSequence("n"),
	})
	require.NoError(t, err)
	return b
}

func persisted(t *testing.T, kv *snapshot.Memory) []string {
	t.Helper()
	return snapshot.NewStore(kv, nil).Load().IDs()
}

func TestOpenRequiresStore(t *testing.T) {
	_, err := Open(context.Background(), Options{})
	assert.Error(t, err)
}

func TestOpenSelectsFirst(t *testing.T) {
	kv := snapshot.NewMemory()
	seed(t, kv, "x", "y")
	b := open(t, kv)
	assert.Equal(t, "x", b.SelectedID())
	assert.Equal(t, dnd.CategoryList, b.Left())
}

func TestOpenEmpty(t *testing.T) {
	b := open(t, snapshot.NewMemory())
	assert.Empty(t, b.All())
	assert.Nil(t, b.Selected())
	assert.Nil(t, b.Commands())
}

func TestNavigateRootOnEmptyBoardStays(t *testing.T) {
	b := open(t, snapshot.NewMemory())
	u := b.Navigate("")
	assert.Equal(t, selection.Navigation{Kind: selection.Stay}, u.Navigation)
	assert.Equal(t, "", b.SelectedID())

	u = b.Navigate("gone")
	assert.Equal(t, selection.Root(), u.Navigation)
	assert.Equal(t, "", b.SelectedID())
}

func TestNavigate(t *testing.T) {
	kv := snapshot.NewMemory()
	seed(t, kv, "x", "y")
	b := open(t, kv)

	u := b.Navigate("y")
	assert.False(t, u.Navigation.Requested())
	assert.Equal(t, "y", b.SelectedID())

	u = b.Navigate("z")
	assert.Equal(t, selection.GoTo("x"), u.Navigation)
	assert.Equal(t, "x", b.SelectedID())
}

func TestCreateCategoryNavigatesToIt(t *testing.T) {
	kv := snapshot.NewMemory()
	seed(t, kv, "x")
	b := open(t, kv)

	u := b.ModifyCategory("", category.Category{Title: "Docker"})
	assert.Equal(t, category.Created, u.Change.Kind)
	assert.Equal(t, "n-1", u.Change.ID)
	assert.Equal(t, selection.GoTo("n-1"), u.Navigation)
	assert.Equal(t, "n-1", b.SelectedID())
	assert.Equal(t, []string{"n-1", "x"}, persisted(t, kv))
	assert.Empty(t, u.Notice)
}

func TestEditCategoryKeepsSelection(t *testing.T) {
	kv := snapshot.NewMemory()
	seed(t, kv, "x", "y")
	b := open(t, kv)

	u := b.ModifyCategory("y", category.Category{Title: "renamed"})
	assert.Equal(t, category.Replaced, u.Change.Kind)
	assert.False(t, u.Navigation.Requested())
	assert.Equal(t, "x", b.SelectedID())
	assert.Equal(t, "renamed", b.All().Find("y").Title)
}

func TestRemoveSelectedCategoryNavigates(t *testing.T) {
	kv := snapshot.NewMemory()
	seed(t, kv, "x", "y")
	b := open(t, kv)
	require.Equal(t, "x", b.SelectedID())

	u := b.RemoveCategory("x")
	assert.Equal(t, category.Removed, u.Change.Kind)
	assert.Equal(t, selection.GoTo("y"), u.Navigation)
	assert.Equal(t, []string{"y"}, b.All().IDs())
	assert.Equal(t, []string{"y"}, persisted(t, kv))

	u = b.RemoveCategory("y")
	assert.Equal(t, selection.Root(), u.Navigation)
	assert.Equal(t, "", b.SelectedID())
	assert.Empty(t, persisted(t, kv))
}

func TestRemoveUnknownCategory(t *testing.T) {
	kv := snapshot.NewMemory()
	seed(t, kv, "x")
	b := open(t, kv)

	u := b.RemoveCategory("nope")
	assert.Equal(t, category.NotFound, u.Change.Kind)
	assert.True(t, errors.Is(u.Change.Err(), category.ErrNotFound))
	assert.True(t, errors.Is(u.Err(), category.ErrNotFound))
	assert.False(t, u.Navigation.Requested())
}

func TestCommandsDefaultToSelection(t *testing.T) {
	kv := snapshot.NewMemory()
	seed(t, kv, "x", "y")
	b := open(t, kv)

	u := b.ModifyCommand("", "", category.Command{Command: "ls -la"})
	require.Equal(t, category.Created, u.Change.Kind)
	b.ModifyCommand("x", "", category.Command{Command: "pwd"})
	require.Len(t, b.Commands(), 2)
	assert.Equal(t, "ls -la", b.Commands()[0].Command)

	cmdID := b.Commands()[0].ID
	u = b.ModifyCommand("x", cmdID, category.Command{Command: "ls"})
	assert.Equal(t, category.Replaced, u.Change.Kind)
	assert.Equal(t, "ls", b.Commands()[0].Command)

	u = b.MoveCommand("", cmdID, b.Commands()[1].ID)
	assert.Equal(t, category.Moved, u.Change.Kind)
	assert.Equal(t, "ls", b.Commands()[1].Command)

	u = b.RemoveCommand("x", cmdID)
	assert.Equal(t, category.Removed, u.Change.Kind)
	assert.Len(t, b.Commands(), 1)

	stored := snapshot.NewStore(kv, nil).Load()
	assert.Len(t, stored.Find("x").Commands, 1)

	u = b.ModifyCommand("missing", "", category.Command{Command: "x"})
	assert.Equal(t, category.NotFound, u.Change.Kind)
}

func TestMoveCategory(t *testing.T) {
	kv := snapshot.NewMemory()
	seed(t, kv, "A", "B", "C", "D", "E")
	b := open(t, kv)

	u := b.MoveCategory("A", "D")
	assert.Equal(t, category.Moved, u.Change.Kind)
	assert.Equal(t, []string{"B", "C", "D", "A", "E"}, persisted(t, kv))
	assert.Equal(t, "A", b.SelectedID())
}

func TestDragPersistsEveryHover(t *testing.T) {
	kv := snapshot.NewMemory()
	seed(t, kv, "A", "B", "C")
	b := open(t, kv)

	u := b.DragStart(dnd.Item{List: dnd.CategoryList, ID: "A"})
	assert.Contains(t, u.Announcement, "Picked up category")
	assert.True(t, b.Dragging())

	u = b.DragOver(dnd.Item{List: dnd.CategoryList, ID: "B"})
	assert.Equal(t, category.Moved, u.Change.Kind)
	assert.Equal(t, "A", u.Change.ID)
	assert.Equal(t, []string{"B", "A", "C"}, persisted(t, kv))

	b.DragOver(dnd.Item{List: dnd.CategoryList, ID: "C"})
	assert.Equal(t, []string{"B", "C", "A"}, persisted(t, kv))

	u = b.DragCancel()
	assert.Contains(t, u.Announcement, "cancelled")
	assert.False(t, b.Dragging())
	// Cancel keeps the reorders already applied.
	assert.Equal(t, []string{"B", "C", "A"}, b.All().IDs())
}

func TestDragColumnSwap(t *testing.T) {
	kv := snapshot.NewMemory()
	seed(t, kv, "A")
	b := open(t, kv)

	b.DragStart(dnd.Column{List: dnd.CategoryList})
	u := b.DragOver(dnd.Column{List: dnd.CommandList})
	assert.Equal(t, category.Unchanged, u.Change.Kind)
	u = b.DragEnd(dnd.Column{List: dnd.CommandList})
	assert.Equal(t, dnd.CommandList, b.Left())
	assert.Contains(t, u.Announcement, "position 2 of 2")
}

func TestWriteFailureIsNotice(t *testing.T) {
	kv := snapshot.NewMemory()
	seed(t, kv, "x", "y")
	b := open(t, kv)
	kv.SetErr = errors.New("disk full")

	u := b.RemoveCategory("x")
	assert.Equal(t, category.Removed, u.Change.Kind)
	assert.Contains(t, u.Notice, "disk full")
	assert.ErrorContains(t, u.Err(), "disk full")
	assert.Equal(t, []string{"y"}, b.All().IDs())
	assert.Equal(t, selection.GoTo("y"), u.Navigation)
	// The last good snapshot is untouched.
	assert.Equal(t, []string{"x", "y"}, persisted(t, kv))
}

func TestFilter(t *testing.T) {
	kv := snapshot.NewMemory()
	require.NoError(t, snapshot.NewStore(kv, nil).Save(category.Collection{
		{ID: "g", Title: "Git", Commands: []*category.Command{{ID: "1", Command: "git log"}}},
		{ID: "d", Title: "Docker", Commands: []*category.Command{{ID: "2", Command: "docker ps"}}},
	}))
	b := open(t, kv)

	b.Filter("PS")
	assert.Equal(t, "PS", b.Keyword())
	assert.Equal(t, []string{"d"}, b.Categories().IDs())
	assert.Len(t, b.All(), 2)

	b.Filter("")
	assert.Len(t, b.Categories(), 2)
}

func TestReload(t *testing.T) {
	kv := snapshot.NewMemory()
	seed(t, kv, "x", "y")
	b := open(t, kv)
	b.Navigate("y")

	seed(t, kv, "x", "y", "z")
	u := b.Reload()
	assert.False(t, u.Navigation.Requested())
	assert.Equal(t, []string{"x", "y", "z"}, b.All().IDs())
	assert.Equal(t, "y", b.SelectedID())

	seed(t, kv, "z")
	u = b.Reload()
	assert.Equal(t, selection.GoTo("z"), u.Navigation)

	b.DragStart(dnd.Item{List: dnd.CategoryList, ID: "z"})
	seed(t, kv, "q")
	b.Reload()
	assert.Equal(t, []string{"z"}, b.All().IDs())
}

func TestReplay(t *testing.T) {
	kv := snapshot.NewMemory()
	seed(t, kv, "A", "B", "C", "D", "E")
	b := open(t, kv)

	u, said, err := b.Replay(dnd.Item{List: dnd.CategoryList, ID: "E"}, dnd.Item{List: dnd.CategoryList, ID: "B"})
	require.NoError(t, err)
	assert.Equal(t, category.Moved, u.Change.Kind)
	assert.Equal(t, []string{"A", "E", "B", "C", "D"}, persisted(t, kv))
	require.Len(t, said, 3)
	assert.Equal(t, `Picked up category "cat E" at position 5 of 5 in column Category.`, said[0])
	assert.False(t, b.Dragging())

	_, _, err = b.Replay(dnd.Item{List: dnd.CategoryList, ID: "Z"}, dnd.Item{List: dnd.CategoryList, ID: "B"})
	assert.True(t, errors.Is(err, category.ErrNotFound))

	_, _, err = b.Replay(dnd.Item{List: dnd.CategoryList, ID: "A"}, dnd.Item{List: dnd.CategoryList, ID: "Z"})
	assert.True(t, errors.Is(err, category.ErrNotFound))
	assert.False(t, b.Dragging())

	// Dropping on itself is fine.
	_, _, err = b.Replay(dnd.Item{List: dnd.CategoryList, ID: "A"}, dnd.Item{List: dnd.CategoryList, ID: "A"})
	assert.NoError(t, err)
}
