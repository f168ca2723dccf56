package board

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/keepcmd/pkg/app"
	"tableflip.dev/keepcmd/pkg/category"
	"tableflip.dev/keepcmd/pkg/dnd"
	"tableflip.dev/keepcmd/pkg/id"
	"tableflip.dev/keepcmd/pkg/snapshot"
	"tableflip.dev/keepcmd/pkg/store"
	"tableflip.dev/keepcmd/pkg/tui/theme"
)

func fixture() category.Collection {
	return category.Collection{
		{ID: "g", Title: "Git", Commands: []*category.Command{
			{ID: "g1", Command: "git status"},
			{ID: "g2", Command: "git log --oneline", Description: "short history"},
		}},
		{ID: "d", Title: "Docker", Commands: []*category.Command{
			{ID: "d1", Command: "docker ps -a"},
		}},
		{ID: "k", Title: "Kube", Commands: []*category.Command{}},
	}
}

func newModel(t *testing.T, c category.Collection, opts ...func(*Options)) (Model, *snapshot.Store) {
	t.Helper()
	s := snapshot.NewStore(snapshot.NewMemory(), nil)
	if c != nil {
		if err := s.Save(c); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	b, err := app.Open(context.Background(), app.Options{Store: s, IDs: id.NewSequence("n")})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	o := Options{Board: b, Theme: theme.Plain(), Copy: func(string) error { return nil }}
	for _, fn := range opts {
		fn(&o)
	}
	m := New(o)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model), s
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m
}

func order(s *snapshot.Store) string {
	return strings.Join(s.Load().IDs(), "")
}

func TestDragCategoryWithKeys(t *testing.T) {
	m, s := newModel(t, fixture())

	m = press(m, "m")
	if !m.board.Dragging() {
		t.Fatal("expected a drag after m")
	}
	if want := `Picked up category "Git" at position 1 of 3 in column Category.`; m.status != want {
		t.Fatalf("status = %q, want %q", m.status, want)
	}

	m = press(m, "j")
	if got := order(s); got != "dgk" {
		t.Fatalf("hover should persist the reorder, got %s", got)
	}
	if m.cursor[dnd.CategoryList] != 1 {
		t.Fatalf("cursor should follow the dragged category, got %d", m.cursor[dnd.CategoryList])
	}

	m = press(m, " ")
	if m.board.Dragging() {
		t.Fatal("space should drop")
	}
	if !strings.Contains(m.status, "dropped into position 2 of 3") {
		t.Fatalf("unexpected drop status %q", m.status)
	}
	if m.board.SelectedID() != "g" {
		t.Fatalf("selection should stay on the dragged category, got %s", m.board.SelectedID())
	}
}

func TestDragCancelKeepsOrder(t *testing.T) {
	m, s := newModel(t, fixture())
	m = press(m, "m", "j", "j", "esc")
	if m.board.Dragging() {
		t.Fatal("esc should cancel the drag")
	}
	if !strings.Contains(m.status, "cancelled") {
		t.Fatalf("unexpected status %q", m.status)
	}
	if got := order(s); got != "dkg" {
		t.Fatalf("order = %s, want dkg", got)
	}
}

func TestDragCommand(t *testing.T) {
	m, s := newModel(t, fixture())
	m = press(m, "tab", "m", "j", "m")
	cmds := s.Load().Find("g").Commands
	if cmds[0].ID != "g2" || cmds[1].ID != "g1" {
		t.Fatalf("commands not reordered: %s %s", cmds[0].ID, cmds[1].ID)
	}
	if m.focus != dnd.CommandList || m.cursor[dnd.CommandList] != 1 {
		t.Fatalf("cursor should stay on the moved command, focus %v cursor %d", m.focus, m.cursor[dnd.CommandList])
	}
}

func TestDragPastEndIsIgnored(t *testing.T) {
	m, s := newModel(t, fixture())
	m = press(m, "m", "k", " ")
	if got := order(s); got != "gdk" {
		t.Fatalf("order = %s, want gdk", got)
	}
}

func TestColumnSwap(t *testing.T) {
	m, _ := newModel(t, fixture())
	m = press(m, "M")
	if _, ok := m.board.Active().(dnd.Column); !ok {
		t.Fatalf("expected a column drag, got %v", m.board.Active())
	}
	m = press(m, "l")
	if !strings.Contains(m.status, "moved over column Command") {
		t.Fatalf("unexpected hover status %q", m.status)
	}
	m = press(m, " ")
	if m.board.Left() != dnd.CommandList {
		t.Fatalf("columns not swapped, left = %v", m.board.Left())
	}
	for _, line := range strings.Split(m.View(), "\n") {
		if !strings.Contains(line, "$ git status") {
			continue
		}
		if !strings.Contains(line, "▸ Git") || strings.Index(line, "$ git status") > strings.Index(line, "▸ Git") {
			t.Fatalf("command column should render on the left after the swap: %q", line)
		}
		return
	}
	t.Fatal("command row not rendered")
}

func TestNavigateWithCursor(t *testing.T) {
	m, _ := newModel(t, fixture())
	m = press(m, "j")
	if m.board.SelectedID() != "d" {
		t.Fatalf("selected = %s, want d", m.board.SelectedID())
	}
	if !strings.Contains(m.View(), "docker ps -a") {
		t.Fatal("view should show the selected category's commands")
	}

	m = press(m, "j")
	if !strings.Contains(m.View(), "No commands in Kube yet") {
		t.Fatal("expected the empty command alert")
	}
}

func TestFilter(t *testing.T) {
	m, _ := newModel(t, fixture())
	m = press(m, "/", "ku", "enter")
	if m.mode != browsing {
		t.Fatalf("enter should leave filter mode")
	}
	if got := m.board.Keyword(); got != "ku" {
		t.Fatalf("keyword = %q", got)
	}
	if ids := m.ids(dnd.CategoryList); len(ids) != 1 || ids[0] != "k" {
		t.Fatalf("filtered ids = %v", ids)
	}
	if strings.Contains(m.View(), "Docker") {
		t.Fatal("filtered view should hide Docker")
	}

	m = press(m, "esc")
	if m.board.Keyword() != "" || len(m.ids(dnd.CategoryList)) != 3 {
		t.Fatal("esc should clear the filter")
	}
}

func TestAddCategory(t *testing.T) {
	m, s := newModel(t, fixture())
	m = press(m, "a", "Ansible", "tab", "config management", "enter")
	if m.mode != browsing {
		t.Fatal("form should close after saving")
	}
	first := s.Load()[0]
	if first.ID != "n-1" || first.Title != "Ansible" || first.Description != "config management" {
		t.Fatalf("unexpected new category %+v", first)
	}
	if m.board.SelectedID() != "n-1" {
		t.Fatalf("new category should be selected, got %s", m.board.SelectedID())
	}
}

func TestAddCommandNeedsText(t *testing.T) {
	m, s := newModel(t, fixture())
	m = press(m, "tab", "a", "enter")
	if m.mode != editing || m.form.err == "" {
		t.Fatal("empty command should keep the form open with an error")
	}
	m = press(m, "make test", "enter")
	cmds := s.Load().Find("g").Commands
	if len(cmds) != 3 || cmds[2].Command != "make test" {
		t.Fatalf("command not appended: %+v", cmds)
	}
	if m.cursor[dnd.CommandList] != 2 {
		t.Fatalf("cursor should be on the new command, got %d", m.cursor[dnd.CommandList])
	}
}

func TestEditCategoryKeepsCommands(t *testing.T) {
	m, s := newModel(t, fixture())
	m = press(m, "e")
	if m.form.id != "g" {
		t.Fatalf("editing %q, want g", m.form.id)
	}
	m.form.fields[0].SetValue("Git tricks")
	m = press(m, "enter")
	got := s.Load().Find("g")
	if got.Title != "Git tricks" || len(got.Commands) != 2 {
		t.Fatalf("unexpected edit result %+v", got)
	}
}

func TestDeleteWithConfirmation(t *testing.T) {
	m, s := newModel(t, fixture())
	m = press(m, "d")
	if m.mode != confirming || !strings.Contains(m.View(), `Delete category "Git"?`) {
		t.Fatal("expected a delete confirmation")
	}
	m = press(m, "n")
	if order(s) != "gdk" {
		t.Fatal("n should keep the category")
	}

	m = press(m, "d", "y")
	if got := order(s); got != "dk" {
		t.Fatalf("order = %s, want dk", got)
	}
	if m.board.SelectedID() != "d" {
		t.Fatalf("selection should move to d, got %s", m.board.SelectedID())
	}
}

func TestCopyCommand(t *testing.T) {
	var copied string
	m, _ := newModel(t, fixture(), func(o *Options) {
		o.Copy = func(s string) error {
			copied = s
			return nil
		}
	})
	m = press(m, "tab", "j")
	updated, cmd := m.Update(keyMsg("y"))
	if cmd == nil {
		t.Fatal("expected a copy command")
	}
	updated, _ = updated.Update(cmd())
	m = updated.(Model)
	if copied != "git log --oneline" {
		t.Fatalf("copied %q", copied)
	}
	if m.status != "Copied git log --oneline" {
		t.Fatalf("status = %q", m.status)
	}

	updated, _ = m.Update(clipboardMsg{text: "x", err: errors.New("no clipboard")})
	if !strings.Contains(updated.(Model).notice, "no clipboard") {
		t.Fatal("copy failure should be a notice")
	}
}

func TestReloadOnWatchEvent(t *testing.T) {
	events := make(chan store.Event, 1)
	m, s := newModel(t, fixture(), func(o *Options) { o.Events = events })
	if m.Init() == nil {
		t.Fatal("expected Init to wait for events")
	}

	next := fixture()
	next = append(next, &category.Category{ID: "z", Title: "Zsh", Commands: []*category.Command{}})
	if err := s.Save(next); err != nil {
		t.Fatal(err)
	}
	updated, cmd := m.Update(watchMsg{Key: snapshot.Key})
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("watch should be re-armed")
	}
	if len(m.board.All()) != 4 {
		t.Fatalf("expected reload, got %d categories", len(m.board.All()))
	}

	// Reloads wait for the drop.
	m = press(m, "m")
	if err := s.Save(fixture()); err != nil {
		t.Fatal(err)
	}
	updated, _ = m.Update(watchMsg{Key: snapshot.Key})
	m = updated.(Model)
	if len(m.board.All()) != 4 || !m.reloadPending {
		t.Fatal("reload should be deferred while dragging")
	}
	m = press(m, " ")
	if len(m.board.All()) != 3 {
		t.Fatalf("deferred reload should run on drop, got %d", len(m.board.All()))
	}
}

func TestEmptyBoard(t *testing.T) {
	m, _ := newModel(t, nil)
	view := m.View()
	if !strings.Contains(view, "No categories yet") || !strings.Contains(view, "Select a category.") {
		t.Fatalf("unexpected empty view:\n%s", view)
	}
	m = press(m, "m", "d", "tab", "a")
	if m.board.Dragging() || m.mode != browsing {
		t.Fatal("nothing to act on in an empty board")
	}
	if m.notice == "" {
		t.Fatal("adding a command without a category should explain why")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t, fixture())
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}

func TestStartsWithNullCommandInSnapshot(t *testing.T) {
	kv := snapshot.NewMemory()
	if err := kv.Set(snapshot.Key, []byte(`{"version":"1","categories":[{"id":"a","title":"A","commands":[null]}]}`)); err != nil {
		t.Fatal(err)
	}
	b, err := app.Open(context.Background(), app.Options{Store: snapshot.NewStore(kv, nil)})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	m := New(Options{Board: b, Theme: theme.Plain(), Copy: func(string) error { return nil }})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if view := updated.(Model).View(); !strings.Contains(view, "No commands in A yet") {
		t.Fatalf("expected the empty-state line, got:\n%s", view)
	}
}
