package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/keepcmd/pkg/category"
	"tableflip.dev/keepcmd/pkg/dnd"
)

// form adds or edits one category or command.
type form struct {
	list dnd.List
	// id is empty for a new entry.
	id       string
	category string
	fields   []textinput.Model
	focused  int
	err      string
}

func newForm(list dnd.List) form {
	main := textinput.New()
	desc := textinput.New()
	desc.Placeholder = "description (optional)"
	switch list {
	case dnd.CategoryList:
		main.Placeholder = "title"
	case dnd.CommandList:
		main.Placeholder = "command"
		main.Prompt = "$ "
	}
	main.CharLimit = 512
	desc.CharLimit = 512
	return form{list: list, fields: []textinput.Model{main, desc}}
}

func (f form) title() string {
	if f.id == "" {
		return "New " + f.list.String()
	}
	return "Edit " + f.list.String()
}

func (f *form) focus(i int) tea.Cmd {
	f.fields[f.focused].Blur()
	f.focused = (i + len(f.fields)) % len(f.fields)
	return f.fields[f.focused].Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.fields[f.focused], cmd = f.fields[f.focused].Update(msg)
	return cmd
}

func (f form) values() (string, string) {
	return strings.TrimSpace(f.fields[0].Value()), strings.TrimSpace(f.fields[1].Value())
}

func (m Model) openForm(edit bool) (tea.Model, tea.Cmd) {
	if m.board.Dragging() {
		return m, nil
	}
	f := newForm(m.focus)
	switch m.focus {
	case dnd.CategoryList:
		if edit {
			cat := m.board.All().Find(m.current(dnd.CategoryList))
			if cat == nil {
				return m, nil
			}
			f.id = cat.ID
			f.fields[0].SetValue(cat.Title)
			f.fields[1].SetValue(cat.Description)
		}
	case dnd.CommandList:
		sel := m.board.Selected()
		if sel == nil {
			m.notice = "Select or add a category first."
			return m, nil
		}
		f.category = sel.ID
		if edit {
			cmd := sel.FindCommand(m.current(dnd.CommandList))
			if cmd == nil {
				return m, nil
			}
			f.id = cmd.ID
			f.fields[0].SetValue(cmd.Command)
			f.fields[1].SetValue(cmd.Description)
		}
	}
	m.form = f
	m.mode = editing
	return m, m.form.focus(0)
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = browsing
		m.form = form{}
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		return m, m.form.focus(m.form.focused + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.form.focus(m.form.focused - 1)
	case tea.KeyEnter:
		return m.submit()
	}
	return m, m.form.update(msg)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	f := m.form
	main, desc := f.values()
	if main == "" {
		m.form.err = fmt.Sprintf("A %s needs a %s.", f.list, f.fields[0].Placeholder)
		return m, nil
	}

	switch f.list {
	case dnd.CategoryList:
		cat := category.Category{Title: main, Description: desc}
		if cur := m.board.All().Find(f.id); cur != nil {
			cat.Commands = cur.Commands
		}
		m.apply(m.board.ModifyCategory(f.id, cat))
	case dnd.CommandList:
		u := m.board.ModifyCommand(f.category, f.id, category.Command{Command: main, Description: desc})
		m.apply(u)
		if u.Change.Kind == category.Created {
			m.cursor[dnd.CommandList] = len(m.board.Commands()) - 1
		}
	}
	m.mode = browsing
	m.form = form{}
	return m, nil
}

// deletion is the entry awaiting confirmation.
type deletion struct {
	list     dnd.List
	id       string
	category string
	label    string
}

func (m *Model) askDelete() {
	if m.board.Dragging() {
		return
	}
	id := m.current(m.focus)
	if id == "" {
		return
	}
	d := deletion{list: m.focus, id: id, category: m.board.SelectedID()}
	d.label = dnd.Board{Categories: m.board.All(), Selected: m.board.SelectedID()}.Label(dnd.Item{List: m.focus, ID: id})
	m.doomed = d
	m.mode = confirming
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		d := m.doomed
		switch d.list {
		case dnd.CategoryList:
			m.apply(m.board.RemoveCategory(d.id))
		case dnd.CommandList:
			m.apply(m.board.RemoveCommand(d.category, d.id))
		}
		m.status = fmt.Sprintf("Deleted %s %q.", d.list, d.label)
		m.doomed = deletion{}
		m.mode = browsing
	case "n", "N", "esc", "q":
		m.doomed = deletion{}
		m.mode = browsing
	}
	return m, nil
}
