// Package board is the two-column Bubble Tea board: the category list and the
// commands of the selected category, reorderable from the keyboard.
package board

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/keepcmd/pkg/app"
	"tableflip.dev/keepcmd/pkg/dnd"
	"tableflip.dev/keepcmd/pkg/store"
	"tableflip.dev/keepcmd/pkg/tui/theme"
)

type mode int

const (
	browsing mode = iota
	filtering
	editing
	confirming
)

type (
	watchMsg       store.Event
	watchClosedMsg struct{}
	clipboardMsg   struct {
		text string
		err  error
	}
)

// Options configure New.
type Options struct {
	Board *app.Board
	Theme theme.Theme
	// Events, when set, triggers a reload whenever the snapshot changes on disk.
	Events <-chan store.Event
	// Copy writes text to the clipboard. Defaults to the system clipboard.
	Copy func(string) error
}

// Model is the Bubble Tea model of the board.
type Model struct {
	board  *app.Board
	theme  theme.Theme
	keys   keyMap
	help   help.Model
	events <-chan store.Event
	copy   func(string) error

	mode   mode
	focus  dnd.List
	cursor [2]int
	// hover is the last subject the dragged one was moved over.
	hover  dnd.Subject
	filter textinput.Model
	form   form
	doomed deletion

	status        string
	notice        string
	reloadPending bool

	width  int
	height int
}

// New builds a model over o.Board.
func New(o Options) Model {
	cp := o.Copy
	if cp == nil {
		cp = clipboard.WriteAll
	}
	fi := textinput.New()
	fi.Prompt = "/ "
	fi.Placeholder = "filter categories"

	m := Model{
		board:  o.Board,
		theme:  o.Theme,
		keys:   defaultKeys,
		help:   help.New(),
		events: o.Events,
		copy:   cp,
		focus:  o.Board.Left(),
		filter: fi,
	}
	m.sync()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return watchMsg(ev)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case watchMsg:
		if m.board.Dragging() {
			m.reloadPending = true
		} else {
			m.apply(m.board.Reload())
		}
		return m, m.waitForEvent()

	case watchClosedMsg:
		return m, nil

	case logMsg:
		m.notice = msg.Level.String() + ": " + msg.Summary
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.notice = "copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied " + msg.text
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case filtering:
			return m.updateFilter(msg)
		case editing:
			return m.updateForm(msg)
		case confirming:
			return m.updateConfirm(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	switch m.mode {
	case filtering:
		m.filter, cmd = m.filter.Update(msg)
	case editing:
		cmd = m.form.update(msg)
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Cancel):
		if m.board.Dragging() {
			m.apply(m.board.DragCancel())
			m.afterDrag()
		} else if m.board.Keyword() != "" {
			m.filter.SetValue("")
			m.board.Filter("")
			m.sync()
		}

	case key.Matches(msg, m.keys.Focus):
		if !m.board.Dragging() {
			m.focus = m.focus.Other()
		}

	case key.Matches(msg, m.keys.Up):
		m.step(-1)

	case key.Matches(msg, m.keys.Down):
		m.step(1)

	case key.Matches(msg, m.keys.Left):
		m.side(m.board.Left())

	case key.Matches(msg, m.keys.Right):
		m.side(m.board.Left().Other())

	case key.Matches(msg, m.keys.Grab):
		if m.board.Dragging() {
			m.apply(m.board.DragEnd(m.hover))
			m.afterDrag()
			break
		}
		if id := m.current(m.focus); id != "" {
			m.hover = nil
			m.apply(m.board.DragStart(dnd.Item{List: m.focus, ID: id}))
		}

	case key.Matches(msg, m.keys.GrabColumn):
		if !m.board.Dragging() {
			m.hover = nil
			m.apply(m.board.DragStart(dnd.Column{List: m.focus}))
		}

	case key.Matches(msg, m.keys.Filter):
		if m.board.Dragging() {
			break
		}
		m.mode = filtering
		m.filter.SetValue(m.board.Keyword())
		m.filter.CursorEnd()
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.Add):
		return m.openForm(false)

	case key.Matches(msg, m.keys.Edit):
		return m.openForm(true)

	case key.Matches(msg, m.keys.Delete):
		m.askDelete()

	case key.Matches(msg, m.keys.Copy):
		if m.focus != dnd.CommandList || m.board.Dragging() {
			break
		}
		if cmd := m.commandAt(m.cursor[dnd.CommandList]); cmd != "" {
			cp, text := m.copy, cmd
			return m, func() tea.Msg {
				return clipboardMsg{text: text, err: cp(text)}
			}
		}
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filter.SetValue("")
		m.board.Filter("")
		m.filter.Blur()
		m.mode = browsing
		m.sync()
		return m, nil
	case tea.KeyEnter:
		m.filter.Blur()
		m.mode = browsing
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.board.Filter(m.filter.Value())
	m.sync()
	return m, cmd
}

// step moves the cursor, or the dragged item, by delta within its list.
func (m *Model) step(delta int) {
	switch active := m.board.Active().(type) {
	case dnd.Item:
		ids := m.ids(active.List)
		j := indexOf(ids, active.ID) + delta
		if j < 0 || j >= len(ids) {
			return
		}
		m.hover = dnd.Item{List: active.List, ID: ids[j]}
		m.apply(m.board.DragOver(m.hover))
		return
	case dnd.Column:
		return
	}

	ids := m.ids(m.focus)
	j := m.cursor[m.focus] + delta
	if j < 0 || j >= len(ids) {
		return
	}
	m.cursor[m.focus] = j
	if m.focus == dnd.CategoryList {
		m.navigate(ids[j])
	}
}

// side focuses the column showing l, or hovers the dragged column over it.
func (m *Model) side(l dnd.List) {
	switch m.board.Active().(type) {
	case dnd.Column:
		m.hover = dnd.Column{List: l}
		m.apply(m.board.DragOver(m.hover))
	case nil:
		m.focus = l
	}
}

func (m *Model) navigate(id string) {
	before := m.board.SelectedID()
	m.apply(m.board.Navigate(id))
	if m.board.SelectedID() != before {
		m.cursor[dnd.CommandList] = 0
	}
}

func (m *Model) afterDrag() {
	m.hover = nil
	if m.reloadPending {
		m.reloadPending = false
		m.apply(m.board.Reload())
	}
}

// apply records what an update said and re-derives cursors.
func (m *Model) apply(u app.Update) {
	if u.Announcement != "" {
		m.status = u.Announcement
	}
	if u.Notice != "" {
		m.notice = u.Notice
	}
	if u.Navigation.Requested() {
		m.cursor[dnd.CommandList] = 0
	}
	m.sync()
}

// sync keeps the category cursor on the selection and the cursor of a
// dragged item on that item.
func (m *Model) sync() {
	if i := indexOf(m.ids(dnd.CategoryList), m.board.SelectedID()); i >= 0 {
		m.cursor[dnd.CategoryList] = i
	}
	if it, ok := m.board.Active().(dnd.Item); ok {
		if i := indexOf(m.ids(it.List), it.ID); i >= 0 {
			m.cursor[it.List] = i
		}
	}
	for _, l := range []dnd.List{dnd.CategoryList, dnd.CommandList} {
		n := len(m.ids(l))
		switch {
		case n == 0:
			m.cursor[l] = 0
		case m.cursor[l] >= n:
			m.cursor[l] = n - 1
		case m.cursor[l] < 0:
			m.cursor[l] = 0
		}
	}
}

func (m Model) ids(l dnd.List) []string {
	if l == dnd.CategoryList {
		return m.board.Categories().IDs()
	}
	cmds := m.board.Commands()
	ids := make([]string, 0, len(cmds))
	for _, c := range cmds {
		ids = append(ids, c.ID)
	}
	return ids
}

func (m Model) current(l dnd.List) string {
	ids := m.ids(l)
	if i := m.cursor[l]; i >= 0 && i < len(ids) {
		return ids[i]
	}
	return ""
}

func (m Model) commandAt(i int) string {
	cmds := m.board.Commands()
	if i < 0 || i >= len(cmds) {
		return ""
	}
	return cmds[i].Command
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
