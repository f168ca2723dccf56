package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/keepcmd/pkg/dnd"
)

const defaultWidth = 80

func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	left := m.board.Left()
	colWidth := width/2 - m.theme.Panel.Frame.GetHorizontalFrameSize()
	if colWidth < 10 {
		colWidth = 10
	}
	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		m.column(left, colWidth),
		m.column(left.Other(), colWidth),
	)

	var b strings.Builder
	b.WriteString(columns)
	b.WriteString("\n")

	switch m.mode {
	case editing:
		b.WriteString(m.formView(width))
		b.WriteString("\n")
	case confirming:
		b.WriteString(m.confirmView())
		b.WriteString("\n")
	}

	if m.mode == filtering {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	} else if kw := m.board.Keyword(); kw != "" {
		b.WriteString(m.theme.Footer.Status.Render(fmt.Sprintf("filter: %q (esc to clear)", kw)))
		b.WriteString("\n")
	}

	switch {
	case m.notice != "":
		b.WriteString(m.theme.Footer.Notice.Render(m.notice))
	case m.status != "":
		b.WriteString(m.theme.Footer.Status.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) column(l dnd.List, width int) string {
	frame := m.theme.Panel.Frame
	switch {
	case m.board.Active() == dnd.Subject(dnd.Column{List: l}):
		frame = m.theme.Panel.Dragged
	case m.focus == l:
		frame = m.theme.Panel.Focused
	}

	var lines []string
	switch l {
	case dnd.CategoryList:
		lines = m.categoryLines(width)
	case dnd.CommandList:
		lines = m.commandLines(width)
	}

	heading := m.theme.Panel.Title.Render(m.heading(l)) + " " +
		m.theme.Panel.Count.Render(fmt.Sprintf("(%d)", len(m.ids(l))))
	body := append([]string{heading, ""}, lines...)
	return frame.Width(width).Render(strings.Join(body, "\n"))
}

func (m Model) heading(l dnd.List) string {
	if l == dnd.CommandList {
		if sel := m.board.Selected(); sel != nil {
			return sel.Title
		}
	}
	return l.Title()
}

func (m Model) categoryLines(width int) []string {
	cats := m.board.Categories()
	if len(cats) == 0 {
		if m.board.Keyword() != "" {
			return []string{m.theme.Item.Empty.Render("Nothing matches the filter.")}
		}
		return []string{m.theme.Item.Empty.Render("No categories yet. Press a to add one.")}
	}
	lines := make([]string, 0, len(cats))
	for i, c := range cats {
		marker := "  "
		if c.ID == m.board.SelectedID() {
			marker = "▸ "
		}
		text := marker + fit(c.Title, width-4)
		lines = append(lines, m.itemStyle(dnd.CategoryList, i, c.ID).Render(text))
	}
	return lines
}

func (m Model) commandLines(width int) []string {
	sel := m.board.Selected()
	if sel == nil {
		return []string{m.theme.Item.Empty.Render("Select a category.")}
	}
	if len(sel.Commands) == 0 {
		return []string{m.theme.Item.Empty.Render(fmt.Sprintf("No commands in %s yet. Press a to add one.", sel.Title))}
	}
	lines := make([]string, 0, 2*len(sel.Commands))
	for i, c := range sel.Commands {
		lines = append(lines, m.itemStyle(dnd.CommandList, i, c.ID).Render("$ "+fit(c.Command, width-4)))
		if c.Description != "" {
			lines = append(lines, m.theme.Item.Description.Render("  "+fit(c.Description, width-4)))
		}
	}
	return lines
}

func (m Model) itemStyle(l dnd.List, i int, id string) lipgloss.Style {
	switch {
	case m.board.Active() == dnd.Subject(dnd.Item{List: l, ID: id}):
		return m.theme.Item.Dragged
	case m.focus == l && m.cursor[l] == i:
		return m.theme.Item.Cursor
	case l == dnd.CategoryList && id == m.board.SelectedID():
		return m.theme.Item.Selected
	}
	return m.theme.Item.Normal
}

func (m Model) formView(width int) string {
	f := m.form
	rows := []string{m.theme.Modal.Title.Render(f.title())}
	for _, in := range f.fields {
		rows = append(rows, in.View())
	}
	if f.err != "" {
		rows = append(rows, m.theme.Footer.Notice.Render(f.err))
	}
	rows = append(rows, m.theme.Modal.Label.Render("enter save • tab next field • esc cancel"))
	w := width - m.theme.Modal.Frame.GetHorizontalFrameSize()
	if w > 70 {
		w = 70
	}
	return m.theme.Modal.Frame.Width(w).Render(strings.Join(rows, "\n"))
}

func (m Model) confirmView() string {
	d := m.doomed
	msg := fmt.Sprintf("Delete %s %q?", d.list, d.label)
	if d.list == dnd.CategoryList {
		msg += " Its commands are deleted too."
	}
	return m.theme.Modal.Frame.Render(
		m.theme.Modal.Title.Render(msg) + "\n" +
			m.theme.Modal.Label.Render("y delete • n keep"))
}

func fit(s string, width int) string {
	if width <= 1 {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
