package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Panel  PanelTheme
	Item   ItemTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// PanelTheme styles the two board columns.
type PanelTheme struct {
	Frame   lipgloss.Style
	Focused lipgloss.Style
	// Dragged frames a column that is being dragged.
	Dragged lipgloss.Style
	Title   lipgloss.Style
	Count   lipgloss.Style
}

// ItemTheme styles rows inside a column.
type ItemTheme struct {
	Normal      lipgloss.Style
	Cursor      lipgloss.Style
	Selected    lipgloss.Style
	Dragged     lipgloss.Style
	Description lipgloss.Style
	Empty       lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Notice lipgloss.Style
}

// ModalTheme styles centered dialogs (forms, delete confirmation).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Label lipgloss.Style
}

type palette struct {
	accent, muted, faint, warn, drag lipgloss.Color
}

var (
	dark  = palette{accent: "212", muted: "244", faint: "240", warn: "214", drag: "39"}
	light = palette{accent: "161", muted: "241", faint: "250", warn: "166", drag: "26"}
)

// Default returns the theme matching the terminal background.
func Default() Theme {
	if termenv.HasDarkBackground() {
		return build(dark)
	}
	return build(light)
}

// Plain returns a theme without colors, for tests and dumb terminals.
func Plain() Theme {
	lipgloss.SetColorProfile(termenv.Ascii)
	return build(dark)
}

func build(p palette) Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.faint).
		Padding(0, 1)

	return Theme{
		Panel: PanelTheme{
			Frame:   frame,
			Focused: frame.BorderForeground(p.accent),
			Dragged: frame.Border(lipgloss.DoubleBorder()).BorderForeground(p.drag),
			Title:   lipgloss.NewStyle().Bold(true),
			Count:   lipgloss.NewStyle().Foreground(p.muted),
		},
		Item: ItemTheme{
			Normal:      lipgloss.NewStyle(),
			Cursor:      lipgloss.NewStyle().Foreground(p.accent).Bold(true),
			Selected:    lipgloss.NewStyle().Underline(true),
			Dragged:     lipgloss.NewStyle().Foreground(p.drag).Bold(true).Reverse(true),
			Description: lipgloss.NewStyle().Foreground(p.muted),
			Empty:       lipgloss.NewStyle().Foreground(p.muted).Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(p.muted),
			Status: lipgloss.NewStyle().Foreground(p.muted).Italic(true),
			Notice: lipgloss.NewStyle().Foreground(p.warn),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(p.accent).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Label: lipgloss.NewStyle().Foreground(p.muted),
		},
	}
}
