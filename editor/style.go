package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text        lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
	Placeholder lipgloss.Style

	Toggle    lipgloss.Style
	Separator lipgloss.Style
	Button    lipgloss.Style

	PalettePrompt   lipgloss.Style
	PaletteMatch    lipgloss.Style
	PaletteSelected lipgloss.Style

	// LinkStatus styles the preview's link status line.
	LinkStatus lipgloss.Style

	// Foreground is the resolved tint. Nil leaves the toolbar colors alone.
	Foreground lipgloss.TerminalColor
}

func DefaultStyle() Style {
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Text:        lipgloss.NewStyle(),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Placeholder: faint,

		Toggle:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Separator: faint,
		Button:    lipgloss.NewStyle().Padding(0, 1),

		PalettePrompt:   lipgloss.NewStyle().Bold(true),
		PaletteMatch:    faint,
		PaletteSelected: lipgloss.NewStyle().Reverse(true),

		LinkStatus: faint,
	}
}

// tinted returns s with the foreground tint applied to the toolbar styles.
func (s Style) tinted(c lipgloss.TerminalColor) Style {
	if c == nil {
		return s
	}
	s.Foreground = c
	s.Toggle = s.Toggle.Foreground(c)
	s.Separator = s.Separator.Foreground(c)
	s.Button = s.Button.Foreground(c)
	return s
}
