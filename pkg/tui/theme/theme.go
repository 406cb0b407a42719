// Package theme centralizes Lip Gloss styles for the Bubble Tea UI, with a
// light and a dark palette behind the persisted preference.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme groups the styles the UI draws with.
type Theme struct {
	Dark bool

	Title    lipgloss.Style
	Faint    lipgloss.Style
	Pin      lipgloss.Style
	Tag      lipgloss.Style
	Selected lipgloss.Style
	Status   lipgloss.Style
	Dirty    lipgloss.Style
	Help     lipgloss.Style

	EditorFrame  lipgloss.Style
	PreviewFrame lipgloss.Style
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
}

// New builds the palette for the requested mode.
func New(dark bool) Theme {
	accent := "#7D56F4"
	bg := "#FFFFFF"
	if dark {
		bg = "#1A1A1A"
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(dim(accent, bg, 0.35))).
		Padding(0, 1)

	t := Theme{
		Dark:     dark,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)),
		Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color(dim(accent, bg, 0.7))),
		Pin:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Tag:      lipgloss.NewStyle().Foreground(lipgloss.Color("36")),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Dirty:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		EditorFrame:  frame,
		PreviewFrame: frame.BorderForeground(lipgloss.Color("36")),
		Overlay:      frame.BorderForeground(lipgloss.Color(accent)),
		OverlayTitle: lipgloss.NewStyle().Bold(true),
	}
	return t
}

// dim blends the accent toward the background so secondary chrome recedes
// in either palette.
func dim(hex, bgHex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	bg, err := colorful.Hex(bgHex)
	if err != nil {
		return hex
	}
	return c.BlendLab(bg, amount).Hex()
}
