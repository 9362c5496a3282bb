package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rcliao/memo/internal/model"
)

type palette struct {
	fg, muted, accent, border, selected, warn, danger lipgloss.Color
	chipBg, chipFg                                    lipgloss.Color
	priority                                          [model.MaxPriority + 1]lipgloss.Color
}

var lightPalette = palette{
	fg:       lipgloss.Color("#1f2328"),
	muted:    lipgloss.Color("#6e7781"),
	accent:   lipgloss.Color("#0969da"),
	border:   lipgloss.Color("#d0d7de"),
	selected: lipgloss.Color("#0969da"),
	warn:     lipgloss.Color("#9a6700"),
	danger:   lipgloss.Color("#cf222e"),
	chipBg:   lipgloss.Color("#ddf4ff"),
	chipFg:   lipgloss.Color("#0550ae"),
	priority: [model.MaxPriority + 1]lipgloss.Color{
		"", "#6e7781", "#1a7f37", "#9a6700", "#bc4c00", "#cf222e",
	},
}

var darkPalette = palette{
	fg:       lipgloss.Color("#e6edf3"),
	muted:    lipgloss.Color("#8b949e"),
	accent:   lipgloss.Color("#58a6ff"),
	border:   lipgloss.Color("#30363d"),
	selected: lipgloss.Color("#58a6ff"),
	warn:     lipgloss.Color("#d29922"),
	danger:   lipgloss.Color("#f85149"),
	chipBg:   lipgloss.Color("#1f2d3d"),
	chipFg:   lipgloss.Color("#79c0ff"),
	priority: [model.MaxPriority + 1]lipgloss.Color{
		"", "#8b949e", "#3fb950", "#d29922", "#db6d28", "#f85149",
	},
}

func paletteFor(theme model.Theme) palette {
	if theme == model.ThemeDark {
		return darkPalette
	}
	return lightPalette
}

type styles struct {
	p            palette
	title        lipgloss.Style
	label        lipgloss.Style
	muted        lipgloss.Style
	control      lipgloss.Style
	warning      lipgloss.Style
	danger       lipgloss.Style
	text         lipgloss.Style
	readOnly     lipgloss.Style
	chip         lipgloss.Style
	chipActive   lipgloss.Style
	card         lipgloss.Style
	cardSelected lipgloss.Style
}

func newStyles(p palette) styles {
	card := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Padding(0, 1)

	return styles{
		p:            p,
		title:        lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		label:        lipgloss.NewStyle().Foreground(p.fg).Bold(true),
		muted:        lipgloss.NewStyle().Foreground(p.muted),
		control:      lipgloss.NewStyle().Foreground(p.accent),
		warning:      lipgloss.NewStyle().Foreground(p.warn).Bold(true),
		danger:       lipgloss.NewStyle().Foreground(p.danger),
		text:         lipgloss.NewStyle().Foreground(p.fg),
		readOnly:     lipgloss.NewStyle().Foreground(p.muted).Italic(true),
		chip:         lipgloss.NewStyle().Foreground(p.chipFg).Background(p.chipBg),
		chipActive:   lipgloss.NewStyle().Foreground(p.chipBg).Background(p.chipFg).Bold(true),
		card:         card,
		cardSelected: card.BorderForeground(p.selected),
	}
}

func (s styles) priority(p int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.p.priority[model.ClampPriority(p)]).Bold(true)
}
