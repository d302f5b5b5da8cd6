// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/noldarim/portfolio/internal/viewstate"
)

// Palette is one colour scheme.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
}

var (
	DarkPalette = Palette{
		Primary:    lipgloss.Color("#7C3AED"),
		Secondary:  lipgloss.Color("#A78BFA"),
		Accent:     lipgloss.Color("#10B981"),
		Text:       lipgloss.Color("#F3F4F6"),
		Muted:      lipgloss.Color("#9CA3AF"),
		Border:     lipgloss.Color("#4B5563"),
		Background: lipgloss.Color("#111827"),
		Surface:    lipgloss.Color("#1F2937"),
		Error:      lipgloss.Color("#EF4444"),
		Success:    lipgloss.Color("#22C55E"),
	}

	LightPalette = Palette{
		Primary:    lipgloss.Color("#6D28D9"),
		Secondary:  lipgloss.Color("#7C3AED"),
		Accent:     lipgloss.Color("#047857"),
		Text:       lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#4B5563"),
		Border:     lipgloss.Color("#D1D5DB"),
		Background: lipgloss.Color("#F3F4F6"),
		Surface:    lipgloss.Color("#E5E7EB"),
		Error:      lipgloss.Color("#B91C1C"),
		Success:    lipgloss.Color("#15803D"),
	}
)

// PaletteFor returns the palette of a theme.
func PaletteFor(theme viewstate.Theme) Palette {
	if theme == viewstate.ThemeLight {
		return LightPalette
	}
	return DarkPalette
}

// Styles are the lipgloss styles derived from a palette. Rebuild them when
// the theme changes.
type Styles struct {
	Palette Palette

	Header        lipgloss.Style
	Title         lipgloss.Style
	Breadcrumb    lipgloss.Style
	Separator     lipgloss.Style
	Status        lipgloss.Style
	Stats         lipgloss.Style
	Footer        lipgloss.Style
	HelpText      lipgloss.Style
	HelpKey       lipgloss.Style
	Error         lipgloss.Style
	Success       lipgloss.Style
	Muted         lipgloss.Style
	Badge         lipgloss.Style
	SectionHeader lipgloss.Style
}

// NewStyles builds the style set for theme.
func NewStyles(theme viewstate.Theme) Styles {
	p := PaletteFor(theme)
	return Styles{
		Palette: p,
		Header: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Primary).
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1),
		Title: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true),
		Breadcrumb: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		Separator: lipgloss.NewStyle().
			Foreground(p.Border).
			SetString(" > "),
		Status: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		Stats: lipgloss.NewStyle().
			Foreground(p.Muted),
		Footer: lipgloss.NewStyle().
			Foreground(p.Muted).
			PaddingLeft(1).
			PaddingRight(1),
		HelpText: lipgloss.NewStyle().
			Foreground(p.Text),
		HelpKey: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		Badge: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface).
			Padding(0, 1),
		SectionHeader: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true).
			MarginBottom(1),
	}
}

// Divider returns a horizontal rule of the given width.
func (s Styles) Divider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(s.Palette.Border).
		Render(strings.Repeat("─", width))
}
