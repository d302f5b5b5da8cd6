// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/noldarim/portfolio/internal/tui/layout"
)

// Style defines the visual appearance of a card
type Style struct {
	BorderColor lipgloss.Color
	BorderStyle lipgloss.Border
	TitleColor  lipgloss.Color
	Width       int
}

// StyleFor returns the card style for a palette.
func StyleFor(p layout.Palette, width int) Style {
	return Style{
		BorderColor: p.Border,
		BorderStyle: lipgloss.RoundedBorder(),
		TitleColor:  p.Secondary,
		Width:       width,
	}
}

// Render creates a bordered card with optional title and footer badges.
func Render(title, body string, badges []string, style Style) string {
	inner := style.Width - 4 // border + horizontal padding
	if inner < 10 {
		inner = 10
	}

	parts := make([]string, 0, 4)
	if title != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(style.TitleColor).Bold(true).Render(title))
	}
	if body != "" {
		parts = append(parts, lipgloss.NewStyle().Width(inner).Render(body))
	}
	if len(badges) > 0 {
		parts = append(parts, lipgloss.NewStyle().Width(inner).Render(strings.Join(badges, " · ")))
	}

	return lipgloss.NewStyle().
		Border(style.BorderStyle).
		BorderForeground(style.BorderColor).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
