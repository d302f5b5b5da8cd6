// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package menu is the navigation overlay opened from the header button.
package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/noldarim/portfolio/internal/tui/layout"
)

// Item is one navigation entry.
type Item struct {
	ID    string
	Label string
}

// Rect is a screen rectangle in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Model tracks the highlighted entry. Whether the menu is open lives in the
// page view state, not here.
type Model struct {
	items  []Item
	cursor int
}

func New(items []Item) Model {
	return Model{items: items}
}

func (m Model) Items() []Item { return m.items }

func (m Model) Cursor() int { return m.cursor }

// Up moves the highlight up, wrapping.
func (m *Model) Up() {
	if len(m.items) > 0 {
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)
	}
}

// Down moves the highlight down, wrapping.
func (m *Model) Down() {
	if len(m.items) > 0 {
		m.cursor = (m.cursor + 1) % len(m.items)
	}
}

// Selected returns the highlighted entry.
func (m Model) Selected() (Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return Item{}, false
	}
	return m.items[m.cursor], true
}

// Bounds is where View is drawn when anchored to the top-right corner of a
// screen of the given width, top at row y.
func (m Model) Bounds(screenWidth, y int) Rect {
	w := lipgloss.Width(m.box(layout.DarkPalette))
	h := lipgloss.Height(m.box(layout.DarkPalette))
	return Rect{X: screenWidth - w, Y: y, W: w, H: h}
}

// ItemAt maps a cell inside Bounds to an entry.
func (m Model) ItemAt(bounds Rect, x, y int) (Item, bool) {
	if !bounds.Contains(x, y) {
		return Item{}, false
	}
	// One border row and one padding row sit above the first entry.
	row := y - bounds.Y - 2
	if row < 0 || row >= len(m.items) {
		return Item{}, false
	}
	return m.items[row], true
}

func (m Model) box(p layout.Palette) string {
	lines := make([]string, len(m.items))
	width := 0
	for i, it := range m.items {
		lines[i] = fmt.Sprintf("%d %s", i+1, it.Label)
		width = max(width, lipgloss.Width(lines[i]))
	}

	cursor := lipgloss.NewStyle().Foreground(p.Text).Background(p.Primary).Bold(true)
	plain := lipgloss.NewStyle().Foreground(p.Text)
	for i, line := range lines {
		line += strings.Repeat(" ", width-lipgloss.Width(line))
		if i == m.cursor {
			lines[i] = cursor.Render(line)
		} else {
			lines[i] = plain.Render(line)
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Secondary).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}

// View renders the overlay box.
func (m Model) View(p layout.Palette) string {
	return m.box(p)
}
