// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package tabbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/noldarim/portfolio/internal/tui/layout"
)

// Tab represents a single tab in the tab bar
type Tab struct {
	ID    string
	Label string
}

// Model represents the tab bar state
type Model struct {
	tabs      []Tab
	activeTab int
	width     int
}

// New creates a new tab bar with the given tabs
func New(tabs []Tab) Model {
	return Model{
		tabs:  tabs,
		width: 80,
	}
}

// SetActiveTab sets the active tab by index
func (m *Model) SetActiveTab(index int) {
	if index >= 0 && index < len(m.tabs) {
		m.activeTab = index
	}
}

// SetActiveID activates the tab with id and reports whether it exists.
func (m *Model) SetActiveID(id string) bool {
	for i, t := range m.tabs {
		if t.ID == id {
			m.activeTab = i
			return true
		}
	}
	return false
}

// GetActiveTab returns the index of the active tab
func (m Model) GetActiveTab() int {
	return m.activeTab
}

// GetActiveTabID returns the ID of the active tab
func (m Model) GetActiveTabID() string {
	if m.activeTab >= 0 && m.activeTab < len(m.tabs) {
		return m.tabs[m.activeTab].ID
	}
	return ""
}

// NextTab switches to the next tab (wrapping around)
func (m *Model) NextTab() {
	if len(m.tabs) > 0 {
		m.activeTab = (m.activeTab + 1) % len(m.tabs)
	}
}

// PrevTab switches to the previous tab (wrapping around)
func (m *Model) PrevTab() {
	if len(m.tabs) > 0 {
		m.activeTab = (m.activeTab - 1 + len(m.tabs)) % len(m.tabs)
	}
}

// SetWidth sets the width of the tab bar
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Tabs returns the tabs in order.
func (m Model) Tabs() []Tab {
	return m.tabs
}

func (m Model) styles(p layout.Palette) (active, inactive lipgloss.Style) {
	active = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Primary).
		Padding(0, 2)
	inactive = lipgloss.NewStyle().
		Foreground(p.Muted).
		Background(p.Surface).
		Padding(0, 2)
	return active, inactive
}

// TabAt returns the index of the tab drawn at column x.
func (m Model) TabAt(x int, p layout.Palette) (int, bool) {
	active, inactive := m.styles(p)
	col := 0
	for i, tab := range m.tabs {
		if i > 0 {
			col++ // gap
		}
		style := inactive
		if i == m.activeTab {
			style = active
		}
		w := lipgloss.Width(style.Render(tab.Label))
		if x >= col && x < col+w {
			return i, true
		}
		col += w
	}
	return 0, false
}

// View renders the tab bar
func (m Model) View(p layout.Palette) string {
	if len(m.tabs) == 0 {
		return ""
	}

	active, inactive := m.styles(p)
	gap := lipgloss.NewStyle().Background(p.Background).Render(" ")

	result := ""
	for i, tab := range m.tabs {
		if i > 0 {
			result += gap
		}
		if i == m.activeTab {
			result += active.Render(tab.Label)
		} else {
			result += inactive.Render(tab.Label)
		}
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Background(p.Background).
		Render(result)
}

// Count returns the number of tabs
func (m Model) Count() int {
	return len(m.tabs)
}
