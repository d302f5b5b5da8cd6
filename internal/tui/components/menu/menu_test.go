// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noldarim/portfolio/internal/tui/layout"
)

func items() []Item {
	return []Item{{"home", "Home"}, {"about", "About"}, {"contact", "Contact"}}
}

func TestModel_Cursor(t *testing.T) {
	m := New(items())
	m.Up()
	sel, ok := m.Selected()
	assert.True(t, ok)
	assert.Equal(t, "contact", sel.ID)
	m.Down()
	sel, _ = m.Selected()
	assert.Equal(t, "home", sel.ID)

	_, ok = New(nil).Selected()
	assert.False(t, ok)
}

func TestModel_Geometry(t *testing.T) {
	m := New(items())
	b := m.Bounds(80, 3)

	assert.Equal(t, 80, b.X+b.W, "anchored to the right edge")
	assert.Equal(t, 3, b.Y)
	// border + padding + three entries + padding + border
	assert.Equal(t, 7, b.H)

	it, ok := m.ItemAt(b, b.X+3, b.Y+2)
	assert.True(t, ok)
	assert.Equal(t, "home", it.ID)

	it, ok = m.ItemAt(b, b.X+3, b.Y+4)
	assert.True(t, ok)
	assert.Equal(t, "contact", it.ID)

	_, ok = m.ItemAt(b, b.X+1, b.Y)
	assert.False(t, ok, "border row")
	_, ok = m.ItemAt(b, 0, 0)
	assert.False(t, ok)
}

func TestModel_View(t *testing.T) {
	view := New(items()).View(layout.LightPalette)
	assert.Contains(t, view, "1 Home")
	assert.Contains(t, view, "3 Contact")
}
