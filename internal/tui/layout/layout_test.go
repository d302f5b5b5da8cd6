// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/noldarim/portfolio/internal/viewstate"
)

func TestValidateSpace(t *testing.T) {
	assert.True(t, ValidateSpace(80, 24).Valid)
	assert.False(t, ValidateSpace(20, 24).Valid)
	assert.False(t, ValidateSpace(80, 5).Valid)
}

func TestRenderLayout(t *testing.T) {
	styles := NewStyles(viewstate.ThemeDark)
	info := LayoutInfo{Title: "Portfolio", HelpItems: []HelpItem{{Key: "q", Description: "quit"}}}

	out := RenderLayout(styles, "hello", info, 80, 24)
	assert.Equal(t, 24, lipgloss.Height(out))
	assert.Contains(t, out, "Portfolio")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, MenuButton)
	assert.Contains(t, out, "quit")

	small := RenderLayout(styles, "hello", info, 20, 5)
	assert.Contains(t, small, "Terminal Too Small")
}

func TestHeaderPlacesMenuButtonAtRightEdge(t *testing.T) {
	styles := NewStyles(viewstate.ThemeLight)
	header := RenderHeader(styles, "Portfolio", nil, "", 60)
	first := strings.Split(header, "\n")[0]
	assert.Equal(t, 60, lipgloss.Width(first))
	assert.True(t, strings.HasSuffix(stripANSI(first), MenuButton))
}

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, DarkPalette, PaletteFor(viewstate.ThemeDark))
	assert.Equal(t, LightPalette, PaletteFor(viewstate.ThemeLight))
	assert.NotEqual(t, DarkPalette.Text, LightPalette.Text)
}

// stripANSI removes CSI escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && ((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
