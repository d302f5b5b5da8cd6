// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package layout frames a screen with a header, a body and a help footer.
package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// MinimumWidth is the minimum terminal width required
	MinimumWidth = 40
	// MinimumHeight is the minimum terminal height required (header + footer + some space)
	MinimumHeight = 10
)

// LayoutInfo contains all the information needed to render a layout
type LayoutInfo struct {
	Title       string
	Breadcrumbs []string
	Status      string
	HelpItems   []HelpItem
}

// Dimensions represents the available space for content
type Dimensions struct {
	Width  int
	Height int
	Valid  bool
	Error  string
}

// ValidateSpace checks if the terminal has enough space to render properly
func ValidateSpace(width, height int) Dimensions {
	if width < MinimumWidth {
		return Dimensions{
			Width:  width,
			Height: height,
			Error:  fmt.Sprintf("Terminal too narrow (%d cols). Minimum: %d cols", width, MinimumWidth),
		}
	}
	if height < MinimumHeight {
		return Dimensions{
			Width:  width,
			Height: height,
			Error:  fmt.Sprintf("Terminal too short (%d lines). Minimum: %d lines", height, MinimumHeight),
		}
	}
	return Dimensions{Width: width, Height: height, Valid: true}
}

// RenderLayout combines header, content, and footer into a complete layout.
// Returns an error view if the terminal is too small.
func RenderLayout(styles Styles, content string, info LayoutInfo, width, height int) string {
	dims := ValidateSpace(width, height)
	if !dims.Valid {
		return renderSpaceError(styles, dims.Error, width, height)
	}

	header := RenderHeader(styles, info.Title, info.Breadcrumbs, info.Status, width)
	footer := RenderFooter(styles, info.HelpItems, width)

	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 1 {
		contentHeight = 1
	}

	// MaxHeight enforces the ceiling, Height sets the box size.
	styledContent := lipgloss.NewStyle().
		Width(width).
		MaxHeight(contentHeight).
		Height(contentHeight).
		Align(lipgloss.Left, lipgloss.Top).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, styledContent, footer)
}

// GetContentArea calculates the available width and height for content
func GetContentArea(styles Styles, info LayoutInfo, totalWidth, totalHeight int) Dimensions {
	dims := ValidateSpace(totalWidth, totalHeight)
	if !dims.Valid {
		return dims
	}

	headerHeight := lipgloss.Height(RenderHeader(styles, info.Title, info.Breadcrumbs, info.Status, totalWidth))
	footerHeight := 0
	if len(info.HelpItems) > 0 {
		footerHeight = lipgloss.Height(RenderFooter(styles, info.HelpItems, totalWidth))
	}

	contentHeight := totalHeight - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}
	return Dimensions{Width: totalWidth, Height: contentHeight, Valid: true}
}

// HeaderHeight returns the number of lines RenderHeader produces for info.
func HeaderHeight(styles Styles, info LayoutInfo, width int) int {
	return lipgloss.Height(RenderHeader(styles, info.Title, info.Breadcrumbs, info.Status, width))
}

// renderSpaceError renders an error message when terminal is too small
func renderSpaceError(styles Styles, message string, width, height int) string {
	errorStyle := styles.Error.
		Align(lipgloss.Center, lipgloss.Center).
		Width(width).
		Height(height)

	lines := []string{
		"⚠ Terminal Too Small ⚠",
		"",
		message,
		"",
		fmt.Sprintf("Current: %dx%d", width, height),
		fmt.Sprintf("Minimum: %dx%d", MinimumWidth, MinimumHeight),
		"",
		"Please resize your terminal",
	}
	return errorStyle.Render(strings.Join(lines, "\n"))
}
