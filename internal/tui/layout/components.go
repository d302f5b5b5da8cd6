// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpItem represents a single help entry
type HelpItem struct {
	Key         string
	Description string
}

// MenuButton is drawn at the right end of the title line.
const MenuButton = "[≡]"

// RenderHeader creates a header with title, breadcrumbs, and optional status.
// The menu button occupies the last cells of the first line.
func RenderHeader(styles Styles, title string, breadcrumbs []string, status string, width int) string {
	var header strings.Builder

	titleLine := styles.Title.Render(title)
	if len(breadcrumbs) > 1 {
		breadcrumbText := strings.Join(breadcrumbs, styles.Separator.String())
		titleLine += "  " + styles.Breadcrumb.Render(breadcrumbText)
	}
	button := styles.HelpKey.Render(MenuButton)
	gap := width - lipgloss.Width(titleLine) - lipgloss.Width(button)
	if gap < 1 {
		gap = 1
	}
	header.WriteString(titleLine + strings.Repeat(" ", gap) + button)

	if status != "" {
		header.WriteString("\n")
		header.WriteString(styles.Stats.Render(status))
	}

	header.WriteString("\n")
	header.WriteString(styles.Divider(width))

	return header.String()
}

// RenderFooter creates a footer with help items
func RenderFooter(styles Styles, helpItems []HelpItem, width int) string {
	if len(helpItems) == 0 {
		return ""
	}

	helpTexts := make([]string, 0, len(helpItems))
	for _, item := range helpItems {
		helpTexts = append(helpTexts, fmt.Sprintf("[%s] %s",
			styles.HelpKey.Render(item.Key),
			styles.HelpText.Render(item.Description)))
	}

	return styles.Divider(width) + "\n" +
		styles.Footer.Width(width).Render(strings.Join(helpTexts, " • "))
}
