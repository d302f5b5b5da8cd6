// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package contactform

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/noldarim/portfolio/internal/contact"
	"github.com/noldarim/portfolio/internal/tui/layout"
)

// View renders the contact section
func (m Model) View(styles layout.Styles) string {
	snap := m.flow.Snapshot()

	var body string
	if snap.SubmitDisabled {
		f := snap.Fields
		body = lipgloss.JoinVertical(lipgloss.Left,
			styles.Muted.Render("Name:    ")+f.Name,
			styles.Muted.Render("Email:   ")+f.Email,
			styles.Muted.Render("Message: ")+f.Message,
		)
	} else {
		body = m.form.View()
	}

	button := lipgloss.NewStyle().
		Foreground(styles.Palette.Text).
		Background(styles.Palette.Primary).
		Padding(0, 2)
	if snap.SubmitDisabled {
		button = button.Background(styles.Palette.Border).Faint(true)
	}

	parts := []string{
		styles.SectionHeader.Render("Get In Touch"),
		body,
		"",
		button.Render(snap.SubmitLabel),
	}

	switch snap.Status {
	case contact.StatusSuccess:
		parts = append(parts, "", styles.Success.Render(snap.Message))
	case contact.StatusError:
		parts = append(parts, "", styles.Error.Render(snap.Message))
	}
	if m.notice != "" {
		parts = append(parts, "", styles.Muted.Render(m.notice))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
