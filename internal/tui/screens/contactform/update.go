// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package contactform

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/noldarim/portfolio/internal/logger"
	"github.com/noldarim/portfolio/internal/tui/messages"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	log := logger.GetTUILogger().With().Str("component", "contactform").Logger()

	switch msg := msg.(type) {
	case messages.SubmitResultMsg:
		if !m.flow.SubmitDisabled() {
			return m, nil
		}
		res := m.flow.Finish(msg.Err)
		log.Debug().Stringer("status", res.Status).Msg("Submission resolved")
		// Success clears the inputs; failure keeps what was typed.
		return m, m.SetFields(m.flow.Fields())

	case messages.SubmitRefusedMsg:
		m.notice = msg.Err.Error()
		if !m.flow.SubmitDisabled() {
			return m, m.SetFields(m.Fields())
		}
		return m, nil
	}

	// The submit control is disabled while sending.
	if m.flow.SubmitDisabled() {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.collect()
		log.Info().Msg("Contact form submitted")
		return m, tea.Batch(cmd, m.Submit())
	}
	return m, cmd
}
