// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package contactform is the terminal rendition of the contact section: a
// huh form whose submission drives a contact.Flow.
package contactform

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/noldarim/portfolio/internal/contact"
	"github.com/noldarim/portfolio/internal/tui/messages"
	"github.com/noldarim/portfolio/internal/viewstate"
)

type formValues struct {
	name, email, message string
}

// Model is the contact section.
type Model struct {
	ctx    context.Context
	flow   *contact.Flow
	sender contact.Sender
	theme  viewstate.Theme

	form *huh.Form
	// values is shared by every copy of the model so the form's bindings
	// stay valid after Update returns a new Model.
	values *formValues

	// notice is a refusal shown under the form; cleared on the next submit.
	notice string
	width  int
}

// NewModel creates an idle, empty contact form.
func NewModel(ctx context.Context, sender contact.Sender, theme viewstate.Theme) Model {
	m := Model{
		ctx:    ctx,
		flow:   contact.NewFlow(),
		sender: sender,
		theme:  theme,
		values: &formValues{},
		width:  60,
	}
	m.initForm()
	return m
}

func required(label string) func(string) error {
	return func(s string) error {
		if s == "" {
			return errors.New(label + " is required")
		}
		return nil
	}
}

// initForm rebuilds the huh form around the current field values.
func (m *Model) initForm() {
	theme := huh.ThemeCharm()
	if m.theme == viewstate.ThemeLight {
		theme = huh.ThemeBase()
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key(string(contact.FieldName)).
				Title("Your Name").
				Value(&m.values.name).
				Validate(required("name")),
			huh.NewInput().
				Key(string(contact.FieldEmail)).
				Title("Your Email").
				Value(&m.values.email).
				Validate(required("email")),
			huh.NewText().
				Key(string(contact.FieldMessage)).
				Title("Your Message").
				Lines(5).
				Value(&m.values.message).
				Validate(required("message")),
		),
	).
		WithTheme(theme).
		WithShowHelp(false).
		WithWidth(m.width)
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// SetWidth resizes the form.
func (m *Model) SetWidth(width int) {
	m.width = width
	m.form = m.form.WithWidth(width)
}

// SetTheme restyles the form, keeping what was typed.
func (m *Model) SetTheme(theme viewstate.Theme) tea.Cmd {
	if m.theme == theme {
		return nil
	}
	m.theme = theme
	if m.flow.SubmitDisabled() {
		return nil
	}
	m.initForm()
	return m.form.Init()
}

// Fields returns what the inputs currently hold.
func (m Model) Fields() contact.Form {
	return contact.Form{Name: m.values.name, Email: m.values.email, Message: m.values.message}
}

// SetFields replaces the input values.
func (m *Model) SetFields(f contact.Form) tea.Cmd {
	*m.values = formValues{name: f.Name, email: f.Email, message: f.Message}
	m.initForm()
	return m.form.Init()
}

// collect copies the completed form's results into the inputs.
func (m *Model) collect() {
	*m.values = formValues{
		name:    m.form.GetString(string(contact.FieldName)),
		email:   m.form.GetString(string(contact.FieldEmail)),
		message: m.form.GetString(string(contact.FieldMessage)),
	}
}

// Snapshot is the flow's current view.
func (m Model) Snapshot() contact.Snapshot {
	return m.flow.Snapshot()
}

// Submitting reports whether a delivery is in flight.
func (m Model) Submitting() bool {
	return m.flow.SubmitDisabled()
}

// Submit starts one delivery with the current inputs. The returned command
// performs the call off the update loop and yields a SubmitResultMsg.
func (m *Model) Submit() tea.Cmd {
	m.notice = ""
	if !m.flow.SubmitDisabled() {
		m.flow.Fill(m.Fields())
	}
	form, err := m.flow.Begin()
	if err != nil {
		refused := messages.SubmitRefusedMsg{Err: err}
		var verr *contact.ValidationError
		if errors.As(err, &verr) {
			refused.Missing = verr.Missing
		}
		return func() tea.Msg { return refused }
	}

	ctx, sender := m.ctx, m.sender
	return func() tea.Msg {
		return messages.SubmitResultMsg{Err: contact.Deliver(ctx, sender, form)}
	}
}
