// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package contactform

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noldarim/portfolio/internal/contact"
	"github.com/noldarim/portfolio/internal/tui/layout"
	"github.com/noldarim/portfolio/internal/tui/messages"
	"github.com/noldarim/portfolio/internal/viewstate"
	"github.com/noldarim/portfolio/test/testutil"
)

func submit(t *testing.T, m Model) (Model, messages.SubmitResultMsg) {
	t.Helper()
	cmd := m.Submit()
	require.True(t, m.Submitting())
	msg := testutil.ExecuteCommand(cmd)
	res, ok := msg.(messages.SubmitResultMsg)
	require.True(t, ok, "expected SubmitResultMsg, got %T", msg)
	return m, res
}

// settle feeds msg to the model and then every message its commands yield,
// the way the program loop would, until nothing is left.
func settle(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	queue := []tea.Msg{msg}
	for i := 0; len(queue) > 0; i++ {
		require.Less(t, i, 500, "model did not settle")
		var cmd tea.Cmd
		m, cmd = m.Update(queue[0])
		queue = append(queue[1:], testutil.Drain(cmd, 100*time.Millisecond)...)
	}
	return m
}

// fillIn types f into the form field by field and presses tab after each,
// completing the form on the last one.
func fillIn(t *testing.T, m Model, f contact.Form) Model {
	t.Helper()
	for _, value := range []string{f.Name, f.Email, f.Message} {
		m = testutil.TypeText(m, value)
		m = settle(t, m, testutil.SpecialKey(tea.KeyTab))
	}
	return m
}

func TestNewModel(t *testing.T) {
	m := NewModel(context.Background(), testutil.NewRecordingSender(), viewstate.ThemeDark)
	assert.NotNil(t, m.form)
	assert.True(t, m.Fields().IsEmpty())
	assert.Equal(t, contact.StatusIdle, m.Snapshot().Status)

	view := m.View(layout.NewStyles(viewstate.ThemeDark))
	testutil.AssertViewContains(t, view, "Get In Touch", "Send Message")
}

func TestSubmit_Success(t *testing.T) {
	sender := testutil.NewRecordingSender()
	m := NewModel(context.Background(), sender, viewstate.ThemeDark)
	m.SetFields(testutil.JaneDoe())

	m, res := submit(t, m)
	assert.Equal(t, "Sending...", m.Snapshot().SubmitLabel)
	assert.Contains(t, m.View(layout.NewStyles(viewstate.ThemeDark)), "Sending...")
	assert.NoError(t, res.Err)

	m, _ = m.Update(res)
	snap := m.Snapshot()
	assert.Equal(t, contact.StatusSuccess, snap.Status)
	assert.True(t, m.Fields().IsEmpty(), "inputs cleared")
	assert.False(t, m.Submitting())
	assert.Equal(t, 1, sender.Calls())
	assert.Equal(t, testutil.JaneDoe(), sender.LastForm())
	assert.Contains(t, m.View(layout.NewStyles(viewstate.ThemeDark)), "Message sent successfully!")
}

func TestSubmit_Failure(t *testing.T) {
	sender := testutil.NewFailingSender(errors.New("HTTP 400"))
	m := NewModel(context.Background(), sender, viewstate.ThemeLight)
	m.SetFields(testutil.JaneDoe())

	m, res := submit(t, m)
	var failure *contact.SubmissionFailure
	assert.ErrorAs(t, res.Err, &failure)

	m, _ = m.Update(res)
	assert.Equal(t, contact.StatusError, m.Snapshot().Status)
	assert.Equal(t, testutil.JaneDoe(), m.Fields(), "inputs retained")
	assert.Contains(t, m.View(layout.NewStyles(viewstate.ThemeLight)), "Failed to send message. Please try again.")
}

func TestSubmit_MissingFields(t *testing.T) {
	sender := testutil.NewRecordingSender()
	m := NewModel(context.Background(), sender, viewstate.ThemeDark)
	m.SetFields(contact.Form{Name: "Jane Doe"})

	msg := testutil.ExecuteCommand(m.Submit())
	refused, ok := msg.(messages.SubmitRefusedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, refused.Err, contact.ErrMissingFields)
	assert.Equal(t, []contact.Field{contact.FieldEmail, contact.FieldMessage}, refused.Missing)

	m, _ = m.Update(refused)
	assert.Equal(t, contact.StatusIdle, m.Snapshot().Status)
	assert.Contains(t, m.View(layout.NewStyles(viewstate.ThemeDark)), "missing required fields")
	assert.Zero(t, sender.Calls())
}

func TestSubmit_WhileSubmitting(t *testing.T) {
	sender := testutil.NewRecordingSender()
	m := NewModel(context.Background(), sender, viewstate.ThemeDark)
	m.SetFields(testutil.JaneDoe())

	first := m.Submit()
	require.True(t, m.Submitting())

	m.SetFields(contact.Form{Name: "Other", Email: "o@example.com", Message: "x"})
	msg := testutil.ExecuteCommand(m.Submit())
	refused, ok := msg.(messages.SubmitRefusedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, refused.Err, contact.ErrSubmitInProgress)
	assert.Equal(t, testutil.JaneDoe(), m.Snapshot().Fields, "in-flight fields untouched")

	m, _ = m.Update(testutil.ExecuteCommand(first))
	assert.Equal(t, contact.StatusSuccess, m.Snapshot().Status)
	assert.Equal(t, 1, sender.Calls())
}

func TestUpdate_IgnoresKeysWhileSubmitting(t *testing.T) {
	m := NewModel(context.Background(), testutil.NewRecordingSender(), viewstate.ThemeDark)
	m.SetFields(testutil.JaneDoe())
	m.Submit()

	_, cmd := m.Update(testutil.KeyPress("x"))
	testutil.AssertNoCommand(t, cmd)
}

func TestSetTheme_KeepsInput(t *testing.T) {
	m := NewModel(context.Background(), testutil.NewRecordingSender(), viewstate.ThemeDark)
	m.SetFields(testutil.JaneDoe())
	m.SetTheme(viewstate.ThemeLight)
	assert.Equal(t, testutil.JaneDoe(), m.Fields())
	assert.Nil(t, m.SetTheme(viewstate.ThemeLight))
}

func TestTypedSubmission(t *testing.T) {
	t.Run("typed values reach the sender", func(t *testing.T) {
		sender := testutil.NewRecordingSender()
		m := NewModel(context.Background(), sender, viewstate.ThemeDark)
		m.Init()

		m = fillIn(t, m, testutil.JaneDoe())

		require.Equal(t, 1, sender.Calls())
		assert.Equal(t, testutil.JaneDoe(), sender.LastForm())
		assert.Equal(t, contact.StatusSuccess, m.Snapshot().Status)
		assert.True(t, m.Fields().IsEmpty(), "inputs cleared")
		assert.Contains(t, m.View(layout.NewStyles(viewstate.ThemeDark)), contact.SuccessMessage)
	})

	t.Run("failure keeps the typed text on screen", func(t *testing.T) {
		sender := testutil.NewFailingSender(errors.New("HTTP 500"))
		m := NewModel(context.Background(), sender, viewstate.ThemeDark)
		m.Init()

		m = fillIn(t, m, testutil.JaneDoe())

		require.Equal(t, 1, sender.Calls())
		assert.Equal(t, contact.StatusError, m.Snapshot().Status)
		assert.Equal(t, testutil.JaneDoe(), m.Fields())
		testutil.AssertViewContains(t, m.View(layout.NewStyles(viewstate.ThemeDark)),
			"Jane Doe", "jane@example.com", "Hello", contact.FailureMessage)

		// Retrying without retyping sends the same message.
		sender.SetError(nil)
		m = fillIn(t, m, contact.Form{})
		require.Equal(t, 2, sender.Calls())
		assert.Equal(t, testutil.JaneDoe(), sender.LastForm())
		assert.Equal(t, contact.StatusSuccess, m.Snapshot().Status)
	})

	t.Run("empty field blocks completion", func(t *testing.T) {
		sender := testutil.NewRecordingSender()
		m := NewModel(context.Background(), sender, viewstate.ThemeDark)
		m.Init()

		m = settle(t, m, testutil.SpecialKey(tea.KeyTab))
		assert.Zero(t, sender.Calls())
		assert.Equal(t, contact.StatusIdle, m.Snapshot().Status)
	})
}

func TestUpdate_StaleResultIgnored(t *testing.T) {
	m := NewModel(context.Background(), testutil.NewRecordingSender(), viewstate.ThemeDark)
	m.SetFields(testutil.JaneDoe())

	m, cmd := m.Update(messages.SubmitResultMsg{})
	testutil.AssertNoCommand(t, cmd)
	assert.Equal(t, contact.StatusIdle, m.Snapshot().Status)
	assert.Equal(t, testutil.JaneDoe(), m.Fields(), "inputs untouched")
}
