// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noldarim/portfolio/internal/contact"
	"github.com/noldarim/portfolio/internal/tui/messages"
	"github.com/noldarim/portfolio/internal/viewstate"
	"github.com/noldarim/portfolio/test/testutil"
)

func newTestModel(t *testing.T) MainModel {
	t.Helper()
	m := NewMainModel(context.Background(), testutil.SampleStore(), testutil.NewRecordingSender(), viewstate.ThemeDark)
	return update(t, m, testutil.WindowSizeMsg(100, 50))
}

func update(t *testing.T, m MainModel, msg tea.Msg) MainModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MainModel)
	require.True(t, ok)
	return mm
}

// press sends msg and then feeds back a resulting navigation, the way the
// program loop would.
func press(t *testing.T, m MainModel, msg tea.Msg) MainModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(MainModel)
	if nav, ok := testutil.ExecuteCommand(cmd).(messages.NavigateMsg); ok {
		m = update(t, m, nav)
	}
	return m
}

func TestNewMainModel(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, SectionHome, m.ActiveSection())
	assert.Equal(t, viewstate.ThemeDark, m.Theme())
	assert.False(t, m.MenuOpen())

	testutil.AssertViewContains(t, m.View(), "Kavi Raj Vedi", "[≡]", "Home", "Contact")
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, testutil.KeyPress("t"))
	assert.Equal(t, viewstate.ThemeLight, m.Theme())

	m = press(t, m, testutil.KeyPress("t"))
	assert.Equal(t, viewstate.ThemeDark, m.Theme())

	m = update(t, m, messages.ToggleThemeMsg{})
	assert.Equal(t, viewstate.ThemeLight, m.Theme())
}

func TestSectionNavigation(t *testing.T) {
	t.Run("arrows wrap", func(t *testing.T) {
		m := newTestModel(t)
		m = press(t, m, testutil.SpecialKey(tea.KeyRight))
		assert.Equal(t, SectionAbout, m.ActiveSection())

		m = press(t, m, testutil.SpecialKey(tea.KeyLeft))
		m = press(t, m, testutil.SpecialKey(tea.KeyLeft))
		assert.Equal(t, SectionContact, m.ActiveSection())
	})

	t.Run("number keys", func(t *testing.T) {
		m := newTestModel(t)
		m = press(t, m, testutil.KeyPress("4"))
		assert.Equal(t, SectionProjects, m.ActiveSection())
		assert.Contains(t, m.View(), "Projects")

		m = press(t, m, testutil.KeyPress("9"))
		assert.Equal(t, SectionProjects, m.ActiveSection())
	})

	t.Run("unknown target is ignored", func(t *testing.T) {
		m := newTestModel(t)
		m = update(t, m, messages.NavigateMsg{Section: "blog"})
		assert.Equal(t, SectionHome, m.ActiveSection())
	})
}

func TestMenu_Keyboard(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, testutil.KeyPress("m"))
	require.True(t, m.MenuOpen())
	assert.Contains(t, m.View(), "5 Contact")

	m = press(t, m, testutil.SpecialKey(tea.KeyDown))
	m = press(t, m, testutil.SpecialKey(tea.KeyDown))
	m = press(t, m, testutil.SpecialKey(tea.KeyEnter))

	assert.Equal(t, SectionSkills, m.ActiveSection())
	assert.False(t, m.MenuOpen(), "navigating closes the menu")

	m = press(t, m, testutil.KeyPress("m"))
	m = press(t, m, testutil.SpecialKey(tea.KeyEsc))
	assert.False(t, m.MenuOpen())
}

func TestMenu_Pointer(t *testing.T) {
	button := func(m MainModel) (int, int) { return m.width - 1, 0 }

	t.Run("button toggles", func(t *testing.T) {
		m := newTestModel(t)
		m = press(t, m, testutil.LeftClick(button(m)))
		assert.True(t, m.MenuOpen())
		m = press(t, m, testutil.LeftClick(button(m)))
		assert.False(t, m.MenuOpen())
	})

	t.Run("press outside closes", func(t *testing.T) {
		m := newTestModel(t)
		m = press(t, m, testutil.LeftClick(button(m)))
		require.True(t, m.MenuOpen())

		m = press(t, m, testutil.LeftClick(0, 12))
		assert.False(t, m.MenuOpen())
		assert.Equal(t, SectionHome, m.ActiveSection())
	})

	t.Run("press inside keeps it open", func(t *testing.T) {
		m := newTestModel(t)
		m = press(t, m, testutil.LeftClick(button(m)))
		b := m.menuBounds()

		m = press(t, m, testutil.LeftClick(b.X, b.Y))
		assert.True(t, m.MenuOpen(), "border row is inside the menu")
	})

	t.Run("press on entry navigates", func(t *testing.T) {
		m := newTestModel(t)
		m = press(t, m, testutil.LeftClick(button(m)))
		b := m.menuBounds()

		m = press(t, m, testutil.LeftClick(b.X+3, b.Y+2+3))
		assert.Equal(t, SectionProjects, m.ActiveSection())
		assert.False(t, m.MenuOpen())
	})

	t.Run("closed menu ignores its area", func(t *testing.T) {
		m := newTestModel(t)
		b := m.menuBounds()
		m = press(t, m, testutil.LeftClick(b.X+3, b.Y+2+3))
		assert.Equal(t, SectionHome, m.ActiveSection())
	})
}

func TestTabBarClick(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, testutil.KeyPress("3"))
	require.Equal(t, SectionSkills, m.ActiveSection())

	m = press(t, m, testutil.LeftClick(0, m.contentTop()-tabBarHeight))
	assert.Equal(t, SectionHome, m.ActiveSection())
}

func TestContactFocus(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, testutil.KeyPress("5"))
	require.Equal(t, SectionContact, m.ActiveSection())
	testutil.AssertViewContains(t, m.View(), "Get In Touch", contact.SubmitLabel)

	m = press(t, m, testutil.SpecialKey(tea.KeyEnter))
	require.True(t, m.ContactFocused())

	// Page shortcuts are typed into the form while it has focus.
	m = press(t, m, testutil.KeyPress("t"))
	assert.Equal(t, viewstate.ThemeDark, m.Theme())

	m = press(t, m, testutil.SpecialKey(tea.KeyEsc))
	assert.False(t, m.ContactFocused())

	m = press(t, m, testutil.KeyPress("1"))
	assert.Equal(t, SectionHome, m.ActiveSection())
}

// settle feeds msg and then every message its commands yield back into the
// model until nothing is left.
func settle(t *testing.T, m MainModel, msg tea.Msg) MainModel {
	t.Helper()
	queue := []tea.Msg{msg}
	for i := 0; len(queue) > 0; i++ {
		require.Less(t, i, 500, "model did not settle")
		next, cmd := m.Update(queue[0])
		m = next.(MainModel)
		queue = append(queue[1:], testutil.Drain(cmd, 100*time.Millisecond)...)
	}
	return m
}

// typeContact focuses the contact form and types f into it, pressing tab
// after each field.
func typeContact(t *testing.T, m MainModel, f contact.Form) MainModel {
	t.Helper()
	m = press(t, m, testutil.KeyPress("5"))
	m = press(t, m, testutil.SpecialKey(tea.KeyEnter))
	require.True(t, m.ContactFocused())

	for _, value := range []string{f.Name, f.Email, f.Message} {
		for _, r := range value {
			m = update(t, m, testutil.KeyPress(string(r)))
		}
		m = settle(t, m, testutil.SpecialKey(tea.KeyTab))
	}
	return m
}

func TestContactSubmission(t *testing.T) {
	t.Run("success clears inputs", func(t *testing.T) {
		sender := testutil.NewRecordingSender()
		m := NewMainModel(context.Background(), testutil.SampleStore(), sender, viewstate.ThemeDark)
		m.Init()
		m = update(t, m, testutil.WindowSizeMsg(100, 50))

		m = typeContact(t, m, testutil.JaneDoe())

		require.Equal(t, 1, sender.Calls())
		assert.Equal(t, testutil.JaneDoe(), sender.LastForm())
		assert.Equal(t, contact.StatusSuccess, m.Contact().Snapshot().Status)
		assert.True(t, m.Contact().Fields().IsEmpty())
		assert.Contains(t, m.View(), contact.SuccessMessage)
	})

	t.Run("failure keeps inputs", func(t *testing.T) {
		sender := testutil.NewFailingSender(errors.New("network down"))
		m := NewMainModel(context.Background(), testutil.SampleStore(), sender, viewstate.ThemeDark)
		m.Init()
		m = update(t, m, testutil.WindowSizeMsg(100, 50))

		m = typeContact(t, m, testutil.JaneDoe())

		require.Equal(t, 1, sender.Calls())
		assert.Equal(t, contact.StatusError, m.Contact().Snapshot().Status)
		assert.Equal(t, testutil.JaneDoe(), m.Contact().Fields())
		testutil.AssertViewContains(t, m.View(), "Jane Doe", "jane@example.com", contact.FailureMessage)
	})
}

func TestContentReload_KeepsSection(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, testutil.KeyPress("2"))

	m = update(t, m, messages.ContentReloadedMsg{Version: 2})
	assert.Equal(t, SectionAbout, m.ActiveSection())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(testutil.KeyPress("q"))
	testutil.AssertQuitMessage(t, cmd)

	_, cmd = m.Update(testutil.SpecialKey(tea.KeyCtrlC))
	testutil.AssertQuitMessage(t, cmd)
}

func TestView_TooSmall(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, testutil.WindowSizeMsg(20, 5))
	assert.Contains(t, m.View(), "Terminal Too Small")
}
