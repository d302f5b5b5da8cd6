// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"reflect"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var cmdType = reflect.TypeOf(tea.Cmd(nil))

// ExecuteCommand executes a tea.Cmd and returns the resulting message
// Useful for testing command chains
func ExecuteCommand(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Drain runs cmd and every command it batches or sequences, returning the
// messages that arrive within wait, in order. Slower commands such as cursor
// blink ticks are dropped.
func Drain(cmd tea.Cmd, wait time.Duration) []tea.Msg {
	return drain(cmd, time.Now().Add(wait))
}

func drain(cmd tea.Cmd, deadline time.Time) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	timer := time.NewTimer(time.Until(deadline))
	defer timer.Stop()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-timer.C:
		return nil
	}
	if msg == nil {
		return nil
	}

	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || v.Type().Elem() != cmdType {
		return []tea.Msg{msg}
	}

	results := make([][]tea.Msg, v.Len())
	var wg sync.WaitGroup
	for i := range results {
		next, _ := v.Index(i).Interface().(tea.Cmd)
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = drain(next, deadline)
		}()
	}
	wg.Wait()

	var out []tea.Msg
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

// TypeText sends s one rune at a time, discarding the commands.
func TypeText[M interface {
	Update(tea.Msg) (M, tea.Cmd)
}](m M, s string) M {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

// KeyPress creates a tea.KeyMsg for testing keyboard input
func KeyPress(key string) tea.KeyMsg {
	return tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune(key),
	}
}

// SpecialKey creates special key messages (Enter, Esc, etc.)
func SpecialKey(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}

// WindowSizeMsg creates a window size message for testing
func WindowSizeMsg(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  width,
		Height: height,
	}
}

// LeftClick creates a left-button press at cell (x, y).
func LeftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
}
