// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package viewstate holds the two per-page flags: colour theme and whether
// the mobile navigation menu is open. The flags are independent.
package viewstate

import (
	"encoding/json"
	"fmt"
)

// Theme is the page colour scheme.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// ParseTheme accepts "dark" or "light".
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	}
	return ThemeDark, fmt.Errorf("unknown theme %q", s)
}

func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Theme) UnmarshalText(text []byte) error {
	parsed, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Region identifies where a pointer press landed.
type Region string

const (
	RegionMenu       Region = "menu"
	RegionMenuButton Region = "menu_button"
	RegionOutside    Region = "outside"
)

// State is the view state of one page. The zero value is the initial state:
// dark theme, menu closed. It is not safe for concurrent use; each page's
// event loop owns its own.
type State struct {
	theme    Theme
	menuOpen bool
}

// New returns the initial state with the given theme.
func New(theme Theme) *State {
	return &State{theme: theme}
}

func (s *State) Theme() Theme { return s.theme }

func (s *State) MenuOpen() bool { return s.menuOpen }

// ToggleTheme flips between light and dark.
func (s *State) ToggleTheme() Theme {
	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	return s.theme
}

// ToggleMenu opens a closed menu and closes an open one.
func (s *State) ToggleMenu() bool {
	s.menuOpen = !s.menuOpen
	return s.menuOpen
}

// CloseMenu closes the menu if open.
func (s *State) CloseMenu() {
	s.menuOpen = false
}

// PointerDown closes an open menu when the press lands outside both the menu
// and its button. Presses on the button are left to ToggleMenu.
func (s *State) PointerDown(region Region) bool {
	if s.menuOpen && region != RegionMenu && region != RegionMenuButton {
		s.menuOpen = false
		return true
	}
	return false
}

// Navigate records selection of a navigation link, which closes the menu.
func (s *State) Navigate() {
	s.menuOpen = false
}

// Snapshot is the serialisable form of State.
type Snapshot struct {
	Theme    Theme `json:"theme"`
	MenuOpen bool  `json:"menu_open"`
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{Theme: s.theme, MenuOpen: s.menuOpen}
}

func (s *State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Snapshot())
}
