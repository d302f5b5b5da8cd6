// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package messages

import "github.com/noldarim/portfolio/internal/contact"

// NavigateMsg moves to a section and closes the menu.
type NavigateMsg struct {
	Section string
}

// ToggleThemeMsg flips between light and dark.
type ToggleThemeMsg struct{}

// SubmitResultMsg carries the outcome of one delivery attempt back into the
// update loop.
type SubmitResultMsg struct {
	Err error
}

// SubmitRefusedMsg reports a submit that never started, e.g. empty fields.
type SubmitRefusedMsg struct {
	Err     error
	Missing []contact.Field
}

// ContentReloadedMsg reports a new content snapshot version.
type ContentReloadedMsg struct {
	Version int
}
