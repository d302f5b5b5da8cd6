// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"github.com/noldarim/portfolio/internal/contact"
	"github.com/noldarim/portfolio/internal/content"
)

// Sample data creators for consistent testing

// JaneDoe is a complete, valid contact submission.
func JaneDoe() contact.Form {
	return contact.Form{Name: "Jane Doe", Email: "jane@example.com", Message: "Hello"}
}

// SampleStore returns a store over the built-in tables.
func SampleStore() *content.Store {
	return content.NewStaticStore(content.Default())
}
