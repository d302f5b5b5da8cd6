// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"context"
	"sync"

	"github.com/noldarim/portfolio/internal/contact"
)

// RecordingSender is a contact.Sender that records every form and answers
// with a fixed error.
type RecordingSender struct {
	mu    sync.Mutex
	forms []contact.Form
	err   error
}

// NewRecordingSender returns a sender that resolves successfully.
func NewRecordingSender() *RecordingSender {
	return &RecordingSender{}
}

// NewFailingSender returns a sender that rejects every call with err.
func NewFailingSender(err error) *RecordingSender {
	return &RecordingSender{err: err}
}

func (s *RecordingSender) Send(_ context.Context, form contact.Form) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms = append(s.forms, form)
	return s.err
}

// Calls returns how many times Send ran.
func (s *RecordingSender) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.forms)
}

// LastForm returns the most recent form sent.
func (s *RecordingSender) LastForm() contact.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.forms) == 0 {
		return contact.Form{}
	}
	return s.forms[len(s.forms)-1]
}

// SetError changes the answer for later calls.
func (s *RecordingSender) SetError(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}
