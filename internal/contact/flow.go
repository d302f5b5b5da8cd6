// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package contact implements the contact form: field capture, a single
// delivery attempt per submit, and the idle/submitting/success/error status
// shown to the visitor.
package contact

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/noldarim/portfolio/internal/logger"

	"github.com/rs/zerolog"
)

var (
	log     *zerolog.Logger
	logOnce sync.Once
)

func getLog() *zerolog.Logger {
	logOnce.Do(func() {
		l := logger.GetContactLogger()
		log = &l
	})
	return log
}

// Sender transmits one contact message. It resolves with nil or rejects
// with an error; no response payload is consumed.
type Sender interface {
	Send(ctx context.Context, form Form) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, form Form) error

func (f SenderFunc) Send(ctx context.Context, form Form) error {
	return f(ctx, form)
}

// Deliver makes exactly one call to sender. A rejection is returned as
// *SubmissionFailure; there is no retry and no timeout beyond ctx.
func Deliver(ctx context.Context, sender Sender, form Form) error {
	start := time.Now()
	err := sender.Send(ctx, form)
	if err != nil {
		getLog().Warn().Err(err).Dur("duration", time.Since(start)).Msg("Contact delivery failed")
		return &SubmissionFailure{Err: err}
	}
	getLog().Info().Dur("duration", time.Since(start)).Msg("Contact delivered")
	return nil
}

// Result is the outcome of one submission.
type Result struct {
	Status  Status
	Message string
	// Err is the *SubmissionFailure when this call resolved a failed submission.
	Err error
}

// Snapshot is everything a view needs to draw the form.
type Snapshot struct {
	Status         Status `json:"status"`
	Message        string `json:"message,omitempty"`
	SubmitDisabled bool   `json:"submit_disabled"`
	SubmitLabel    string `json:"submit_label"`
	Fields         Form   `json:"fields"`
}

// Flow owns one form's inputs and status. The zero value is an idle, empty
// form ready for use.
type Flow struct {
	mu     sync.Mutex
	status Status
	fields Form
}

// NewFlow returns an idle, empty form.
func NewFlow() *Flow {
	return &Flow{}
}

// Status returns the current lifecycle state.
func (f *Flow) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Fields returns the current input values.
func (f *Flow) Fields() Form {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// SubmitDisabled is true exactly while a submission is in flight.
func (f *Flow) SubmitDisabled() bool {
	return f.Status().SubmitDisabled()
}

// Snapshot returns a consistent view of status and inputs.
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		Status:         f.status,
		Message:        f.status.Message(),
		SubmitDisabled: f.status.SubmitDisabled(),
		SubmitLabel:    f.status.SubmitLabel(),
		Fields:         f.fields,
	}
}

// SetField records typing into one input. Inputs stay editable while a
// submission is in flight.
func (f *Flow) SetField(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields.Set(field, value)
}

// Fill replaces all inputs at once.
func (f *Flow) Fill(form Form) {
	f.mu.Lock()
	f.fields = form
	f.mu.Unlock()
}

// Begin moves the flow to submitting and returns the inputs to send. Empty
// required inputs return a *ValidationError and leave the flow untouched, as
// does a flow that is already submitting (ErrSubmitInProgress).
func (f *Flow) Begin() (Form, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status == StatusSubmitting {
		return Form{}, ErrSubmitInProgress
	}
	if err := f.fields.Validate(); err != nil {
		return Form{}, err
	}
	f.status = StatusSubmitting
	return f.fields, nil
}

// Finish resolves the in-flight submission. nil clears the inputs and shows
// the success message; an error keeps the inputs and shows the failure
// message. Outside a submission it changes nothing and reports the current
// status.
func (f *Flow) Finish(err error) Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status != StatusSubmitting {
		return Result{Status: f.status, Message: f.status.Message()}
	}

	if err != nil {
		var failure *SubmissionFailure
		if !errors.As(err, &failure) {
			failure = &SubmissionFailure{Err: err}
		}
		f.status = StatusError
		return Result{Status: f.status, Message: f.status.Message(), Err: failure}
	}

	f.status = StatusSuccess
	f.fields = Form{}
	return Result{Status: f.status, Message: f.status.Message()}
}

// Submit runs Begin, one delivery, and Finish. The returned error is only
// set when Begin refused to start; delivery failures are reported through
// Result.
func (f *Flow) Submit(ctx context.Context, sender Sender) (Result, error) {
	form, err := f.Begin()
	if err != nil {
		return Result{Status: f.Status()}, err
	}
	return f.Finish(Deliver(ctx, sender, form)), nil
}
