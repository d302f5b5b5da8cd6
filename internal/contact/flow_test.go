// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package contact

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jane = Form{Name: "Jane Doe", Email: "jane@example.com", Message: "Hello"}

type countingSender struct {
	calls atomic.Int32
	err   error
	got   Form
}

func (s *countingSender) Send(_ context.Context, form Form) error {
	s.calls.Add(1)
	s.got = form
	return s.err
}

func TestFlow_SubmitSuccess(t *testing.T) {
	f := NewFlow()
	f.Fill(jane)
	sender := &countingSender{}

	res, err := f.Submit(context.Background(), sender)
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, "Message sent successfully!", res.Message)
	assert.NoError(t, res.Err)
	assert.Equal(t, int32(1), sender.calls.Load())
	assert.Equal(t, jane, sender.got)

	snap := f.Snapshot()
	assert.Equal(t, StatusSuccess, snap.Status)
	assert.True(t, snap.Fields.IsEmpty(), "success clears every input")
	assert.False(t, snap.SubmitDisabled)
	assert.Equal(t, "Send Message", snap.SubmitLabel)
}

func TestFlow_SubmitFailure(t *testing.T) {
	f := NewFlow()
	f.Fill(jane)
	cause := errors.New("network unreachable")
	sender := &countingSender{err: cause}

	res, err := f.Submit(context.Background(), sender)
	require.NoError(t, err)

	assert.Equal(t, StatusError, res.Status)
	assert.Equal(t, "Failed to send message. Please try again.", res.Message)

	var failure *SubmissionFailure
	require.ErrorAs(t, res.Err, &failure)
	assert.ErrorIs(t, res.Err, cause)

	assert.Equal(t, jane, f.Fields(), "error keeps the entered text")
	assert.Equal(t, int32(1), sender.calls.Load(), "no retry")
}

func TestFlow_SubmitDisabledOnlyWhileSubmitting(t *testing.T) {
	f := NewFlow()
	assert.False(t, f.SubmitDisabled())

	f.Fill(jane)
	_, err := f.Begin()
	require.NoError(t, err)
	assert.Equal(t, StatusSubmitting, f.Status())
	assert.True(t, f.SubmitDisabled())
	assert.Equal(t, "Sending...", f.Snapshot().SubmitLabel)

	f.Finish(nil)
	assert.False(t, f.SubmitDisabled())

	f.Fill(jane)
	_, err = f.Begin()
	require.NoError(t, err)
	f.Finish(errors.New("boom"))
	assert.False(t, f.SubmitDisabled())
}

func TestFlow_BeginWhileSubmitting(t *testing.T) {
	f := NewFlow()
	f.Fill(jane)
	_, err := f.Begin()
	require.NoError(t, err)

	_, err = f.Begin()
	assert.ErrorIs(t, err, ErrSubmitInProgress)
	assert.Equal(t, StatusSubmitting, f.Status())

	sender := &countingSender{}
	_, err = f.Submit(context.Background(), sender)
	assert.ErrorIs(t, err, ErrSubmitInProgress)
	assert.Zero(t, sender.calls.Load())
}

func TestFlow_MissingFields(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.SetField(FieldName, "Jane Doe"))
	sender := &countingSender{}

	res, err := f.Submit(context.Background(), sender)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingFields)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []Field{FieldEmail, FieldMessage}, verr.Missing)
	assert.Equal(t, "missing required fields: email, message", verr.Error())

	assert.Equal(t, StatusIdle, res.Status)
	assert.Equal(t, StatusIdle, f.Status())
	assert.Zero(t, sender.calls.Load())
}

func TestFlow_NoEmailShapeCheck(t *testing.T) {
	f := NewFlow()
	f.Fill(Form{Name: "J", Email: "not-an-email", Message: " "})
	res, err := f.Submit(context.Background(), &countingSender{})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, res.Status)
}

func TestFlow_TerminalStatesUntilNextSubmit(t *testing.T) {
	f := NewFlow()
	f.Fill(jane)
	_, err := f.Submit(context.Background(), &countingSender{err: errors.New("x")})
	require.NoError(t, err)
	assert.Equal(t, StatusError, f.Status())

	require.NoError(t, f.SetField(FieldMessage, "Hello again"))
	assert.Equal(t, StatusError, f.Status(), "typing does not return to idle")

	res, err := f.Submit(context.Background(), &countingSender{})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, res.Status)
}

func TestFlow_FinishWrapsPlainErrors(t *testing.T) {
	f := NewFlow()
	f.Fill(jane)
	_, err := f.Begin()
	require.NoError(t, err)

	res := f.Finish(errors.New("plain"))
	var failure *SubmissionFailure
	assert.ErrorAs(t, res.Err, &failure)
}

func TestDeliver(t *testing.T) {
	err := Deliver(context.Background(), SenderFunc(func(context.Context, Form) error { return nil }), jane)
	assert.NoError(t, err)

	cause := errors.New("rejected")
	err = Deliver(context.Background(), SenderFunc(func(context.Context, Form) error { return cause }), jane)
	var failure *SubmissionFailure
	require.ErrorAs(t, err, &failure)
	assert.Same(t, cause, failure.Err)
	assert.Equal(t, "submission failed: rejected", err.Error())
}

func TestForm(t *testing.T) {
	var f Form
	require.NoError(t, f.Set(FieldEmail, "a@b.c"))
	assert.Equal(t, "a@b.c", f.Get(FieldEmail))
	assert.Error(t, f.Set(Field("phone"), "1"))
	assert.Equal(t, "", f.Get(Field("phone")))

	assert.Equal(t, map[string]string{"name": "Jane Doe", "email": "jane@example.com", "message": "Hello"}, jane.Params())
	assert.NoError(t, jane.Validate())
	assert.True(t, Form{}.IsEmpty())
}

func TestStatus(t *testing.T) {
	for _, s := range []Status{StatusIdle, StatusSubmitting, StatusSuccess, StatusError} {
		text, err := s.MarshalText()
		require.NoError(t, err)
		var back Status
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, s, back)
	}

	var s Status
	assert.Error(t, s.UnmarshalText([]byte("done")))
	assert.Equal(t, "Status(9)", Status(9).String())

	data, err := json.Marshal(Snapshot{Status: StatusError, Message: StatusError.Message()})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"error"`)
}

func TestFlow_FinishOutsideSubmission(t *testing.T) {
	t.Run("idle", func(t *testing.T) {
		f := NewFlow()
		f.Fill(jane)

		res := f.Finish(errors.New("late"))
		assert.Equal(t, StatusIdle, res.Status)
		assert.NoError(t, res.Err)
		assert.Equal(t, jane, f.Fields(), "inputs untouched")
	})

	t.Run("already resolved", func(t *testing.T) {
		f := NewFlow()
		f.Fill(jane)
		_, err := f.Begin()
		require.NoError(t, err)
		require.Equal(t, StatusError, f.Finish(errors.New("boom")).Status)

		res := f.Finish(nil)
		assert.Equal(t, StatusError, res.Status, "a second result is ignored")
		assert.Equal(t, FailureMessage, res.Message)
		assert.Equal(t, jane, f.Fields())
	})
}
