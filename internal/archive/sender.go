// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package archive

import (
	"context"
	"time"

	"github.com/noldarim/portfolio/internal/contact"
)

// Recorder stores one archived message.
type Recorder interface {
	Record(ctx context.Context, msg *ContactMessage) error
}

type requestIDKey struct{}

// WithRequestID tags ctx so archived rows can be correlated with access logs.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Sender wraps another contact.Sender and records every attempt. A failed
// write is logged and never changes the delivery outcome.
type Sender struct {
	next     contact.Sender
	recorder Recorder
	now      func() time.Time
}

// NewSender decorates next with archiving.
func NewSender(next contact.Sender, recorder Recorder) *Sender {
	return &Sender{next: next, recorder: recorder, now: time.Now}
}

func (s *Sender) Send(ctx context.Context, form contact.Form) error {
	err := s.next.Send(ctx, form)

	msg := &ContactMessage{
		Name:      form.Name,
		Email:     form.Email,
		Message:   form.Message,
		Status:    OutcomeDelivered,
		RequestID: requestID(ctx),
		CreatedAt: s.now().UTC(),
	}
	if err != nil {
		msg.Status = OutcomeFailed
		msg.Error = err.Error()
	}

	// The delivery already happened, so the write must outlive a cancelled
	// request context.
	if recErr := s.recorder.Record(context.WithoutCancel(ctx), msg); recErr != nil {
		getLog().Error().Err(recErr).Str("status", msg.Status).Msg("Failed to archive contact message")
	}
	return err
}

var _ contact.Sender = (*Sender)(nil)
