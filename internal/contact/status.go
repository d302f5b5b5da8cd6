// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package contact

import "fmt"

// Status is the contact form lifecycle.
//
//	idle -> submitting -> success | error
//	success | error -> submitting (next submit)
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

// Messages shown beneath the form.
const (
	SuccessMessage = "Message sent successfully!"
	FailureMessage = "Failed to send message. Please try again."
)

// Button labels for the submit control.
const (
	SubmitLabel     = "Send Message"
	SubmittingLabel = "Sending..."
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "idle":
		*s = StatusIdle
	case "submitting":
		*s = StatusSubmitting
	case "success":
		*s = StatusSuccess
	case "error":
		*s = StatusError
	default:
		return fmt.Errorf("unknown contact status %q", text)
	}
	return nil
}

// Message is the literal text displayed for the status, empty when none.
func (s Status) Message() string {
	switch s {
	case StatusSuccess:
		return SuccessMessage
	case StatusError:
		return FailureMessage
	}
	return ""
}

// SubmitDisabled reports whether the submit control is disabled.
func (s Status) SubmitDisabled() bool {
	return s == StatusSubmitting
}

// SubmitLabel is the text on the submit control.
func (s Status) SubmitLabel() string {
	if s == StatusSubmitting {
		return SubmittingLabel
	}
	return SubmitLabel
}
