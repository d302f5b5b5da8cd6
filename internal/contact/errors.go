// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package contact

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFields matches any *ValidationError via errors.Is.
	ErrMissingFields = errors.New("missing required fields")

	// ErrSubmitInProgress is returned when a flow is asked to submit while
	// its previous submission has not resolved. The submit control is
	// disabled in that state, so no outbound call is made.
	ErrSubmitInProgress = errors.New("submission already in progress")
)

// ValidationError lists the required inputs that were empty.
type ValidationError struct {
	Missing []Field
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingFields, joinFields(e.Missing))
}

// Is makes errors.Is(err, ErrMissingFields) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrMissingFields
}

// SubmissionFailure is the single failure class of a delivery attempt:
// network errors, rejected credentials and service-side rejections all
// surface as one. The cause is kept for logs.
type SubmissionFailure struct {
	Err error
}

func (e *SubmissionFailure) Error() string {
	return fmt.Sprintf("submission failed: %v", e.Err)
}

func (e *SubmissionFailure) Unwrap() error {
	return e.Err
}
