package client

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission has not finished. The pipeline is a single-slot state machine;
// rapid double-submits are rejected, not queued.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// ValidationError reports required form fields that are missing. It is
// raised before any network call; the form keeps the user's values.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, ", ")
}

// FileReadError reports a failure reading the file selected for upload.
// All transient file state is discarded when it is raised.
type FileReadError struct {
	Err error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read file: %v", e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// TransportError reports a network failure, a non-success HTTP status, or a
// response whose shape does not match the remote contract. The local mirror
// is left untouched.
type TransportError struct {
	StatusCode int    // 0 when the request never completed
	Message    string // server-provided message when one could be parsed
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("transport error: %v", e.Err)
	case e.Message != "":
		return fmt.Sprintf("transport error (status %d): %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("transport error (status %d)", e.StatusCode)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteLogicError reports that the remote store explicitly refused the
// submission (success:false with a reason).
type RemoteLogicError struct {
	Message string
}

func (e *RemoteLogicError) Error() string {
	if e.Message == "" {
		return "remote store rejected the submission"
	}
	return "remote store rejected the submission: " + e.Message
}
