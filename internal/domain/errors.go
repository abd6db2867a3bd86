package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidState  = errors.New("invalid state")
	ErrSessionEnded  = errors.New("session ended")
	ErrNotFound      = errors.New("not found")
	ErrNotLoggedIn   = errors.New("not logged in")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenRejected = errors.New("token rejected")
)

// AuthenticationError means the caller must re-authenticate. It is never
// retried.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return "authentication required: " + e.Err.Error()
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// ValidationError is raised on client-side input before any request is
// sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RemoteError is a non-2xx response from the remote service.
type RemoteError struct {
	Op         string
	StatusCode int
	// Detail is the server's human-readable message, possibly empty.
	Detail string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message())
}

// Message is what the user sees: the server detail, or a generic message
// for the operation.
func (e *RemoteError) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "Failed to " + e.Op + ". Please try again."
}

// PartialAggregationError describes one failed sub-fetch of a fan-out. The
// item is degraded and the aggregation continues.
type PartialAggregationError struct {
	Item string
	Err  error
}

func (e *PartialAggregationError) Error() string {
	return fmt.Sprintf("partial aggregation failure for %s: %v", e.Item, e.Err)
}

func (e *PartialAggregationError) Unwrap() error { return e.Err }

// AggregationFatalError means the root fetch of a fan-out failed and the
// view is empty.
type AggregationFatalError struct {
	Op  string
	Err error
}

func (e *AggregationFatalError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *AggregationFatalError) Unwrap() error { return e.Err }

// UserMessage picks the text to show for err.
func UserMessage(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Message()
	}
	var validation *ValidationError
	if errors.As(err, &validation) {
		return validation.Error()
	}
	var auth *AuthenticationError
	if errors.As(err, &auth) {
		return "Your session has expired. Please log in again."
	}
	return "Something went wrong. Please try again."
}
