package api

import (
	"errors"
	"fmt"
)

// Kind classifies an API failure for callers that branch on the cause.
type Kind int

const (
	// KindTransport covers network failures and non-2xx statuses without a
	// server-supplied message.
	KindTransport Kind = iota
	// KindFormat covers responses that are not JSON or not the expected shape.
	KindFormat
	// KindApplication covers server-reported failures (success:false).
	KindApplication
	// KindValidation covers client-side rejections made before dispatch.
	KindValidation
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindFormat:
		return "format"
	case KindApplication:
		return "application"
	case KindValidation:
		return "validation"
	}
	return "unknown"
}

// Error is the single error type surfaced by the API client. Message is
// human-readable and safe to show directly; for application errors it is the
// server's message verbatim.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// Message is the surfaced, human-readable description.
	Message string
	// Status is the HTTP status code when one was received, else zero.
	Status int
	// err is the underlying cause, if any.
	err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.err
}

func transportErr(format string, args ...any) *Error {
	return &Error{Kind: KindTransport, Message: fmt.Sprintf(format, args...)}
}

func wrapTransport(err error, msg string) *Error {
	return &Error{Kind: KindTransport, Message: msg, err: err}
}

func formatErr(err error, msg string) *Error {
	return &Error{Kind: KindFormat, Message: msg, err: err}
}

func applicationErr(message string, status int) *Error {
	if message == "" {
		message = "request failed"
	}
	return &Error{Kind: KindApplication, Message: message, Status: status}
}

func validationErr(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// KindOf returns the Kind of err when it is an API error, and ok=false
// otherwise.
func KindOf(err error) (Kind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}
