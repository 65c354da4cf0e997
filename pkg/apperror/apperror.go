// Package apperror defines the error taxonomy shared by services and
// handlers. Services return *AppError values; handlers map the Kind to an
// HTTP status and put only the Message into the response body.
package apperror

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindInvalidCredentials  Kind = "invalid_credentials"
	KindUsernameTaken       Kind = "username_taken"
	KindEmailTaken          Kind = "email_taken"
	KindWeakPassword        Kind = "weak_password"
	KindUnauthorized        Kind = "unauthorized"
	KindForbidden           Kind = "forbidden"
	KindInvalidInput        Kind = "invalid_input"
	KindNotFound            Kind = "not_found"
	KindInvalidTarget       Kind = "invalid_target"
	KindUpstreamUnavailable Kind = "upstream_unavailable"
	KindInternal            Kind = "internal"
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, for server-side logs only
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for the error's kind.
func (e *AppError) Status() int {
	switch e.Kind {
	case KindInvalidCredentials, KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUsernameTaken, KindEmailTaken, KindWeakPassword, KindInvalidInput, KindInvalidTarget:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// Internal hides the underlying cause behind a generic message. The cause
// stays attached for logging but never reaches the response body.
func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// Upstream marks a failed outbound call to a third-party API.
func Upstream(message string, err error) *AppError {
	return &AppError{Kind: KindUpstreamUnavailable, Message: message, Err: err}
}

// From extracts an *AppError from err, or wraps it as an internal error.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
