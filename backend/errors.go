package backend

import (
	"errors"
	"fmt"
)

// Kind classifies a backend client failure.
type Kind string

const (
	// ValidationError is raised locally before any request is sent.
	ValidationError Kind = "validation_error"
	// BackendUnavailable covers transport errors and non-success statuses.
	BackendUnavailable Kind = "backend_unavailable"
	// MalformedBackendResponse is a success status with an unusable body.
	MalformedBackendResponse Kind = "malformed_backend_response"
)

// ErrMissingIdentifier is the validation failure for a delete without an id.
var ErrMissingIdentifier = &Failure{Kind: ValidationError, Message: "missing entry identifier"}

// Failure is the error type returned by Client operations.
type Failure struct {
	Kind Kind
	// Message is the human readable detail the backend supplied, if any.
	Message string
	// Status is the backend HTTP status, 0 when no response was received.
	Status int
	Err    error
}

func (f *Failure) Error() string {
	msg := string(f.Kind)
	if f.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, f.Status)
	}
	if f.Message != "" {
		msg += ": " + f.Message
	}
	if f.Err != nil {
		msg += ": " + f.Err.Error()
	}
	return msg
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// IsKind reports whether err is a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == kind
}

// Detail returns the backend supplied message carried by err, if any.
func Detail(err error) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Message
	}
	return ""
}

// IsNotFound reports whether the backend answered 404.
func IsNotFound(err error) bool {
	var f *Failure
	return errors.As(err, &f) && f.Status == 404
}

func unavailable(status int, message string, err error) *Failure {
	return &Failure{Kind: BackendUnavailable, Status: status, Message: message, Err: err}
}

func malformed(status int, err error) *Failure {
	return &Failure{Kind: MalformedBackendResponse, Status: status, Err: err}
}
