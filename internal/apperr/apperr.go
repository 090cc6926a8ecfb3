// Package apperr classifies failures of the fetch-and-transform pipeline.
package apperr

import "errors"

// Kind names a class of pipeline failure.
type Kind string

const (
	// UpstreamUnavailable covers network failures, timeouts and non-200 upstream responses.
	UpstreamUnavailable Kind = "upstream_unavailable"
	// MalformedRecord means an upstream row could not be normalized.
	MalformedRecord Kind = "malformed_record"
)

// Error carries the kind of a pipeline failure alongside its cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return string(e.Kind)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Upstream wraps err as an UpstreamUnavailable failure.
func Upstream(err error) error {
	return wrap(UpstreamUnavailable, err)
}

// Malformed wraps err as a MalformedRecord failure.
func Malformed(err error) error {
	return wrap(MalformedRecord, err)
}

func wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return err
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the kind of err. Unclassified errors count as upstream failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return UpstreamUnavailable
}
