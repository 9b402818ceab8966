package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures of a pace computation
type ErrorKind string

const (
	KindInvalidUpload    ErrorKind = "invalid_upload"
	KindParse            ErrorKind = "parse"
	KindEmptyTrack       ErrorKind = "empty_track"
	KindMissingTimestamp ErrorKind = "missing_timestamp"
	KindInvalidInput     ErrorKind = "invalid_input"
	KindInvalidRange     ErrorKind = "invalid_range"
	KindInternal         ErrorKind = "internal"
)

// Error is a classified failure. Err, when set, is the underlying cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so sentinels below work with errors.Is
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Err == nil
}

// NewError creates a classified error wrapping cause
func NewError(kind ErrorKind, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}

// Kind sentinels for errors.Is
var (
	ErrInvalidUpload    = &Error{Kind: KindInvalidUpload}
	ErrParse            = &Error{Kind: KindParse}
	ErrEmptyTrack       = &Error{Kind: KindEmptyTrack}
	ErrMissingTimestamp = &Error{Kind: KindMissingTimestamp}
	ErrInvalidInput     = &Error{Kind: KindInvalidInput}
	ErrInvalidRange     = &Error{Kind: KindInvalidRange}
)

// KindOf returns the kind of the first *Error in err's chain, or KindInternal
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
