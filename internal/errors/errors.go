package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind names one failure class. The set is closed: every error crossing
// a stage boundary carries exactly one of these.
type Kind string

const (
	KindInvalidInput    Kind = "INVALID_INPUT"
	KindTimeout         Kind = "TIMEOUT"
	KindNetwork         Kind = "NETWORK_ERROR"
	KindInvalidResponse Kind = "INVALID_RESPONSE"
	KindRemoteFailure   Kind = "REMOTE_FAILURE"
	KindPersistence     Kind = "PERSISTENCE_ERROR"
	KindUnknown         Kind = "UNKNOWN_ERROR"
)

type Error struct {
	Kind    Kind
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

// Error constructors
func NewInvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

func NewTimeout(message string, err error) *Error {
	return &Error{Kind: KindTimeout, Message: message, Err: err}
}

func NewNetwork(message string, err error) *Error {
	return &Error{Kind: KindNetwork, Message: message, Err: err}
}

func NewInvalidResponse(message string) *Error {
	return &Error{Kind: KindInvalidResponse, Message: message}
}

func NewRemoteFailure(message string) *Error {
	return &Error{Kind: KindRemoteFailure, Message: message}
}

func NewPersistence(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

func NewUnknown(err error) *Error {
	return &Error{Kind: KindUnknown, Message: "unexpected error", Err: err}
}

// KindOf classifies any error. Errors that did not originate from a
// stage boundary map to KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
