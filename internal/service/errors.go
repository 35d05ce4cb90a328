package service

import "errors"

// Failure kinds returned by TriviaService. Callers map them to status codes;
// the underlying cause stays reachable through errors.Unwrap chains.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("unprocessable")
	ErrBadRequest    = errors.New("bad request")
)

type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string {
	if e.cause == nil {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *kindError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

func notFound(cause error) error {
	return &kindError{kind: ErrNotFound, cause: cause}
}

func unprocessable(cause error) error {
	return &kindError{kind: ErrUnprocessable, cause: cause}
}
