package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrDatabase        = errors.New("database error")
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrWriteFailure marks a failed downstream emission after a committed save.
	ErrWriteFailure = errors.New("write failure")
	ErrDecode       = errors.New("decode")
)

// Error pairs one of the sentinel kinds above with its cause.
// errors.Is matches both the kind and anything in the cause chain.
type Error struct {
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func dbError(err error) error { return &Error{Kind: ErrDatabase, Err: err} }

func invalidArgument(format string, args ...any) error {
	return &Error{Kind: ErrInvalidArgument, Err: fmt.Errorf(format, args...)}
}

func humanizeValidationErrors(errs validator.ValidationErrors) string {
	var b strings.Builder
	for _, fe := range errs {
		if fe.Param() != "" {
			fmt.Fprintf(&b, "%s: %s=%s; ", fe.Namespace(), fe.Tag(), fe.Param())
		} else {
			fmt.Fprintf(&b, "%s: %s; ", fe.Namespace(), fe.Tag())
		}
	}
	s := b.String()
	if len(s) > 2 {
		s = s[:len(s)-2]
	}
	return s
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return invalidArgument("validation failed: %s", humanizeValidationErrors(verrs))
	}
	return invalidArgument("validation error: %w", err)
}
