// Package result carries the outcome of a data-access call as a value:
// exactly one of Data or Err is meaningful.
package result

import "github.com/pkg/errors"

type Result[T any] struct {
	Data T
	Err  error
}

func Ok[T any](v T) Result[T] { return Result[T]{Data: v} }

func Fail[T any](err error) Result[T] { return Result[T]{Err: err} }

// Of builds a Result from a conventional (value, error) pair, dropping the
// value when err is set.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

func (r Result[T]) Failed() bool { return r.Err != nil }

func (r Result[T]) Unpack() (T, error) { return r.Data, r.Err }

// Annotate prefixes a failure with msg, leaving successful results untouched.
func (r Result[T]) Annotate(format string, args ...any) Result[T] {
	if r.Err == nil {
		return r
	}
	return Fail[T](errors.Wrapf(r.Err, format, args...))
}
