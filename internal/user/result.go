package user

import "errors"

// errNilResult is returned by Unwrap for a nil Result.
var errNilResult = errors.New("user: nil result")

// Result is the outcome of a store operation. Success and Failure are its
// only implementations; the marker method mentions T, so Result[User] cannot
// hold a Success[string] and a type switch over the two cases is exhaustive.
type Result[T any] interface {
	result() T
}

// Success carries the payload of a completed operation.
type Success[T any] struct {
	Data T
}

// Failure carries the reason an operation was refused.
type Failure[T any] struct {
	Err error
}

func (Success[T]) result() (zero T) { return }
func (Failure[T]) result() (zero T) { return }

// Message returns the human-readable failure text.
func (f Failure[T]) Message() string {
	if f.Err == nil {
		return ""
	}
	return f.Err.Error()
}

// Ok wraps v in a Success.
func Ok[T any](v T) Result[T] {
	return Success[T]{Data: v}
}

// Fail wraps err in a Failure.
func Fail[T any](err error) Result[T] {
	return Failure[T]{Err: err}
}

// Unwrap converts r to the usual (value, error) pair.
func Unwrap[T any](r Result[T]) (T, error) {
	var zero T
	switch r := r.(type) {
	case Success[T]:
		return r.Data, nil
	case Failure[T]:
		return zero, r.Err
	}
	return zero, errNilResult
}
