// result.go - success-or-Error outcome for APIs built around ioerror.
//
// Result mirrors the (T, error) idiom but keeps the failure typed as Error,
// so callers can inspect the kind without a type assertion. Get bridges back
// to the plain idiom when handing the outcome to ordinary Go code.
package ioerror

// Result holds either a value of type T or an Error, never both.
type Result[T any] struct {
	val    T
	err    Error
	failed bool
}

// Ok returns a successful Result carrying v.
func Ok[T any](v T) Result[T] {
	return Result[T]{val: v}
}

// Fail returns a failed Result carrying err.
func Fail[T any](err Error) Result[T] {
	return Result[T]{err: err, failed: true}
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool { return !r.failed }

// Value returns the carried value and true, or the zero T and false.
func (r Result[T]) Value() (T, bool) {
	if r.failed {
		var zero T
		return zero, false
	}
	return r.val, true
}

// Err returns the carried Error and true, or the zero Error and false.
func (r Result[T]) Err() (Error, bool) {
	if !r.failed {
		return Error{}, false
	}
	return r.err, true
}

// Get returns the outcome in (T, error) form. The error is nil on success.
func (r Result[T]) Get() (T, error) {
	if r.failed {
		var zero T
		return zero, r.err
	}
	return r.val, nil
}

// Must returns the carried value, panicking with the carried Error on failure.
func (r Result[T]) Must() T {
	if r.failed {
		panic(r.err)
	}
	return r.val
}
