// predicates.go - stdlib-aligned queries over arbitrary errors.
//
// Scope:
//   • Answer kind questions for errors that are, or wrap, an ioerror.Error.
//   • Traverse with errors.As so fmt.Errorf("%w") and errors.Join chains work.
//
// Error itself never wraps anything; these helpers exist for callers that do.
package ioerror

import "errors"

// KindOf returns the kind of the first Error found along err's chain.
// The boolean is false when the chain holds no Error.
func KindOf(err error) (ErrorKind, bool) {
	if err == nil {
		return 0, false
	}
	var e Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Kind(), true
}

// HasKind reports whether the first Error along err's chain has the given kind.
func HasKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// HasMessage reports whether the first Error along err's chain carries a
// message.
func HasMessage(err error) bool {
	if err == nil {
		return false
	}
	var e Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.repr {
	case reprSimple:
		return false
	case reprSimpleMessage:
		return true
	default:
		panic(badRepr(e.repr))
	}
}
