// Package ioerror defines a minimal I/O error value for code paths that cannot
// afford the usual error machinery: no heap-allocated messages, no cause
// chains, no OS error interop.
//
// Design tenets:
//   - Value semantics: Error is a small comparable struct, immutable once built.
//   - Static text only: messages are Message values, normally string literals.
//   - Closed classification: every error carries exactly one ErrorKind.
//
// Error satisfies the error interface and fmt.Formatter, so it interoperates
// with errors.Is/As and the fmt verbs like any other error.
package ioerror

import "strconv"

// Message is text attached to an Error. Untyped string constants convert to it
// implicitly; a dynamic string needs an explicit Message(s) conversion, which
// keeps computed messages visible at the call site.
//
// The Error only references the text. Callers must not build messages per
// failure: that reintroduces the allocation this package exists to avoid.
type Message string

// repr discriminates the two shapes an Error can take.
type repr uint8

const (
	reprSimple        repr = iota // kind only
	reprSimpleMessage             // kind + message
)

// Error is an I/O failure: a kind, optionally paired with a static message.
//
// The zero Error is the Simple form of ErrorKind(0). Error values are
// comparable, so errors.Is matches identical values without extra methods.
type Error struct {
	repr repr
	kind ErrorKind
	msg  Message
}

// New creates an Error carrying kind and message. It never allocates.
func New(kind ErrorKind, message Message) Error {
	return Error{repr: reprSimpleMessage, kind: kind, msg: message}
}

// FromKind creates an Error carrying only kind.
func FromKind(kind ErrorKind) Error {
	return Error{repr: reprSimple, kind: kind}
}

// Kind returns the classification of e.
func (e Error) Kind() ErrorKind {
	switch e.repr {
	case reprSimple, reprSimpleMessage:
		return e.kind
	default:
		panic(badRepr(e.repr))
	}
}

// Error returns the stored message, or the kind's textual form when the error
// carries no message.
func (e Error) Error() string {
	switch e.repr {
	case reprSimple:
		return e.kind.String()
	case reprSimpleMessage:
		return string(e.msg)
	default:
		panic(badRepr(e.repr))
	}
}

func badRepr(r repr) string {
	return "ioerror: invalid error representation " + strconv.Itoa(int(r))
}

// Interface conformance guard.
var _ error = Error{}
