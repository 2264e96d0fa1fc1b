// doc.go - package documentation for xgx-ioerror
//
// Package ioerror provides a tiny, allocation-free error value for I/O-style
// failures. It stands in for richer error types where those are unavailable or
// too costly, keeping only what can be built from a closed kind set and static
// text.
//
// # Shapes
//
// An Error takes exactly one of two shapes:
//
//	+------------------------+------------------+-----------------------------+
//	| Constructor            | Shape            | Error()                     |
//	+------------------------+------------------+-----------------------------+
//	| FromKind(kind)         | Simple           | kind.String()               |
//	| New(kind, "message")   | SimpleMessage    | "message", byte for byte    |
//	+------------------------+------------------+-----------------------------+
//
// Kind() is defined for both shapes. Neither constructor allocates, and
// neither can fail.
//
// # Static Text
//
// New takes a Message, not a string. String literals convert implicitly:
//
//	var errShortRead = ioerror.New(kind, "short read")
//
// A computed string needs Message(s). Avoid it on failure paths; the point of
// the package is that reporting an error costs nothing.
//
// # Kinds
//
// ErrorKind is a closed set that declares no members yet. Switches over a kind
// should keep a default branch, since members are appended in later versions.
// Values outside the declared set render as ErrorKind(N).
//
// # Formatting
//
// Error implements fmt.Formatter:
//   - `%v`, `%s`   → display form, Error()
//   - `%+v`, `%#v` → debug form: Kind(<kind>) or Error{kind: <kind>, message: "..."}
//   - `%q`         → quoted Error()
//
// # Interop
//
//   - Error is comparable; errors.Is matches equal values.
//   - KindOf, HasKind and HasMessage find an Error through wrapping chains
//     built by other code (fmt.Errorf with %w, errors.Join).
//   - Error has no Unwrap: it never carries a cause.
//
// # Results
//
// Result[T] carries either a value or an Error. Get converts it back to the
// (T, error) idiom at boundaries.
//
// # Not Supported
//
//   - Owned or formatted messages.
//   - Conversion from OS error codes, or retrieval of the last OS error.
//   - Wrapping arbitrary causes, or downcasting to them.
package ioerror
