// format.go - fmt.Formatter and fmt.GoStringer for Error.
//
// Behavior:
//
//   %s, %v       → display form (Error()).
//   %q           → quoted display form.
//   %+v, %#v     → debug form, shaped by variant:
//                    Kind(<kind>)
//                    Error{kind: <kind>, message: "<message>"}
//
// The debug form names the variant so the two shapes never collide, even
// when the message equals the kind's textual form.
package ioerror

import (
	"fmt"
	"io"
	"strconv"
)

func (e Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') || s.Flag('#') {
			_, _ = io.WriteString(s, e.GoString())
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = io.WriteString(s, strconv.Quote(e.Error()))
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

// GoString returns the debug form of e.
func (e Error) GoString() string {
	switch e.repr {
	case reprSimple:
		return "Kind(" + e.kind.String() + ")"
	case reprSimpleMessage:
		return "Error{kind: " + e.kind.String() + ", message: " + strconv.Quote(string(e.msg)) + "}"
	default:
		panic(badRepr(e.repr))
	}
}

// Interface conformance guards.
var (
	_ fmt.Formatter  = Error{}
	_ fmt.GoStringer = Error{}
)
