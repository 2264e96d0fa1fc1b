// kind.go - closed classification set for I/O errors.
//
// Intent:
//   - ErrorKind is a closed enumeration; members are declared here and
//     nowhere else.
//   - The set is empty in this version. It is an extension point: members
//     are appended above numKinds, never inserted or reordered.
//
// Conventions (documented, not enforced here):
//   - Switches over ErrorKind keep a default branch, since later versions
//     add members.
//   - Kinds have a single textual form (String). There is no separate
//     human-readable rendering.
package ioerror

import "strconv"

// ErrorKind classifies an I/O failure independently of any message.
type ErrorKind uint8

const (
	// Members go here, in declaration order.

	numKinds ErrorKind = iota
)

// kindNames holds the identifier of every declared member, indexed by value.
var kindNames = [numKinds]string{}

// Kinds returns a defensive copy of the declared kinds in declaration order.
func Kinds() []ErrorKind {
	out := make([]ErrorKind, 0, numKinds)
	for k := ErrorKind(0); k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is a declared member of the set.
func (k ErrorKind) Valid() bool {
	return k < numKinds
}

// String returns the member identifier, or ErrorKind(N) for values outside
// the declared set.
func (k ErrorKind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return "ErrorKind(" + strconv.FormatUint(uint64(k), 10) + ")"
}
