package typemeta

import (
	"crossmap/internal/common"
)

// Kind represents the kind of a type.
type Kind int

const (
	KindInvalid   Kind = iota
	KindBasic          // int, string, bool, etc.
	KindStruct         // struct type
	KindPointer        // pointer to another type
	KindSlice          // slice of another type
	KindArray          // array of another type
	KindMap            // map from a key type to an element type
	KindInterface      // interface type (including any)
	KindOpaque         // chan, func, unsafe pointer: carried but not inspected
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindStruct:
		return "struct"
	case KindPointer:
		return "pointer"
	case KindSlice:
		return "slice"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindInterface:
		return "interface"
	case KindOpaque:
		return "opaque"
	default:
		return common.UnknownStr
	}
}

// IsContainer reports whether the kind denotes an element-bearing container
// (slice, array, or map).
func (k Kind) IsContainer() bool {
	return k == KindSlice || k == KindArray || k == KindMap
}
