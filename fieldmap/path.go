package fieldmap

import (
	"strings"

	"crossmap/internal/common"
)

// PathParts is the result of splitting a property path expression at its
// root: the text before the first '[', and the bracket payload when one is
// present.
type PathParts struct {
	// Root is the root segment, everything before the first '['.
	Root string

	// Sub is the bracket payload with the enclosing brackets stripped.
	// It is kept raw: nested brackets and dots inside it are left for the
	// resolver of the element type to interpret.
	Sub string

	// HasSub indicates the expression carried a bracket part, which may
	// be empty ("tags[]").
	HasSub bool
}

// String reassembles the parts into the original expression form.
func (p PathParts) String() string {
	if !p.HasSub {
		return p.Root
	}

	return p.Root + "[" + p.Sub + "]"
}

// SplitAtRoot splits a property path expression at the first '[' into the
// root segment and the bracketed sub-path.
//
// "addresses" stays whole; "addresses[primary]" yields root "addresses" and
// sub "primary". Only the outermost brackets are checked: the payload of
// "items[prices[0]]" is "prices[0]", taken verbatim. An opened bracket that
// the expression does not close returns an *InvalidPathError carrying the
// full expression.
func SplitAtRoot(expr string) (PathParts, error) {
	parts := strings.SplitN(expr, "[", 2)
	if common.IsSingle(parts) {
		return PathParts{Root: expr}, nil
	}

	root, rest := common.Unpack2(parts)

	if !strings.HasSuffix(rest, "]") {
		return PathParts{}, &InvalidPathError{Path: expr}
	}

	return PathParts{
		Root:   root,
		Sub:    rest[:len(rest)-1],
		HasSub: true,
	}, nil
}
