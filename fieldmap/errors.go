package fieldmap

import (
	"errors"
	"fmt"

	"crossmap/typemeta"
)

// ErrBuilderFinalized is returned when a builder operation is attempted
// after Add has consumed the builder.
var ErrBuilderFinalized = errors.New("field map builder already finalized")

// InvalidPathError reports a property path expression that violates the
// bracket grammar: an opened '[' whose payload does not run to a closing
// ']' at the end of the expression.
type InvalidPathError struct {
	// Path is the offending expression, verbatim.
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid property path %q: unterminated bracket", e.Path)
}

// ResolutionError reports a property path expression that does not denote
// an accessible property on the type it was resolved against.
type ResolutionError struct {
	Expr   string
	Root   *typemeta.Type
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %q on %s: %s", e.Expr, e.Root, e.Reason)
}
