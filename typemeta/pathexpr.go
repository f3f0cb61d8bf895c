package typemeta

import (
	"errors"
	"fmt"
	"strings"
)

// PathSegment represents a parsed segment of a property path expression.
type PathSegment struct {
	// Name is the field name.
	Name string

	// Sub is the bracket payload of the segment (e.g., "SKU" in
	// "Items[SKU]"). It is kept raw; nested brackets stay intact.
	Sub string

	// HasSub indicates the segment carried a bracket payload, which may
	// be empty ("Items[]").
	HasSub bool
}

// PathExpr represents a parsed property path like "Orders[Items[SKU]].Total".
type PathExpr struct {
	Segments []PathSegment
}

// ParsePathExpr parses a property path expression into a PathExpr.
// Supports: "Field", "Nested.Field", "Items[SKU]", "Orders[Items[SKU]].Total".
func ParsePathExpr(expr string) (PathExpr, error) {
	if expr == "" {
		return PathExpr{}, errors.New("empty path expression")
	}

	var segments []PathSegment

	for _, part := range splitTopLevel(expr) {
		if part == "" {
			return PathExpr{}, fmt.Errorf("invalid path %q: empty segment", expr)
		}

		seg := PathSegment{Name: part}

		// Check for bracket notation
		if open := strings.IndexByte(part, '['); open >= 0 {
			if part[len(part)-1] != ']' {
				return PathExpr{}, fmt.Errorf("invalid path %q: unterminated bracket in %q", expr, part)
			}

			seg.Name = part[:open]
			seg.Sub = part[open+1 : len(part)-1]
			seg.HasSub = true
		}

		if !isValidIdent(seg.Name) {
			return PathExpr{}, fmt.Errorf("invalid path %q: invalid identifier %q", expr, seg.Name)
		}

		segments = append(segments, seg)
	}

	return PathExpr{Segments: segments}, nil
}

// splitTopLevel splits a path on dots that are not enclosed in brackets,
// so "Orders[Items.SKU].Total" yields two parts.
func splitTopLevel(expr string) []string {
	var parts []string

	depth := 0
	start := 0

	for i := range len(expr) {
		switch expr[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '.':
			if depth == 0 {
				parts = append(parts, expr[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, expr[start:])
}

// String returns the path as a string.
func (p PathExpr) String() string {
	var sb strings.Builder

	for i, seg := range p.Segments {
		if i > 0 {
			sb.WriteByte('.')
		}

		sb.WriteString(seg.Name)

		if seg.HasSub {
			sb.WriteByte('[')
			sb.WriteString(seg.Sub)
			sb.WriteByte(']')
		}
	}

	return sb.String()
}

// IsSimple returns true if this is a simple single-field path (no nesting,
// no bracket payload).
func (p PathExpr) IsSimple() bool {
	return len(p.Segments) == 1 && !p.Segments[0].HasSub
}

// Root returns the first segment's field name.
func (p PathExpr) Root() string {
	if len(p.Segments) == 0 {
		return ""
	}

	return p.Segments[0].Name
}

// IsEmpty returns true if the path has no segments.
func (p PathExpr) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Equals returns true if two paths are equal.
func (p PathExpr) Equals(other PathExpr) bool {
	if len(p.Segments) != len(other.Segments) {
		return false
	}

	for i, seg := range p.Segments {
		o := other.Segments[i]
		if seg.Name != o.Name || seg.Sub != o.Sub || seg.HasSub != o.HasSub {
			return false
		}
	}

	return true
}

// isValidIdent checks if a string is a valid Go identifier.
func isValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			// First character must be letter or underscore
			if !isLetter(r) && r != '_' {
				return false
			}
		} else {
			// Subsequent characters can be letter, digit, or underscore
			if !isLetter(r) && !isDigit(r) && r != '_' {
				return false
			}
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
