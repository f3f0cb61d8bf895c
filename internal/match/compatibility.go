package match

import (
	"reflect"

	"crossmap/typemeta"
)

// Compatibility represents the level of compatibility between two types.
type Compatibility int

const (
	// Incompatible means the types cannot be mapped onto each other.
	Incompatible Compatibility = iota
	// NeedsTransform means mapping requires a custom converter.
	NeedsTransform
	// Convertible means the types convert with a plain coercion.
	Convertible
	// Assignable means a value of one carries directly into the other.
	Assignable
	// Identical means the types are exactly the same.
	Identical
)

const (
	VerdictIdentical      = "identical"
	VerdictAssignable     = "assignable"
	VerdictConvertible    = "convertible"
	VerdictNeedsTransform = "needs_transform"
	VerdictIncompatible   = "incompatible"
)

// String returns a human-readable name for the compatibility level.
func (c Compatibility) String() string {
	switch c {
	case Identical:
		return VerdictIdentical
	case Assignable:
		return VerdictAssignable
	case Convertible:
		return VerdictConvertible
	case NeedsTransform:
		return VerdictNeedsTransform
	case Incompatible:
		return VerdictIncompatible
	default:
		return "unknown"
	}
}

// Score returns a numeric score for sorting (higher is better).
func (c Compatibility) Score() int {
	return int(c)
}

// CompatibilityResult carries the verdict together with an explanation.
type CompatibilityResult struct {
	Compatibility Compatibility
	Reason        string // Human-readable explanation
	AType         string // Rendering of the A-side type
	BType         string // Rendering of the B-side type
}

// ScoreCompatibility determines how well a value of type a maps onto type b.
func ScoreCompatibility(a, b *typemeta.Type) CompatibilityResult {
	if a == nil || b == nil {
		return verdict(a, b, Incompatible, "type information unavailable")
	}

	if IdenticalTypes(a, b) {
		return verdict(a, b, Identical, "types are identical")
	}

	if b.Kind == typemeta.KindInterface {
		return verdict(a, b, Assignable, "any value satisfies the target interface")
	}

	if isConvertibleBasic(a, b) {
		return verdict(a, b, Convertible, "basic types convert directly")
	}

	if needsTransform(a, b) {
		return verdict(a, b, NeedsTransform, "types require a converter")
	}

	return verdict(a, b, Incompatible, "types are not compatible")
}

func verdict(a, b *typemeta.Type, c Compatibility, reason string) CompatibilityResult {
	return CompatibilityResult{
		Compatibility: c,
		Reason:        reason,
		AType:         a.String(),
		BType:         b.String(),
	}
}

// IdenticalTypes reports whether two descriptors denote the same type.
// Named types compare by package path and name; unnamed ones structurally.
func IdenticalTypes(a, b *typemeta.Type) bool {
	if a == b {
		return true
	}

	if a == nil || b == nil {
		return false
	}

	if a.Kind != b.Kind || a.Name != b.Name || a.PkgPath != b.PkgPath {
		return false
	}

	if a.IsNamed() {
		return true
	}

	switch a.Kind {
	case typemeta.KindPointer, typemeta.KindSlice:
		return IdenticalTypes(a.Elem, b.Elem)
	case typemeta.KindArray:
		return a.Len == b.Len && IdenticalTypes(a.Elem, b.Elem)
	case typemeta.KindMap:
		return IdenticalTypes(a.Key, b.Key) && IdenticalTypes(a.Elem, b.Elem)
	case typemeta.KindInterface:
		return true
	case typemeta.KindStruct:
		if len(a.Fields) != len(b.Fields) {
			return false
		}

		for i := range a.Fields {
			if a.Fields[i].Name != b.Fields[i].Name ||
				!IdenticalTypes(a.Fields[i].Type, b.Fields[i].Type) {
				return false
			}
		}

		return true
	case typemeta.KindOpaque:
		return a.Reflected != nil && a.Reflected == b.Reflected
	default:
		return false
	}
}

// needsTransform checks for shapes a converter can bridge.
func needsTransform(a, b *typemeta.Type) bool {
	// *T vs T in either direction, when the wrapped pair works out.
	if a.Kind == typemeta.KindPointer && b.Kind != typemeta.KindPointer {
		return ScoreCompatibility(a.Elem, b).Compatibility >= NeedsTransform
	}

	if a.Kind != typemeta.KindPointer && b.Kind == typemeta.KindPointer {
		return ScoreCompatibility(a, b.Elem).Compatibility >= NeedsTransform
	}

	// Element-bearing shapes with bridgeable elements.
	if a.Kind.IsContainer() && b.Kind.IsContainer() {
		return ScoreCompatibility(a.ElementType(), b.ElementType()).Compatibility >= NeedsTransform
	}

	// Struct pairs can usually be mapped field-wise.
	return a.Kind == typemeta.KindStruct && b.Kind == typemeta.KindStruct
}

// ScorePointerCompatibility checks compatibility considering pointer
// wrapping and unwrapping on either side.
func ScorePointerCompatibility(a, b *typemeta.Type) CompatibilityResult {
	result := ScoreCompatibility(a, b)
	if result.Compatibility >= Convertible {
		return result
	}

	if a != nil && a.Kind == typemeta.KindPointer {
		if ScoreCompatibility(a.Elem, b).Compatibility >= Convertible {
			return verdict(a, b, NeedsTransform, "requires pointer dereference")
		}
	}

	if b != nil && b.Kind == typemeta.KindPointer {
		if ScoreCompatibility(a, b.Elem).Compatibility >= Convertible {
			return verdict(a, b, NeedsTransform, "requires taking address")
		}
	}

	return result
}

var numericNames = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"uintptr": true, "byte": true, "rune": true,
	"float32": true, "float64": true,
	"complex64": true, "complex128": true,
}

// IsNumericType returns true if the descriptor is a numeric basic type,
// including defined types whose underlying type is numeric.
func IsNumericType(t *typemeta.Type) bool {
	if t == nil || t.Kind != typemeta.KindBasic {
		return false
	}

	if t.Reflected != nil {
		k := t.Reflected.Kind()

		return k >= reflect.Int && k <= reflect.Complex128
	}

	return numericNames[t.Name]
}

// IsStringType returns true if the descriptor is a string type, including
// defined types whose underlying type is string.
func IsStringType(t *typemeta.Type) bool {
	if t == nil || t.Kind != typemeta.KindBasic {
		return false
	}

	if t.Reflected != nil {
		return t.Reflected.Kind() == reflect.String
	}

	return t.Name == "string"
}

// isConvertibleBasic approximates Go convertibility for basic types:
// numerics convert among themselves, and differently named basics of the
// same flavor (type aliases, defined types) convert too.
func isConvertibleBasic(a, b *typemeta.Type) bool {
	if a.Kind != typemeta.KindBasic || b.Kind != typemeta.KindBasic {
		return false
	}

	if IsNumericType(a) && IsNumericType(b) {
		return true
	}

	return IsStringType(a) && IsStringType(b)
}
