package fieldmap

import (
	"crossmap/typemeta"
)

// Scope is the containing configuration a field map builder works inside:
// it owns the two root types, resolves property path expressions against
// types, and keeps the registry of finished field maps.
//
// The scope's resolver is trusted to enforce accessibility; resolution
// failures surface unchanged through the builder operation that triggered
// them.
type Scope interface {
	// ResolveProperty resolves a property path expression against a root
	// type. Malformed expressions and unknown properties return an error.
	ResolveProperty(root *typemeta.Type, expr string) (typemeta.Property, error)

	// RootTypeA returns the A-side root type of the mapping under
	// configuration.
	RootTypeA() *typemeta.Type

	// RootTypeB returns the B-side root type.
	RootTypeB() *typemeta.Type

	// RegisterFieldMap appends a finished field map to the scope's
	// registry.
	RegisterFieldMap(*FieldMap)
}

// Builder accumulates the configuration of one field map and registers the
// finished FieldMap with its Scope on Add.
//
// A Builder is a short-lived, single-owner object: configure it in one
// goroutine, call Add once, discard it. Configuration calls after Add
// panic (chainable ones) or return ErrBuilderFinalized (fallible ones).
// A failed operation leaves the builder unchanged and usable, so a caller
// may correct the input and retry.
type Builder struct {
	scope Scope
	fm    FieldMap
	done  bool
}

// NewBuilder starts a field map between two property path expressions,
// resolved against the scope's root types.
func NewBuilder(scope Scope, aExpr, bExpr string) (*Builder, error) {
	return NewBuilderWithRoots(scope, scope.RootTypeA(), scope.RootTypeB(), aExpr, bExpr)
}

// NewBuilderWithRoots starts a field map between two property path
// expressions resolved against explicitly supplied root types, for scopes
// configuring a nested pair.
func NewBuilderWithRoots(scope Scope, aRoot, bRoot *typemeta.Type, aExpr, bExpr string) (*Builder, error) {
	a, err := scope.ResolveProperty(aRoot, aExpr)
	if err != nil {
		return nil, err
	}

	b, err := scope.ResolveProperty(bRoot, bExpr)
	if err != nil {
		return nil, err
	}

	return NewBuilderFromProperties(scope, a, b, false, NullUnset, NullUnset), nil
}

// NewBuilderFromProperties starts a field map from two already resolved
// properties, with provenance and initial null policies decided by the
// caller. The containing configuration uses this form when it synthesizes
// by-default field maps from its global settings.
func NewBuilderFromProperties(scope Scope, a, b typemeta.Property, byDefault bool, sourceNulls, destNulls NullPolicy) *Builder {
	return &Builder{
		scope: scope,
		fm: FieldMap{
			a:         a,
			b:         b,
			byDefault: byDefault,

			sourceMappedOnNull:      sourceNulls,
			destinationMappedOnNull: destNulls,
		},
	}
}

func (b *Builder) mustBeLive(op string) {
	if b.done {
		panic("fieldmap: " + op + " called on a finalized builder")
	}
}

// AToB restricts the mapping to apply only from the A side to the B side.
func (b *Builder) AToB() *Builder {
	b.mustBeLive("AToB")
	b.fm.direction = DirectionAToB

	return b
}

// BToA restricts the mapping to apply only from the B side to the A side.
func (b *Builder) BToA() *Builder {
	b.mustBeLive("BToA")
	b.fm.direction = DirectionBToA

	return b
}

// Direction sets the mapping direction explicitly. Any of the three values
// may be set, including resetting to bidirectional; the last write wins.
func (b *Builder) Direction(d Direction) *Builder {
	b.mustBeLive("Direction")
	b.fm.direction = d

	return b
}

// Converter assigns the identified converter to this mapping in place of
// default coercion. The identifier is not checked against any converter
// registry here.
func (b *Builder) Converter(id string) *Builder {
	b.mustBeLive("Converter")
	b.fm.converterID = id

	return b
}

// Exclude marks the pair as present in the configuration but skipped by
// any mapping executor. Exclusion does not clear other settings.
func (b *Builder) Exclude() *Builder {
	b.mustBeLive("Exclude")
	b.fm.excluded = true

	return b
}

// MapNulls states whether a nil source value is written through to the
// destination when mapping forward. Leaving it uncalled defers to the
// containing configuration's default.
func (b *Builder) MapNulls(mapped bool) *Builder {
	b.mustBeLive("MapNulls")
	b.fm.destinationMappedOnNull = NullPolicyOf(mapped)

	return b
}

// MapNullsInReverse states whether a nil value is written back onto the
// source side when mapping in reverse.
func (b *Builder) MapNullsInReverse(mapped bool) *Builder {
	b.mustBeLive("MapNullsInReverse")
	b.fm.sourceMappedOnNull = NullPolicyOf(mapped)

	return b
}

// AElementType overrides the element type of the A-side property, leaving
// its name and accessors untouched. Subsequent inverse resolution for the
// A side uses the overridden element type.
func (b *Builder) AElementType(elem *typemeta.Type) *Builder {
	b.mustBeLive("AElementType")
	b.fm.a = b.fm.a.WithElementType(elem)

	return b
}

// BElementType overrides the element type of the B-side property.
func (b *Builder) BElementType(elem *typemeta.Type) *Builder {
	b.mustBeLive("BElementType")
	b.fm.b = b.fm.b.WithElementType(elem)

	return b
}

// AElementTypeOf lifts a raw type handle (a reflect.Type or sample value,
// see typemeta.Of) and overrides the A-side element type with it. Meant
// for legacy container properties whose element type cannot be inferred.
func (b *Builder) AElementTypeOf(v any) *Builder {
	b.mustBeLive("AElementTypeOf")

	return b.AElementType(typemeta.Of(v))
}

// BElementTypeOf lifts a raw type handle and overrides the B-side element
// type with it.
func (b *Builder) BElementTypeOf(v any) *Builder {
	b.mustBeLive("BElementTypeOf")

	return b.BElementType(typemeta.Of(v))
}

// AInverse resolves the expression against the A-side property's element
// type when that property is a container, otherwise against its declared
// type, and records the result as the A-side inverse. On resolution
// failure nothing is recorded and the builder stays usable.
func (b *Builder) AInverse(expr string) (*Builder, error) {
	if b.done {
		return b, ErrBuilderFinalized
	}

	p, err := b.scope.ResolveProperty(inverseRoot(b.fm.a), expr)
	if err != nil {
		return b, err
	}

	b.fm.aInverse, b.fm.hasAInverse = p, true

	return b, nil
}

// BInverse resolves the expression against the B-side property's element
// type when that property is a container, otherwise against its declared
// type, and records the result as the B-side inverse.
func (b *Builder) BInverse(expr string) (*Builder, error) {
	if b.done {
		return b, ErrBuilderFinalized
	}

	p, err := b.scope.ResolveProperty(inverseRoot(b.fm.b), expr)
	if err != nil {
		return b, err
	}

	b.fm.bInverse, b.fm.hasBInverse = p, true

	return b, nil
}

// inverseRoot picks the type an inverse expression resolves against: the
// property's element type when it has one (container element or explicit
// override), otherwise its declared type.
func inverseRoot(p typemeta.Property) *typemeta.Type {
	if elem := p.ElementType(); elem != nil {
		return elem
	}

	return p.Type
}

// Add finalizes the field map, registers it with the containing scope, and
// returns that scope so the caller can continue configuring the mapping.
// The builder is consumed: a second Add returns ErrBuilderFinalized and
// registers nothing.
func (b *Builder) Add() (Scope, error) {
	if b.done {
		return b.scope, ErrBuilderFinalized
	}

	b.done = true

	fm := b.fm
	b.scope.RegisterFieldMap(&fm)

	return b.scope, nil
}
