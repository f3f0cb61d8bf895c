package fieldmap

import (
	"crossmap/typemeta"
)

// FieldMap is the finalized description of how one property on the A side
// corresponds to one property on the B side.
//
// A FieldMap is immutable once built; all configuration happens on the
// Builder (or inside the MapKeys/MapValues factories) before it exists.
type FieldMap struct {
	a typemeta.Property
	b typemeta.Property

	aInverse    typemeta.Property
	hasAInverse bool
	bInverse    typemeta.Property
	hasBInverse bool

	direction   Direction
	excluded    bool
	converterID string
	byDefault   bool

	sourceMappedOnNull      NullPolicy
	destinationMappedOnNull NullPolicy
}

// A returns the A-side property.
func (m *FieldMap) A() typemeta.Property {
	return m.a
}

// B returns the B-side property.
func (m *FieldMap) B() typemeta.Property {
	return m.b
}

// AInverse returns the inverse property of the A side, when one was set.
func (m *FieldMap) AInverse() (typemeta.Property, bool) {
	return m.aInverse, m.hasAInverse
}

// BInverse returns the inverse property of the B side, when one was set.
func (m *FieldMap) BInverse() (typemeta.Property, bool) {
	return m.bInverse, m.hasBInverse
}

// Direction returns the direction the mapping applies in.
func (m *FieldMap) Direction() Direction {
	return m.direction
}

// Excluded reports whether the pair is registered but must be skipped by
// any mapping executor.
func (m *FieldMap) Excluded() bool {
	return m.excluded
}

// ConverterID returns the identifier of the converter assigned to this
// mapping, or the empty string when default coercion applies.
func (m *FieldMap) ConverterID() string {
	return m.converterID
}

// ByDefault reports whether the mapping was produced by automatic property
// matching rather than explicit configuration. Explicit field maps take
// precedence over by-default ones in the containing configuration.
func (m *FieldMap) ByDefault() bool {
	return m.byDefault
}

// SourceMappedOnNull returns the policy for writing a nil value back onto
// the source side when mapping in reverse.
func (m *FieldMap) SourceMappedOnNull() NullPolicy {
	return m.sourceMappedOnNull
}

// DestinationMappedOnNull returns the policy for writing a nil source
// value onto the destination side when mapping forward.
func (m *FieldMap) DestinationMappedOnNull() NullPolicy {
	return m.destinationMappedOnNull
}

// Flip returns the same mapping seen from the B side: properties and
// inverses swapped, direction and null policies mirrored.
func (m *FieldMap) Flip() *FieldMap {
	return &FieldMap{
		a:           m.b,
		b:           m.a,
		aInverse:    m.bInverse,
		hasAInverse: m.hasBInverse,
		bInverse:    m.aInverse,
		hasBInverse: m.hasAInverse,
		direction:   m.direction.Flip(),
		excluded:    m.excluded,
		converterID: m.converterID,
		byDefault:   m.byDefault,

		sourceMappedOnNull:      m.destinationMappedOnNull,
		destinationMappedOnNull: m.sourceMappedOnNull,
	}
}

// String returns a readable rendering like
// "FieldMap(Name(string) <-> FullName(string))".
func (m *FieldMap) String() string {
	arrow := "<->"

	switch m.direction {
	case DirectionAToB:
		arrow = "-->"
	case DirectionBToA:
		arrow = "<--"
	}

	s := "FieldMap(" + m.a.String() + " " + arrow + " " + m.b.String()
	if m.excluded {
		s += ", excluded"
	}

	if m.converterID != "" {
		s += ", converter=" + m.converterID
	}

	return s + ")"
}
