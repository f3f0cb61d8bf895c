package typemap

import (
	"fmt"
	"slices"

	"crossmap/diagnostic"
	"crossmap/fieldmap"
	"crossmap/typemeta"
)

// TypeMap is the finished mapping configuration between one pair of root
// types: the registered field maps plus the null-policy defaults they were
// seeded with.
//
// A TypeMap is an immutable snapshot. The Builder that produced it stays
// usable; later registrations do not show up here.
type TypeMap struct {
	aType *typemeta.Type
	bType *typemeta.Type

	fieldMaps []*fieldmap.FieldMap

	mapNulls        fieldmap.NullPolicy
	mapNullsReverse fieldmap.NullPolicy

	diags *diagnostic.Diagnostics
}

// AType returns the A-side root type.
func (t *TypeMap) AType() *typemeta.Type { return t.aType }

// BType returns the B-side root type.
func (t *TypeMap) BType() *typemeta.Type { return t.bType }

// FieldMaps returns the field maps in registration order. The slice is a
// copy; the field maps themselves are immutable.
func (t *TypeMap) FieldMaps() []*fieldmap.FieldMap {
	return slices.Clone(t.fieldMaps)
}

// Mapped returns the first field map whose A side matches the given
// root-relative expression, by accessor chain or by leaf name.
func (t *TypeMap) Mapped(aExpr string) (*fieldmap.FieldMap, bool) {
	for _, fm := range t.fieldMaps {
		a := fm.A()
		if a.Getter == aExpr || a.Name == aExpr {
			return fm, true
		}
	}

	return nil, false
}

// ActiveIn returns the field maps participating in the given mapping
// direction, with excluded ones filtered out.
func (t *TypeMap) ActiveIn(way fieldmap.Direction) []*fieldmap.FieldMap {
	var active []*fieldmap.FieldMap

	for _, fm := range t.fieldMaps {
		if fm.Excluded() {
			continue
		}

		if fm.Direction().AppliesTo(way) {
			active = append(active, fm)
		}
	}

	return active
}

// MapNullsDefault returns the forward null policy new field maps were
// seeded with.
func (t *TypeMap) MapNullsDefault() fieldmap.NullPolicy { return t.mapNulls }

// MapNullsInReverseDefault returns the reverse null policy new field maps
// were seeded with.
func (t *TypeMap) MapNullsInReverseDefault() fieldmap.NullPolicy { return t.mapNullsReverse }

// Diagnostics returns the findings collected while this configuration was
// built.
func (t *TypeMap) Diagnostics() *diagnostic.Diagnostics { return t.diags }

// String renders the type pair and registration count.
func (t *TypeMap) String() string {
	return fmt.Sprintf("TypeMap(%s <-> %s, %d field maps)", t.aType, t.bType, len(t.fieldMaps))
}
