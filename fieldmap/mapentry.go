package fieldmap

import (
	"crossmap/typemeta"
)

// MapKeys builds the field map that carries the keys of a map-like pair:
// a synthetic "key" property on each side, typed with the given key types.
//
// Keys and values of map types are not named fields, so these descriptors
// bypass path resolution and the Builder entirely. The result maps A to B
// only, with no inverses, no converter, and unset null policies.
func MapKeys(aKeyType, bKeyType *typemeta.Type) *FieldMap {
	return entryFieldMap("Key", aKeyType, bKeyType)
}

// MapValues builds the field map that carries the values of a map-like
// pair, as MapKeys does for keys.
func MapValues(aValueType, bValueType *typemeta.Type) *FieldMap {
	return entryFieldMap("Value", aValueType, bValueType)
}

func entryFieldMap(facet string, aType, bType *typemeta.Type) *FieldMap {
	a := typemeta.Property{
		Name:     facet,
		Getter:   facet + "()",
		Setter:   "Set" + facet + "(%s)",
		Type:     aType,
		Exported: true,
	}

	// The B side mirrors the A side, substituting only the type.
	return &FieldMap{
		a:         a,
		b:         a.WithType(bType),
		direction: DirectionAToB,
	}
}
