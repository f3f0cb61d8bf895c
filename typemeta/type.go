package typemeta

import (
	"reflect"
	"strconv"

	"crossmap/internal/common"
)

// Type describes a Go type in the mapping model.
//
// A Type is either lifted from a reflect.Type via Of/TypeFor, or assembled
// by hand when no runtime type exists (tests, foreign type systems). All
// consumers treat a Type as immutable once published.
type Type struct {
	Name      string       // Type name; empty for unnamed types like *T or []T
	PkgPath   string       // Import path of the defining package; empty for builtins
	Kind      Kind         // Kind of type
	Elem      *Type        // For pointers, slices, arrays and maps, the element type
	Key       *Type        // For maps, the key type
	Len       int          // For arrays, the declared length
	Fields    []Property   // For structs, the list of properties
	Reflected reflect.Type // The original reflect.Type, when lifted (may be nil)
}

// IsNamed returns true if this type has a name.
func (t *Type) IsNamed() bool {
	return t.Name != ""
}

// IsContainer reports whether the type is an element-bearing container
// (slice, array, or map).
func (t *Type) IsContainer() bool {
	return t != nil && t.Kind.IsContainer()
}

// ElementType returns the element type for containers and pointers, or nil.
// For maps this is the value type.
func (t *Type) ElementType() *Type {
	if t == nil {
		return nil
	}

	return t.Elem
}

// FieldByName returns the property with the given name, if the type is a
// struct declaring it.
func (t *Type) FieldByName(name string) (Property, bool) {
	if t == nil {
		return Property{}, false
	}

	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return t.Fields[i], true
		}
	}

	return Property{}, false
}

// String returns a readable rendering of the type, e.g. "store.Order",
// "[]store.Tag", "map[string]*store.Address".
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}

	if t.Name != "" {
		if t.PkgPath != "" {
			return common.PkgAlias(t.PkgPath) + "." + t.Name
		}

		return t.Name
	}

	switch t.Kind {
	case KindPointer:
		return "*" + t.Elem.String()
	case KindSlice:
		return "[]" + t.Elem.String()
	case KindArray:
		return "[" + strconv.Itoa(t.Len) + "]" + t.Elem.String()
	case KindMap:
		return "map[" + t.Key.String() + "]" + t.Elem.String()
	case KindInterface:
		return "any"
	default:
		return t.Kind.String()
	}
}

// Of lifts a raw type handle into a Type descriptor.
//
// The handle may be a reflect.Type or any sample value, in which case the
// value's dynamic type is used. Of(nil) yields the descriptor for the empty
// interface. Recursive types are handled; the lift terminates on cycles.
func Of(v any) *Type {
	var rt reflect.Type

	switch x := v.(type) {
	case nil:
		rt = reflect.TypeFor[any]()
	case reflect.Type:
		rt = x
	case *Type:
		return x
	default:
		rt = reflect.TypeOf(v)
	}

	l := &lifter{cache: make(map[reflect.Type]*Type)}

	return l.lift(rt)
}

// TypeFor returns the Type descriptor for the compile-time type T.
func TypeFor[T any]() *Type {
	return Of(reflect.TypeFor[T]())
}

// lifter converts reflect.Type graphs into Type graphs.
type lifter struct {
	cache map[reflect.Type]*Type // Cache to handle recursive types
}

func (l *lifter) lift(rt reflect.Type) *Type {
	if rt == nil {
		return nil
	}

	if t, ok := l.cache[rt]; ok {
		return t
	}

	t := &Type{
		Name:      rt.Name(),
		PkgPath:   rt.PkgPath(),
		Reflected: rt,
	}

	// Publish before descending so self-referential types resolve to the
	// node under construction.
	l.cache[rt] = t

	switch rt.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		t.Kind = KindBasic

	case reflect.Struct:
		t.Kind = KindStruct
		t.Fields = make([]Property, 0, rt.NumField())

		for i := range rt.NumField() {
			f := rt.Field(i)

			t.Fields = append(t.Fields, Property{
				Name:     f.Name,
				Getter:   f.Name,
				Setter:   f.Name + " = %s",
				Type:     l.lift(f.Type),
				Exported: f.IsExported(),
				Index:    i,
			})
		}

	case reflect.Pointer:
		t.Kind = KindPointer
		t.Elem = l.lift(rt.Elem())

	case reflect.Slice:
		t.Kind = KindSlice
		t.Elem = l.lift(rt.Elem())

	case reflect.Array:
		t.Kind = KindArray
		t.Len = rt.Len()
		t.Elem = l.lift(rt.Elem())

	case reflect.Map:
		t.Kind = KindMap
		t.Key = l.lift(rt.Key())
		t.Elem = l.lift(rt.Elem())

	case reflect.Interface:
		t.Kind = KindInterface

	default:
		t.Kind = KindOpaque
	}

	return t
}
