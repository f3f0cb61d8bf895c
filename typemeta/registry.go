package typemeta

import (
	"slices"
	"strings"
)

// TypeID uniquely identifies a named type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "crossmap/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Registry holds named type descriptors so they can be referenced by
// string ID, e.g. from a manifest file.
type Registry struct {
	types map[TypeID]*Type
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[TypeID]*Type),
	}
}

// Add registers the type and every named type reachable from it (through
// fields, elements, keys and pointers). Unnamed types are traversed but
// not registered. Returns t for chaining.
func (r *Registry) Add(t *Type) *Type {
	r.add(t, make(map[*Type]bool))

	return t
}

func (r *Registry) add(t *Type, seen map[*Type]bool) {
	if t == nil || seen[t] {
		return
	}

	seen[t] = true

	if t.IsNamed() {
		id := TypeID{PkgPath: t.PkgPath, Name: t.Name}
		if _, ok := r.types[id]; !ok {
			r.types[id] = t
		}
	}

	r.add(t.Elem, seen)
	r.add(t.Key, seen)

	for i := range t.Fields {
		r.add(t.Fields[i].Type, seen)
		r.add(t.Fields[i].Elem, seen)
	}
}

// AddOf lifts the given value's type (see Of) and registers it.
func (r *Registry) AddOf(v any) *Type {
	return r.Add(Of(v))
}

// Get returns the Type for a given TypeID, or nil if not found.
func (r *Registry) Get(id TypeID) *Type {
	return r.types[id]
}

// Lookup resolves a type ID string like:
// - "store.Order" (short)
// - "crossmap/store.Order" (full)
// - "Order" (name only).
func (r *Registry) Lookup(typeIDStr string) *Type {
	if r == nil {
		return nil
	}

	// Name-only: best-effort match by type name.
	if !strings.Contains(typeIDStr, ".") {
		name := typeIDStr
		if name == "" {
			return nil
		}

		for id, t := range r.types {
			if id.Name == name {
				return t
			}
		}

		return nil
	}

	lastDot := strings.LastIndex(typeIDStr, ".")

	pkgStr := typeIDStr[:lastDot]

	name := typeIDStr[lastDot+1:]
	if pkgStr == "" || name == "" {
		return nil
	}

	// 1) exact match (for fully qualified import path)
	if t := r.Get(TypeID{PkgPath: pkgStr, Name: name}); t != nil {
		return t
	}

	// 2) suffix match (for short forms like "store.Order" vs "crossmap/store.Order")
	for id, t := range r.types {
		if id.Name != name {
			continue
		}

		if id.PkgPath == pkgStr || strings.HasSuffix(id.PkgPath, "/"+pkgStr) {
			return t
		}
	}

	return nil
}

// Len returns the number of registered named types.
func (r *Registry) Len() int {
	return len(r.types)
}

// Types returns all registered types sorted by their ID.
func (r *Registry) Types() []*Type {
	ids := make([]TypeID, 0, len(r.types))
	for id := range r.types {
		ids = append(ids, id)
	}

	slices.SortFunc(ids, func(a, b TypeID) int {
		return strings.Compare(a.String(), b.String())
	})

	out := make([]*Type, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.types[id])
	}

	return out
}
