package typemeta

// Property is one addressable field of a type: its name, how to read and
// write it, and its type. Properties are value types; copies are cheap and
// the With* helpers return modified copies rather than mutating in place.
type Property struct {
	Name     string // Field name as it appears in a path expression
	Getter   string // Read accessor template, e.g. "Name" or "Key()"
	Setter   string // Write accessor template with a %s value slot
	Type     *Type  // Declared type of the property
	Elem     *Type  // Element type override; nil means derive from Type
	Exported bool   // Whether the field is exported
	Index    int    // Declaration order within the owning struct
}

// IsValid reports whether the property carries at least a name and a type.
func (p Property) IsValid() bool {
	return p.Name != "" && p.Type != nil
}

// IsContainer reports whether the property's type holds elements
// (slice, array, or map).
func (p Property) IsContainer() bool {
	return p.Type.IsContainer()
}

// ElementType returns the property's element type: the explicit override
// when one was set, otherwise the element type of the declared type. Nil
// for non-container properties without an override.
func (p Property) ElementType() *Type {
	if p.Elem != nil {
		return p.Elem
	}

	if p.Type.IsContainer() {
		return p.Type.ElementType()
	}

	return nil
}

// WithElementType returns a copy of the property whose element type is
// overridden. Name, accessors and the declared type are left untouched.
func (p Property) WithElementType(elem *Type) Property {
	p.Elem = elem

	return p
}

// WithType returns a copy of the property with a different declared type.
func (p Property) WithType(t *Type) Property {
	p.Type = t

	return p
}

func (p Property) String() string {
	if p.Name == "" {
		return "<none>"
	}

	return p.Name + "(" + p.Type.String() + ")"
}
