package manifest

// Manifest is the root of a YAML mapping manifest file.
type Manifest struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Maps is the list of type pair mappings.
	Maps []MapDef `yaml:"maps" validate:"required,min=1,dive"`
}

// MapDef declares the mapping configuration for one root type pair.
type MapDef struct {
	// A is the A-side type identifier (e.g. "store.Person" or a full
	// import path).
	A string `yaml:"a" validate:"required"`

	// B is the B-side type identifier.
	B string `yaml:"b" validate:"required"`

	// ByDefault pairs the remaining unmapped properties by normalized
	// name after the explicit declarations are applied.
	ByDefault bool `yaml:"by_default,omitempty"`

	// MapNulls seeds the forward null policy of every declared field:
	// whether a null source value is written to the destination. Unset
	// defers to the engine default.
	MapNulls *bool `yaml:"map_nulls,omitempty"`

	// MapNullsInReverse seeds the reverse null policy.
	MapNullsInReverse *bool `yaml:"map_nulls_in_reverse,omitempty"`

	// Exclude lists property expressions kept out of the mapping. Each
	// entry must resolve on both sides. Accepts a single string or a
	// sequence.
	Exclude StringOrArray `yaml:"exclude,omitempty"`

	// Fields declares explicit field mappings, applied in order.
	Fields []FieldDef `yaml:"fields,omitempty" validate:"dive"`
}

// Pair renders the type pair for diagnostics.
func (m MapDef) Pair() string {
	return m.A + "->" + m.B
}

// FieldDef declares one field mapping between the pair's root types.
type FieldDef struct {
	// A is the A-side property expression: "Name", "Employer.Name",
	// "Tags[Label]", "Rows[2]".
	A string `yaml:"a" validate:"required"`

	// B is the B-side property expression. Empty means the same
	// expression as A.
	B string `yaml:"b,omitempty"`

	// Direction restricts the mapping: "both" (default), "a-to-b", or
	// "b-to-a".
	Direction string `yaml:"direction,omitempty"`

	// Converter names the conversion applied when this field maps. The
	// identifier is opaque to the configuration model.
	Converter string `yaml:"converter,omitempty"`

	// AInverse names the property on the A-side value's type (element
	// type for containers) that points back at the A root, maintaining
	// the reverse reference of a bidirectional relationship.
	AInverse string `yaml:"a_inverse,omitempty"`

	// BInverse names the back-reference property on the B-side value's
	// type.
	BInverse string `yaml:"b_inverse,omitempty"`

	// AElementType overrides the element type of a container-typed A
	// property, by type identifier.
	AElementType string `yaml:"a_element_type,omitempty"`

	// BElementType overrides the element type of a container-typed B
	// property.
	BElementType string `yaml:"b_element_type,omitempty"`

	// MapNulls overrides the forward null policy for this field.
	MapNulls *bool `yaml:"map_nulls,omitempty"`

	// MapNullsInReverse overrides the reverse null policy for this field.
	MapNullsInReverse *bool `yaml:"map_nulls_in_reverse,omitempty"`

	// Exclude marks the pair as deliberately unmapped.
	Exclude bool `yaml:"exclude,omitempty"`
}

// BExpr returns the B-side expression, falling back to A when it was
// omitted.
func (f FieldDef) BExpr() string {
	if f.B != "" {
		return f.B
	}

	return f.A
}
