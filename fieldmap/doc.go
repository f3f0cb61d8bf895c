// Package fieldmap holds the configuration model for a single field-to-field
// mapping between two type graphs.
//
// A FieldMap describes how one property on the A side corresponds to one
// property on the B side: which direction the mapping applies in, whether it
// is excluded, which converter handles it, how nil values propagate, and the
// optional inverse properties that maintain back-references between linked
// object graphs.
//
// Field maps are produced either through the chainable Builder (registered
// into a containing Scope by Add), or directly through the MapKeys/MapValues
// factories for the entry facets of map-like types.
package fieldmap
