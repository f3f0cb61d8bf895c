// Package typemeta provides the runtime type representation consumed by the
// field-mapping model.
//
// It builds a canonical in-memory description of Go types and their
// properties, either lifted from reflect.Type values or assembled by hand
// (tests and adapters for foreign type systems do the latter).
//
// Key types:
//   - Type: describes kind (basic/struct/pointer/slice/array/map/...),
//     element and key types, and struct properties
//   - Property: a named, typed, accessible field with accessor expressions
//     and an optional element-type override facet
//   - Registry: name-based lookup of registered types for declarative
//     configuration
package typemeta
