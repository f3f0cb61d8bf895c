// Package typemap builds and holds the mapping configuration between one
// pair of root types.
//
// Key types and functions:
//   - Builder: fluent configuration of a type pair; implements
//     fieldmap.Scope and hands out fieldmap.Builder instances via Field
//   - TypeMap: the immutable result of Build
//   - ResolveProperty: the production property path resolver (dotted
//     segments, pointer dereference, bracketed element access)
//   - For: generic shorthand lifting two Go types into a Builder
//
// A Builder is a single-owner object: configure it in one goroutine and
// discard it after Build. ByDefault pairs the remaining unmapped properties
// by normalized name and reports ambiguous or unmatched ones through the
// builder's diagnostics.
package typemap
