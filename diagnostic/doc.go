// Package diagnostic carries structured findings produced while building
// and validating mapping configurations.
//
// Key types:
//   - Diagnostic: one finding with severity, code, and mapping location
//   - Diagnostics: severity-bucketed collection with merging and error folding
//
// Findings name the type pair and field path they concern where known, and
// carry candidate suggestions for "did you mean" rendering.
package diagnostic
