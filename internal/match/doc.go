// Package match provides name normalization, Levenshtein distance
// calculation, type compatibility scoring, and candidate ranking for
// pairing properties across the two sides of a type mapping.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - ScoreCompatibility: scores compatibility of two type descriptors
//   - RankProperties: ranks candidate properties for a target property
package match
