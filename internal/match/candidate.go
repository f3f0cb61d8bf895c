package match

import (
	"sort"

	"crossmap/typemeta"
)

// Candidate represents one property considered as the counterpart of a
// target property on the other side of a mapping.
type Candidate struct {
	Property   typemeta.Property // the candidate on the searched side
	TargetName string            // the property being matched

	// Scoring components
	NameScore  float64             // Normalized Levenshtein similarity (0-1)
	TypeCompat CompatibilityResult // Type compatibility result

	// Combined score for ranking (higher is better)
	CombinedScore float64

	// Metadata for explanation in diagnostics
	NormalizedName   string
	NormalizedTarget string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankProperties scores every exported property against the target name
// and type, returning candidates sorted by combined score (descending).
func RankProperties(targetName string, targetType *typemeta.Type, props []typemeta.Property) CandidateList {
	var candidates CandidateList

	targetNorm := NormalizeIdent(targetName)
	targetNormStripped := NormalizeIdentWithSuffixStrip(targetName)

	for i := range props {
		p := props[i]

		if !p.Exported {
			continue
		}

		norm := NormalizeIdent(p.Name)
		normStripped := NormalizeIdentWithSuffixStrip(p.Name)

		// Name similarity: the better of plain and suffix-stripped forms
		nameScore := LevenshteinNormalized(norm, targetNorm)
		if stripped := LevenshteinNormalized(normStripped, targetNormStripped); stripped > nameScore {
			nameScore = stripped
		}

		typeCompat := ScorePointerCompatibility(p.Type, targetType)

		candidates = append(candidates, Candidate{
			Property:         p,
			TargetName:       targetName,
			NameScore:        nameScore,
			TypeCompat:       typeCompat,
			CombinedScore:    combinedScore(nameScore, typeCompat.Compatibility),
			NormalizedName:   norm,
			NormalizedTarget: targetNorm,
		})
	}

	sort.Sort(candidates)

	return candidates
}

// combinedScore folds name similarity and type compatibility into one
// ranking value. Weights:
//   - Name similarity: 60% (0.0-0.6)
//   - Type compatibility: 40% (0.0-0.4)
func combinedScore(nameScore float64, compat Compatibility) float64 {
	const (
		nameWeight = 0.6
		typeWeight = 0.4
	)

	var typeScore float64

	switch compat {
	case Identical:
		typeScore = 1.0
	case Assignable:
		typeScore = 0.9
	case Convertible:
		typeScore = 0.7
	case NeedsTransform:
		typeScore = 0.4
	case Incompatible:
		typeScore = 0.0
	}

	return nameScore*nameWeight + typeScore*typeWeight
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by combined score descending, then by property name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].CombinedScore != c[j].CombinedScore {
		return c[i].CombinedScore > c[j].CombinedScore
	}

	return c[i].Property.Name < c[j].Property.Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].CombinedScore-c[1].CombinedScore < threshold
}

// AboveThreshold returns candidates with combined score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.CombinedScore >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// HighConfidence returns the best candidate when it is significantly better
// than the alternatives, or nil if no clear winner exists.
func (c CandidateList) HighConfidence(minScore, minGap float64) *Candidate {
	best := c.Best()
	if best == nil || best.CombinedScore < minScore {
		return nil
	}

	if best.TypeCompat.Compatibility < NeedsTransform {
		return nil
	}

	if len(c) > 1 && c[0].CombinedScore-c[1].CombinedScore < minGap {
		return nil
	}

	return best
}

// Confidence thresholds for auto-accepting matches.
const (
	// DefaultMinScore is the minimum combined score for auto-acceptance.
	DefaultMinScore = 0.7
	// DefaultMinGap is the minimum score gap between top candidates.
	DefaultMinGap = 0.15
	// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
	DefaultAmbiguityThreshold = 0.1
)
