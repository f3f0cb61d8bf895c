package typemap

import (
	"fmt"
	"slices"

	"crossmap/diagnostic"
	"crossmap/fieldmap"
	"crossmap/internal/match"
	"crossmap/typemeta"
)

// Diagnostic codes emitted by the by-default pairing pass.
const (
	codeAmbiguousMatch   = "ambiguous_match"
	codeUnmatched        = "unmatched_property"
	codeIncompatibleType = "incompatible_types"
)

const (
	// suggestionThreshold is the minimum combined score for a candidate to
	// be worth offering as a suggestion.
	suggestionThreshold = 0.5
	// maxSuggestions bounds the candidates attached to one finding.
	maxSuggestions = 3
)

// Builder accumulates the mapping configuration between one pair of root
// types. It implements fieldmap.Scope: every fieldmap.Builder it hands out
// resolves expressions and registers its result here.
//
// A Builder is a single-owner object and performs no synchronization.
type Builder struct {
	aType *typemeta.Type
	bType *typemeta.Type

	fieldMaps []*fieldmap.FieldMap

	// Null-policy seeds applied to every subsequently created field map.
	mapNulls        fieldmap.NullPolicy
	mapNullsReverse fieldmap.NullPolicy

	diags *diagnostic.Diagnostics
}

// NewBuilder starts the configuration of a root type pair.
func NewBuilder(aType, bType *typemeta.Type) *Builder {
	return &Builder{
		aType: aType,
		bType: bType,
		diags: &diagnostic.Diagnostics{},
	}
}

// For starts the configuration of a root type pair lifted from two Go
// types.
func For[A, B any]() *Builder {
	return NewBuilder(typemeta.TypeFor[A](), typemeta.TypeFor[B]())
}

// ResolveProperty implements fieldmap.Scope using the package resolver.
func (b *Builder) ResolveProperty(root *typemeta.Type, expr string) (typemeta.Property, error) {
	return ResolveProperty(root, expr)
}

// RootTypeA implements fieldmap.Scope.
func (b *Builder) RootTypeA() *typemeta.Type { return b.aType }

// RootTypeB implements fieldmap.Scope.
func (b *Builder) RootTypeB() *typemeta.Type { return b.bType }

// RegisterFieldMap implements fieldmap.Scope by appending to the registry.
func (b *Builder) RegisterFieldMap(fm *fieldmap.FieldMap) {
	b.fieldMaps = append(b.fieldMaps, fm)
}

// Field starts a field map between two property path expressions, resolved
// against the builder's root types. The returned fieldmap.Builder carries
// this builder's null-policy seeds; call Add on it to register.
func (b *Builder) Field(aExpr, bExpr string) (*fieldmap.Builder, error) {
	a, err := ResolveProperty(b.aType, aExpr)
	if err != nil {
		return nil, err
	}

	bp, err := ResolveProperty(b.bType, bExpr)
	if err != nil {
		return nil, err
	}

	return fieldmap.NewBuilderFromProperties(b, a, bp, false, b.mapNullsReverse, b.mapNulls), nil
}

// FieldFromProperties starts a field map between two already resolved
// properties.
func (b *Builder) FieldFromProperties(a, bp typemeta.Property) *fieldmap.Builder {
	return fieldmap.NewBuilderFromProperties(b, a, bp, false, b.mapNullsReverse, b.mapNulls)
}

// Exclude resolves the expression on both sides and registers an excluded
// field map for it, keeping the property out of by-default pairing.
func (b *Builder) Exclude(expr string) error {
	a, err := ResolveProperty(b.aType, expr)
	if err != nil {
		return err
	}

	bp, err := ResolveProperty(b.bType, expr)
	if err != nil {
		return err
	}

	_, err = fieldmap.NewBuilderFromProperties(b, a, bp, true, b.mapNullsReverse, b.mapNulls).
		Exclude().
		Add()

	return err
}

// MapNulls sets the forward null-policy seed for subsequently created
// field maps: whether a null source value is written to the destination.
func (b *Builder) MapNulls(mapped bool) *Builder {
	b.mapNulls = fieldmap.NullPolicyOf(mapped)

	return b
}

// MapNullsInReverse sets the reverse null-policy seed for subsequently
// created field maps.
func (b *Builder) MapNullsInReverse(mapped bool) *Builder {
	b.mapNullsReverse = fieldmap.NullPolicyOf(mapped)

	return b
}

// ByDefault pairs the remaining unmapped exported A properties with
// unmapped B properties whose normalized names match exactly, registering
// each pair as a by-default field map. A property with several exact
// matches is reported as ambiguous and left unmapped; a property with none
// is reported with near-miss suggestions.
func (b *Builder) ByDefault() *Builder {
	if b.aType == nil || b.bType == nil {
		return b
	}

	mappedA, mappedB := b.mappedExpressions()

	for _, p := range b.aType.Fields {
		if !p.Exported || mappedA[p.Getter] {
			continue
		}

		var open []typemeta.Property

		for _, q := range b.bType.Fields {
			if q.Exported && !mappedB[q.Getter] {
				open = append(open, q)
			}
		}

		candidates := match.RankProperties(p.Name, p.Type, open)

		var exact match.CandidateList

		for _, c := range candidates {
			if c.NormalizedName == c.NormalizedTarget {
				exact = append(exact, c)
			}
		}

		switch {
		case len(exact) == 1:
			chosen := exact[0]

			fb := fieldmap.NewBuilderFromProperties(b, p, chosen.Property, true, b.mapNullsReverse, b.mapNulls)
			if _, err := fb.Add(); err == nil {
				mappedA[p.Getter] = true
				mappedB[chosen.Property.Getter] = true
			}

			if chosen.TypeCompat.Compatibility == match.Incompatible {
				b.diags.Add(diagnostic.Diagnostic{
					Severity:  diagnostic.SeverityWarning,
					Code:      codeIncompatibleType,
					Message:   fmt.Sprintf("paired with %q but types look incompatible: %s", chosen.Property.Name, chosen.TypeCompat.Reason),
					TypePair:  b.typePair(),
					FieldPath: p.Name,
				})
			}

		case len(exact) > 1:
			b.diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityWarning,
				Code:        codeAmbiguousMatch,
				Message:     fmt.Sprintf("%d properties match %q after name normalization", len(exact), p.Name),
				TypePair:    b.typePair(),
				FieldPath:   p.Name,
				Suggestions: candidateNames(exact),
			})

		default:
			b.diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityInfo,
				Code:        codeUnmatched,
				Message:     fmt.Sprintf("no counterpart found for %q", p.Name),
				TypePair:    b.typePair(),
				FieldPath:   p.Name,
				Suggestions: candidateNames(candidates.AboveThreshold(suggestionThreshold).Top(maxSuggestions)),
			})
		}
	}

	return b
}

// Diagnostics returns the live finding collection. Build snapshots it; use
// this accessor to render findings even when Build fails.
func (b *Builder) Diagnostics() *diagnostic.Diagnostics { return b.diags }

// Build finalizes the configuration into an immutable TypeMap. It fails
// when error-severity findings accumulated. The builder stays usable;
// every call returns an independent snapshot.
func (b *Builder) Build() (*TypeMap, error) {
	if err := b.diags.Error(); err != nil {
		return nil, err
	}

	return &TypeMap{
		aType:           b.aType,
		bType:           b.bType,
		fieldMaps:       slices.Clone(b.fieldMaps),
		mapNulls:        b.mapNulls,
		mapNullsReverse: b.mapNullsReverse,
		diags:           b.diags.Clone(),
	}, nil
}

// mappedExpressions collects the root-relative accessor expressions
// already claimed on each side.
func (b *Builder) mappedExpressions() (mappedA, mappedB map[string]bool) {
	mappedA = make(map[string]bool, len(b.fieldMaps))
	mappedB = make(map[string]bool, len(b.fieldMaps))

	for _, fm := range b.fieldMaps {
		mappedA[fm.A().Getter] = true
		mappedB[fm.B().Getter] = true
	}

	return mappedA, mappedB
}

func (b *Builder) typePair() string {
	return fmt.Sprintf("%s -> %s", b.aType, b.bType)
}

func candidateNames(list match.CandidateList) []string {
	var names []string
	for _, c := range list {
		names = append(names, c.Property.Name)
	}

	return names
}
