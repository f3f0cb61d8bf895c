package manifest

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"crossmap/diagnostic"
	"crossmap/fieldmap"
	"crossmap/typemeta"
)

// structValidator runs the declarative tag pass. A shared instance caches
// parsed tags per struct type.
var structValidator = validator.New()

// Validate checks a manifest structurally: schema constraints, path
// expression shape, direction keywords, and duplicate or conflicting
// declarations. It needs no type information, so manifests lint without
// compiled types; typed resolution failures surface from Apply instead.
func Validate(mf *Manifest) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if mf == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "", "")
		return res
	}

	validateSchema(res, mf)

	if mf.Version != "" && mf.Version != "1" {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported manifest version %q", mf.Version), "", "")
	}

	seenPairs := map[string]struct{}{}

	for i := range mf.Maps {
		md := &mf.Maps[i]

		if _, ok := seenPairs[md.Pair()]; ok {
			res.AddError("duplicate_map",
				fmt.Sprintf("type pair %s is declared twice", md.Pair()), md.Pair(), "")
		}

		seenPairs[md.Pair()] = struct{}{}

		validateMapDef(res, md)
	}

	return res
}

// validateSchema folds struct-tag violations into the diagnostics.
func validateSchema(res *diagnostic.Diagnostics, mf *Manifest) {
	err := structValidator.Struct(mf)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res.AddError("schema_violation", err.Error(), "", "")
		return
	}

	for _, fe := range verrs {
		res.AddError("schema_violation",
			fmt.Sprintf("%s fails the %q constraint", fe.Namespace(), fe.Tag()), "", "")
	}
}

func validateMapDef(res *diagnostic.Diagnostics, md *MapDef) {
	pair := md.Pair()

	seenExcludes := map[string]struct{}{}

	for _, ex := range md.Exclude {
		checkPathShape(res, pair, ex)

		if _, ok := seenExcludes[ex]; ok {
			res.AddWarning("duplicate_exclusion",
				fmt.Sprintf("%q is excluded twice", ex), pair, ex)
			continue
		}

		seenExcludes[ex] = struct{}{}
	}

	seenFields := map[string]struct{}{}

	for i := range md.Fields {
		f := &md.Fields[i]

		validateFieldDef(res, pair, md, f)

		key := f.A + "->" + f.BExpr()
		if _, ok := seenFields[key]; ok {
			res.AddError("duplicate_field",
				fmt.Sprintf("field pair %s is declared twice", key), pair, f.A)
			continue
		}

		seenFields[key] = struct{}{}
	}
}

func validateFieldDef(res *diagnostic.Diagnostics, pair string, md *MapDef, f *FieldDef) {
	checkPathShape(res, pair, f.A)

	if f.B != "" {
		checkPathShape(res, pair, f.B)
	}

	if f.Direction != "" {
		if _, err := fieldmap.ParseDirection(f.Direction); err != nil {
			res.AddError("invalid_direction", err.Error(), pair, f.A)
		}
	}

	if f.AInverse != "" {
		checkPathShape(res, pair, f.AInverse)
	}

	if f.BInverse != "" {
		checkPathShape(res, pair, f.BInverse)
	}

	if f.Exclude && f.Converter != "" {
		res.AddWarning("excluded_with_converter",
			"an excluded field never applies its converter", pair, f.A)
	}

	if md.Exclude.Contains(f.A) && !f.Exclude {
		res.AddError("exclude_conflict",
			fmt.Sprintf("%q is both mapped and excluded", f.A), pair, f.A)
	}
}

// checkPathShape verifies that an expression splits cleanly at its root
// and that each dotted segment names a plausible field. Whether the named
// properties exist is Apply's concern.
func checkPathShape(res *diagnostic.Diagnostics, pair, expr string) {
	if expr == "" {
		res.AddError("empty_path", "empty property expression", pair, "")
		return
	}

	if _, err := fieldmap.SplitAtRoot(expr); err != nil {
		res.AddError("invalid_path", err.Error(), pair, expr)
		return
	}

	if _, err := typemeta.ParsePathExpr(expr); err != nil {
		res.AddError("invalid_segment", err.Error(), pair, expr)
	}
}
