package manifest

import (
	"errors"
	"fmt"

	"crossmap/fieldmap"
	"crossmap/typemap"
	"crossmap/typemeta"
)

// Apply materializes a manifest against a type registry, producing one
// TypeMap per declared pair. Declarations apply in order: null-policy
// seeds, exclusions, explicit fields, then by-default pairing, so the
// result matches what the same calls on a typemap.Builder would produce.
//
// Apply stops at the first hard failure (unknown type, unresolvable
// expression) with an error naming the offending map; soft findings from
// by-default pairing travel on each TypeMap's diagnostics.
func Apply(mf *Manifest, reg *typemeta.Registry) ([]*typemap.TypeMap, error) {
	if mf == nil {
		return nil, errors.New("manifest is nil")
	}

	maps := make([]*typemap.TypeMap, 0, len(mf.Maps))

	for i := range mf.Maps {
		md := &mf.Maps[i]

		tm, err := applyMapDef(md, reg)
		if err != nil {
			return nil, fmt.Errorf("map %s: %w", md.Pair(), err)
		}

		maps = append(maps, tm)
	}

	return maps, nil
}

func applyMapDef(md *MapDef, reg *typemeta.Registry) (*typemap.TypeMap, error) {
	aType := reg.Lookup(md.A)
	if aType == nil {
		return nil, fmt.Errorf("unknown type %q", md.A)
	}

	bType := reg.Lookup(md.B)
	if bType == nil {
		return nil, fmt.Errorf("unknown type %q", md.B)
	}

	b := typemap.NewBuilder(aType, bType)

	if md.MapNulls != nil {
		b.MapNulls(*md.MapNulls)
	}

	if md.MapNullsInReverse != nil {
		b.MapNullsInReverse(*md.MapNullsInReverse)
	}

	for _, ex := range md.Exclude {
		if err := b.Exclude(ex); err != nil {
			return nil, fmt.Errorf("exclude %q: %w", ex, err)
		}
	}

	for i := range md.Fields {
		f := &md.Fields[i]

		if err := applyFieldDef(b, f, reg); err != nil {
			return nil, fmt.Errorf("field %q: %w", f.A, err)
		}
	}

	if md.ByDefault {
		b.ByDefault()
	}

	return b.Build()
}

func applyFieldDef(b *typemap.Builder, f *FieldDef, reg *typemeta.Registry) error {
	fb, err := b.Field(f.A, f.BExpr())
	if err != nil {
		return err
	}

	if f.Direction != "" {
		d, err := fieldmap.ParseDirection(f.Direction)
		if err != nil {
			return err
		}

		fb.Direction(d)
	}

	if f.Converter != "" {
		fb.Converter(f.Converter)
	}

	// Element overrides come before inverse resolution: the inverse of a
	// container property resolves against its element type.
	if f.AElementType != "" {
		elem := reg.Lookup(f.AElementType)
		if elem == nil {
			return fmt.Errorf("unknown element type %q", f.AElementType)
		}

		fb.AElementType(elem)
	}

	if f.BElementType != "" {
		elem := reg.Lookup(f.BElementType)
		if elem == nil {
			return fmt.Errorf("unknown element type %q", f.BElementType)
		}

		fb.BElementType(elem)
	}

	if f.AInverse != "" {
		if _, err := fb.AInverse(f.AInverse); err != nil {
			return err
		}
	}

	if f.BInverse != "" {
		if _, err := fb.BInverse(f.BInverse); err != nil {
			return err
		}
	}

	if f.MapNulls != nil {
		fb.MapNulls(*f.MapNulls)
	}

	if f.MapNullsInReverse != nil {
		fb.MapNullsInReverse(*f.MapNullsInReverse)
	}

	if f.Exclude {
		fb.Exclude()
	}

	_, err = fb.Add()

	return err
}
