package typemap

import (
	"fmt"
	"strings"

	"crossmap/fieldmap"
	"crossmap/typemeta"
)

// ResolveProperty resolves a property path expression against a root type.
//
// Dotted segments walk struct fields root-relative, dereferencing pointers
// along the way:
//
//	"Employer.Name" -> the Name field reached through Employer
//
// A bracketed payload addresses the elements of a container property. A
// numeric payload denotes one positional element and stays root-relative;
// any other payload resolves against the container's element type, and the
// result is element-relative because it describes a per-element mapping:
//
//	"Tags[0]"         -> element 0 of Tags, accessed as "Tags[0]"
//	"Addresses[City]" -> the City field of one Addresses element
//
// Only exported fields resolve. Malformed expressions fail with
// *fieldmap.InvalidPathError, everything else with
// *fieldmap.ResolutionError.
func ResolveProperty(root *typemeta.Type, expr string) (typemeta.Property, error) {
	if root == nil {
		return typemeta.Property{}, &fieldmap.ResolutionError{Expr: expr, Reason: "no root type"}
	}

	if expr == "" {
		return typemeta.Property{}, &fieldmap.ResolutionError{Expr: expr, Root: root, Reason: "empty property expression"}
	}

	parts, err := fieldmap.SplitAtRoot(expr)
	if err != nil {
		return typemeta.Property{}, err
	}

	p, err := resolveDotted(root, parts.Root, expr)
	if err != nil {
		return typemeta.Property{}, err
	}

	if !parts.HasSub {
		return p, nil
	}

	return resolveElement(root, p, parts.Sub, expr)
}

// resolveDotted walks a dot-separated chain of struct fields starting at
// root. The returned property carries the leaf's name and type with the
// accessor expressions accumulated over the whole chain.
func resolveDotted(root *typemeta.Type, path, expr string) (typemeta.Property, error) {
	current := root

	var (
		p     typemeta.Property
		chain []string
	)

	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			return typemeta.Property{}, &fieldmap.ResolutionError{
				Expr: expr, Root: root, Reason: "empty path segment",
			}
		}

		for current != nil && current.Kind == typemeta.KindPointer {
			current = current.Elem
		}

		if current == nil || current.Kind != typemeta.KindStruct {
			return typemeta.Property{}, &fieldmap.ResolutionError{
				Expr: expr, Root: root,
				Reason: fmt.Sprintf("cannot traverse %s", current),
			}
		}

		field, ok := current.FieldByName(seg)
		if !ok {
			return typemeta.Property{}, &fieldmap.ResolutionError{
				Expr: expr, Root: root,
				Reason: fmt.Sprintf("no property %q on %s", seg, current),
			}
		}

		if !field.Exported {
			return typemeta.Property{}, &fieldmap.ResolutionError{
				Expr: expr, Root: root,
				Reason: fmt.Sprintf("property %q on %s is not exported", seg, current),
			}
		}

		p = field
		chain = append(chain, field.Getter)
		current = field.Type
	}

	if len(chain) > 1 {
		getter := strings.Join(chain, ".")
		p.Getter = getter
		p.Setter = getter + " = %s"
	}

	return p, nil
}

// resolveElement resolves a bracket payload against a container property.
func resolveElement(root *typemeta.Type, container typemeta.Property, sub, expr string) (typemeta.Property, error) {
	if sub == "" {
		return typemeta.Property{}, &fieldmap.ResolutionError{
			Expr: expr, Root: root, Reason: "empty element expression",
		}
	}

	elem := container.ElementType()
	if elem == nil {
		return typemeta.Property{}, &fieldmap.ResolutionError{
			Expr: expr, Root: root,
			Reason: fmt.Sprintf("property %q is not a container", container.Name),
		}
	}

	if isIndex(sub) {
		indexed := container
		indexed.Name = container.Name + "[" + sub + "]"
		indexed.Getter = container.Getter + "[" + sub + "]"
		indexed.Setter = indexed.Getter + " = %s"
		indexed.Type = elem
		indexed.Elem = nil

		return indexed, nil
	}

	return ResolveProperty(elem, sub)
}

// isIndex reports whether s is a plain decimal element index.
func isIndex(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
