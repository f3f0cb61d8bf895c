package typemap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crossmap/fieldmap"
	"crossmap/typemap"
	"crossmap/typemeta"
)

type desk struct {
	Number int
}

type clerk struct {
	Name    string
	Desk    desk
	Drawers []int
}

type crate struct {
	ID     int
	Prices []float64
}

type shelf struct {
	Code   string
	Crates []crate
}

type warehouse struct {
	Rows    []shelf
	Manager *clerk
	Tag     string
	secret  string
}

func TestResolveSimple(t *testing.T) {
	t.Parallel()

	root := typemeta.TypeFor[warehouse]()

	p, err := typemap.ResolveProperty(root, "Tag")
	require.NoError(t, err)

	assert.Equal(t, "Tag", p.Name)
	assert.Equal(t, "Tag", p.Getter)
	assert.Equal(t, "Tag = %s", p.Setter)
	assert.Equal(t, "string", p.Type.Name)
}

func TestResolveDotted(t *testing.T) {
	t.Parallel()

	root := typemeta.TypeFor[warehouse]()

	// Walks through the Manager pointer without an explicit dereference.
	p, err := typemap.ResolveProperty(root, "Manager.Desk.Number")
	require.NoError(t, err)

	assert.Equal(t, "Number", p.Name)
	assert.Equal(t, "Manager.Desk.Number", p.Getter)
	assert.Equal(t, "Manager.Desk.Number = %s", p.Setter)
	assert.Equal(t, "int", p.Type.Name)
}

func TestResolveElement(t *testing.T) {
	t.Parallel()

	root := typemeta.TypeFor[warehouse]()

	p, err := typemap.ResolveProperty(root, "Rows[Code]")
	require.NoError(t, err)

	// The result is relative to one element of Rows.
	assert.Equal(t, "Code", p.Name)
	assert.Equal(t, "Code", p.Getter)
	assert.Equal(t, "string", p.Type.Name)
}

func TestResolvePositionalElement(t *testing.T) {
	t.Parallel()

	root := typemeta.TypeFor[warehouse]()

	p, err := typemap.ResolveProperty(root, "Rows[2]")
	require.NoError(t, err)

	assert.Equal(t, "Rows[2]", p.Name)
	assert.Equal(t, "Rows[2]", p.Getter)
	assert.Equal(t, "Rows[2] = %s", p.Setter)

	rows, ok := root.FieldByName("Rows")
	require.True(t, ok)
	assert.Same(t, rows.Type.Elem, p.Type)
}

func TestResolveDottedThenPositional(t *testing.T) {
	t.Parallel()

	root := typemeta.TypeFor[warehouse]()

	p, err := typemap.ResolveProperty(root, "Manager.Drawers[0]")
	require.NoError(t, err)

	assert.Equal(t, "Drawers[0]", p.Name)
	assert.Equal(t, "Manager.Drawers[0]", p.Getter)
	assert.Equal(t, "Manager.Drawers[0] = %s", p.Setter)
	assert.Equal(t, "int", p.Type.Name)
}

func TestResolveNestedBrackets(t *testing.T) {
	t.Parallel()

	root := typemeta.TypeFor[warehouse]()

	p, err := typemap.ResolveProperty(root, "Rows[Crates[Prices[0]]]")
	require.NoError(t, err)

	// Relative to one crate of one shelf.
	assert.Equal(t, "Prices[0]", p.Name)
	assert.Equal(t, "Prices[0]", p.Getter)
	assert.Equal(t, "float64", p.Type.Name)
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	root := typemeta.TypeFor[warehouse]()

	cases := []struct {
		name   string
		expr   string
		reason string
	}{
		{"empty expression", "", "empty property expression"},
		{"unknown property", "Nope", `no property "Nope"`},
		{"unexported property", "secret", "not exported"},
		{"traverse into basic", "Tag.Length", "cannot traverse"},
		{"empty segment", "Manager..Desk", "empty path segment"},
		{"empty element", "Rows[]", "empty element expression"},
		{"element of scalar", "Tag[0]", "not a container"},
		{"unknown element property", "Rows[Nope]", `no property "Nope"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := typemap.ResolveProperty(root, tc.expr)
			require.Error(t, err)

			var resErr *fieldmap.ResolutionError
			require.ErrorAs(t, err, &resErr)
			assert.Contains(t, resErr.Reason, tc.reason)
		})
	}
}

func TestResolveMalformedPath(t *testing.T) {
	t.Parallel()

	root := typemeta.TypeFor[warehouse]()

	_, err := typemap.ResolveProperty(root, "Rows[Code")

	var pathErr *fieldmap.InvalidPathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "Rows[Code", pathErr.Path)
}

func TestResolveNilRoot(t *testing.T) {
	t.Parallel()

	_, err := typemap.ResolveProperty(nil, "Tag")

	var resErr *fieldmap.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "no root type", resErr.Reason)
}
