package typemeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePathExpr(t *testing.T) {
	tests := []struct {
		expr     string
		want     string // round-tripped rendering; empty means an error is expected
		segments int
	}{
		{expr: "Name", want: "Name", segments: 1},
		{expr: "Customer.Name", want: "Customer.Name", segments: 2},
		{expr: "Items[SKU]", want: "Items[SKU]", segments: 1},
		{expr: "Items[]", want: "Items[]", segments: 1},
		{expr: "Orders[Items[SKU]].Total", want: "Orders[Items[SKU]].Total", segments: 2},
		{expr: "Orders[Items.SKU]", want: "Orders[Items.SKU]", segments: 1},
		{expr: "_hidden.Value", want: "_hidden.Value", segments: 2},

		{expr: ""},
		{expr: "a..b"},
		{expr: ".Name"},
		{expr: "Name."},
		{expr: "Items[SKU"},
		{expr: "9lives"},
		{expr: "[SKU]"},
		{expr: "Ite ms"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			p, err := ParsePathExpr(tt.expr)
			if tt.want == "" {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Len(t, p.Segments, tt.segments)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestParsePathExprSegments(t *testing.T) {
	p, err := ParsePathExpr("Orders[Items[SKU]].Total")
	require.NoError(t, err)
	require.Len(t, p.Segments, 2)

	assert.Equal(t, "Orders", p.Segments[0].Name)
	assert.True(t, p.Segments[0].HasSub)
	// Nested brackets stay intact in the raw payload.
	assert.Equal(t, "Items[SKU]", p.Segments[0].Sub)

	assert.Equal(t, "Total", p.Segments[1].Name)
	assert.False(t, p.Segments[1].HasSub)
}

func TestParsePathExprEmptyPayload(t *testing.T) {
	p, err := ParsePathExpr("Items[]")
	require.NoError(t, err)
	require.Len(t, p.Segments, 1)

	assert.True(t, p.Segments[0].HasSub)
	assert.Equal(t, "", p.Segments[0].Sub)
}

func TestPathExprHelpers(t *testing.T) {
	p, err := ParsePathExpr("Customer.Addresses[Primary].City")
	require.NoError(t, err)

	assert.Equal(t, "Customer", p.Root())
	assert.False(t, p.IsSimple())
	assert.False(t, p.IsEmpty())

	simple, err := ParsePathExpr("Name")
	require.NoError(t, err)
	assert.True(t, simple.IsSimple())

	bracketed, err := ParsePathExpr("Items[]")
	require.NoError(t, err)
	assert.False(t, bracketed.IsSimple())

	other, err := ParsePathExpr("Customer.Addresses[Primary].City")
	require.NoError(t, err)
	assert.True(t, p.Equals(other))
	assert.False(t, p.Equals(simple))
	assert.False(t, simple.Equals(bracketed))

	assert.True(t, PathExpr{}.IsEmpty())
	assert.Equal(t, "", PathExpr{}.Root())
	assert.Equal(t, "", PathExpr{}.String())
}
