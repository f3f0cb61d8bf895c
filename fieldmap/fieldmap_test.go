package fieldmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldMapFlip(t *testing.T) {
	scope := newTestScope()

	b, err := NewBuilder(scope, "Tags", "Labels")
	require.NoError(t, err)

	_, err = b.AInverse("Owner")
	require.NoError(t, err)

	_, err = b.BInverse("Holder")
	require.NoError(t, err)

	_, err = b.AToB().Converter("tagText").MapNulls(true).Add()
	require.NoError(t, err)

	fm := scope.registered[0]
	flipped := fm.Flip()

	assert.Equal(t, "Labels", flipped.A().Name)
	assert.Equal(t, "Tags", flipped.B().Name)
	assert.Equal(t, DirectionBToA, flipped.Direction())
	assert.Equal(t, "tagText", flipped.ConverterID())

	aInv, ok := flipped.AInverse()
	require.True(t, ok)
	assert.Equal(t, "Holder", aInv.Name)

	bInv, ok := flipped.BInverse()
	require.True(t, ok)
	assert.Equal(t, "Owner", bInv.Name)

	// Null policies swap sides along with the properties.
	assert.Equal(t, NullMapped, flipped.SourceMappedOnNull())
	assert.Equal(t, NullUnset, flipped.DestinationMappedOnNull())

	// Flipping twice restores the original.
	assert.Equal(t, fm, flipped.Flip())
}

func TestFieldMapString(t *testing.T) {
	scope := newTestScope()

	b, err := NewBuilder(scope, "Name", "FullName")
	require.NoError(t, err)

	_, err = b.Add()
	require.NoError(t, err)

	assert.Equal(t, "FieldMap(Name(string) <-> FullName(string))", scope.registered[0].String())

	b, err = NewBuilder(scope, "Name", "FullName")
	require.NoError(t, err)

	_, err = b.AToB().Exclude().Converter("n").Add()
	require.NoError(t, err)

	assert.Equal(t, "FieldMap(Name(string) --> FullName(string), excluded, converter=n)", scope.registered[1].String())

	b, err = NewBuilder(scope, "Name", "FullName")
	require.NoError(t, err)

	_, err = b.BToA().Add()
	require.NoError(t, err)

	assert.Contains(t, scope.registered[2].String(), "<--")
}
