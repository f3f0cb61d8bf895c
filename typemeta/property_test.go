package typemeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyElementOverride(t *testing.T) {
	tags := Property{
		Name:     "Tags",
		Getter:   "Tags",
		Setter:   "Tags = %s",
		Type:     TypeFor[[]string](),
		Exported: true,
	}

	assert.Equal(t, "string", tags.ElementType().String())

	narrowed := tags.WithElementType(TypeFor[address]())
	assert.Equal(t, "typemeta.address", narrowed.ElementType().String())

	// Only the element facet changes.
	assert.Equal(t, "Tags", narrowed.Name)
	assert.Equal(t, "Tags", narrowed.Getter)
	assert.Equal(t, "Tags = %s", narrowed.Setter)
	assert.Same(t, tags.Type, narrowed.Type)
	assert.True(t, narrowed.Exported)

	// The original copy is untouched.
	assert.Nil(t, tags.Elem)
	assert.Equal(t, "string", tags.ElementType().String())
}

func TestPropertyNonContainerElement(t *testing.T) {
	name := Property{Name: "Name", Type: TypeFor[string]()}
	assert.Nil(t, name.ElementType())
	assert.False(t, name.IsContainer())

	// An explicit override wins regardless of the declared type, but does
	// not turn the property into a container.
	withElem := name.WithElementType(TypeFor[int]())
	assert.Equal(t, "int", withElem.ElementType().String())
	assert.False(t, withElem.IsContainer())
}

func TestPropertyWithType(t *testing.T) {
	p := Property{Name: "Age", Type: TypeFor[int]()}

	widened := p.WithType(TypeFor[int64]())
	assert.Equal(t, "int64", widened.Type.String())
	assert.Equal(t, "Age", widened.Name)
	assert.Equal(t, "int", p.Type.String())
}

func TestPropertyValidAndString(t *testing.T) {
	assert.False(t, Property{}.IsValid())
	assert.Equal(t, "<none>", Property{}.String())

	p := Property{Name: "Age", Type: TypeFor[int]()}
	assert.True(t, p.IsValid())
	assert.Equal(t, "Age(int)", p.String())

	assert.False(t, Property{Name: "Age"}.IsValid())
}
