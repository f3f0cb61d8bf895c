package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
maps:
  - a: store.Person
    b: crm.Contact
    by_default: true
    map_nulls: true
    map_nulls_in_reverse: false
    exclude:
      - Internal
      - Legacy
    fields:
      - a: Name
        b: FullName
      - a: Employer.Name
        b: Firm.Title
        direction: a-to-b
        converter: upperCase
      - a: Tags
        b: Labels
        a_inverse: Owner
        b_inverse: Holder
        map_nulls: false
      - a: Secret
        exclude: true
`

	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, mf)

	assert.Equal(t, "1", mf.Version)
	require.Len(t, mf.Maps, 1)

	md := mf.Maps[0]
	assert.Equal(t, "store.Person", md.A)
	assert.Equal(t, "crm.Contact", md.B)
	assert.Equal(t, "store.Person->crm.Contact", md.Pair())
	assert.True(t, md.ByDefault)

	// Tri-state null policies: both set here, to opposite values.
	require.NotNil(t, md.MapNulls)
	assert.True(t, *md.MapNulls)
	require.NotNil(t, md.MapNullsInReverse)
	assert.False(t, *md.MapNullsInReverse)

	assert.Equal(t, StringOrArray{"Internal", "Legacy"}, md.Exclude)

	require.Len(t, md.Fields, 4)

	assert.Equal(t, "Name", md.Fields[0].A)
	assert.Equal(t, "FullName", md.Fields[0].B)
	assert.Nil(t, md.Fields[0].MapNulls, "unset tri-state stays nil")

	assert.Equal(t, "a-to-b", md.Fields[1].Direction)
	assert.Equal(t, "upperCase", md.Fields[1].Converter)

	assert.Equal(t, "Owner", md.Fields[2].AInverse)
	assert.Equal(t, "Holder", md.Fields[2].BInverse)
	require.NotNil(t, md.Fields[2].MapNulls)
	assert.False(t, *md.Fields[2].MapNulls)

	assert.True(t, md.Fields[3].Exclude)
	assert.Equal(t, "Secret", md.Fields[3].B, "omitted b defaults to a")
}

func TestParseScalarExclude(t *testing.T) {
	yaml := `
maps:
  - a: store.Person
    b: crm.Contact
    exclude: Internal
`

	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)

	require.Len(t, mf.Maps, 1)
	assert.Equal(t, StringOrArray{"Internal"}, mf.Maps[0].Exclude)
	assert.True(t, mf.Maps[0].Exclude.Contains("Internal"))
}

func TestParseDefaults(t *testing.T) {
	yaml := `
maps:
  - a: store.Person
    b: crm.Contact
    fields:
      - a: Age
`

	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", mf.Version)
	assert.Equal(t, "Age", mf.Maps[0].Fields[0].B)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("maps: [what"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest YAML")

	_, err = Parse([]byte("maps:\n  - a: X\n    b: Y\n    exclude: {bad: kind}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected string or array")
}

func TestMarshalRoundTrip(t *testing.T) {
	yaml := `
version: "1"
maps:
  - a: store.Person
    b: crm.Contact
    by_default: true
    exclude: Internal
    fields:
      - a: Name
        b: FullName
        direction: b-to-a
`

	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)

	data, err := Marshal(mf)
	require.NoError(t, err)

	// A single exclusion marshals back to a scalar.
	assert.Contains(t, string(data), "exclude: Internal")

	again, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, mf, again)
}

func TestNormalize(t *testing.T) {
	mf := &Manifest{
		Maps: []MapDef{
			{
				A:       "store.Person",
				B:       "crm.Contact",
				Exclude: StringOrArray{"Legacy", "Internal", "Legacy"},
				Fields: []FieldDef{
					{A: "Name", Direction: "both"},
					{A: "Age", B: "Age"},
				},
			},
		},
	}

	Normalize(mf)

	assert.Equal(t, "1", mf.Version)

	md := mf.Maps[0]
	assert.Equal(t, StringOrArray{"Internal", "Legacy"}, md.Exclude)
	assert.Equal(t, "Name", md.Fields[0].B)
	assert.Empty(t, md.Fields[0].Direction, "default direction spelling is omitted")
}

func TestLoadAndWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mappings.yaml")

	mf := &Manifest{
		Version: "1",
		Maps: []MapDef{
			{A: "store.Person", B: "crm.Contact", Fields: []FieldDef{{A: "Name", B: "FullName"}}},
		},
	}

	require.NoError(t, WriteFile(mf, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, mf, loaded)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
