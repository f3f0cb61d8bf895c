package manifest

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"crossmap/fieldmap"
)

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	mf, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	return mf, nil
}

// Parse parses YAML data into a Manifest and applies defaults.
func Parse(data []byte) (*Manifest, error) {
	var mf Manifest

	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *Manifest) {
	if mf.Version == "" {
		mf.Version = "1"
	}

	for i := range mf.Maps {
		md := &mf.Maps[i]

		for j := range md.Fields {
			f := &md.Fields[j]
			if f.B == "" {
				f.B = f.A
			}
		}
	}
}

// Marshal serializes a Manifest to YAML.
func Marshal(mf *Manifest) ([]byte, error) {
	return yaml.Marshal(mf)
}

// WriteFile writes a Manifest to the given path.
func WriteFile(mf *Manifest, path string) error {
	data, err := Marshal(mf)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}

// Normalize brings a manifest to canonical form: defaults filled,
// exclusions sorted and deduplicated, redundant spellings dropped. Used by
// the fmt command so hand-edited manifests diff cleanly.
func Normalize(mf *Manifest) {
	applyDefaults(mf)

	for i := range mf.Maps {
		NormalizeMapDef(&mf.Maps[i])
	}
}

// NormalizeMapDef normalizes a single map declaration in place.
func NormalizeMapDef(md *MapDef) {
	if len(md.Exclude) > 1 {
		slices.Sort(md.Exclude)
		md.Exclude = slices.Compact(md.Exclude)
	}

	for i := range md.Fields {
		f := &md.Fields[i]

		if f.B == "" {
			f.B = f.A
		}

		// "both" is the default; the canonical spelling omits it.
		if f.Direction == fieldmap.DirectionBidirectional.Keyword() {
			f.Direction = ""
		}
	}
}
