package manifest

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// StringOrArray is a list of strings that a manifest may spell as either a
// single scalar or a sequence:
//
//	exclude: Internal
//	exclude: [Internal, Legacy]
type StringOrArray []string

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		if str == "" {
			*s = StringOrArray{}
		} else {
			*s = StringOrArray{str}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML emits a single scalar when the list has one entry, otherwise
// a sequence.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// Contains returns true if the list contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}
