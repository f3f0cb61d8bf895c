package fieldmap

import (
	"crossmap/internal/common"
)

// NullPolicy states how a nil source value is treated when a field mapping
// is applied: written through to the other side, or skipped.
//
// The zero value NullUnset means the field map carries no opinion of its
// own and defers to the policy of the containing configuration.
type NullPolicy int

const (
	// NullUnset defers to the enclosing configuration's default.
	NullUnset NullPolicy = iota

	// NullMapped writes the nil through, clearing the other side.
	NullMapped

	// NullSkipped leaves the other side untouched on nil input.
	NullSkipped
)

// NullPolicyOf converts a plain mapped/skipped decision into a set policy.
func NullPolicyOf(mapped bool) NullPolicy {
	if mapped {
		return NullMapped
	}

	return NullSkipped
}

// IsSet reports whether the policy was decided explicitly.
func (p NullPolicy) IsSet() bool {
	return p != NullUnset
}

// OrDefault resolves the policy to a concrete decision, falling back to
// the given default when unset.
func (p NullPolicy) OrDefault(mapNulls bool) bool {
	switch p {
	case NullMapped:
		return true
	case NullSkipped:
		return false
	default:
		return mapNulls
	}
}

// String returns a human-readable representation of the NullPolicy.
func (p NullPolicy) String() string {
	switch p {
	case NullUnset:
		return "unset"
	case NullMapped:
		return "mapped"
	case NullSkipped:
		return "skipped"
	default:
		return common.UnknownStr
	}
}
