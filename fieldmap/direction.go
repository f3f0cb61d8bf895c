package fieldmap

import (
	"fmt"

	"crossmap/internal/common"
)

//go:generate go tool stringer -type=Direction -output=direction_string.go

// Direction designates which way a field mapping applies.
type Direction int

const (
	// DirectionBidirectional applies the mapping both ways. It is the
	// zero value and the default for new field maps.
	DirectionBidirectional Direction = iota

	// DirectionAToB applies the mapping only when converting from the A
	// side to the B side.
	DirectionAToB

	// DirectionBToA applies the mapping only when converting from the B
	// side to the A side.
	DirectionBToA
)

// ParseDirection parses a manifest direction keyword. The empty string
// parses as bidirectional.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "both":
		return DirectionBidirectional, nil
	case "a-to-b":
		return DirectionAToB, nil
	case "b-to-a":
		return DirectionBToA, nil
	default:
		return DirectionBidirectional, fmt.Errorf("unknown direction %q", s)
	}
}

// Keyword returns the manifest keyword for the direction.
func (d Direction) Keyword() string {
	switch d {
	case DirectionBidirectional:
		return "both"
	case DirectionAToB:
		return "a-to-b"
	case DirectionBToA:
		return "b-to-a"
	default:
		return common.UnknownStr
	}
}

// Flip returns the direction seen from the opposite side of the mapping.
// Bidirectional flips to itself.
func (d Direction) Flip() Direction {
	switch d {
	case DirectionAToB:
		return DirectionBToA
	case DirectionBToA:
		return DirectionAToB
	default:
		return d
	}
}

// AppliesTo reports whether a mapping with this direction participates
// when converting in the given one-way direction.
func (d Direction) AppliesTo(way Direction) bool {
	return d == DirectionBidirectional || d == way
}
