package gesture

import (
	"fmt"
	"strings"
)

// Direction is a bit set of movement directions. A single classified
// movement carries exactly one bit; a configured filter may carry several.
type Direction uint8

const (
	DirectionNone  Direction = 1 << iota // no dominant axis
	DirectionLeft                        // negative X
	DirectionRight                       // positive X
	DirectionUp                          // negative Y
	DirectionDown                        // positive Y

	DirectionHorizontal = DirectionLeft | DirectionRight
	DirectionVertical   = DirectionUp | DirectionDown
	DirectionAll        = DirectionHorizontal | DirectionVertical
)

// Allows reports whether d shares at least one bit with the filter mask m.
// DirectionNone is never part of DirectionAll, so an undecided movement is
// never allowed.
func (m Direction) Allows(d Direction) bool {
	return d&m != 0
}

// String returns a lowercase name for single directions and the three
// configuration masks, and a hex form for anything else.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionHorizontal:
		return "horizontal"
	case DirectionVertical:
		return "vertical"
	case DirectionAll:
		return "all"
	}
	return fmt.Sprintf("Direction(%#x)", uint8(d))
}

// ParseDirection converts the configuration form ("all", "horizontal",
// "vertical") into a filter mask. The empty string means "all".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return DirectionAll, nil
	case "horizontal":
		return DirectionHorizontal, nil
	case "vertical":
		return DirectionVertical, nil
	}
	return 0, fmt.Errorf("parse direction %q: %w", s, ErrUnknownDirection)
}
