package gesture

import (
	"errors"
	"time"
)

// Recognition thresholds. Distances are in the coordinate space of the
// incoming contacts; velocities are in units per millisecond.
const (
	TapTime         = 250 * time.Millisecond // max start-to-start gap of a double tap
	TapPosThreshold = 10.0                   // max per-axis offset of a double tap

	PressTime      = 251 * time.Millisecond // hold time before onPress
	PressThreshold = 9.0                    // jitter bindings may drop before TouchMove; any move cancels the press

	SwipeThreshold = 10.0 // min release distance, inclusive
	SwipeVelocity  = 0.3  // min release velocity, exclusive
)

// ErrUnknownDirection is returned by ParseDirection for unrecognized names.
var ErrUnknownDirection = errors.New("unknown direction")

// Config holds construction-time options for a Recognizer. It is copied by
// New and cannot change afterwards.
type Config struct {
	// EnablePinch turns on the two-finger pinch recognizer.
	EnablePinch bool
	// EnableRotate turns on the two-finger rotate recognizer.
	EnableRotate bool
	// EnableDoubleTap makes a second tap inside the tap window fire
	// onDoubleTap instead of onTap.
	EnableDoubleTap bool
	// Direction restricts which pan and swipe directions count as allowed.
	// Zero means DirectionAll.
	Direction Direction
}

// mask returns the resolved direction filter.
func (c Config) mask() Direction {
	if c.Direction == 0 {
		return DirectionAll
	}
	return c.Direction
}

// ScrollHint tells a view binding which native scroll axes should stay
// enabled on the bound element while the recognizer is attached.
type ScrollHint struct {
	Horizontal bool
	Vertical   bool
}

// ScrollHint derives the native scroll axes left to the platform. Axes the
// recognizer claims for pan and swipe are blocked; pinch and rotate claim
// both.
func (c Config) ScrollHint() ScrollHint {
	if c.EnablePinch || c.EnableRotate {
		return ScrollHint{}
	}
	m := c.mask()
	return ScrollHint{
		Horizontal: m&DirectionHorizontal == 0,
		Vertical:   m&DirectionVertical == 0,
	}
}

// TouchAction renders the hint as a CSS touch-action keyword.
func (h ScrollHint) TouchAction() string {
	switch {
	case h.Horizontal && h.Vertical:
		return "auto"
	case h.Horizontal:
		return "pan-x"
	case h.Vertical:
		return "pan-y"
	}
	return "none"
}
