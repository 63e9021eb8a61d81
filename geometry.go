package gesture

import (
	"math"
	"time"
)

// Contact is one finger's position. Contacts carry no identity; their order
// within a TouchEvent is assumed stable for the whole session.
type Contact struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MultiFingerStatus describes the segment between the first two contacts.
type MultiFingerStatus struct {
	X, Y  float64 // vector from contact 0 to contact 1
	Z     float64 // span (length of the vector)
	Angle float64 // orientation in radians, atan2(Y, X)
}

// MoveStatus describes the displacement of the primary contact since the
// session started.
type MoveStatus struct {
	X, Y     float64       // delta from the start contact
	Z        float64       // delta magnitude
	Time     time.Duration // elapsed since session start
	Velocity float64       // Z per millisecond
	Angle    float64       // radians, atan2(Y, X)
}

// Distance returns the length of the vector (x, y).
func Distance(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// Velocity returns dist per millisecond of elapsed. A non-positive elapsed
// time yields 0.
func Velocity(dist float64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return dist / (float64(elapsed) / float64(time.Millisecond))
}

// DirectionOf classifies a delta by its dominant axis. Equal magnitudes on
// both axes (including no movement at all) classify as DirectionNone.
func DirectionOf(dx, dy float64) Direction {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ax == ay:
		return DirectionNone
	case ax > ay:
		if dx < 0 {
			return DirectionLeft
		}
		return DirectionRight
	case dy < 0:
		return DirectionUp
	default:
		return DirectionDown
	}
}

// MovementDirection classifies the step from one sample of a contact to the
// next.
func MovementDirection(from, to Contact) Direction {
	return DirectionOf(to.X-from.X, to.Y-from.Y)
}

// MultiFinger computes the two-finger status from the first two contacts.
// ok is false with fewer than two contacts.
func MultiFinger(touches []Contact) (s MultiFingerStatus, ok bool) {
	if len(touches) < 2 {
		return MultiFingerStatus{}, false
	}
	x := touches[1].X - touches[0].X
	y := touches[1].Y - touches[0].Y
	return MultiFingerStatus{
		X:     x,
		Y:     y,
		Z:     Distance(x, y),
		Angle: math.Atan2(y, x),
	}, true
}

// Move computes the displacement of the primary contact from start to now.
// ok is false when either list is empty.
func Move(start, now []Contact, elapsed time.Duration) (m MoveStatus, ok bool) {
	if len(start) == 0 || len(now) == 0 {
		return MoveStatus{}, false
	}
	x := now[0].X - start[0].X
	y := now[0].Y - start[0].Y
	z := Distance(x, y)
	return MoveStatus{
		X:        x,
		Y:        y,
		Z:        z,
		Time:     elapsed,
		Velocity: Velocity(z, elapsed),
		Angle:    math.Atan2(y, x),
	}, true
}

// Rotation returns the unsigned angle in radians between the two-finger axis
// at start and now, from their normalized dot product. Zero-length vectors
// yield 0.
func Rotation(start, now MultiFingerStatus) float64 {
	if start.Z == 0 || now.Z == 0 {
		return 0
	}
	cos := (start.X*now.X + start.Y*now.Y) / (start.Z * now.Z)
	// Floating point can overshoot the acos domain by an ulp.
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// ShouldSwipe reports whether a release with the given delta and velocity
// qualifies as a swipe.
func ShouldSwipe(delta, velocity float64) bool {
	return math.Abs(delta) >= SwipeThreshold && math.Abs(velocity) > SwipeVelocity
}

// IsDoubleTap reports whether a tap that started dt after the previous one,
// offset by (dx, dy), completes a double tap.
func IsDoubleTap(dt time.Duration, dx, dy float64) bool {
	return dt > 0 && dt <= TapTime &&
		math.Abs(dx) < TapPosThreshold && math.Abs(dy) < TapPosThreshold
}
