package gesture

import (
	"slices"
	"time"
)

// Phase tags a raw touch event and names the lifecycle stage of a
// continuous gesture.
type Phase uint8

const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
	PhaseCancel

	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	case PhaseCancel:
		return "cancel"
	}
	return "unknown"
}

// TouchEvent is one normalized sample from the platform.
type TouchEvent struct {
	Phase Phase
	// Touches lists the contacts still down, in stable order. It may be
	// empty on end and cancel.
	Touches []Contact
	// Time is when the sample was taken, relative to an undefined but
	// monotonic base.
	Time time.Duration
	// Src is the originating platform event, forwarded untouched into
	// Status.SrcEvent.
	Src any
}

// Status is the record of one touch-start to touch-end cycle. The recognizer
// owns the live copy; handlers receive independent snapshots.
type Status struct {
	// Start snapshot.
	StartTime        time.Duration
	StartTouches     []Contact
	StartMultiFinger *MultiFingerStatus

	// Rolling snapshot.
	Time        time.Duration
	Touches     []Contact
	PreTouches  []Contact // previous sample, for per-move direction
	MultiFinger *MultiFingerStatus

	// Move is nil until the first sample after start.
	Move *MoveStatus

	Press        bool
	Pan          bool
	AvailablePan bool
	Swipe        bool
	DoubleTap    bool
	Direction    Direction

	Pinch bool
	Scale float64

	Rotate   bool
	Rotation float64 // radians

	SrcEvent any

	// multiTouched is set once pinch or rotate ended early in this session.
	multiTouched bool
}

// clone returns a copy that shares no memory with s.
func (s *Status) clone() Status {
	c := *s
	c.StartTouches = slices.Clone(s.StartTouches)
	c.Touches = slices.Clone(s.Touches)
	c.PreTouches = slices.Clone(s.PreTouches)
	if s.StartMultiFinger != nil {
		v := *s.StartMultiFinger
		c.StartMultiFinger = &v
	}
	if s.MultiFinger != nil {
		v := *s.MultiFinger
		c.MultiFinger = &v
	}
	if s.Move != nil {
		v := *s.Move
		c.Move = &v
	}
	return c
}

// tapSnapshot remembers the previous tap for double-tap detection.
type tapSnapshot struct {
	time    time.Duration
	contact Contact
}
