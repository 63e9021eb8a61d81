package gesture

import (
	"math"
	"slices"
	"time"
)

// InjectStart queues a touch start with the given contacts at time at. The
// event is consumed by the next StepInjected call.
func (r *Recognizer) InjectStart(at time.Duration, touches ...Contact) {
	r.inject(PhaseStart, at, touches)
}

// InjectMove queues a touch move.
func (r *Recognizer) InjectMove(at time.Duration, touches ...Contact) {
	r.inject(PhaseMove, at, touches)
}

// InjectEnd queues a touch end. Contacts may be omitted, as platforms do
// once the last finger is up.
func (r *Recognizer) InjectEnd(at time.Duration, touches ...Contact) {
	r.inject(PhaseEnd, at, touches)
}

// InjectCancel queues a touch cancel.
func (r *Recognizer) InjectCancel(at time.Duration, touches ...Contact) {
	r.inject(PhaseCancel, at, touches)
}

func (r *Recognizer) inject(p Phase, at time.Duration, touches []Contact) {
	r.injectQueue = append(r.injectQueue, TouchEvent{
		Phase:   p,
		Touches: slices.Clone(touches),
		Time:    at,
	})
}

// InjectTap queues a start and an end at (x, y), the end hold after the
// start.
func (r *Recognizer) InjectTap(at time.Duration, x, y float64, hold time.Duration) {
	c := Contact{X: x, Y: y}
	r.InjectStart(at, c)
	r.InjectEnd(at+hold, c)
}

// InjectDrag queues a single-finger drag from (fromX, fromY) to (toX, toY):
// a start, steps-1 evenly spaced moves, and an end at the destination after
// duration. Minimum steps is 1 (start + end).
func (r *Recognizer) InjectDrag(at time.Duration, fromX, fromY, toX, toY float64, duration time.Duration, steps int) {
	if steps < 1 {
		steps = 1
	}
	r.InjectStart(at, Contact{X: fromX, Y: fromY})
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		r.InjectMove(at+time.Duration(float64(duration)*t), Contact{
			X: fromX + (toX-fromX)*t,
			Y: fromY + (toY-fromY)*t,
		})
	}
	r.InjectEnd(at+duration, Contact{X: toX, Y: toY})
}

// InjectPinch queues a two-finger gesture centered on (cx, cy) whose span
// goes from fromSpan to toSpan while its axis turns from fromAngle to
// toAngle (radians), over duration in steps moves, followed by an end
// without contacts.
func (r *Recognizer) InjectPinch(at time.Duration, cx, cy, fromSpan, toSpan, fromAngle, toAngle float64, duration time.Duration, steps int) {
	if steps < 1 {
		steps = 1
	}
	r.InjectStart(at, pinchContacts(cx, cy, fromSpan, fromAngle)...)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		span := fromSpan + (toSpan-fromSpan)*t
		angle := fromAngle + (toAngle-fromAngle)*t
		r.InjectMove(at+time.Duration(float64(duration)*t), pinchContacts(cx, cy, span, angle)...)
	}
	r.InjectEnd(at + duration)
}

// pinchContacts places two contacts span apart around (cx, cy) with the
// axis from the first to the second at angle.
func pinchContacts(cx, cy, span, angle float64) []Contact {
	dx := math.Cos(angle) * span / 2
	dy := math.Sin(angle) * span / 2
	return []Contact{{X: cx - dx, Y: cy - dy}, {X: cx + dx, Y: cy + dy}}
}

// Injected reports the number of queued synthetic events.
func (r *Recognizer) Injected() int {
	return len(r.injectQueue)
}

// StepInjected consumes one queued event. Returns false when the queue is
// empty.
func (r *Recognizer) StepInjected() bool {
	if len(r.injectQueue) == 0 {
		return false
	}
	e := r.injectQueue[0]
	copy(r.injectQueue, r.injectQueue[1:])
	r.injectQueue = r.injectQueue[:len(r.injectQueue)-1]
	r.HandleEvent(e)
	return true
}

// DrainInjected consumes every queued event.
func (r *Recognizer) DrainInjected() {
	for r.StepInjected() {
	}
}
