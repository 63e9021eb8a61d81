package gesture

import "time"

const maxContacts = 10

// Pointer is one platform pointer that is down this frame.
type Pointer struct {
	ID   int
	X, Y float64
}

type contactSlot struct {
	used bool
	id   int
	x, y float64
}

// Tracker turns per-frame sets of held pointers, as polled from game
// engines, into start/move/end touch events. Pointers keep the slot they
// were first seen in, so contact order is stable across a session. At most
// ten pointers are tracked; extra ones are ignored.
type Tracker struct {
	slots [maxContacts]contactSlot
	seen  [maxContacts]bool
	fresh [maxContacts]bool
	buf   []TouchEvent
}

// Held reports the number of pointers currently tracked.
func (t *Tracker) Held() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].used {
			n++
		}
	}
	return n
}

// slot maps a pointer ID to a slot, allocating one if needed. Returns -1
// when all slots are taken.
func (t *Tracker) slot(id int) (idx int, fresh bool) {
	for i := range t.slots {
		if t.slots[i].used && t.slots[i].id == id {
			return i, false
		}
	}
	for i := range t.slots {
		if !t.slots[i].used {
			t.slots[i] = contactSlot{used: true, id: id}
			return i, true
		}
	}
	return -1, false
}

// Update takes the pointers held this frame and returns the touch events
// they imply, in order: an end when any pointer lifted, then a start when
// any pointer landed, otherwise a move when any pointer moved. The returned
// slice is reused by the next call.
func (t *Tracker) Update(now time.Duration, pointers []Pointer, src any) []TouchEvent {
	t.buf = t.buf[:0]
	t.seen = [maxContacts]bool{}
	t.fresh = [maxContacts]bool{}

	var landed, moved bool
	for _, p := range pointers {
		i, fresh := t.slot(p.ID)
		if i < 0 {
			continue
		}
		t.seen[i] = true
		sl := &t.slots[i]
		if fresh {
			t.fresh[i] = true
			landed = true
		} else if sl.x != p.X || sl.y != p.Y {
			moved = true
		}
		sl.x, sl.y = p.X, p.Y
	}

	var lifted bool
	for i := range t.slots {
		if t.slots[i].used && !t.seen[i] {
			lifted = true
			t.slots[i] = contactSlot{}
		}
	}

	switch {
	case lifted:
		// Browser-style touchend: the remaining contacts. A finger that
		// lands in the same frame starts a new session right after.
		t.buf = append(t.buf, TouchEvent{Phase: PhaseEnd, Touches: t.contacts(true), Time: now, Src: src})
		if landed {
			t.buf = append(t.buf, TouchEvent{Phase: PhaseStart, Touches: t.contacts(false), Time: now, Src: src})
		}
	case landed:
		t.buf = append(t.buf, TouchEvent{Phase: PhaseStart, Touches: t.contacts(false), Time: now, Src: src})
	case moved:
		t.buf = append(t.buf, TouchEvent{Phase: PhaseMove, Touches: t.contacts(false), Time: now, Src: src})
	}
	return t.buf
}

// Cancel frees every slot and returns a cancel event when any pointer was
// held, e.g. when the window loses focus.
func (t *Tracker) Cancel(now time.Duration, src any) []TouchEvent {
	t.buf = t.buf[:0]
	if t.Held() == 0 {
		return t.buf
	}
	t.slots = [maxContacts]contactSlot{}
	t.buf = append(t.buf, TouchEvent{Phase: PhaseCancel, Time: now, Src: src})
	return t.buf
}

// contacts lists the used slots in slot order. With settledOnly, pointers
// that landed this frame are left out.
func (t *Tracker) contacts(settledOnly bool) []Contact {
	var out []Contact
	for i := range t.slots {
		sl := &t.slots[i]
		if !sl.used {
			continue
		}
		if settledOnly && t.fresh[i] {
			continue
		}
		out = append(out, Contact{X: sl.x, Y: sl.y})
	}
	return out
}
