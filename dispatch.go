package gesture

// EventStore is the interface for optional event forwarding, e.g. into an
// ECS world. When set on a Recognizer, every dispatched event is forwarded
// after its handler ran.
type EventStore interface {
	EmitEvent(event Event)
}

// Event is a dispatched gesture event as seen by an EventStore.
type Event struct {
	Type   EventType
	Status Status
}

// SetEventStore attaches store, or detaches with nil.
func (r *Recognizer) SetEventStore(store EventStore) {
	r.store = store
}

// snapshot returns an independent copy of the live session.
func (r *Recognizer) snapshot() Status {
	if r.session == nil {
		return Status{}
	}
	return r.session.clone()
}

// fire invokes the handler for e with snap and forwards to the store.
// Missing handlers are skipped.
func (r *Recognizer) fire(e EventType, snap Status) {
	r.debugEvent(e)
	if fn := r.handlers.lookup(e); fn != nil {
		fn(snap)
	}
	if r.store != nil {
		r.store.EmitEvent(Event{Type: e, Status: snap})
	}
}

// emit dispatches a single event.
func (r *Recognizer) emit(e EventType) {
	r.fire(e, r.snapshot())
}

// combine dispatches the family's base event followed by each sub event,
// all with the same snapshot.
func (r *Recognizer) combine(family EventType, subs ...EventType) {
	snap := r.snapshot()
	r.fire(family, snap)
	for _, sub := range subs {
		r.fire(sub, snap)
	}
}

// allowGated dispatches a terminal pan or swipe. When d passes the direction
// filter it behaves like combine; otherwise only the sub event fires and the
// base handler never sees the gesture.
func (r *Recognizer) allowGated(family EventType, d Direction, sub EventType, hasSub bool) {
	if r.mask.Allows(d) {
		if hasSub {
			r.combine(family, sub)
		} else {
			r.combine(family)
		}
		return
	}
	if hasSub {
		r.emit(sub)
	}
}
