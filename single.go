package gesture

// checkDoubleTap marks a fresh session as a double-tap candidate when it
// starts close enough, in time and space, to the previous tap.
func (r *Recognizer) checkDoubleTap() {
	if !r.cfg.EnableDoubleTap || r.lastTap == nil {
		return
	}
	s := r.session
	start := s.StartTouches[0]
	s.DoubleTap = IsDoubleTap(s.StartTime-r.lastTap.time,
		start.X-r.lastTap.contact.X, start.Y-r.lastTap.contact.Y)
}

// singleTouchMove runs the pan recognizer for one move sample.
func (r *Recognizer) singleTouchMove() {
	s := r.session
	if len(s.Touches) > 1 {
		if s.Pan {
			s.Pan = false
			r.combine(EventPan, EventPanCancel)
		}
		return
	}
	if s.Move == nil || !s.AvailablePan || len(s.PreTouches) == 0 {
		return
	}

	dir := MovementDirection(s.PreTouches[0], s.Touches[0])
	s.Direction = dir
	if !r.mask.Allows(dir) {
		// A disallowed first step (e.g. a vertical scroll under a
		// horizontal filter) rules out panning for the whole session.
		if !s.Pan {
			s.AvailablePan = false
		}
		return
	}

	if !s.Pan {
		s.Pan = true
		r.combine(EventPan, EventPanStart)
		return
	}
	snap := r.snapshot()
	r.fire(EventPan, snap)
	if sub, ok := directionEvent(EventPan, dir); ok {
		r.fire(sub, snap)
	}
	r.fire(EventPanMove, snap)
}

// singleTouchEnd picks the one terminal outcome of a single-finger session:
// pan terminal, swipe, double tap, press-up or tap, in that order. It does
// nothing while pinch or rotate is active, or after either was cancelled by
// a lifted finger.
func (r *Recognizer) singleTouchEnd(p Phase) {
	s := r.session
	if s.Pinch || s.Rotate || s.multiTouched {
		return
	}

	if s.Move != nil {
		s.Swipe = ShouldSwipe(s.Move.Z, s.Move.Velocity)
		if s.Pan {
			r.allowGated(EventPan, s.Direction, phaseEvent(EventPan, p), true)
			return
		}
		if s.Swipe {
			dir := DirectionOf(s.Move.X, s.Move.Y)
			s.Direction = dir
			sub, ok := directionEvent(EventSwipe, dir)
			r.allowGated(EventSwipe, dir, sub, ok)
			return
		}
	}

	switch {
	case s.DoubleTap:
		r.emit(EventDoubleTap)
		r.lastTap = nil
	case s.Press:
		r.emit(EventPressUp)
	default:
		r.emit(EventTap)
		if r.cfg.EnableDoubleTap {
			r.lastTap = &tapSnapshot{time: s.StartTime, contact: s.StartTouches[0]}
		}
	}
}
