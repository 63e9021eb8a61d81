package gesture

// startMultiTouch starts pinch and rotate when the session holds at least
// two contacts and either recognizer is enabled. Both share the baseline
// two-finger status.
func (r *Recognizer) startMultiTouch() {
	s := r.session
	if !r.cfg.EnablePinch && !r.cfg.EnableRotate {
		return
	}
	base, ok := MultiFinger(s.Touches)
	if !ok {
		return
	}
	cur := base
	s.StartMultiFinger = &base
	s.MultiFinger = &cur

	if r.cfg.EnablePinch {
		s.Pinch = true
		s.Scale = 1
		r.combine(EventPinch, EventPinchStart)
	}
	if r.cfg.EnableRotate && !r.ended(s) {
		s.Rotate = true
		s.Rotation = 0
		r.combine(EventRotate, EventRotateStart)
	}
}

// multiTouchMove runs pinch and rotate for one move sample.
func (r *Recognizer) multiTouchMove() {
	s := r.session
	if !s.Pinch && !s.Rotate {
		// Second finger landed after the session began.
		r.startMultiTouch()
		return
	}
	if len(s.Touches) < 2 {
		pinch, rotate := s.Pinch, s.Rotate
		s.Pinch, s.Rotate = false, false
		// The remaining finger does not turn into a pan, swipe or tap.
		s.AvailablePan = false
		s.multiTouched = true
		if pinch {
			r.combine(EventPinch, EventPinchCancel)
		}
		if rotate && !r.ended(s) {
			r.combine(EventRotate, EventRotateCancel)
		}
		return
	}
	if s.StartMultiFinger == nil || s.MultiFinger == nil {
		return
	}

	if s.Pinch {
		if s.StartMultiFinger.Z > 0 {
			s.Scale = s.MultiFinger.Z / s.StartMultiFinger.Z
		}
		snap := r.snapshot()
		r.fire(EventPinch, snap)
		r.fire(EventPinchMove, snap)
		switch {
		case s.Scale > 1:
			r.fire(EventPinchOut, snap)
		case s.Scale < 1:
			r.fire(EventPinchIn, snap)
		}
	}
	if s.Rotate && !r.ended(s) {
		s.Rotation = Rotation(*s.StartMultiFinger, *s.MultiFinger)
		r.combine(EventRotate, EventRotateMove)
	}
}

// multiTouchEnd dispatches the terminal phase of every active two-finger
// recognizer.
func (r *Recognizer) multiTouchEnd(p Phase) {
	s := r.session
	if s.Pinch {
		r.combine(EventPinch, phaseEvent(EventPinch, p))
	}
	if s.Rotate && !r.ended(s) {
		r.combine(EventRotate, phaseEvent(EventRotate, p))
	}
}
