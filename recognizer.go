package gesture

import (
	"io"
	"slices"
	"time"
)

// pressTimer is the long-press deadline. It fires at most once per arm.
type pressTimer struct {
	deadline time.Duration
	armed    bool
}

func (t *pressTimer) schedule(at time.Duration) {
	t.deadline = at
	t.armed = true
}

func (t *pressTimer) cancel() {
	t.armed = false
}

func (t *pressTimer) due(now time.Duration) bool {
	return t.armed && now >= t.deadline
}

// Recognizer turns a stream of touch events into gesture events. It is not
// safe for concurrent use; feed it from a single goroutine (the game or UI
// loop) and call Advance regularly so long presses fire without further
// input.
type Recognizer struct {
	cfg  Config
	mask Direction

	handlers handlerRegistry
	store    EventStore

	session *Status
	press   pressTimer
	lastTap *tapSnapshot

	injectQueue []TouchEvent

	debug    bool
	debugOut io.Writer
}

// New creates a recognizer with the given configuration.
func New(cfg Config) *Recognizer {
	return &Recognizer{
		cfg:  cfg,
		mask: cfg.mask(),
	}
}

// Config returns the configuration the recognizer was built with.
func (r *Recognizer) Config() Config {
	return r.cfg
}

// Active reports whether a session is in progress.
func (r *Recognizer) Active() bool {
	return r.session != nil
}

// Status returns a snapshot of the session in progress. ok is false when
// there is none.
func (r *Recognizer) Status() (s Status, ok bool) {
	if r.session == nil {
		return Status{}, false
	}
	return r.session.clone(), true
}

// Reset drops the session in progress and the pending long press without
// dispatching anything. Call it when the bound view goes away; handlers
// may call it too.
func (r *Recognizer) Reset() {
	r.press.cancel()
	r.session = nil
	r.injectQueue = r.injectQueue[:0]
}

// Advance lets time pass without input, firing the long press when its
// deadline is reached.
func (r *Recognizer) Advance(now time.Duration) {
	if r.press.due(now) {
		r.firePress()
	}
}

// HandleEvent routes e to the handler for its phase.
func (r *Recognizer) HandleEvent(e TouchEvent) {
	switch e.Phase {
	case PhaseStart:
		r.TouchStart(e)
	case PhaseMove:
		r.TouchMove(e)
	case PhaseEnd:
		r.TouchEnd(e)
	case PhaseCancel:
		r.TouchCancel(e)
	}
}

// TouchStart begins a new session. Any unfinished session is discarded
// silently. A start without contacts is ignored.
func (r *Recognizer) TouchStart(e TouchEvent) {
	r.debugTouch(e)
	r.Advance(e.Time)
	if r.session != nil {
		r.debugf("discarding unfinished session started at %v", r.session.StartTime)
		r.session = nil
	}
	r.press.cancel()
	if len(e.Touches) == 0 {
		return
	}

	touches := slices.Clone(e.Touches)
	r.session = &Status{
		StartTime:    e.Time,
		StartTouches: touches,
		Time:         e.Time,
		Touches:      slices.Clone(touches),
		AvailablePan: true,
		SrcEvent:     e.Src,
	}
	r.checkDoubleTap()
	r.press.schedule(e.Time + PressTime)
	r.startMultiTouch()
}

// TouchMove updates the session with a new sample. Moves without a session
// (stray samples after an end) are ignored.
func (r *Recognizer) TouchMove(e TouchEvent) {
	s := r.session
	if s == nil {
		return
	}
	r.debugTouch(e)
	r.Advance(e.Time)
	if r.ended(s) {
		return
	}
	r.press.cancel()
	s.DoubleTap = false
	r.update(e)
	r.multiTouchMove()
	if r.ended(s) {
		return
	}
	r.singleTouchMove()
}

// TouchEnd finishes the session, dispatching its terminal events.
func (r *Recognizer) TouchEnd(e TouchEvent) {
	r.finish(e, PhaseEnd)
}

// TouchCancel finishes the session through the cancel phase.
func (r *Recognizer) TouchCancel(e TouchEvent) {
	r.finish(e, PhaseCancel)
}

func (r *Recognizer) finish(e TouchEvent, p Phase) {
	s := r.session
	if s == nil {
		return
	}
	e.Phase = p
	r.debugTouch(e)
	r.Advance(e.Time)
	if r.ended(s) {
		return
	}
	r.press.cancel()
	r.update(e)
	r.singleTouchEnd(p)
	if r.ended(s) {
		return
	}
	r.multiTouchEnd(p)
	if !r.ended(s) {
		r.session = nil
	}
}

// ended reports whether s is no longer the live session, i.e. a handler
// reset the recognizer or began a new session while it ran.
func (r *Recognizer) ended(s *Status) bool {
	return r.session != s
}

// update refreshes the rolling snapshot. Samples without contacts only move
// the clock; prior geometry is kept. An end or cancel that lists fewer
// contacts than the previous sample keeps Move and MultiFinger as they
// were: contacts carry no identity, so the remaining finger cannot be
// matched to the primary one.
func (r *Recognizer) update(e TouchEvent) {
	s := r.session
	s.Time = e.Time
	if e.Src != nil {
		s.SrcEvent = e.Src
	}
	if len(e.Touches) == 0 {
		return
	}
	lifted := (e.Phase == PhaseEnd || e.Phase == PhaseCancel) && len(e.Touches) < len(s.Touches)
	s.PreTouches = s.Touches
	s.Touches = slices.Clone(e.Touches)
	if lifted {
		return
	}
	if m, ok := Move(s.StartTouches, s.Touches, s.Time-s.StartTime); ok {
		s.Move = &m
	}
	if s.Pinch || s.Rotate {
		if mf, ok := MultiFinger(s.Touches); ok {
			s.MultiFinger = &mf
		}
	}
}

// firePress runs when the long-press deadline passes.
func (r *Recognizer) firePress() {
	r.press.cancel()
	if r.session == nil {
		return
	}
	r.session.Press = true
	r.emit(EventPress)
}
