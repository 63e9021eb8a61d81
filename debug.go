package gesture

import (
	"fmt"
	"io"
	"os"
)

// SetDebug enables tracing of touch phases and dispatched events to stderr.
func (r *Recognizer) SetDebug(enabled bool) {
	r.debug = enabled
}

// SetDebugOutput redirects debug tracing. A nil w restores stderr.
func (r *Recognizer) SetDebugOutput(w io.Writer) {
	r.debugOut = w
}

// debugf prints a trace line when debugging is enabled.
func (r *Recognizer) debugf(format string, args ...any) {
	if !r.debug {
		return
	}
	w := r.debugOut
	if w == nil {
		w = os.Stderr
	}
	_, _ = fmt.Fprintf(w, "[gesture] "+format+"\n", args...)
}

// debugTouch traces an incoming sample.
func (r *Recognizer) debugTouch(e TouchEvent) {
	if !r.debug {
		return
	}
	r.debugf("touch%s: %d contact(s) at %v", e.Phase, len(e.Touches), e.Time)
}

// debugEvent traces a dispatch together with whether anyone listens.
func (r *Recognizer) debugEvent(e EventType) {
	if !r.debug {
		return
	}
	if r.handlers.lookup(e) == nil {
		r.debugf("emit %s (no handler)", e)
		return
	}
	r.debugf("emit %s", e)
}
