package gesture

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep is a single action in a gesture script. Times and durations
// are in milliseconds.
type scriptStep struct {
	Action    string    `json:"action"`
	T         float64   `json:"t"`
	Touches   []Contact `json:"touches,omitempty"`
	X         float64   `json:"x,omitempty"`
	Y         float64   `json:"y,omitempty"`
	Hold      float64   `json:"hold,omitempty"`
	FromX     float64   `json:"fromX,omitempty"`
	FromY     float64   `json:"fromY,omitempty"`
	ToX       float64   `json:"toX,omitempty"`
	ToY       float64   `json:"toY,omitempty"`
	FromSpan  float64   `json:"fromSpan,omitempty"`
	ToSpan    float64   `json:"toSpan,omitempty"`
	FromAngle float64   `json:"fromAngle,omitempty"`
	ToAngle   float64   `json:"toAngle,omitempty"`
	Duration  float64   `json:"duration,omitempty"`
	Steps     int       `json:"steps,omitempty"`
}

// scriptFile is the top-level JSON structure for a gesture script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a gesture script against a Recognizer through its
// inject queue, one event per Step.
type ScriptRunner struct {
	steps  []scriptStep
	cursor int
	done   bool
}

// LoadScript parses a JSON gesture script:
//
//	{"steps": [
//		{"action": "start", "t": 0, "touches": [{"x": 0, "y": 0}]},
//		{"action": "wait", "t": 300},
//		{"action": "end", "t": 320},
//		{"action": "drag", "t": 1000, "fromX": 0, "toX": 80, "duration": 100, "steps": 4}
//	]}
//
// Actions are start, move, end, cancel, tap, drag, pinch and wait.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "start":
			if len(st.Touches) == 0 {
				return nil, fmt.Errorf("parse gesture script: step %d: start without touches", i)
			}
		case "move", "end", "cancel", "tap", "drag", "pinch", "wait":
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: f.Steps}, nil
}

// Done reports whether every step ran and every queued event was consumed.
func (s *ScriptRunner) Done() bool {
	return s.done
}

// Step advances the script by one event: it consumes a pending injected
// event if there is one, otherwise queues the next step's events and
// consumes the first of them.
func (s *ScriptRunner) Step(r *Recognizer) {
	if s.done {
		return
	}
	if r.StepInjected() {
		s.checkDone(r)
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++
	at := ms(st.T)

	switch st.Action {
	case "start":
		r.InjectStart(at, st.Touches...)
	case "move":
		r.InjectMove(at, st.Touches...)
	case "end":
		r.InjectEnd(at, st.Touches...)
	case "cancel":
		r.InjectCancel(at, st.Touches...)
	case "tap":
		r.InjectTap(at, st.X, st.Y, ms(st.Hold))
	case "drag":
		r.InjectDrag(at, st.FromX, st.FromY, st.ToX, st.ToY, ms(st.Duration), st.Steps)
	case "pinch":
		r.InjectPinch(at, st.X, st.Y, st.FromSpan, st.ToSpan, st.FromAngle, st.ToAngle, ms(st.Duration), st.Steps)
	case "wait":
		r.Advance(at)
	}
	r.StepInjected()
	s.checkDone(r)
}

// Run steps until the script is done.
func (s *ScriptRunner) Run(r *Recognizer) {
	for !s.done {
		s.Step(r)
	}
}

func (s *ScriptRunner) checkDone(r *Recognizer) {
	if s.cursor >= len(s.steps) && r.Injected() == 0 {
		s.done = true
	}
}

func ms(v float64) time.Duration {
	return time.Duration(v * float64(time.Millisecond))
}
