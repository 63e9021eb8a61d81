package gesture

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "start", "t": 0, "touches": [{"x": 1, "y": 2}]},
			{"action": "wait", "t": 300},
			{"action": "end", "t": 320.5},
			{"action": "drag", "t": 1000, "fromX": 0, "toX": 80, "duration": 100, "steps": 4}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if st := runner.steps[0]; st.Action != "start" || len(st.Touches) != 1 || st.Touches[0] != pt(1, 2) {
		t.Errorf("step 0 mismatch: %+v", st)
	}
	if st := runner.steps[3]; st.Action != "drag" || st.ToX != 80 || st.Steps != 4 {
		t.Errorf("step 3 mismatch: %+v", st)
	}
	if got := ms(runner.steps[2].T); got != 320*time.Millisecond+500*time.Microsecond {
		t.Errorf("fractional milliseconds = %v", got)
	}
}

func TestLoadScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid json", `not json`, "parse gesture script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"start without touches", `{"steps": [{"action": "start"}]}`, "step 0: start without touches"},
		{"unknown action", `{"steps": [{"action": "tap"}, {"action": "wiggle"}]}`, `step 1: unknown action "wiggle"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadScript_WrapsJSONError(t *testing.T) {
	_, err := LoadScript([]byte(`{"steps": 3}`))
	var target interface{ Unwrap() error }
	if !errors.As(err, &target) {
		t.Errorf("expected a wrapped decode error, got %v", err)
	}
}

func TestScriptRunner_Tap(t *testing.T) {
	r := New(Config{})
	rec := record(r)

	runner, err := LoadScript([]byte(`{"steps": [{"action": "tap", "x": 50, "y": 50, "hold": 40}]}`))
	if err != nil {
		t.Fatal(err)
	}

	// First step queues start+end and consumes the start.
	runner.Step(r)
	if r.Injected() != 1 {
		t.Fatalf("expected 1 pending event, got %d", r.Injected())
	}
	if runner.Done() {
		t.Error("runner should not be done while events are pending")
	}

	// Second step consumes the end.
	runner.Step(r)
	if !runner.Done() {
		t.Error("runner should be done after every step ran and the queue drained")
	}
	expectEvents(t, rec.names, "onTap")
}

func TestScriptRunner_WaitFiresPress(t *testing.T) {
	r := New(Config{})
	rec := record(r)

	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "start", "t": 0, "touches": [{"x": 0, "y": 0}]},
		{"action": "wait", "t": 300},
		{"action": "end", "t": 320, "touches": [{"x": 0, "y": 0}]}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.Step(r)
	runner.Step(r)
	expectEvents(t, rec.names, "onPress")

	runner.Run(r)
	expectEvents(t, rec.names, "onPress", "onPressUp")
	if !runner.Done() {
		t.Error("Run should leave the runner done")
	}
}

func TestScriptRunner_Pinch(t *testing.T) {
	r := New(Config{EnablePinch: true})
	rec := record(r)

	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "pinch", "t": 0, "x": 100, "y": 100, "fromSpan": 100, "toSpan": 50, "duration": 60, "steps": 2}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.Run(r)

	if !rec.has("onPinchIn") || !rec.has("onPinchEnd") {
		t.Errorf("events = %v", rec.names)
	}
	if s := rec.last[EventPinchEnd]; s.Scale != 0.5 {
		t.Errorf("final Scale = %v, want 0.5", s.Scale)
	}
}

func TestScriptRunner_StepAfterDone(t *testing.T) {
	r := New(Config{})
	rec := record(r)
	runner, _ := LoadScript([]byte(`{"steps": [{"action": "wait", "t": 10}]}`))

	runner.Run(r)
	runner.Step(r)
	runner.Step(r)
	if len(rec.names) != 0 {
		t.Errorf("events = %v", rec.names)
	}
}
