package gesture

import "testing"

func TestEventTypeString(t *testing.T) {
	for e := EventType(0); e < eventTypeCount; e++ {
		if e.String() == "" {
			t.Errorf("EventType(%d) has no name", e)
		}
	}
	if EventType(200).String() != "unknown" {
		t.Error("out-of-range event should be unknown")
	}
}

func TestLookupEventType(t *testing.T) {
	for e := EventType(0); e < eventTypeCount; e++ {
		got, ok := LookupEventType(e.String())
		if !ok || got != e {
			t.Errorf("LookupEventType(%q) = %v, %v", e.String(), got, ok)
		}
	}
	if _, ok := LookupEventType("onWiggle"); ok {
		t.Error("unknown name resolved")
	}
}

func TestOn_ReplacesHandler(t *testing.T) {
	r := New(Config{})
	var calls []string
	r.On(EventTap, func(Status) { calls = append(calls, "first") })
	r.On(EventTap, func(Status) { calls = append(calls, "second") })

	start(r, 0, pt(0, 0))
	end(r, 10, pt(0, 0))

	if len(calls) != 1 || calls[0] != "second" {
		t.Errorf("calls = %v, want [second]", calls)
	}
}

func TestCallbackHandle_Remove(t *testing.T) {
	r := New(Config{})
	calls := 0
	h := r.On(EventTap, func(Status) { calls++ })
	h.Remove()

	start(r, 0, pt(0, 0))
	end(r, 10, pt(0, 0))

	if calls != 0 {
		t.Errorf("removed handler called %d times", calls)
	}
	if r.Handler(EventTap) != nil {
		t.Error("slot should be empty after Remove")
	}
}

func TestCallbackHandle_RemoveAfterReplace(t *testing.T) {
	r := New(Config{})
	old := r.On(EventTap, func(Status) {})
	calls := 0
	r.On(EventTap, func(Status) { calls++ })
	old.Remove()

	start(r, 0, pt(0, 0))
	end(r, 10, pt(0, 0))

	if calls != 1 {
		t.Errorf("stale handle removed the replacement (calls = %d)", calls)
	}
}

func TestOn_NilClears(t *testing.T) {
	r := New(Config{})
	r.On(EventTap, func(Status) {})
	h := r.On(EventTap, nil)
	h.Remove() // zero handle is a no-op

	if r.Handler(EventTap) != nil {
		t.Error("nil handler should clear the slot")
	}
}

func TestRegister(t *testing.T) {
	r := New(Config{})
	var got []string
	keep := func(Status) { got = append(got, "kept") }
	r.On(EventPanStart, keep)

	r.Register(Handlers{
		OnPan:      func(Status) { got = append(got, "pan") },
		OnPanRight: func(Status) { got = append(got, "right") },
		OnPanMove:  func(Status) { got = append(got, "move") },
	})

	start(r, 0, pt(0, 0))
	move(r, 100, pt(20, 0))
	move(r, 150, pt(40, 0))

	want := []string{"pan", "kept", "pan", "right", "move"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestMissingHandlersSkipped(t *testing.T) {
	r := New(Config{EnablePinch: true, EnableRotate: true})
	start(r, 0, pt(0, 0), pt(100, 0))
	move(r, 50, pt(0, 0), pt(150, 0))
	end(r, 100)
	// Nothing to assert beyond not panicking.
}

func TestEventTypeFamily(t *testing.T) {
	tests := []struct {
		e    EventType
		want EventType
	}{
		{EventTap, EventTap},
		{EventDoubleTap, EventTap},
		{EventPressUp, EventPress},
		{EventSwipeLeft, EventSwipe},
		{EventPan, EventPan},
		{EventPanDown, EventPan},
		{EventPinchOut, EventPinch},
		{EventRotateCancel, EventRotate},
	}
	for _, tt := range tests {
		t.Run(tt.e.String(), func(t *testing.T) {
			if got := tt.e.Family(); got != tt.want {
				t.Errorf("%v.Family() = %v, want %v", tt.e, got, tt.want)
			}
		})
	}
}

func TestEventTypePhase(t *testing.T) {
	tests := []struct {
		e    EventType
		want Phase
		ok   bool
	}{
		{EventPanStart, PhaseStart, true},
		{EventPinchMove, PhaseMove, true},
		{EventRotateEnd, PhaseEnd, true},
		{EventPanCancel, PhaseCancel, true},
		{EventPan, 0, false},
		{EventPanLeft, 0, false},
		{EventPinchOut, 0, false},
		{EventTap, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.e.String(), func(t *testing.T) {
			got, ok := tt.e.Phase()
			if ok != tt.ok || got != tt.want {
				t.Errorf("%v.Phase() = %v, %v, want %v, %v", tt.e, got, ok, tt.want, tt.ok)
			}
		})
	}
}
