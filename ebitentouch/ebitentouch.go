// Package ebitentouch feeds Ebitengine touch input into a gesture
// Recognizer.
//
// Call [Input.Update] once per tick from your game's Update method:
//
//	type Game struct {
//		input *ebitentouch.Input
//	}
//
//	func (g *Game) Update() error {
//		g.input.Update()
//		return nil
//	}
package ebitentouch

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/gesture"
)

// MouseID is the pointer ID used for the mouse when mouse emulation is on.
// Ebitengine touch IDs are never negative.
const MouseID = -1

// Input polls Ebitengine touches each tick and drives a Recognizer.
type Input struct {
	// Mouse treats the held left mouse button as one more contact, so
	// gestures can be tried on desktop.
	Mouse bool

	rec     *gesture.Recognizer
	tracker gesture.Tracker
	ticks   int64
	now     time.Duration

	touchIDs []ebiten.TouchID
	pointers []gesture.Pointer
}

// New creates an Input that feeds rec.
func New(rec *gesture.Recognizer) *Input {
	return &Input{rec: rec}
}

// Recognizer returns the recognizer this input feeds.
func (in *Input) Recognizer() *gesture.Recognizer {
	return in.rec
}

// Now returns the timestamp of the latest tick. Timestamps advance by one
// tick length per Update, starting at zero.
func (in *Input) Now() time.Duration {
	return in.now
}

// Update samples input for this tick. Injected events queued on the
// recognizer take precedence: while any are pending, one is consumed per
// tick and real input is skipped.
func (in *Input) Update() {
	in.ticks++
	in.now = tickTime(in.ticks, ebiten.TPS())

	if in.rec.StepInjected() {
		return
	}
	if !ebiten.IsFocused() {
		in.feed(in.tracker.Cancel(in.now, nil))
		return
	}
	in.feed(in.tracker.Update(in.now, in.poll(), nil))
}

// poll collects the pointers held this tick.
func (in *Input) poll() []gesture.Pointer {
	in.pointers = in.pointers[:0]
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		x, y := ebiten.TouchPosition(id)
		in.pointers = append(in.pointers, gesture.Pointer{ID: int(id), X: float64(x), Y: float64(y)})
	}
	if in.Mouse && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.pointers = append(in.pointers, gesture.Pointer{ID: MouseID, X: float64(x), Y: float64(y)})
	}
	return in.pointers
}

// feed hands derived events to the recognizer, then lets the long-press
// deadline catch up with the clock.
func (in *Input) feed(events []gesture.TouchEvent) {
	for _, e := range events {
		in.rec.HandleEvent(e)
	}
	in.rec.Advance(in.now)
}

// tickTime converts a tick count into elapsed time at tps ticks per second.
// Non-positive tps (ebiten.SyncWithFPS) falls back to 60.
func tickTime(ticks int64, tps int) time.Duration {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Duration(ticks) * time.Second / time.Duration(tps)
}
