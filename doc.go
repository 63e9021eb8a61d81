// Package gesture recognizes touch gestures from a stream of multi-contact
// touch samples.
//
// A [Recognizer] consumes [TouchEvent] values (start, move, end, cancel),
// tracks one gesture session at a time and dispatches phase-tagged events to
// registered handlers. Recognized gestures are tap, double tap (opt-in),
// long press, swipe, pan, pinch and rotate.
//
// # Quick start
//
//	rec := gesture.New(gesture.Config{
//		EnablePinch: true,
//		Direction:   gesture.DirectionHorizontal,
//	})
//	rec.On(gesture.EventTap, func(s gesture.Status) {
//		fmt.Println("tap at", s.Touches[0])
//	})
//	rec.On(gesture.EventPinchMove, func(s gesture.Status) {
//		fmt.Println("scale", s.Scale)
//	})
//
//	// From the platform's touch callbacks:
//	rec.HandleEvent(gesture.TouchEvent{Phase: gesture.PhaseStart, Touches: contacts, Time: now})
//
//	// Once per frame, so long presses fire without further input:
//	rec.Advance(now)
//
// Engines that poll input per frame instead of delivering touch callbacks
// can use a [Tracker] to derive the events, or the ebitentouch package for
// Ebitengine.
//
// # Events
//
// Every handler receives a [Status] snapshot, an independent copy of the
// session record. Continuous gestures dispatch a base event together with a
// phase event: onPan with onPanStart, onPanMove, onPanEnd or onPanCancel,
// and likewise for pinch and rotate. Pan moves also dispatch the directional
// onPanLeft, onPanRight, onPanUp or onPanDown. Swipes dispatch onSwipe with
// one of onSwipeLeft, onSwipeRight, onSwipeUp or onSwipeDown.
//
// When a session ends with one finger, exactly one terminal outcome fires,
// in priority order: pan end, swipe, double tap, press-up, tap.
//
// # Direction filter
//
// [Config.Direction] restricts which directions count for pan and swipe. A
// pan whose first step goes in a filtered-out direction never starts for the
// rest of the session, so a vertical scroll stays a scroll under a
// horizontal filter. A terminal pan or swipe in a filtered-out direction
// only reaches its directional handler (onPanEnd, onSwipeUp), never the base
// onPan or onSwipe handler.
//
// # Testing
//
// Synthetic sessions can be queued with the Inject methods and consumed with
// [Recognizer.StepInjected], or described as JSON and replayed with
// [LoadScript].
package gesture
