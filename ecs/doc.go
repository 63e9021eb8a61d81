// Package ecs provides ECS adapters for gesture recognizers.
//
// The primary adapter is [NewDonburiStore], which bridges every dispatched
// gesture event (tap, press, swipe, pan, pinch, rotate) into a [Donburi]
// world as a [GestureEvent] tagged with its family and phase. Subscribe to
// [GestureEventType] to receive every event, or to a per-family type such
// as [PanEventType] or [PinchEventType] to receive one gesture only.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	recognizer.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
