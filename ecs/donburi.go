package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEvent is a dispatched gesture event as published into a world. It
// carries the recognizer event together with its family and, for the
// start/move/end/cancel events of pan, pinch and rotate, its phase.
type GestureEvent struct {
	gesture.Event
	Family gesture.EventType
	// Phase is meaningful only when Phased is true.
	Phase  gesture.Phase
	Phased bool
}

// GestureEventType receives every gesture event.
var GestureEventType = events.NewEventType[GestureEvent]()

// Per-family event types, for systems that only care about one gesture.
var (
	TapEventType    = events.NewEventType[GestureEvent]() // onTap, onDoubleTap
	PressEventType  = events.NewEventType[GestureEvent]() // onPress, onPressUp
	SwipeEventType  = events.NewEventType[GestureEvent]()
	PanEventType    = events.NewEventType[GestureEvent]()
	PinchEventType  = events.NewEventType[GestureEvent]()
	RotateEventType = events.NewEventType[GestureEvent]()
)

var familyTypes = map[gesture.EventType]*events.EventType[GestureEvent]{
	gesture.EventTap:    TapEventType,
	gesture.EventPress:  PressEventType,
	gesture.EventSwipe:  SwipeEventType,
	gesture.EventPan:    PanEventType,
	gesture.EventPinch:  PinchEventType,
	gesture.EventRotate: RotateEventType,
}

// FamilyEventType returns the per-family event type that events of the
// given family (any member, e.g. EventPanStart) are published to.
func FamilyEventType(e gesture.EventType) *events.EventType[GestureEvent] {
	return familyTypes[e.Family()]
}

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Each
// gesture event is published to GestureEventType and to its family's event
// type; consume them with Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) gesture.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event gesture.Event) {
	ge := GestureEvent{Event: event, Family: event.Type.Family()}
	ge.Phase, ge.Phased = event.Type.Phase()

	GestureEventType.Publish(s.world, ge)
	if ft := familyTypes[ge.Family]; ft != nil {
		ft.Publish(s.world, ge)
	}
}
