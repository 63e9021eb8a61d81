package gesture

// EventType identifies one callback slot. String returns the callback name.
type EventType uint8

const (
	EventTap EventType = iota
	EventDoubleTap
	EventPress
	EventPressUp

	EventSwipe
	EventSwipeLeft
	EventSwipeRight
	EventSwipeUp
	EventSwipeDown

	EventPan
	EventPanStart
	EventPanMove
	EventPanEnd
	EventPanCancel
	EventPanLeft
	EventPanRight
	EventPanUp
	EventPanDown

	EventPinch
	EventPinchStart
	EventPinchMove
	EventPinchEnd
	EventPinchCancel
	EventPinchIn
	EventPinchOut

	EventRotate
	EventRotateStart
	EventRotateMove
	EventRotateEnd
	EventRotateCancel

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventTap:          "onTap",
	EventDoubleTap:    "onDoubleTap",
	EventPress:        "onPress",
	EventPressUp:      "onPressUp",
	EventSwipe:        "onSwipe",
	EventSwipeLeft:    "onSwipeLeft",
	EventSwipeRight:   "onSwipeRight",
	EventSwipeUp:      "onSwipeUp",
	EventSwipeDown:    "onSwipeDown",
	EventPan:          "onPan",
	EventPanStart:     "onPanStart",
	EventPanMove:      "onPanMove",
	EventPanEnd:       "onPanEnd",
	EventPanCancel:    "onPanCancel",
	EventPanLeft:      "onPanLeft",
	EventPanRight:     "onPanRight",
	EventPanUp:        "onPanUp",
	EventPanDown:      "onPanDown",
	EventPinch:        "onPinch",
	EventPinchStart:   "onPinchStart",
	EventPinchMove:    "onPinchMove",
	EventPinchEnd:     "onPinchEnd",
	EventPinchCancel:  "onPinchCancel",
	EventPinchIn:      "onPinchIn",
	EventPinchOut:     "onPinchOut",
	EventRotate:       "onRotate",
	EventRotateStart:  "onRotateStart",
	EventRotateMove:   "onRotateMove",
	EventRotateEnd:    "onRotateEnd",
	EventRotateCancel: "onRotateCancel",
}

func (e EventType) String() string {
	if e < eventTypeCount {
		return eventNames[e]
	}
	return "unknown"
}

// Family returns the base event of the family e belongs to: EventTap for
// taps and double taps, EventPress for press and press-up, and EventSwipe,
// EventPan, EventPinch or EventRotate for their base, phase and
// directional events.
func (e EventType) Family() EventType {
	switch {
	case e <= EventDoubleTap:
		return EventTap
	case e <= EventPressUp:
		return EventPress
	case e <= EventSwipeDown:
		return EventSwipe
	case e <= EventPanDown:
		return EventPan
	case e <= EventPinchOut:
		return EventPinch
	case e < eventTypeCount:
		return EventRotate
	}
	return e
}

// Phase returns the lifecycle phase e marks within a continuous gesture.
// ok is false for base, directional and discrete events.
func (e EventType) Phase() (p Phase, ok bool) {
	evs, found := phaseEvents[e.Family()]
	if !found {
		return 0, false
	}
	for i, pe := range evs {
		if pe == e {
			return Phase(i), true
		}
	}
	return 0, false
}

// LookupEventType resolves a callback name such as "onPanStart".
func LookupEventType(name string) (EventType, bool) {
	for i, n := range eventNames {
		if n == name {
			return EventType(i), true
		}
	}
	return 0, false
}

// phaseEvents maps a continuous family to its per-phase events, indexed by
// Phase.
var phaseEvents = map[EventType][phaseCount]EventType{
	EventPan:    {EventPanStart, EventPanMove, EventPanEnd, EventPanCancel},
	EventPinch:  {EventPinchStart, EventPinchMove, EventPinchEnd, EventPinchCancel},
	EventRotate: {EventRotateStart, EventRotateMove, EventRotateEnd, EventRotateCancel},
}

// directionEvents maps a directional family to its left, right, up and down
// events.
var directionEvents = map[EventType][4]EventType{
	EventPan:   {EventPanLeft, EventPanRight, EventPanUp, EventPanDown},
	EventSwipe: {EventSwipeLeft, EventSwipeRight, EventSwipeUp, EventSwipeDown},
}

func phaseEvent(family EventType, p Phase) EventType {
	return phaseEvents[family][p]
}

// directionEvent returns the directional sub-event of family for d. ok is
// false for DirectionNone and for masks.
func directionEvent(family EventType, d Direction) (EventType, bool) {
	evs, ok := directionEvents[family]
	if !ok {
		return 0, false
	}
	switch d {
	case DirectionLeft:
		return evs[0], true
	case DirectionRight:
		return evs[1], true
	case DirectionUp:
		return evs[2], true
	case DirectionDown:
		return evs[3], true
	}
	return 0, false
}

// Handler receives a snapshot of the session that produced the event.
type Handler func(Status)

type handlerSlot struct {
	id uint32
	fn Handler
}

// handlerRegistry holds one optional handler per event type.
type handlerRegistry struct {
	slots  [eventTypeCount]handlerSlot
	nextID uint32
}

func (reg *handlerRegistry) lookup(e EventType) Handler {
	if e >= eventTypeCount {
		return nil
	}
	return reg.slots[e].fn
}

// CallbackHandle allows removing a registered handler.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove clears the handler slot, unless another handler has replaced this
// registration since.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= eventTypeCount {
		return
	}
	if h.reg.slots[h.event].id == h.id {
		h.reg.slots[h.event] = handlerSlot{}
	}
}

// On registers fn as the handler for e, replacing any previous handler. A
// nil fn clears the slot.
func (r *Recognizer) On(e EventType, fn Handler) CallbackHandle {
	if e >= eventTypeCount {
		return CallbackHandle{}
	}
	if fn == nil {
		r.handlers.slots[e] = handlerSlot{}
		return CallbackHandle{}
	}
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.slots[e] = handlerSlot{id: id, fn: fn}
	return CallbackHandle{id: id, reg: &r.handlers, event: e}
}

// Handler returns the handler registered for e, or nil.
func (r *Recognizer) Handler(e EventType) Handler {
	return r.handlers.lookup(e)
}

// Handlers is a table of optional handlers keyed by callback field, for
// registering a whole set at once with Register.
type Handlers struct {
	OnTap       Handler
	OnDoubleTap Handler
	OnPress     Handler
	OnPressUp   Handler

	OnSwipe      Handler
	OnSwipeLeft  Handler
	OnSwipeRight Handler
	OnSwipeUp    Handler
	OnSwipeDown  Handler

	OnPan       Handler
	OnPanStart  Handler
	OnPanMove   Handler
	OnPanEnd    Handler
	OnPanCancel Handler
	OnPanLeft   Handler
	OnPanRight  Handler
	OnPanUp     Handler
	OnPanDown   Handler

	OnPinch       Handler
	OnPinchStart  Handler
	OnPinchMove   Handler
	OnPinchEnd    Handler
	OnPinchCancel Handler
	OnPinchIn     Handler
	OnPinchOut    Handler

	OnRotate       Handler
	OnRotateStart  Handler
	OnRotateMove   Handler
	OnRotateEnd    Handler
	OnRotateCancel Handler
}

// Register installs every non-nil handler of h. Slots left nil in h keep
// their current handler.
func (r *Recognizer) Register(h Handlers) {
	for e, fn := range map[EventType]Handler{
		EventTap: h.OnTap, EventDoubleTap: h.OnDoubleTap,
		EventPress: h.OnPress, EventPressUp: h.OnPressUp,
		EventSwipe: h.OnSwipe, EventSwipeLeft: h.OnSwipeLeft, EventSwipeRight: h.OnSwipeRight,
		EventSwipeUp: h.OnSwipeUp, EventSwipeDown: h.OnSwipeDown,
		EventPan: h.OnPan, EventPanStart: h.OnPanStart, EventPanMove: h.OnPanMove,
		EventPanEnd: h.OnPanEnd, EventPanCancel: h.OnPanCancel,
		EventPanLeft: h.OnPanLeft, EventPanRight: h.OnPanRight, EventPanUp: h.OnPanUp, EventPanDown: h.OnPanDown,
		EventPinch: h.OnPinch, EventPinchStart: h.OnPinchStart, EventPinchMove: h.OnPinchMove,
		EventPinchEnd: h.OnPinchEnd, EventPinchCancel: h.OnPinchCancel,
		EventPinchIn: h.OnPinchIn, EventPinchOut: h.OnPinchOut,
		EventRotate: h.OnRotate, EventRotateStart: h.OnRotateStart, EventRotateMove: h.OnRotateMove,
		EventRotateEnd: h.OnRotateEnd, EventRotateCancel: h.OnRotateCancel,
	} {
		if fn != nil {
			r.On(e, fn)
		}
	}
}
