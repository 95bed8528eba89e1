package lightsource

import "time"

// cancelState tracks how far an event has been cancelled. It only moves
// forward: open, stop propagation, stop immediate propagation.
type cancelState uint8

const (
	cancelOpen cancelState = iota
	cancelStopPropagation
	cancelStopImmediatePropagation
	cancelNotCancelable
)

// clockStart anchors event timestamps. time.Since reads the monotonic clock.
var clockStart = time.Now()

// Now returns the monotonic time since process start used for event timestamps.
func Now() time.Duration {
	return time.Since(clockStart)
}

// Event is one occurrence of a focus change, key press or device status
// change. A single flat struct carries every payload so dispatch never
// type-switches. Events are created for one dispatch and then discarded.
type Event struct {
	Type          EventType
	Target        *Node // node the event originated at (nil for device status)
	CurrentTarget *Node // node being visited; nil once dispatch leaves the tree
	Timestamp     time.Duration

	// Key fields (valid for EventKeyDown, EventKeyUp)
	Key       Key
	Pressed   bool
	Repeat    bool
	Modifiers KeyModifiers

	// Device fields (valid for key and status events)
	DeviceID int
	Button   int // raw ebiten key or standard gamepad button code

	cancel cancelState
}

// NewEvent creates an event. Non-cancelable events ignore stop requests.
func NewEvent(eventType EventType, target *Node, cancelable bool, timestamp time.Duration) *Event {
	e := &Event{
		Type:          eventType,
		Target:        target,
		CurrentTarget: target,
		Timestamp:     timestamp,
	}
	if !cancelable {
		e.cancel = cancelNotCancelable
	}
	return e
}

// NewKeyEvent creates a cancelable key event for the given mapped key.
func NewKeyEvent(eventType EventType, key Key, repeat bool, timestamp time.Duration) *Event {
	e := NewEvent(eventType, nil, true, timestamp)
	e.Key = key
	e.Pressed = eventType == EventKeyDown
	e.Repeat = repeat
	return e
}

// Cancelable reports whether stop requests have any effect on this event.
func (e *Event) Cancelable() bool {
	return e.cancel != cancelNotCancelable
}

// StopPropagation prevents the event from reaching further ancestors,
// the scene and the stage.
func (e *Event) StopPropagation() {
	if e.cancel == cancelOpen {
		e.cancel = cancelStopPropagation
	}
}

// StopImmediatePropagation stops propagation and additionally prevents the
// remaining listeners registered on the same scene or stage from running.
// Key down events stopped this way also skip focus navigation.
func (e *Event) StopImmediatePropagation() {
	if e.cancel == cancelOpen || e.cancel == cancelStopPropagation {
		e.cancel = cancelStopImmediatePropagation
	}
}

// HasStopPropagation reports whether StopPropagation or
// StopImmediatePropagation has been called on a cancelable event.
func (e *Event) HasStopPropagation() bool {
	return e.cancel == cancelStopPropagation || e.cancel == cancelStopImmediatePropagation
}

// HasStopImmediatePropagation reports whether StopImmediatePropagation has
// been called on a cancelable event.
func (e *Event) HasStopImmediatePropagation() bool {
	return e.cancel == cancelStopImmediatePropagation
}

// Direction returns the navigation direction of a key down event, or
// DirectionNone for every other event.
func (e *Event) Direction() Direction {
	if e.Type != EventKeyDown {
		return DirectionNone
	}
	return e.Key.Direction()
}
