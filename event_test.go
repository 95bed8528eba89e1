package lightsource

import (
	"testing"
	"time"
)

func TestNewEventCancelable(t *testing.T) {
	target := NewBox("t")
	e := NewEvent(EventFocus, target, true, 5*time.Millisecond)

	if e.Type != EventFocus || e.Target != target || e.CurrentTarget != target {
		t.Errorf("unexpected event fields: %+v", e)
	}
	if e.Timestamp != 5*time.Millisecond {
		t.Errorf("Timestamp = %v, want 5ms", e.Timestamp)
	}
	if !e.Cancelable() {
		t.Error("event should be cancelable")
	}
	if e.HasStopPropagation() || e.HasStopImmediatePropagation() {
		t.Error("new event should be open")
	}
}

func TestEventCancellationMovesForward(t *testing.T) {
	tests := []struct {
		name          string
		calls         []func(*Event)
		wantStop      bool
		wantImmediate bool
	}{
		{"none", nil, false, false},
		{"stop", []func(*Event){(*Event).StopPropagation}, true, false},
		{"immediate", []func(*Event){(*Event).StopImmediatePropagation}, true, true},
		{"stop then immediate", []func(*Event){(*Event).StopPropagation, (*Event).StopImmediatePropagation}, true, true},
		{"immediate then stop", []func(*Event){(*Event).StopImmediatePropagation, (*Event).StopPropagation}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEvent(EventKeyDown, nil, true, 0)
			for _, call := range tt.calls {
				call(e)
			}
			if got := e.HasStopPropagation(); got != tt.wantStop {
				t.Errorf("HasStopPropagation = %v, want %v", got, tt.wantStop)
			}
			if got := e.HasStopImmediatePropagation(); got != tt.wantImmediate {
				t.Errorf("HasStopImmediatePropagation = %v, want %v", got, tt.wantImmediate)
			}
		})
	}
}

func TestNonCancelableEventIgnoresStops(t *testing.T) {
	e := NewEvent(EventConnected, nil, false, 0)
	e.StopPropagation()
	e.StopImmediatePropagation()

	if e.Cancelable() {
		t.Error("event should not be cancelable")
	}
	if e.HasStopPropagation() || e.HasStopImmediatePropagation() {
		t.Error("non-cancelable event should ignore stop requests")
	}
}

func TestNewKeyEvent(t *testing.T) {
	down := NewKeyEvent(EventKeyDown, KeyRight, true, 0)
	if !down.Pressed || !down.Repeat || down.Key != KeyRight {
		t.Errorf("unexpected key down: %+v", down)
	}
	if down.Direction() != DirectionRight {
		t.Errorf("Direction = %v, want right", down.Direction())
	}

	up := NewKeyEvent(EventKeyUp, KeyRight, false, 0)
	if up.Pressed {
		t.Error("key up should not be pressed")
	}
	if up.Direction() != DirectionNone {
		t.Error("key up should not carry a navigation direction")
	}
}

func TestNowIsMonotonic(t *testing.T) {
	a := Now()
	b := Now()
	if b < a {
		t.Errorf("Now went backwards: %v then %v", a, b)
	}
}

func TestEnumStrings(t *testing.T) {
	if EventFocusIn.String() != "focusin" || EventType(200).String() != "unknown" {
		t.Error("EventType.String mismatch")
	}
	if DirectionLeft.String() != "left" || DirectionNone.String() != "none" {
		t.Error("Direction.String mismatch")
	}
	if SlotKeyDown.String() != "onKeyDown" {
		t.Error("Slot.String mismatch")
	}
	if Vertical.String() != "vertical" || Horizontal.String() != "horizontal" {
		t.Error("Orientation.String mismatch")
	}
}
