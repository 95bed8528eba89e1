package lightsource

import (
	"fmt"
	"log/slog"
)

// Bubble delivers event to start and then each of its ancestors, invoking
// the callback stored in slot, innermost first. The walk stops as soon as a
// callback stops propagation. Afterwards the scene-level listeners and then
// the stage-level listeners receive the event, each only if propagation is
// still open. A nil start skips the tree walk.
//
// A panicking callback is logged and treated as if it returned normally.
func (s *Scene) Bubble(start *Node, event *Event, slot Slot) {
	for walker := start; walker != nil && !event.HasStopPropagation(); walker = walker.Parent {
		event.CurrentTarget = walker
		if fn := walker.handler(slot); fn != nil {
			s.invoke(fn, event, walker, slot)
		}
	}
	event.CurrentTarget = nil

	if event.HasStopPropagation() {
		return
	}
	s.deliver(event)

	if s.stage == nil || event.HasStopPropagation() {
		return
	}
	s.stage.deliver(event)
}

// invoke calls fn with event, isolating the caller from panics so a bad
// listener cannot break propagation for its ancestors.
func (s *Scene) invoke(fn func(*Event), event *Event, node *Node, slot Slot) {
	callSafely(s.logger, fn, event, node, slot)
}

// callSafely calls fn and logs a recovered panic instead of propagating it.
func callSafely(logger *slog.Logger, fn func(*Event), event *Event, node *Node, slot Slot) {
	defer func() {
		if r := recover(); r != nil {
			name := ""
			if node != nil {
				name = node.Name
			}
			logger.Error("callback panicked",
				"event", event.Type.String(),
				"slot", slot.String(),
				"node", name,
				"panic", fmt.Sprint(r),
			)
		}
	}()
	fn(event)
}
