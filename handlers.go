package lightsource

import "log/slog"

// --- Handler registry ---

type eventHandler struct {
	id uint32
	fn func(*Event)
}

// handlerRegistry holds scene-level or stage-level listeners per event type.
type handlerRegistry struct {
	byType map[EventType][]eventHandler
	nextID uint32
}

// CallbackHandle allows removing a registered scene-level or stage-level listener.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.byType[h.event] = removeHandler(h.reg.byType[h.event], h.id)
}

func removeHandler(s []eventHandler, id uint32) []eventHandler {
	for i := range s {
		if s[i].id == id {
			// Copy into a fresh slice so a dispatch loop iterating the old
			// slice is not disturbed by a listener removing itself.
			out := make([]eventHandler, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

func (r *handlerRegistry) add(t EventType, fn func(*Event)) CallbackHandle {
	if r.byType == nil {
		r.byType = make(map[EventType][]eventHandler)
	}
	r.nextID++
	id := r.nextID
	r.byType[t] = append(r.byType[t], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: t}
}

// dispatch calls every listener for event.Type in registration order until
// one of them stops immediate propagation.
func (r *handlerRegistry) dispatch(event *Event, logger *slog.Logger) {
	for _, h := range r.byType[event.Type] {
		callSafely(logger, h.fn, event, nil, SlotNone)
		if event.HasStopImmediatePropagation() {
			return
		}
	}
}

// count returns the number of listeners registered for t.
func (r *handlerRegistry) count(t EventType) int {
	return len(r.byType[t])
}
