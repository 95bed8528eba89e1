package lightsource

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Navigate runs the capture phase for a directional input: it walks from
// the active node toward the root asking each waypoint to move in dir. The
// first waypoint that moves wins. A waypoint that handles dir but is at a
// boundary ends the walk; waypoints off dir's axis pass to their ancestors.
// Without a move the innermost waypoint's candidate is used. When a candidate is found the event is
// marked stopped, nested waypoints are resolved down to a focusable leaf
// and that leaf becomes the active node.
//
// Navigate is a no-op when nothing has focus, dir is DirectionNone or no
// waypoint in the ancestor chain yields a candidate. Malformed waypoint
// trees panic. event may be nil.
func (s *Scene) Navigate(dir Direction, event *Event) {
	active := s.active
	if active == nil || dir == DirectionNone {
		return
	}

	_, span := tracer.Start(context.Background(), "lightsource.navigate",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("scene.id", s.ID),
			attribute.String("direction", dir.String()),
			attribute.String("active", active.Name),
		),
	)
	defer span.End()
	defer func() {
		if r := recover(); r != nil {
			span.SetStatus(codes.Error, fmt.Sprint(r))
			restoreCursors(active)
			panic(r)
		}
	}()

	var candidate, saturated *Node
	for a := active; a != nil; a = a.Parent {
		if a.Waypoint == nil {
			continue
		}
		c, moved := a.Waypoint.Navigate(a, dir)
		if moved {
			candidate = c
			break
		}
		if saturated == nil && c != nil {
			saturated = c
		}
		if c != nil && handles(a.Waypoint, dir) {
			break
		}
	}

	moved := candidate != nil
	if candidate == nil {
		candidate = saturated
	}
	span.SetAttributes(attribute.Bool("moved", moved))
	if candidate == nil {
		return
	}

	if event != nil {
		event.StopPropagation()
	}

	target := resolveFocusTarget(candidate, dir)
	span.SetAttributes(attribute.String("target", target.Name))
	if s.debug {
		s.logger.Debug("navigate",
			"direction", dir.String(),
			"from", active.Name,
			"to", target.Name,
			"moved", moved,
		)
	}
	s.focus(target)
}

// axisWaypoint is implemented by waypoints that can tell a direction on
// their own axis from one they pass through. Waypoints without it always
// pass when they do not move.
type axisWaypoint interface {
	Handles(dir Direction) bool
}

func handles(w Waypoint, dir Direction) bool {
	aw, ok := w.(axisWaypoint)
	return ok && aw.Handles(dir)
}

// restoreCursors points the waypoints above active back at its branch after
// a failed navigation moved them. Errors from a second malformed waypoint
// are dropped; the original panic is the one reported.
func restoreCursors(active *Node) {
	defer func() { _ = recover() }()
	syncWaypoints(active)
}
