package lightsource

// Focus makes this node the active node of its scene. A node hosting a
// waypoint is first resolved down to a focusable leaf. Waypoints above the
// new active node are synchronized so later navigation continues from it.
// No-op when the node is detached or not focusable.
func (n *Node) Focus() {
	s := n.Scene()
	if s == nil {
		return
	}
	target := n
	if n.Waypoint != nil {
		target = resolveFocusTarget(n, DirectionNone)
	}
	if !target.Focusable || target.hasFocus {
		return
	}
	syncWaypoints(target)
	s.focus(target)
}

// Blur removes focus from this node. No-op if it does not have focus.
func (n *Node) Blur() {
	if !n.hasFocus {
		return
	}
	if s := n.Scene(); s != nil {
		s.blur(n)
		return
	}
	n.hasFocus = false
}

// ActiveNode returns the node that currently has focus, or nil.
func (s *Scene) ActiveNode() *Node {
	return s.active
}

// focus runs the focus sequence: blur the previous active node, mark node
// focused (unless a blur callback already focused another node), call its OnFocus and, unless that stopped propagation, bubble a
// focus-in event from node's parent.
func (s *Scene) focus(node *Node) {
	if node == nil || !node.Focusable || node.hasFocus {
		return
	}
	if prev := s.active; prev != nil && prev != node {
		s.blur(prev)
		// A blur callback that moved focus itself takes precedence.
		if s.active != nil || node.hasFocus {
			return
		}
	}

	node.hasFocus = true
	s.active = node

	ts := Now()
	event := NewEvent(EventFocus, node, true, ts)
	if fn := node.OnFocus; fn != nil {
		s.invoke(fn, event, node, SlotFocus)
	}
	if event.HasStopPropagation() {
		return
	}
	s.Bubble(node.Parent, NewEvent(EventFocusIn, node, true, ts), SlotFocusIn)
}

// blur runs the blur sequence: clear focus, unregister the active node, call
// OnBlur and, unless that stopped propagation, bubble a focus-out event from
// node's parent.
func (s *Scene) blur(node *Node) {
	if node == nil || !node.hasFocus {
		return
	}

	node.hasFocus = false
	if s.active == node {
		s.active = nil
	}

	ts := Now()
	event := NewEvent(EventBlur, node, true, ts)
	if fn := node.OnBlur; fn != nil {
		s.invoke(fn, event, node, SlotBlur)
	}
	if event.HasStopPropagation() {
		return
	}
	s.Bubble(node.Parent, NewEvent(EventFocusOut, node, true, ts), SlotFocusOut)
}
