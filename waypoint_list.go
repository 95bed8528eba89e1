package lightsource

import "fmt"

// ListWaypoint navigates a linear group of children, horizontally or
// vertically. The focal path (one navigable node per child branch) is
// rebuilt on every call so tree mutations between calls are tolerated;
// the focal index persists as the memory of the last active element.
// Boundaries saturate and never wrap.
type ListWaypoint struct {
	Orientation Orientation

	focalIndex int
	focalPath  []*Node // reused buffer, valid only during a call
}

// NewListWaypoint creates a list waypoint with the given orientation.
func NewListWaypoint(o Orientation) *ListWaypoint {
	return &ListWaypoint{Orientation: o}
}

// NewHorizontalWaypoint creates a list waypoint moving on Left/Right.
func NewHorizontalWaypoint() *ListWaypoint {
	return NewListWaypoint(Horizontal)
}

// NewVerticalWaypoint creates a list waypoint moving on Up/Down.
func NewVerticalWaypoint() *ListWaypoint {
	return NewListWaypoint(Vertical)
}

// FocalIndex returns the index of the element the waypoint currently points at.
func (w *ListWaypoint) FocalIndex() int {
	return w.focalIndex
}

// Navigate implements Waypoint.
func (w *ListWaypoint) Navigate(owner *Node, dir Direction) (*Node, bool) {
	path := w.sync(owner)
	offset := w.offset(dir)
	if offset == 0 {
		return path[w.focalIndex], false
	}
	next := w.focalIndex + offset
	if next < 0 || next >= len(path) {
		return path[w.focalIndex], false
	}
	w.focalIndex = next
	return path[next], true
}

// Resolve implements Waypoint.
func (w *ListWaypoint) Resolve(owner, candidate *Node, dir Direction) *Node {
	path := w.sync(owner)

	if dir == DirectionNone {
		for i, n := range path {
			if n == candidate {
				w.focalIndex = i
				return n
			}
		}
		return path[w.focalIndex]
	}

	if w.offset(dir) == 0 && !focusInside(owner) {
		switch dir {
		case DirectionDown, DirectionRight:
			w.focalIndex = 0
		default:
			w.focalIndex = len(path) - 1
		}
	}

	return path[w.focalIndex]
}

// offset maps dir to a cursor step, or 0 when dir is off this list's axis.
// Handles reports whether dir runs along the list's orientation. Navigation
// saturated on its own axis is not offered to ancestor waypoints.
func (w *ListWaypoint) Handles(dir Direction) bool {
	return w.offset(dir) != 0
}

func (w *ListWaypoint) offset(dir Direction) int {
	if w.Orientation == Horizontal {
		switch dir {
		case DirectionLeft:
			return -1
		case DirectionRight:
			return 1
		}
		return 0
	}
	switch dir {
	case DirectionUp:
		return -1
	case DirectionDown:
		return 1
	}
	return 0
}

// sync rebuilds the focal path from owner's children and clamps the focal
// index into it. Panics when no child branch holds a navigable node.
func (w *ListWaypoint) sync(owner *Node) []*Node {
	w.focalPath = w.focalPath[:0]
	for _, child := range owner.children {
		if n := firstNavigable(child); n != nil {
			w.focalPath = append(w.focalPath, n)
		}
	}
	if len(w.focalPath) == 0 {
		panic(fmt.Sprintf("lightsource: waypoint owner %q has no focusable children", owner.Name))
	}
	if w.focalIndex >= len(w.focalPath) {
		w.focalIndex = len(w.focalPath) - 1
	} else if w.focalIndex < 0 {
		w.focalIndex = 0
	}
	return w.focalPath
}

// firstNavigable returns the first node in a depth-first pre-order walk of
// n's subtree that is focusable or hosts a waypoint. The walk does not
// descend below such a node.
func firstNavigable(n *Node) *Node {
	if n.Focusable || n.Waypoint != nil {
		return n
	}
	for _, child := range n.children {
		if found := firstNavigable(child); found != nil {
			return found
		}
	}
	return nil
}

// focusInside reports whether the scene's active node lies within owner.
func focusInside(owner *Node) bool {
	s := owner.Scene()
	return s != nil && s.active != nil && owner.Contains(s.active)
}
