package lightsource

import "fmt"

// Waypoint owns directional navigation decisions for the focusable
// descendants of the node that declares it (the owner). Any type
// implementing both methods can be assigned to Node.Waypoint.
type Waypoint interface {
	// Navigate picks the next focus candidate for dir during the capture
	// phase. moved is false when the waypoint could not move in dir, either
	// because dir is not on its axis or because it is at a boundary; the
	// candidate is then the waypoint's current element.
	Navigate(owner *Node, dir Direction) (candidate *Node, moved bool)

	// Resolve synchronizes the waypoint's cursor with a candidate that is
	// about to receive focus and returns the node to activate. The result
	// must be focusable or host a nested waypoint, and must never be nil.
	Resolve(owner, candidate *Node, dir Direction) *Node
}

// resolveFocusTarget follows nested waypoints from candidate until it
// reaches a node without a waypoint. Panics if a waypoint returns nil or
// itself, or if the final node is not focusable; these are tree
// construction errors.
func resolveFocusTarget(candidate *Node, dir Direction) *Node {
	n := candidate
	for n.Waypoint != nil {
		// candidate is the owner itself here. Implementations needing to
		// know whether focus comes from outside check the active node.
		next := n.Waypoint.Resolve(n, n, dir)
		if next == nil {
			panic(fmt.Sprintf("lightsource: waypoint of %q resolved to nil", n.Name))
		}
		if next == n {
			if n.Focusable {
				return n
			}
			panic(fmt.Sprintf("lightsource: waypoint of %q resolved to its own non-focusable owner", n.Name))
		}
		n = next
	}
	if !n.Focusable {
		panic(fmt.Sprintf("lightsource: resolved node %q is not focusable", n.Name))
	}
	return n
}

// syncWaypoints tells every waypoint above node that focus has arrived
// explicitly, so their cursors point at the branch holding node.
func syncWaypoints(node *Node) {
	candidate := node
	for a := node.Parent; a != nil; a = a.Parent {
		if a.Waypoint == nil {
			continue
		}
		a.Waypoint.Resolve(a, candidate, DirectionNone)
		candidate = a
	}
}
