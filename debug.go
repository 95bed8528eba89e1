package lightsource

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// defaultLogger writes text records to stderr tagged with the component name.
func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil)).With("component", "lightsource")
}

// debugLogger is used by node operations, which lack a Scene pointer.
var debugLogger = defaultLogger()

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode; in release mode callers
// skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("lightsource debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Warn("tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "node", n.Name)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		debugLogger.Warn("child count exceeds threshold",
			"node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}

// DumpTree writes an indented outline of the subtree rooted at n, marking
// focusable nodes, waypoint hosts and the focused node.
func DumpTree(w io.Writer, n *Node) error {
	var b strings.Builder
	dumpNode(&b, n, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

func dumpNode(b *strings.Builder, n *Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Name)
	if lw, ok := n.Waypoint.(*ListWaypoint); ok {
		fmt.Fprintf(b, " [%s list @%d]", lw.Orientation, lw.focalIndex)
	} else if n.Waypoint != nil {
		b.WriteString(" [waypoint]")
	}
	if n.Focusable {
		b.WriteString(" focusable")
	}
	if n.hasFocus {
		b.WriteString(" *")
	}
	b.WriteByte('\n')
	for _, child := range n.children {
		dumpNode(b, child, depth+1)
	}
}
