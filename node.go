package lightsource

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic; dispatch is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the fundamental scene graph element. A single flat struct is used
// for all node types; the renderer reads Type and the presentation fields.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy. Parent is a non-owning back-reference; children are owned.
	Parent   *Node
	children []*Node

	// scene is only set on the root node created by NewScene.
	scene *Scene

	// Focus
	Focusable bool
	hasFocus  bool

	// Waypoint, when set, owns directional navigation among this node's
	// focusable descendants.
	Waypoint Waypoint

	// Presentation (consumed by the renderer, animated by tweens)
	X, Y   float64
	ScaleX float64
	ScaleY float64
	Alpha  float64
	Src    string // NodeTypeImage
	Text   string // NodeTypeText

	// Metadata
	UserData any
	EntityID uint32

	// Per-node callbacks (nil by default). Callbacks may reassign or clear
	// any slot, including their own, while running.
	OnFocus    func(*Event)
	OnBlur     func(*Event)
	OnFocusIn  func(*Event)
	OnFocusOut func(*Event)
	OnKeyDown  func(*Event)
	OnKeyUp    func(*Event)

	// Internal
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
}

// NewBox creates a box node, the generic container. Set Focusable or
// Waypoint to make it take part in navigation.
func NewBox(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeBox}
	nodeDefaults(n)
	return n
}

// NewFocusableBox creates a box node with Focusable set.
func NewFocusableBox(name string) *Node {
	n := NewBox(name)
	n.Focusable = true
	return n
}

// NewImage creates an image node for the given source URI.
func NewImage(name string, src string) *Node {
	n := &Node{Name: name, Type: NodeTypeImage, Src: src}
	nodeDefaults(n)
	return n
}

// NewText creates a text node with the given content.
func NewText(name string, text string) *Node {
	n := &Node{Name: name, Type: NodeTypeText, Text: text}
	nodeDefaults(n)
	return n
}

// handler returns the callback stored in slot, or nil.
func (n *Node) handler(slot Slot) func(*Event) {
	switch slot {
	case SlotFocus:
		return n.OnFocus
	case SlotBlur:
		return n.OnBlur
	case SlotFocusIn:
		return n.OnFocusIn
	case SlotFocusOut:
		return n.OnFocusOut
	case SlotKeyDown:
		return n.OnKeyDown
	case SlotKeyUp:
		return n.OnKeyUp
	}
	return nil
}

// Scene returns the scene this node is attached to, or nil when the node is
// not part of a scene tree.
func (n *Node) Scene() *Scene {
	root := n
	for root.Parent != nil {
		root = root.Parent
	}
	return root.scene
}

// HasFocus reports whether this node is the active node of its scene.
func (n *Node) HasFocus() bool {
	return n.hasFocus
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	return other != nil && isAncestor(n, other)
}

// Find returns the first node named name in a depth-first pre-order walk of
// this subtree, including n itself.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("lightsource: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("lightsource: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.detach(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("lightsource: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("lightsource: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.detach(child)
	}
	if index < 0 || index > len(n.children) {
		panic("lightsource: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node. If the active node of the
// scene is inside child's subtree it is blurred first.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("lightsource: child's parent is not this node")
	}
	n.detach(child)
	child.Parent = nil
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChildAt")
	}
	if index < 0 || index >= len(n.children) {
		panic("lightsource: child index out of range")
	}
	child := n.children[index]
	n.detach(child)
	child.Parent = nil
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for len(n.children) > 0 {
		n.RemoveChildAt(len(n.children) - 1)
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetChildIndex moves child to a new index among its siblings.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child.Parent != n {
		panic("lightsource: child's parent is not this node")
	}
	nc := len(n.children)
	if index < 0 || index >= nc {
		panic("lightsource: child index out of range")
	}
	oldIndex := -1
	for i, c := range n.children {
		if c == child {
			oldIndex = i
			break
		}
	}
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. A focused node is blurred first.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	if n.Parent != nil {
		n.RemoveFromParent()
	} else if s := n.scene; s != nil && s.active != nil && n.Contains(s.active) {
		s.blur(s.active)
	}
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.scene = nil
	n.hasFocus = false
	n.Waypoint = nil
	n.UserData = nil
	n.OnFocus = nil
	n.OnBlur = nil
	n.OnFocusIn = nil
	n.OnFocusOut = nil
	n.OnKeyDown = nil
	n.OnKeyUp = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// detach blurs the scene's active node if it lives under child, then
// removes child from n.children without clearing child.Parent.
func (n *Node) detach(child *Node) {
	if s := n.Scene(); s != nil && s.active != nil && child.Contains(s.active) {
		s.blur(s.active)
	}
	n.removeChildByPtr(child)
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
