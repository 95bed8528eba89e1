package lightsource

import (
	"strings"
	"testing"
)

func countFocused(n *Node) int {
	count := 0
	if n.HasFocus() {
		count++
	}
	for _, c := range n.children {
		count += countFocused(c)
	}
	return count
}

func TestFocusSingleActiveNode(t *testing.T) {
	s := NewScene()
	buildGrid(s)

	for _, name := range []string{"a", "e", "c", "f", "f", "b"} {
		s.Root().Find(name).Focus()
		if got := countFocused(s.Root()); got != 1 {
			t.Fatalf("after focusing %s: %d focused nodes, want 1", name, got)
		}
		if s.ActiveNode().Name != name {
			t.Fatalf("active = %s, want %s", s.ActiveNode().Name, name)
		}
	}
	for _, dir := range []Direction{DirectionDown, DirectionRight, DirectionUp, DirectionLeft} {
		s.Navigate(dir, nil)
		if got := countFocused(s.Root()); got != 1 {
			t.Fatalf("after navigating %v: %d focused nodes, want 1", dir, got)
		}
	}
}

func TestFocusEventSequence(t *testing.T) {
	s := NewScene()
	row := NewBox("row")
	x := NewFocusableBox("x")
	y := NewFocusableBox("y")
	s.Root().AddChild(row)
	row.AddChild(x)
	row.AddChild(y)

	var log []string
	rec := func(tag string) func(*Event) {
		return func(e *Event) {
			log = append(log, tag+":"+e.Target.Name+"@"+e.CurrentTarget.Name)
		}
	}
	x.OnFocus = rec("focus")
	x.OnBlur = rec("blur")
	y.OnFocus = rec("focus")
	x.OnFocusIn = rec("focusin") // own slot, must not fire
	row.OnFocusIn = rec("focusin")
	row.OnFocusOut = rec("focusout")
	s.Root().OnFocusIn = rec("focusin")
	s.Root().OnFocusOut = rec("focusout")

	x.Focus()
	y.Focus()

	want := strings.Join([]string{
		"focus:x@x", "focusin:x@row", "focusin:x@root",
		"blur:x@x", "focusout:x@row", "focusout:x@root",
		"focus:y@y", "focusin:y@row", "focusin:y@root",
	}, " ")
	if got := strings.Join(log, " "); got != want {
		t.Errorf("events:\n got %s\nwant %s", got, want)
	}
}

func TestFocusSharedTimestamp(t *testing.T) {
	s := NewScene()
	btn := NewFocusableBox("btn")
	s.Root().AddChild(btn)

	var focusTS, focusInTS Event
	btn.OnFocus = func(e *Event) { focusTS = *e }
	s.Root().OnFocusIn = func(e *Event) { focusInTS = *e }
	btn.Focus()

	if focusTS.Timestamp != focusInTS.Timestamp {
		t.Errorf("focus %v and focusin %v should share a timestamp", focusTS.Timestamp, focusInTS.Timestamp)
	}
	if focusInTS.Type != EventFocusIn {
		t.Errorf("focusin type = %v", focusInTS.Type)
	}
}

func TestFocusStopSuppressesBubble(t *testing.T) {
	s := NewScene()
	btn := NewFocusableBox("btn")
	s.Root().AddChild(btn)

	var focusIn, focusOut, sceneHits int
	btn.OnFocus = func(e *Event) { e.StopPropagation() }
	btn.OnBlur = func(e *Event) { e.StopPropagation() }
	s.Root().OnFocusIn = func(*Event) { focusIn++ }
	s.Root().OnFocusOut = func(*Event) { focusOut++ }
	s.On(EventFocusIn, func(*Event) { sceneHits++ })
	s.On(EventFocusOut, func(*Event) { sceneHits++ })

	btn.Focus()
	btn.Blur()

	if focusIn != 0 || focusOut != 0 || sceneHits != 0 {
		t.Errorf("focusin=%d focusout=%d scene=%d, want all 0", focusIn, focusOut, sceneHits)
	}
	if btn.HasFocus() || s.ActiveNode() != nil {
		t.Error("stopping propagation must not cancel the focus change itself")
	}
}

func TestFocusNoOps(t *testing.T) {
	t.Run("detached", func(t *testing.T) {
		n := NewFocusableBox("n")
		n.Focus()
		if n.HasFocus() {
			t.Error("detached node should not take focus")
		}
	})
	t.Run("not focusable", func(t *testing.T) {
		s := NewScene()
		n := NewBox("n")
		s.Root().AddChild(n)
		n.Focus()
		if n.HasFocus() || s.ActiveNode() != nil {
			t.Error("non-focusable node should not take focus")
		}
	})
	t.Run("already focused", func(t *testing.T) {
		s := NewScene()
		n := NewFocusableBox("n")
		s.Root().AddChild(n)
		n.Focus()
		var calls int
		n.OnFocus = func(*Event) { calls++ }
		n.OnBlur = func(*Event) { calls++ }
		n.Focus()
		if calls != 0 {
			t.Errorf("re-focusing fired %d callbacks, want 0", calls)
		}
	})
	t.Run("blur unfocused", func(t *testing.T) {
		s := NewScene()
		n := NewFocusableBox("n")
		s.Root().AddChild(n)
		var calls int
		n.OnBlur = func(*Event) { calls++ }
		n.Blur()
		if calls != 0 {
			t.Error("Blur on an unfocused node should do nothing")
		}
	})
}

func TestBlurClearsActiveNode(t *testing.T) {
	s := NewScene()
	n := NewFocusableBox("n")
	s.Root().AddChild(n)
	n.Focus()

	var blurred bool
	n.OnBlur = func(e *Event) { blurred = e.Type == EventBlur }
	n.Blur()

	if !blurred || n.HasFocus() || s.ActiveNode() != nil {
		t.Error("Blur should fire OnBlur and clear the active node")
	}
}

func TestFocusWaypointHostResolvesToLeaf(t *testing.T) {
	s := NewScene()
	column, row1, row2 := buildGrid(s)

	column.Focus()
	if s.ActiveNode().Name != "a" {
		t.Fatalf("column.Focus() active = %s, want a", s.ActiveNode().Name)
	}

	row2.Waypoint.(*ListWaypoint).focalIndex = 2
	row2.Focus()
	if s.ActiveNode().Name != "f" {
		t.Fatalf("row2.Focus() active = %s, want f", s.ActiveNode().Name)
	}

	row1.Focus()
	if s.ActiveNode().Name != "a" {
		t.Errorf("row1.Focus() active = %s, want a", s.ActiveNode().Name)
	}
}

func TestFocusSynchronizesWaypoints(t *testing.T) {
	s := NewScene()
	column, _, row2 := buildGrid(s)

	s.Root().Find("e").Focus()

	if got := column.Waypoint.(*ListWaypoint).FocalIndex(); got != 1 {
		t.Errorf("column FocalIndex = %d, want 1", got)
	}
	if got := row2.Waypoint.(*ListWaypoint).FocalIndex(); got != 1 {
		t.Errorf("row2 FocalIndex = %d, want 1", got)
	}

	s.Navigate(DirectionLeft, nil)
	if s.ActiveNode().Name != "d" {
		t.Errorf("Left from e = %s, want d", s.ActiveNode().Name)
	}
}

func TestFocusFromCallback(t *testing.T) {
	s := NewScene()
	a := NewFocusableBox("a")
	b := NewFocusableBox("b")
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	a.OnFocus = func(*Event) { b.Focus() }
	a.Focus()

	if s.ActiveNode() != b {
		t.Errorf("active = %v, want b", s.ActiveNode().Name)
	}
	if got := countFocused(s.Root()); got != 1 {
		t.Errorf("%d focused nodes, want 1", got)
	}
}

func TestFocusFromBlurCallbacks(t *testing.T) {
	tests := []struct {
		name string
		hook func(a, group, z *Node)
	}{
		{"OnBlur", func(a, _, z *Node) {
			a.OnBlur = func(*Event) { z.Focus() }
		}},
		{"ancestor OnFocusOut", func(_, group, z *Node) {
			group.OnFocusOut = func(e *Event) {
				if e.Target.Name == "a" {
					z.Focus()
				}
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene()
			group := NewBox("group")
			a := NewFocusableBox("a")
			b := NewFocusableBox("b")
			z := NewFocusableBox("z")
			group.AddChild(a)
			s.Root().AddChild(group)
			s.Root().AddChild(b)
			s.Root().AddChild(z)
			a.Focus()
			tt.hook(a, group, z)

			var focused []string
			b.OnFocus = func(*Event) { focused = append(focused, "b") }
			z.OnFocus = func(*Event) { focused = append(focused, "z") }
			b.Focus()

			if s.ActiveNode() != z {
				t.Errorf("active = %v, want z", s.ActiveNode().Name)
			}
			if got := countFocused(s.Root()); got != 1 {
				t.Errorf("%d focused nodes, want 1", got)
			}
			if b.HasFocus() {
				t.Error("b should not keep focus")
			}
			if len(focused) != 1 || focused[0] != "z" {
				t.Errorf("OnFocus calls = %v, want [z]", focused)
			}
		})
	}
}

func TestFocusSameNodeFromBlurCallback(t *testing.T) {
	s := NewScene()
	a := NewFocusableBox("a")
	b := NewFocusableBox("b")
	s.Root().AddChild(a)
	s.Root().AddChild(b)
	a.Focus()

	a.OnBlur = func(*Event) { b.Focus() }
	calls := 0
	b.OnFocus = func(*Event) { calls++ }
	focusIn := 0
	s.Root().OnFocusIn = func(*Event) { focusIn++ }
	b.Focus()

	if s.ActiveNode() != b || calls != 1 || focusIn != 1 {
		t.Errorf("active = %v, OnFocus calls = %d, focus-in = %d; want b, 1, 1",
			s.ActiveNode().Name, calls, focusIn)
	}
}
