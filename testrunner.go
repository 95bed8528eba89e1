package lightsource

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Node   string `json:"node,omitempty"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`

	key Key // parsed from Key at load time
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected key input and focus expectations across
// frames for automated navigation testing. Attach to a Stage via
// SetTestRunner.
//
// Actions: "press", "keydown", "keyup" (key), "wait" (frames),
// "focus" (node), "expectFocus" (node, empty for no focus) and
// "screenshot" (label, captured after the frame is drawn by Run).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Stage via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		switch st.Action {
		case "press", "keydown", "keyup":
			k, err := ParseKey(st.Key)
			if err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
			st.key = k
		case "focus":
			if st.Node == "" {
				return nil, fmt.Errorf("parse test script: step %d: focus requires a node", i)
			}
		case "wait", "expectFocus", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the stage. The runner's step method
// is called from Stage.Update before input processing each frame.
func (st *Stage) SetTestRunner(runner *TestRunner) {
	st.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the expectation mismatches recorded so far.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// step advances the test runner by one frame. Called from Stage.Update.
func (r *TestRunner) step(st *Stage) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(st.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	step := r.steps[r.cursor]
	r.cursor++

	switch step.Action {
	case "press":
		st.InjectKeyPress(step.key)
	case "keydown":
		st.InjectKeyDown(step.key)
	case "keyup":
		st.InjectKeyUp(step.key)
	case "wait":
		if step.Frames > 0 {
			r.waitCount = step.Frames - 1 // this frame counts as one
		}
	case "focus":
		r.focus(st, step)
	case "expectFocus":
		r.expectFocus(st, step)
	case "screenshot":
		st.Screenshot(step.Label)
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(st.injectQueue) == 0 {
		r.done = true
	}
}

func (r *TestRunner) focus(st *Stage, step testStep) {
	s := st.Scene()
	if s == nil {
		r.failf(step, "no scene")
		return
	}
	n := s.Root().Find(step.Node)
	if n == nil {
		r.failf(step, "node %q not found", step.Node)
		return
	}
	n.Focus()
}

func (r *TestRunner) expectFocus(st *Stage, step testStep) {
	var active *Node
	if s := st.Scene(); s != nil {
		active = s.ActiveNode()
	}
	got := ""
	if active != nil {
		got = active.Name
	}
	if got != step.Node {
		r.failf(step, "focus = %q, want %q", got, step.Node)
	}
}

func (r *TestRunner) failf(step testStep, format string, args ...any) {
	msg := fmt.Sprintf("step %d (%s): ", r.cursor-1, step.Action) + fmt.Sprintf(format, args...)
	r.failures = append(r.failures, msg)
}
