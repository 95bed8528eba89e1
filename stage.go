package lightsource

import "log/slog"

// Default key repeat timing in ticks (60 TPS).
const (
	defaultRepeatDelay    = 30
	defaultRepeatInterval = 6
)

// Stage is the outermost container. It owns the current scene, the
// stage-level listeners that see every event not stopped below them, the
// input pipeline and the per-frame tweens.
type Stage struct {
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	scene    *Scene
	handlers handlerRegistry
	logger   *slog.Logger

	// Input
	input       inputSource
	inputBuf    []inputEvent
	injectQueue []inputEvent

	tweens          []*TweenGroup
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewStage creates a stage that polls ebiten input with DefaultMapping.
func NewStage() *Stage {
	return &Stage{
		ScreenshotDir: "screenshots",
		logger:        defaultLogger(),
		input:         newEbitenInput(DefaultMapping(), defaultRepeatDelay, defaultRepeatInterval),
	}
}

// SetScene makes s the stage's current scene, detaching the previous one.
func (st *Stage) SetScene(s *Scene) {
	if st.scene != nil {
		st.scene.stage = nil
	}
	st.scene = s
	if s != nil {
		s.stage = st
	}
}

// Scene returns the current scene, or nil.
func (st *Stage) Scene() *Scene {
	return st.scene
}

// SetLogger replaces the stage's logger. A nil logger restores the default.
func (st *Stage) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = defaultLogger()
	}
	st.logger = logger
}

// SetMapping replaces the device mapping and key repeat timing (in ticks).
func (st *Stage) SetMapping(m Mapping, repeatDelay, repeatInterval int) {
	st.input = newEbitenInput(m, repeatDelay, repeatInterval)
}

// On registers a stage-level listener for events of type t. Stage listeners
// run after the scene-level listeners and only for events nobody stopped.
func (st *Stage) On(t EventType, fn func(*Event)) CallbackHandle {
	return st.handlers.add(t, fn)
}

// deliver runs the stage-level listeners.
func (st *Stage) deliver(event *Event) {
	st.handlers.dispatch(event, st.logger)
}

// Animate adds g to the tweens advanced by Update. Finished groups are
// dropped automatically.
func (st *Stage) Animate(g *TweenGroup) {
	st.tweens = append(st.tweens, g)
}

// Update processes one frame: the test runner step, input and tweens.
// dt is the frame time in seconds.
func (st *Stage) Update(dt float32) {
	if st.testRunner != nil {
		st.testRunner.step(st)
	}
	st.processInput()
	st.updateTweens(dt)
}

func (st *Stage) updateTweens(dt float32) {
	kept := st.tweens[:0]
	for _, g := range st.tweens {
		g.Update(dt)
		if !g.Done {
			kept = append(kept, g)
		}
	}
	for i := len(kept); i < len(st.tweens); i++ {
		st.tweens[i] = nil
	}
	st.tweens = kept
}

// processInput dispatches one injected event if any are queued, otherwise
// every event the device source reports this frame.
func (st *Stage) processInput() {
	if st.processInjectedInput() {
		return
	}
	if st.input == nil {
		return
	}
	st.inputBuf = st.input.poll(st.inputBuf[:0])
	for _, ev := range st.inputBuf {
		st.dispatchInput(ev)
	}
}

// dispatchInput converts a device occurrence into an Event and dispatches it.
func (st *Stage) dispatchInput(ev inputEvent) {
	var event *Event
	switch ev.kind {
	case EventKeyDown, EventKeyUp:
		event = NewKeyEvent(ev.kind, ev.key, ev.repeat, Now())
		event.Modifiers = ev.modifiers
	default:
		event = NewEvent(ev.kind, nil, true, Now())
	}
	event.DeviceID = ev.device
	event.Button = ev.button
	st.Dispatch(event)
}

// Dispatch delivers an externally produced event. Key down events bubble
// through OnKeyDown from the active node (or the scene root when nothing
// has focus) and then, if the key is directional and no listener called
// StopImmediatePropagation, drive focus navigation. Key up events bubble
// through OnKeyUp. Device status events go to the scene and stage
// listeners only.
func (st *Stage) Dispatch(event *Event) {
	s := st.scene
	if s == nil {
		st.deliver(event)
		return
	}

	switch event.Type {
	case EventKeyDown:
		start := s.keyTarget()
		event.Target = start
		s.Bubble(start, event, SlotKeyDown)
		if dir := event.Direction(); dir != DirectionNone && !event.HasStopImmediatePropagation() {
			s.Navigate(dir, event)
		}
	case EventKeyUp:
		start := s.keyTarget()
		event.Target = start
		s.Bubble(start, event, SlotKeyUp)
	default:
		s.Bubble(nil, event, SlotNone)
	}
}

// keyTarget is where key events start bubbling.
func (s *Scene) keyTarget() *Node {
	if s.active != nil {
		return s.active
	}
	return s.root
}
