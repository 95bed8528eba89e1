package lightsource

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key is a mapped input key. Keyboard keys and standard gamepad buttons are
// translated to Keys by a Mapping, so application code sees one vocabulary
// regardless of the device.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyA // confirm
	KeyB // back
	KeyX
	KeyY
	KeyL1
	KeyR1
	KeyL2
	KeyR2
	KeyL3
	KeyR3
	KeySelect
	KeyStart
	KeyHome
)

var keyNames = [...]string{
	KeyNone:   "none",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyA:      "a",
	KeyB:      "b",
	KeyX:      "x",
	KeyY:      "y",
	KeyL1:     "l1",
	KeyR1:     "r1",
	KeyL2:     "l2",
	KeyR2:     "r2",
	KeyL3:     "l3",
	KeyR3:     "r3",
	KeySelect: "select",
	KeyStart:  "start",
	KeyHome:   "home",
}

// String returns the lower-case name of the key.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// Direction returns the navigation direction of a d-pad key, or DirectionNone.
func (k Key) Direction() Direction {
	switch k {
	case KeyUp:
		return DirectionUp
	case KeyDown:
		return DirectionDown
	case KeyLeft:
		return DirectionLeft
	case KeyRight:
		return DirectionRight
	}
	return DirectionNone
}

// ParseKey returns the Key with the given case-insensitive name.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == name && Key(k) != KeyNone {
			return Key(k), nil
		}
	}
	return KeyNone, fmt.Errorf("parse key: unknown key %q", name)
}

// --- Mapping ---

// KeyBinding maps a keyboard key to a Key.
type KeyBinding struct {
	Key    ebiten.Key
	Mapped Key
}

// ButtonBinding maps a standard gamepad button to a Key.
type ButtonBinding struct {
	Button ebiten.StandardGamepadButton
	Mapped Key
}

// Mapping translates device input into Keys. Bindings are polled in order.
type Mapping struct {
	Keyboard []KeyBinding
	Gamepad  []ButtonBinding
}

// DefaultMapping returns arrow keys plus Enter/Escape style bindings for the
// keyboard and the standard layout for gamepads.
func DefaultMapping() Mapping {
	return Mapping{
		Keyboard: []KeyBinding{
			{ebiten.KeyArrowUp, KeyUp},
			{ebiten.KeyArrowDown, KeyDown},
			{ebiten.KeyArrowLeft, KeyLeft},
			{ebiten.KeyArrowRight, KeyRight},
			{ebiten.KeyEnter, KeyA},
			{ebiten.KeyZ, KeyA},
			{ebiten.KeyEscape, KeyB},
			{ebiten.KeyBackspace, KeyB},
			{ebiten.KeyX, KeyX},
			{ebiten.KeyC, KeyY},
			{ebiten.KeyQ, KeyL1},
			{ebiten.KeyE, KeyR1},
			{ebiten.KeyShiftRight, KeySelect},
			{ebiten.KeySpace, KeyStart},
			{ebiten.KeyHome, KeyHome},
		},
		Gamepad: []ButtonBinding{
			{ebiten.StandardGamepadButtonLeftTop, KeyUp},
			{ebiten.StandardGamepadButtonLeftBottom, KeyDown},
			{ebiten.StandardGamepadButtonLeftLeft, KeyLeft},
			{ebiten.StandardGamepadButtonLeftRight, KeyRight},
			{ebiten.StandardGamepadButtonRightBottom, KeyA},
			{ebiten.StandardGamepadButtonRightRight, KeyB},
			{ebiten.StandardGamepadButtonRightLeft, KeyX},
			{ebiten.StandardGamepadButtonRightTop, KeyY},
			{ebiten.StandardGamepadButtonFrontTopLeft, KeyL1},
			{ebiten.StandardGamepadButtonFrontTopRight, KeyR1},
			{ebiten.StandardGamepadButtonFrontBottomLeft, KeyL2},
			{ebiten.StandardGamepadButtonFrontBottomRight, KeyR2},
			{ebiten.StandardGamepadButtonLeftStick, KeyL3},
			{ebiten.StandardGamepadButtonRightStick, KeyR3},
			{ebiten.StandardGamepadButtonCenterLeft, KeySelect},
			{ebiten.StandardGamepadButtonCenterRight, KeyStart},
			{ebiten.StandardGamepadButtonCenterCenter, KeyHome},
		},
	}
}

// KeyboardDeviceID is the DeviceID reported for keyboard events. Gamepad
// events carry their ebiten.GamepadID.
const KeyboardDeviceID = -1

// --- Polling ---

// inputEvent is one device occurrence before it becomes an Event.
type inputEvent struct {
	kind      EventType // EventKeyDown, EventKeyUp, EventConnected, EventDisconnected
	key       Key
	repeat    bool
	device    int
	button    int
	modifiers KeyModifiers
}

// inputSource produces the device events of one frame.
type inputSource interface {
	poll(buf []inputEvent) []inputEvent
}

// ebitenInput polls keyboard and gamepads through ebiten. It must only be
// polled from inside the ebiten game loop.
type ebitenInput struct {
	mapping        Mapping
	repeatDelay    int // ticks a key must be held before repeating
	repeatInterval int // ticks between repeats
	gamepads       []ebiten.GamepadID
	connected      []ebiten.GamepadID
}

func newEbitenInput(mapping Mapping, repeatDelay, repeatInterval int) *ebitenInput {
	return &ebitenInput{
		mapping:        mapping,
		repeatDelay:    repeatDelay,
		repeatInterval: repeatInterval,
	}
}

func (in *ebitenInput) poll(buf []inputEvent) []inputEvent {
	mods := readModifiers()

	for _, b := range in.mapping.Keyboard {
		ev := inputEvent{key: b.Mapped, device: KeyboardDeviceID, button: int(b.Key), modifiers: mods}
		switch {
		case inpututil.IsKeyJustPressed(b.Key):
			ev.kind = EventKeyDown
		case inpututil.IsKeyJustReleased(b.Key):
			ev.kind = EventKeyUp
		case isRepeat(inpututil.KeyPressDuration(b.Key), in.repeatDelay, in.repeatInterval):
			ev.kind = EventKeyDown
			ev.repeat = true
		default:
			continue
		}
		buf = append(buf, ev)
	}

	in.connected = inpututil.AppendJustConnectedGamepadIDs(in.connected[:0])
	for _, id := range in.connected {
		buf = append(buf, inputEvent{kind: EventConnected, device: int(id)})
		in.gamepads = append(in.gamepads, id)
	}

	kept := in.gamepads[:0]
	for _, id := range in.gamepads {
		if inpututil.IsGamepadJustDisconnected(id) {
			buf = append(buf, inputEvent{kind: EventDisconnected, device: int(id)})
			continue
		}
		kept = append(kept, id)
	}
	in.gamepads = kept

	for _, id := range in.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range in.mapping.Gamepad {
			ev := inputEvent{key: b.Mapped, device: int(id), button: int(b.Button), modifiers: mods}
			switch {
			case inpututil.IsStandardGamepadButtonJustPressed(id, b.Button):
				ev.kind = EventKeyDown
			case inpututil.IsStandardGamepadButtonJustReleased(id, b.Button):
				ev.kind = EventKeyUp
			case isRepeat(inpututil.StandardGamepadButtonPressDuration(id, b.Button), in.repeatDelay, in.repeatInterval):
				ev.kind = EventKeyDown
				ev.repeat = true
			default:
				continue
			}
			buf = append(buf, ev)
		}
	}

	return buf
}

// isRepeat reports whether a key held for duration ticks fires a repeat
// this tick. The first repeat fires after delay ticks, then every interval.
func isRepeat(duration, delay, interval int) bool {
	if interval <= 0 || duration <= delay {
		return false
	}
	return (duration-delay)%interval == 0
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}
