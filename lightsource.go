package lightsource

// Direction is a navigation direction produced by directional input.
type Direction uint8

const (
	DirectionNone  Direction = iota // no direction; explicit focus() calls
	DirectionUp                     // toward the previous element of a vertical list
	DirectionDown                   // toward the next element of a vertical list
	DirectionLeft                   // toward the previous element of a horizontal list
	DirectionRight                  // toward the next element of a horizontal list
)

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// Orientation is the axis a list waypoint moves along.
type Orientation uint8

const (
	Horizontal Orientation = iota // Left/Right move, Up/Down pass
	Vertical                      // Up/Down move, Left/Right pass
)

// String returns the lower-case name of the orientation.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// NodeType distinguishes what a Node hands to the renderer.
type NodeType uint8

const (
	NodeTypeBox   NodeType = iota // layout container, optionally focusable
	NodeTypeImage                 // image referenced by Src
	NodeTypeText                  // text content in Text
	NodeTypeRoot                  // scene root, created by NewScene
)

// EventType identifies a kind of event.
type EventType uint8

const (
	EventFocus        EventType = iota // delivered to the node gaining focus
	EventBlur                          // delivered to the node losing focus
	EventFocusIn                       // bubbles from the parent of the node gaining focus
	EventFocusOut                      // bubbles from the parent of the node losing focus
	EventKeyDown                       // mapped key or button pressed (or repeated)
	EventKeyUp                         // mapped key or button released
	EventConnected                     // input device connected
	EventDisconnected                  // input device disconnected
)

var eventTypeNames = [...]string{
	EventFocus:        "focus",
	EventBlur:         "blur",
	EventFocusIn:      "focusin",
	EventFocusOut:     "focusout",
	EventKeyDown:      "keydown",
	EventKeyUp:        "keyup",
	EventConnected:    "connected",
	EventDisconnected: "disconnected",
}

// String returns the DOM-style name of the event type.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Slot names a per-node callback slot invoked during bubble dispatch.
type Slot uint8

const (
	SlotNone     Slot = iota // no node callback; only scene and stage listeners
	SlotFocus                // Node.OnFocus
	SlotBlur                 // Node.OnBlur
	SlotFocusIn              // Node.OnFocusIn
	SlotFocusOut             // Node.OnFocusOut
	SlotKeyDown              // Node.OnKeyDown
	SlotKeyUp                // Node.OnKeyUp
)

var slotNames = [...]string{
	SlotNone:     "none",
	SlotFocus:    "onFocus",
	SlotBlur:     "onBlur",
	SlotFocusIn:  "onFocusIn",
	SlotFocusOut: "onFocusOut",
	SlotKeyDown:  "onKeyDown",
	SlotKeyUp:    "onKeyUp",
}

func (s Slot) String() string {
	if int(s) < len(slotNames) {
		return slotNames[s]
	}
	return "unknown"
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
