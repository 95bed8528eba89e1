package lightsource

import (
	"log/slog"

	"github.com/google/uuid"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, events delivered to the scene for nodes with a
// non-zero EntityID (and all device status events) are forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent is a value copy of a delivered event for the ECS bridge.
// It holds no node pointers so it can be queued safely.
type InteractionEvent struct {
	Type      EventType
	SceneID   string
	EntityID  uint32
	NodeName  string
	Key       Key
	Repeat    bool
	Modifiers KeyModifiers
	DeviceID  int
	Timestamp int64 // nanoseconds, see Event.Timestamp
}

// Scene owns a node tree and its active node registry. It is the
// scene-level collaborator of bubble dispatch.
type Scene struct {
	// ID uniquely identifies the scene in logs, traces and ECS events.
	ID string

	root   *Node
	active *Node
	stage  *Stage
	store  EntityStore
	debug  bool
	logger *slog.Logger

	handlers handlerRegistry
}

// NewScene creates a new scene with a pre-created root node.
func NewScene() *Scene {
	root := &Node{Name: "root", Type: NodeTypeRoot}
	nodeDefaults(root)
	s := &Scene{
		ID:     uuid.NewString(),
		root:   root,
		logger: defaultLogger(),
	}
	root.scene = s
	return s
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Stage returns the stage the scene is attached to, or nil.
func (s *Scene) Stage() *Stage {
	return s.stage
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetLogger replaces the scene's logger. A nil logger restores the default.
func (s *Scene) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = defaultLogger()
	}
	s.logger = logger
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and each
// navigation is logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// On registers a scene-level listener for events of type t that were not
// stopped while bubbling through the tree.
func (s *Scene) On(t EventType, fn func(*Event)) CallbackHandle {
	return s.handlers.add(t, fn)
}

// deliver runs the scene-level listeners and the ECS bridge.
func (s *Scene) deliver(event *Event) {
	s.handlers.dispatch(event, s.logger)
	s.emitInteractionEvent(event)
}

// --- ECS bridge ---

func (s *Scene) emitInteractionEvent(event *Event) {
	if s.store == nil {
		return
	}
	status := event.Type == EventConnected || event.Type == EventDisconnected
	if !status && (event.Target == nil || event.Target.EntityID == 0) {
		return
	}
	ie := InteractionEvent{
		Type:      event.Type,
		SceneID:   s.ID,
		Key:       event.Key,
		Repeat:    event.Repeat,
		Modifiers: event.Modifiers,
		DeviceID:  event.DeviceID,
		Timestamp: int64(event.Timestamp),
	}
	if event.Target != nil {
		ie.EntityID = event.Target.EntityID
		ie.NodeName = event.Target.Name
	}
	s.store.EmitEvent(ie)
}
