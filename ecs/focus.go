package ecs

import (
	lightsource "github.com/lightsourceengine/LightSourceEngine-sub000"

	"github.com/yohamta/donburi"
)

// FocusState mirrors the focus of a lightsource node onto an ECS entity.
type FocusState struct {
	NodeName string
	Focused  bool
	LastKey  lightsource.Key
	Presses  int
}

// FocusComponent is the Donburi component holding FocusState.
var FocusComponent = donburi.NewComponentType[FocusState]()

// FocusTracker keeps one entity with a FocusComponent per lightsource
// EntityID, updated from InteractionEventType as events are processed.
type FocusTracker struct {
	entities map[uint32]donburi.Entity
}

// NewFocusTracker subscribes a tracker to world. Updates are applied when
// InteractionEventType.ProcessEvents runs.
func NewFocusTracker(world donburi.World) *FocusTracker {
	t := &FocusTracker{entities: make(map[uint32]donburi.Entity)}
	InteractionEventType.Subscribe(world, t.handle)
	return t
}

// Entity returns the entity tracking the node with the given EntityID.
func (t *FocusTracker) Entity(id uint32) (donburi.Entity, bool) {
	e, ok := t.entities[id]
	return e, ok
}

// Focused returns the state of the entity whose node currently has focus.
func (t *FocusTracker) Focused(world donburi.World) (*FocusState, bool) {
	for _, e := range t.entities {
		if !world.Valid(e) {
			continue
		}
		if state := FocusComponent.Get(world.Entry(e)); state.Focused {
			return state, true
		}
	}
	return nil, false
}

func (t *FocusTracker) handle(w donburi.World, ev lightsource.InteractionEvent) {
	if ev.EntityID == 0 {
		return
	}
	entity, ok := t.entities[ev.EntityID]
	if !ok || !w.Valid(entity) {
		entity = w.Create(FocusComponent)
		t.entities[ev.EntityID] = entity
	}

	state := FocusComponent.Get(w.Entry(entity))
	state.NodeName = ev.NodeName
	switch ev.Type {
	case lightsource.EventFocusIn:
		// Focus-out may have been stopped before reaching the scene.
		for id, other := range t.entities {
			if id != ev.EntityID && w.Valid(other) {
				FocusComponent.Get(w.Entry(other)).Focused = false
			}
		}
		state.Focused = true
	case lightsource.EventFocusOut:
		state.Focused = false
	case lightsource.EventKeyDown:
		state.LastKey = ev.Key
		if !ev.Repeat {
			state.Presses++
		}
	}
}
