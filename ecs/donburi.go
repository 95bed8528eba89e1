package ecs

import (
	lightsource "github.com/lightsourceengine/LightSourceEngine-sub000"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for lightsource events.
// Subscribe to this in your ECS systems to receive focus, key and status events.
var InteractionEventType = events.NewEventType[lightsource.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are published to InteractionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) lightsource.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event lightsource.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
