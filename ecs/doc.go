// Package ecs provides ECS adapters for lightsource's event system.
//
// The primary adapter is [NewDonburiStore], which bridges lightsource
// events (focus, key, device status) into a [Donburi] world as typed
// events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// Only events whose target node has a non-zero EntityID are forwarded,
// plus device status events which have no target.
//
// [FocusTracker] consumes those events and keeps a [FocusState] component
// per EntityID, so systems can query which entity has focus without
// touching the node tree.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
