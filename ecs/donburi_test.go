package ecs

import (
	"testing"

	lightsource "github.com/lightsourceengine/LightSourceEngine-sub000"

	"github.com/yohamta/donburi"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []lightsource.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e lightsource.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(lightsource.InteractionEvent{
		Type:     lightsource.EventKeyDown,
		EntityID: 42,
		Key:      lightsource.KeyA,
	})
	store.EmitEvent(lightsource.InteractionEvent{
		Type:     lightsource.EventConnected,
		DeviceID: 3,
	})

	// Events are queued; process them.
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != lightsource.EventKeyDown || e.EntityID != 42 || e.Key != lightsource.KeyA {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != lightsource.EventConnected || e.DeviceID != 3 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_SceneFocusEvents(t *testing.T) {
	world := donburi.NewWorld()

	var received []lightsource.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e lightsource.InteractionEvent) {
		received = append(received, e)
	})

	scene := lightsource.NewScene()
	scene.SetEntityStore(NewDonburiStore(world))

	a := lightsource.NewFocusableBox("a")
	a.EntityID = 7
	b := lightsource.NewFocusableBox("b")
	scene.Root().AddChild(a)
	scene.Root().AddChild(b)

	a.Focus() // focusin reaches the scene: forwarded (EntityID 7)
	b.Focus() // focusout of a forwarded; focusin of b skipped (no EntityID)

	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d: %+v", len(received), received)
	}
	if received[0].Type != lightsource.EventFocusIn || received[0].EntityID != 7 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Type != lightsource.EventFocusOut || received[1].NodeName != "a" {
		t.Errorf("event 1: %+v", received[1])
	}
	if received[0].SceneID != scene.ID {
		t.Errorf("SceneID = %q, want %q", received[0].SceneID, scene.ID)
	}
}
