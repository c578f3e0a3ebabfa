package ecs

import (
	"github.com/phanxgames/folio"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for folio engine events.
// Subscribe to this in your ECS systems to receive section, hover and
// motion changes.
var InteractionEventType = events.NewEventType[folio.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Events are published to InteractionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) folio.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event folio.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
