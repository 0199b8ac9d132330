package ecs

import (
	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType carries routed key, wheel and pointer events of views
// that have an EntityID.
var InteractionEventType = events.NewEventType[arbor.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore returns an EntityStore that publishes to world. Events queue
// until InteractionEventType.ProcessEvents runs.
func NewDonburiStore(world donburi.World) arbor.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event arbor.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
