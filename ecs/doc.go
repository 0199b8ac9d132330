// Package ecs forwards arbor input to a [Donburi] world.
//
// Give a view an EntityID and every key press it receives, wheel movement
// over it, and press, drag or release it captures is published to
// [InteractionEventType] after the scene has routed it. The event carries
// Handled, so a system can tell a drag that scrolled a list from one nothing
// consumed.
//
//	scene.SetEntityStore(ecs.NewDonburiStore(world))
//	row.EntityID = uint32(entity.Id())
//
//	ecs.InteractionEventType.Subscribe(world, func(w donburi.World, ev arbor.InteractionEvent) {
//		if ev.Type == arbor.EventDragEnd {
//			// drop the dragged entity
//		}
//	})
//
// Call InteractionEventType.ProcessEvents(world) once per frame to deliver
// the queue. Views left at EntityID 0 never publish.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
