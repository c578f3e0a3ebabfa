// Package ecs provides ECS adapters for folio's engine events.
//
// The primary adapter is [NewDonburiStore], which bridges folio state
// changes (active section, hover, suppression, reduced motion) into a
// [Donburi] world as typed events. Subscribe to [InteractionEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	engine.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
