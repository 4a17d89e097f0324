// Package ecs provides ECS adapters for tween's completion events.
//
// The primary adapter is [NewDonburiSink], which bridges animation
// completions (finished, stopped, target disposed, panicked) into a
// [Donburi] world as typed events. Subscribe to [CompletionEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
