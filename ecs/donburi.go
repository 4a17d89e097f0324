// Package ecs provides ECS adapters for tween.
package ecs

import (
	"github.com/phanxgames/tween"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CompletionEventType is the Donburi event type for tween completion events.
// Subscribe to this in your ECS systems to react to animations finishing,
// being stopped, or losing their target.
var CompletionEventType = events.NewEventType[tween.CompletionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Completion events are published to CompletionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) tween.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) AnimationDone(event tween.CompletionEvent) {
	CompletionEventType.Publish(s.world, event)
}
