package ecs

import (
	"testing"

	"github.com/phanxgames/tween"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_AnimationDone(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []tween.CompletionEvent
	CompletionEventType.Subscribe(world, func(w donburi.World, e tween.CompletionEvent) {
		received = append(received, e)
	})

	target := &tween.TimerHandle{}
	sink.AnimationDone(tween.CompletionEvent{Target: target, Kind: tween.KindTimer, Reason: tween.ReasonCompleted})
	sink.AnimationDone(tween.CompletionEvent{Target: target, Kind: tween.KindScalar, Reason: tween.ReasonStopped})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	CompletionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Reason != tween.ReasonCompleted || received[0].Kind != tween.KindTimer {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Reason != tween.ReasonStopped || received[1].Target != target {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink tween.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_FromScheduler(t *testing.T) {
	world := donburi.NewWorld()
	s := tween.NewScheduler(tween.Config{})
	s.SetEventSink(NewDonburiSink(world))

	var reasons []tween.Reason
	CompletionEventType.Subscribe(world, func(w donburi.World, e tween.CompletionEvent) {
		reasons = append(reasons, e.Reason)
	})

	node := tween.NewSprite("box", 10, 10)
	if _, err := s.AlphaTo(node, 1, 0, tween.NewParams(0.5)); err != nil {
		t.Fatal(err)
	}
	stopped := tween.NewSprite("other", 10, 10)
	if _, err := s.AlphaTo(stopped, 1, 0, tween.NewParams(10)); err != nil {
		t.Fatal(err)
	}
	s.Stop(stopped)

	s.Update(0.25)
	s.Update(0.25)
	events.ProcessAllEvents(world)

	if len(reasons) != 2 {
		t.Fatalf("expected 2 events, got %d (%v)", len(reasons), reasons)
	}
	if reasons[0] != tween.ReasonStopped || reasons[1] != tween.ReasonCompleted {
		t.Errorf("reasons = %v, want [stopped completed]", reasons)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	CompletionEventType.Subscribe(world, func(w donburi.World, e tween.CompletionEvent) {
		count1++
	})
	CompletionEventType.Subscribe(world, func(w donburi.World, e tween.CompletionEvent) {
		count2++
	})

	sink.AnimationDone(tween.CompletionEvent{Reason: tween.ReasonCompleted})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
