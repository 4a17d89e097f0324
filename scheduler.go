package tween

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"
)

// Config configures a Scheduler. The zero value is ready to use.
type Config struct {
	// Debug enables per-tick stats on Output.
	Debug bool
	// Output receives warnings and debug stats. Defaults to os.Stderr.
	Output io.Writer
	// Seed seeds the random source used by shake tweens. Zero picks a fixed
	// default so runs are reproducible.
	Seed uint64
	// Capacity preallocates the active list.
	Capacity int
}

const (
	defaultCapacity = 64
	defaultSeed     = 0x7477656e
)

// CompletionEvent describes an animation leaving the scheduler.
type CompletionEvent struct {
	Target Target
	Kind   Kind
	Reason Reason
}

// EventSink observes animations leaving a Scheduler, whatever the reason.
type EventSink interface {
	AnimationDone(event CompletionEvent)
}

// Scheduler owns the active animations and advances them once per frame.
// It is not safe for concurrent use: Update, the constructors and the
// Pause/Stop family must all be called from the same goroutine.
type Scheduler struct {
	anims    []*Animation
	paused   bool
	updating bool
	dirty    bool
	closed   bool

	sink  EventSink
	rng   *rand.Rand
	out   io.Writer
	debug bool
}

// NewScheduler creates an empty, running scheduler.
func NewScheduler(cfg Config) *Scheduler {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	return &Scheduler{
		anims: make([]*Animation, 0, capacity),
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		out:   out,
		debug: cfg.Debug,
	}
}

// SetEventSink sets the optional observer notified of every removal.
func (s *Scheduler) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables per-tick stats.
func (s *Scheduler) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Update advances, in registration order, every animation that was active
// when the tick started. Animations registered during the tick (for example
// from an OnComplete callback) first advance on the next tick. Finished and
// stopped animations are removed at the end of the tick, as are paused ones
// whose target was disposed. A globally paused scheduler does nothing.
func (s *Scheduler) Update(dt float64) {
	if s.paused || s.closed || len(s.anims) == 0 {
		return
	}
	if dt < 0 || !finite(dt) {
		dt = 0
	}

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.updating = true
	n := len(s.anims)
	for i := 0; i < n && !s.closed; i++ {
		a := s.anims[i]
		if a.removed {
			continue
		}
		if a.state == StatePaused && !targetGone(a) {
			continue
		}
		stats.advanced++
		if s.advance(a, dt) {
			a.removed = true
			s.dirty = true
		}
	}
	s.updating = false

	if s.debug {
		stats.active = len(s.anims)
	}
	stats.removed = s.compact()

	if s.debug {
		stats.tickTime = time.Since(t0)
		s.debugLog(stats)
	}
}

// advance runs one animation, converting a panic into removal.
func (s *Scheduler) advance(a *Animation, dt float64) (done bool) {
	defer func() {
		if r := recover(); r != nil {
			s.warnf("%s animation on %v panicked: %v", a.kind, a.target, r)
			a.finish(ReasonPanicked)
			done = true
		}
	}()
	return a.Advance(dt)
}

// compact drops removed animations, keeping order, and notifies the sink.
func (s *Scheduler) compact() int {
	if !s.dirty {
		return 0
	}
	s.dirty = false
	kept := s.anims[:0]
	var gone []*Animation
	for _, a := range s.anims {
		if a.removed {
			gone = append(gone, a)
			continue
		}
		kept = append(kept, a)
	}
	for i := len(kept); i < len(s.anims); i++ {
		s.anims[i] = nil
	}
	s.anims = kept
	if s.sink != nil {
		for _, a := range gone {
			s.sink.AnimationDone(CompletionEvent{Target: a.target, Kind: a.kind, Reason: a.reason})
		}
	}
	return len(gone)
}

// register adds a configured animation to the active list.
func (s *Scheduler) register(a *Animation) error {
	if s.closed {
		return ErrClosed
	}
	s.anims = append(s.anims, a)
	if s.debug {
		debugCheckActiveCount(s)
	}
	return nil
}

// Pause suspends (true) or resumes (false) every animation bound to target.
func (s *Scheduler) Pause(target Target, paused bool) {
	for _, a := range s.anims {
		if !a.removed && a.target == target {
			a.Pause(paused)
		}
	}
}

// Stop removes every animation bound to target without firing OnComplete.
// Animations on other targets are unaffected.
func (s *Scheduler) Stop(target Target) {
	for _, a := range s.anims {
		if !a.removed && a.target == target {
			s.stop(a)
		}
	}
	if !s.updating {
		s.compact()
	}
}

// StopAnimation removes a single animation without firing OnComplete.
func (s *Scheduler) StopAnimation(a *Animation) {
	if a == nil || a.removed {
		return
	}
	for _, b := range s.anims {
		if b == a {
			s.stop(a)
			break
		}
	}
	if !s.updating {
		s.compact()
	}
}

func (s *Scheduler) stop(a *Animation) {
	a.finish(ReasonStopped)
	a.removed = true
	s.dirty = true
}

// IsRunning reports whether any animation bound to target is running (not
// paused and not finished).
func (s *Scheduler) IsRunning(target Target) bool {
	for _, a := range s.anims {
		if !a.removed && a.target == target && a.state == StateRunning {
			return true
		}
	}
	return false
}

// PauseAll suspends (true) or resumes (false) the whole scheduler. Individual
// animation states are left untouched.
func (s *Scheduler) PauseAll(paused bool) {
	s.paused = paused
}

// Paused reports whether the scheduler is globally paused.
func (s *Scheduler) Paused() bool {
	return s.paused
}

// Len returns the number of active animations.
func (s *Scheduler) Len() int {
	n := 0
	for _, a := range s.anims {
		if !a.removed {
			n++
		}
	}
	return n
}

// Animations returns the active animations in registration order. The slice
// is a copy.
func (s *Scheduler) Animations() []*Animation {
	out := make([]*Animation, 0, len(s.anims))
	for _, a := range s.anims {
		if !a.removed {
			out = append(out, a)
		}
	}
	return out
}

// Find returns the active animations bound to target in registration order.
func (s *Scheduler) Find(target Target) []*Animation {
	var out []*Animation
	for _, a := range s.anims {
		if !a.removed && a.target == target {
			out = append(out, a)
		}
	}
	return out
}

// Close stops every animation and rejects further registrations. Calling
// Close more than once is a no-op. Called during Update (from a callback), it
// ends the tick after the current animation.
func (s *Scheduler) Close() {
	if s.closed {
		return
	}
	for _, a := range s.anims {
		if !a.removed {
			s.stop(a)
		}
	}
	s.closed = true
	if !s.updating {
		s.compact()
	}
}

// targetGone reports whether a's target was disposed, which ends a even
// while it is paused.
func targetGone(a *Animation) bool {
	return a.target == nil || a.target.IsDisposed()
}

// warnf prints a diagnostic line regardless of debug mode.
func (s *Scheduler) warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, "[tween] warning: "+format+"\n", args...)
}
