package tween

// State is the lifecycle state of an Animation.
//
//	StateNone -> StateRunning <-> StatePaused
//	StateRunning -> StateDone (terminal)
type State uint8

const (
	StateNone    State = iota // constructed, not yet configured
	StateRunning              // advancing every tick
	StatePaused               // skipped by the scheduler, progress frozen
	StateDone                 // finished; removed from the scheduler
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Kind tags what an Animation interpolates. Value kinds interpolate a Vec4
// over Dims components and can play in reverse. One-shot kinds drive their
// target directly and cannot.
type Kind uint8

const (
	KindScalar Kind = iota + 1
	KindVec2
	KindVec3
	KindVec4
	KindShake
	KindClip
	KindTimer
)

// Dims returns the number of Vec4 components a value kind uses. One-shot
// kinds report 0.
func (k Kind) Dims() int {
	switch k {
	case KindScalar:
		return 1
	case KindVec2:
		return 2
	case KindVec3:
		return 3
	case KindVec4:
		return 4
	default:
		return 0
	}
}

// Reversible reports whether the kind supports ping-pong playback.
func (k Kind) Reversible() bool {
	return k.Dims() > 0
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVec2:
		return "vec2"
	case KindVec3:
		return "vec3"
	case KindVec4:
		return "vec4"
	case KindShake:
		return "shake"
	case KindClip:
		return "clip"
	case KindTimer:
		return "timer"
	default:
		return "unknown"
	}
}

// Reason records why an animation left the scheduler.
type Reason uint8

const (
	ReasonNone           Reason = iota // still active
	ReasonCompleted                    // final loop finished; OnComplete fired
	ReasonTargetDisposed               // target went away; OnComplete skipped
	ReasonStopped                      // removed by Stop or Close
	ReasonPanicked                     // driver or callback panicked
)

// String returns the reason name.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonCompleted:
		return "completed"
	case ReasonTargetDisposed:
		return "target disposed"
	case ReasonStopped:
		return "stopped"
	case ReasonPanicked:
		return "panicked"
	default:
		return "unknown"
	}
}

// Target is the handle an animation is bound to. Pause, Stop and IsRunning
// match animations by target identity, so implementations should be pointer
// types. A disposed target ends its animations on the next tick.
type Target interface {
	IsDisposed() bool
}

// ApplyFunc writes an interpolated value to the animated property.
type ApplyFunc func(v Vec4)

// driveFunc is invoked once per advancing tick with the eased progress and
// the current direction.
type driveFunc func(a *Animation, eased float64, reverse bool)

// Animation is one in-flight interpolation. It is created by the Scheduler's
// constructors and owned by that Scheduler until it finishes or is stopped.
type Animation struct {
	target Target
	kind   Kind
	from   Vec4
	to     Vec4
	value  Vec4
	drive  driveFunc

	rate         float64
	progress     float64
	delay        float64
	delayElapsed float64
	loops        int
	completed    int
	pingPong     bool
	reverse      bool

	useCurve    bool
	curve       *Curve
	customCurve CustomCurve
	onComplete  func(*Animation)

	state   State
	reason  Reason
	removed bool
}

func newAnimation(target Target, kind Kind, drive driveFunc) *Animation {
	return &Animation{target: target, kind: kind, drive: drive, loops: 1}
}

// newValueAnimation builds a reversible animation that interpolates from->to
// and hands the result to apply.
func newValueAnimation(target Target, kind Kind, from, to Vec4, apply ApplyFunc) *Animation {
	a := newAnimation(target, kind, nil)
	a.from = from
	a.to = to
	a.drive = func(a *Animation, eased float64, reverse bool) {
		if reverse {
			a.value = a.to.Lerp(a.from, eased)
		} else {
			a.value = a.from.Lerp(a.to, eased)
		}
		apply(a.value)
	}
	return a
}

// setData configures the run parameters and starts the animation.
func (a *Animation) setData(rate, delay float64, loops int, pingPong, useCurve bool, curve *Curve, customCurve CustomCurve, onComplete func(*Animation)) {
	a.rate = rate
	a.delay = delay
	if loops == 0 {
		loops = 1
	}
	a.loops = loops
	a.pingPong = pingPong
	a.useCurve = useCurve
	a.curve = curve
	a.customCurve = customCurve
	a.onComplete = onComplete
	a.state = StateRunning
}

// Advance moves the animation forward by dt seconds and reports whether it
// is finished. Paused animations do not move. The tick that crosses the end
// of the delay window carries its remainder into progress.
func (a *Animation) Advance(dt float64) bool {
	if a.state == StateDone {
		return true
	}
	if targetGone(a) {
		a.finish(ReasonTargetDisposed)
		return true
	}
	if a.state != StateRunning {
		return false
	}

	if a.delayElapsed < a.delay {
		a.delayElapsed += dt
		if a.delayElapsed < a.delay-progressEpsilon {
			return false
		}
		dt = max(0, a.delayElapsed-a.delay)
		a.delayElapsed = a.delay
	}

	a.progress = moveTowards(a.progress, 1, dt*a.rate)
	a.drive(a, a.eased(a.progress), a.reverse)

	if a.progress < 1 {
		return false
	}
	if a.pingPong {
		a.reverse = !a.reverse
	}
	a.completed++
	if a.completed == a.loopTarget() {
		a.finish(ReasonCompleted)
		if a.onComplete != nil {
			a.onComplete(a)
		}
		return true
	}
	a.progress = 0
	return false
}

// eased applies the curve selection to linear progress. An explicit curve
// takes precedence over the named easing.
func (a *Animation) eased(p float64) float64 {
	switch {
	case a.useCurve && a.curve != nil:
		return a.curve.Evaluate(p)
	case a.customCurve != nil:
		return a.customCurve(0, 1, p)
	default:
		return p
	}
}

// loopTarget is the number of sweeps until completion. A ping-pong loop is a
// forward sweep plus a backward sweep, so it counts twice. LoopInfinite never
// matches.
func (a *Animation) loopTarget() int {
	if a.pingPong && a.loops > 0 {
		return 2 * a.loops
	}
	return a.loops
}

func (a *Animation) finish(r Reason) {
	a.state = StateDone
	if a.reason == ReasonNone {
		a.reason = r
	}
}

// Pause suspends (true) or resumes (false) the animation. Only running and
// paused animations change state.
func (a *Animation) Pause(paused bool) {
	switch {
	case paused && a.state == StateRunning:
		a.state = StatePaused
	case !paused && a.state == StatePaused:
		a.state = StateRunning
	}
}

// State returns the lifecycle state.
func (a *Animation) State() State { return a.state }

// Reason returns why the animation finished, or ReasonNone while active.
func (a *Animation) Reason() Reason { return a.reason }

// Target returns the handle the animation is bound to.
func (a *Animation) Target() Target { return a.target }

// Kind returns the value kind tag.
func (a *Animation) Kind() Kind { return a.kind }

// Progress returns linear progress in [0, 1] through the current sweep.
func (a *Animation) Progress() float64 { return a.progress }

// Value returns the value most recently written by a value animation.
func (a *Animation) Value() Vec4 { return a.value }

// From returns the start value.
func (a *Animation) From() Vec4 { return a.from }

// To returns the end value.
func (a *Animation) To() Vec4 { return a.to }

// Rate returns the progress advanced per second.
func (a *Animation) Rate() float64 { return a.rate }

// CompletedLoops returns the number of finished sweeps.
func (a *Animation) CompletedLoops() int { return a.completed }

// Reversed reports whether the next sweep plays to->from.
func (a *Animation) Reversed() bool { return a.reverse }

// progressEpsilon absorbs the rounding left by summing frame steps, so that
// ten 0.1s steps finish a 1s tween on the tenth tick.
const progressEpsilon = 1e-9

func moveTowards(current, target, maxDelta float64) float64 {
	if target-current <= maxDelta+progressEpsilon {
		return target
	}
	return current + maxDelta
}
