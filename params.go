package tween

import "fmt"

// LoopInfinite makes an animation repeat until it is stopped.
const LoopInfinite = -1

// Params configures an animation. It is a value type: the With helpers return
// modified copies and leave the receiver untouched, so one Params can be
// shared between many tweens.
//
// DurationOrSpeed is interpreted by the constructor it is passed to: the
// "To" constructors read it as a duration in seconds, the "By" constructors as
// a speed in value units per second.
type Params struct {
	DurationOrSpeed float64 `yaml:"durationOrSpeed"`
	Delay           float64 `yaml:"delay"`
	// LoopCount is the number of sweeps (forward+back pairs when PingPong is
	// set). Zero means one; LoopInfinite repeats forever.
	LoopCount int      `yaml:"loops"`
	PingPong  bool     `yaml:"pingPong"`
	Ease      EaseType `yaml:"ease"`
	// UseCurve selects Curve over Ease. When both are configured the curve
	// wins.
	UseCurve bool   `yaml:"useCurve"`
	Curve    *Curve `yaml:"curve"`

	OnComplete func(*Animation) `yaml:"-"`
}

// NewParams returns linear, single-shot parameters with no delay.
func NewParams(durationOrSpeed float64) Params {
	return Params{DurationOrSpeed: durationOrSpeed, LoopCount: 1, Ease: Linear}
}

// WithDelay returns a copy of p that waits delay seconds before starting.
func (p Params) WithDelay(delay float64) Params {
	p.Delay = delay
	return p
}

// WithLoops returns a copy of p with the given loop count.
func (p Params) WithLoops(n int) Params {
	p.LoopCount = n
	return p
}

// WithPingPong returns a copy of p that plays forward then back each loop.
func (p Params) WithPingPong(on bool) Params {
	p.PingPong = on
	return p
}

// WithEase returns a copy of p using the named easing family.
func (p Params) WithEase(e EaseType) Params {
	p.Ease = e
	p.UseCurve = false
	return p
}

// WithCurve returns a copy of p sampling c instead of a named easing.
func (p Params) WithCurve(c *Curve) Params {
	p.Curve = c
	p.UseCurve = c != nil
	return p
}

// WithOnComplete returns a copy of p that calls fn once the last loop ends.
func (p Params) WithOnComplete(fn func(*Animation)) Params {
	p.OnComplete = fn
	return p
}

// Loops returns the normalized loop count (0 becomes 1).
func (p Params) Loops() int {
	if p.LoopCount == 0 {
		return 1
	}
	return p.LoopCount
}

// Validate checks the invariants every constructor relies on.
func (p Params) Validate() error {
	switch {
	case !finite(p.DurationOrSpeed) || p.DurationOrSpeed <= 0:
		return fmt.Errorf("%w: durationOrSpeed %v must be positive", ErrInvalidParams, p.DurationOrSpeed)
	case !finite(p.Delay) || p.Delay < 0:
		return fmt.Errorf("%w: delay %v must be >= 0", ErrInvalidParams, p.Delay)
	case p.LoopCount < LoopInfinite:
		return fmt.Errorf("%w: loop count %d", ErrInvalidParams, p.LoopCount)
	case !p.Ease.Valid():
		return fmt.Errorf("%w: %v", ErrUnknownEase, p.Ease)
	case p.UseCurve && p.Curve == nil:
		return fmt.Errorf("%w: useCurve set without a curve", ErrInvalidParams)
	}
	return nil
}

// curveFunc is the CustomCurve used when the explicit curve is not in use.
func (p Params) curveFunc() CustomCurve {
	return p.Ease.Curve()
}
