package tween

import (
	"fmt"
	"strconv"
)

// Constructor naming: the "To" variants read Params.DurationOrSpeed as a
// duration in seconds; the "By" variants read it as a speed in value units
// per second, so the duration follows from the distance between from and to.
// Every constructor validates its input, registers the animation and returns
// it; on error nothing is registered.

// TweenValue registers an animation that interpolates from->to over kind's
// dimensions and passes each value to apply. It is the entry point for
// properties the typed constructors do not cover. kind must be a value kind.
func (s *Scheduler) TweenValue(target Target, kind Kind, from, to Vec4, byDuration bool, p Params, apply ApplyFunc) (*Animation, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	if apply == nil {
		return nil, fmt.Errorf("%w: nil apply func", ErrInvalidParams)
	}
	if !kind.Reversible() {
		return nil, fmt.Errorf("%w: %s is not a value kind", ErrInvalidParams, kind)
	}
	return s.start(newValueAnimation(target, kind, from, to, apply), byDuration, p)
}

// start validates p, computes the progress rate and registers a.
func (s *Scheduler) start(a *Animation, byDuration bool, p Params) (*Animation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.PingPong && !a.kind.Reversible() {
		return nil, fmt.Errorf("%w: %s", ErrNotReversible, a.kind)
	}
	rate, err := progressRate(a.kind, a.from, a.to, p.DurationOrSpeed, byDuration)
	if err != nil {
		return nil, err
	}
	a.setData(rate, p.Delay, p.Loops(), p.PingPong, p.UseCurve, p.Curve, p.curveFunc(), p.OnComplete)
	if err := s.register(a); err != nil {
		return nil, err
	}
	return a, nil
}

// progressRate converts a duration or a speed into progress per second.
func progressRate(kind Kind, from, to Vec4, factor float64, byDuration bool) (float64, error) {
	if byDuration || !kind.Reversible() {
		return 1 / factor, nil
	}
	dist := from.Distance(to, kind.Dims())
	if dist == 0 {
		return 0, fmt.Errorf("%w: from == to (%v)", ErrZeroDistance, from)
	}
	return factor / dist, nil
}

func (s *Scheduler) nodeValue(n *Node, kind Kind, from, to Vec4, byDuration bool, p Params, apply ApplyFunc) (*Animation, error) {
	if n == nil {
		return nil, ErrNilTarget
	}
	return s.start(newValueAnimation(n, kind, from, to, apply), byDuration, p)
}

// missing logs and returns a capability error for n.
func (s *Scheduler) missing(n *Node, what string) error {
	s.warnf("%s component not available on %v", what, n)
	return fmt.Errorf("%w: %s on %v", ErrMissingCapability, what, n)
}

// --- Move ---

// MoveTo moves n through world space from->to over a duration.
func (s *Scheduler) MoveTo(n *Node, from, to Vec3, p Params) (*Animation, error) {
	return s.move(n, from, to, true, p)
}

// MoveBy moves n through world space from->to at a speed.
func (s *Scheduler) MoveBy(n *Node, from, to Vec3, p Params) (*Animation, error) {
	return s.move(n, from, to, false, p)
}

func (s *Scheduler) move(n *Node, from, to Vec3, byDuration bool, p Params) (*Animation, error) {
	return s.nodeValue(n, KindVec3, from.Vec4(), to.Vec4(), byDuration, p, func(v Vec4) {
		n.SetWorldPosition(v.Vec3())
	})
}

// MoveLocalTo moves n through its parent's space from->to over a duration.
func (s *Scheduler) MoveLocalTo(n *Node, from, to Vec3, p Params) (*Animation, error) {
	return s.moveLocal(n, from, to, true, p)
}

// MoveLocalBy moves n through its parent's space from->to at a speed.
func (s *Scheduler) MoveLocalBy(n *Node, from, to Vec3, p Params) (*Animation, error) {
	return s.moveLocal(n, from, to, false, p)
}

func (s *Scheduler) moveLocal(n *Node, from, to Vec3, byDuration bool, p Params) (*Animation, error) {
	return s.nodeValue(n, KindVec3, from.Vec4(), to.Vec4(), byDuration, p, func(v Vec4) {
		n.SetLocalPosition(v.Vec3())
	})
}

// Move2DTo moves n in the world XY plane over a duration. Z is kept.
func (s *Scheduler) Move2DTo(n *Node, from, to Vec2, p Params) (*Animation, error) {
	return s.move2D(n, from, to, true, p)
}

// Move2DBy moves n in the world XY plane at a speed. Z is kept.
func (s *Scheduler) Move2DBy(n *Node, from, to Vec2, p Params) (*Animation, error) {
	return s.move2D(n, from, to, false, p)
}

func (s *Scheduler) move2D(n *Node, from, to Vec2, byDuration bool, p Params) (*Animation, error) {
	return s.nodeValue(n, KindVec2, from.Vec4(), to.Vec4(), byDuration, p, func(v Vec4) {
		pos := n.WorldPosition()
		pos.X, pos.Y = v.X, v.Y
		n.SetWorldPosition(pos)
	})
}

// MoveLocal2DTo moves n in its parent's XY plane over a duration. Z is kept.
func (s *Scheduler) MoveLocal2DTo(n *Node, from, to Vec2, p Params) (*Animation, error) {
	return s.moveLocal2D(n, from, to, true, p)
}

// MoveLocal2DBy moves n in its parent's XY plane at a speed. Z is kept.
func (s *Scheduler) MoveLocal2DBy(n *Node, from, to Vec2, p Params) (*Animation, error) {
	return s.moveLocal2D(n, from, to, false, p)
}

func (s *Scheduler) moveLocal2D(n *Node, from, to Vec2, byDuration bool, p Params) (*Animation, error) {
	return s.nodeValue(n, KindVec2, from.Vec4(), to.Vec4(), byDuration, p, func(v Vec4) {
		n.SetPosition(v.X, v.Y)
	})
}

// --- Scale ---

// ScaleTo scales n from->to over a duration.
func (s *Scheduler) ScaleTo(n *Node, from, to Vec3, p Params) (*Animation, error) {
	return s.scale(n, from, to, true, p)
}

// ScaleBy scales n from->to at a speed.
func (s *Scheduler) ScaleBy(n *Node, from, to Vec3, p Params) (*Animation, error) {
	return s.scale(n, from, to, false, p)
}

func (s *Scheduler) scale(n *Node, from, to Vec3, byDuration bool, p Params) (*Animation, error) {
	return s.nodeValue(n, KindVec3, from.Vec4(), to.Vec4(), byDuration, p, func(v Vec4) {
		n.SetLocalScale(v.Vec3())
	})
}

// Scale2DTo scales n in X and Y over a duration. ScaleZ is kept.
func (s *Scheduler) Scale2DTo(n *Node, from, to Vec2, p Params) (*Animation, error) {
	return s.scale2D(n, from, to, true, p)
}

// Scale2DBy scales n in X and Y at a speed. ScaleZ is kept.
func (s *Scheduler) Scale2DBy(n *Node, from, to Vec2, p Params) (*Animation, error) {
	return s.scale2D(n, from, to, false, p)
}

func (s *Scheduler) scale2D(n *Node, from, to Vec2, byDuration bool, p Params) (*Animation, error) {
	return s.nodeValue(n, KindVec2, from.Vec4(), to.Vec4(), byDuration, p, func(v Vec4) {
		n.SetScale(v.X, v.Y)
	})
}

// --- Rotate ---

// RotateTo rotates n in world space between Euler angles (radians) over a
// duration.
func (s *Scheduler) RotateTo(n *Node, from, to Vec3, p Params) (*Animation, error) {
	return s.rotate(n, from, to, true, p)
}

// RotateBy rotates n in world space between Euler angles at an angular speed.
func (s *Scheduler) RotateBy(n *Node, from, to Vec3, p Params) (*Animation, error) {
	return s.rotate(n, from, to, false, p)
}

func (s *Scheduler) rotate(n *Node, from, to Vec3, byDuration bool, p Params) (*Animation, error) {
	return s.nodeValue(n, KindVec3, from.Vec4(), to.Vec4(), byDuration, p, func(v Vec4) {
		n.SetWorldRotation(v.Vec3())
	})
}

// RotateLocalTo rotates n relative to its parent over a duration.
func (s *Scheduler) RotateLocalTo(n *Node, from, to Vec3, p Params) (*Animation, error) {
	return s.rotateLocal(n, from, to, true, p)
}

// RotateLocalBy rotates n relative to its parent at an angular speed.
func (s *Scheduler) RotateLocalBy(n *Node, from, to Vec3, p Params) (*Animation, error) {
	return s.rotateLocal(n, from, to, false, p)
}

func (s *Scheduler) rotateLocal(n *Node, from, to Vec3, byDuration bool, p Params) (*Animation, error) {
	return s.nodeValue(n, KindVec3, from.Vec4(), to.Vec4(), byDuration, p, func(v Vec4) {
		n.SetLocalRotation(v.Vec3())
	})
}

// --- Color ---

// colorOf probes the color-bearing capability of n: renderer (sprite), then
// text mesh (text), then graphic (mesh).
func colorOf(n *Node) (*Color, bool) {
	switch n.Type {
	case NodeTypeSprite:
		return &n.Color, true
	case NodeTypeText:
		if n.TextBlock != nil {
			return &n.TextBlock.Color, true
		}
	case NodeTypeMesh:
		return &n.Color, true
	}
	return nil, false
}

// ColorTo tints n from->to over a duration.
func (s *Scheduler) ColorTo(n *Node, from, to Color, p Params) (*Animation, error) {
	return s.color(n, from, to, true, p)
}

// ColorBy tints n from->to at a speed measured in RGBA space.
func (s *Scheduler) ColorBy(n *Node, from, to Color, p Params) (*Animation, error) {
	return s.color(n, from, to, false, p)
}

func (s *Scheduler) color(n *Node, from, to Color, byDuration bool, p Params) (*Animation, error) {
	if n == nil {
		return nil, ErrNilTarget
	}
	c, ok := colorOf(n)
	if !ok {
		return nil, s.missing(n, "color")
	}
	return s.nodeValue(n, KindVec4, from.Vec4(), to.Vec4(), byDuration, p, func(v Vec4) {
		*c = v.Color()
	})
}

// --- Alpha ---

// AlphaTo fades the renderer tint of n from->to over a duration.
func (s *Scheduler) AlphaTo(n *Node, from, to float64, p Params) (*Animation, error) {
	return s.alpha(n, from, to, true, p)
}

// AlphaBy fades the renderer tint of n from->to at a speed.
func (s *Scheduler) AlphaBy(n *Node, from, to float64, p Params) (*Animation, error) {
	return s.alpha(n, from, to, false, p)
}

func (s *Scheduler) alpha(n *Node, from, to float64, byDuration bool, p Params) (*Animation, error) {
	if n == nil {
		return nil, ErrNilTarget
	}
	if n.Type != NodeTypeSprite && n.Type != NodeTypeMesh {
		return nil, s.missing(n, "renderer")
	}
	return s.nodeValue(n, KindScalar, Scalar(from), Scalar(to), byDuration, p, func(v Vec4) {
		n.Color.A = v.X
	})
}

// --- Text counter ---

// CounterTo counts the text of n from->to over a duration. Values are
// truncated to integers.
func (s *Scheduler) CounterTo(n *Node, from, to float64, p Params) (*Animation, error) {
	return s.counter(n, from, to, true, p)
}

// CounterBy counts the text of n from->to at a speed in units per second.
func (s *Scheduler) CounterBy(n *Node, from, to float64, p Params) (*Animation, error) {
	return s.counter(n, from, to, false, p)
}

func (s *Scheduler) counter(n *Node, from, to float64, byDuration bool, p Params) (*Animation, error) {
	if n == nil {
		return nil, ErrNilTarget
	}
	if n.Type != NodeTypeText || n.TextBlock == nil {
		return nil, s.missing(n, "text")
	}
	tb := n.TextBlock
	return s.nodeValue(n, KindScalar, Scalar(from), Scalar(to), byDuration, p, func(v Vec4) {
		tb.Content = strconv.Itoa(int(v.X))
	})
}

// --- Shake ---

// Shake jitters n around its current local position by up to amount in every
// axis for p.DurationOrSpeed seconds, then puts it back. Ping-pong is
// rejected.
func (s *Scheduler) Shake(n *Node, amount float64, p Params) (*Animation, error) {
	return s.shake(n, amount, 3, p)
}

// Shake2D is Shake restricted to the XY plane.
func (s *Scheduler) Shake2D(n *Node, amount float64, p Params) (*Animation, error) {
	return s.shake(n, amount, 2, p)
}

func (s *Scheduler) shake(n *Node, amount float64, dims int, p Params) (*Animation, error) {
	if n == nil {
		return nil, ErrNilTarget
	}
	origin := n.LocalPosition()
	a := newAnimation(n, KindShake, func(a *Animation, _ float64, _ bool) {
		if a.progress >= 1 {
			n.SetLocalPosition(origin)
			return
		}
		n.SetLocalPosition(origin.Add(s.randomOffset(dims, amount)))
	})
	return s.start(a, true, p)
}

// randomOffset returns a uniformly distributed point inside a sphere (dims
// 3) or circle (dims 2) of the given radius.
func (s *Scheduler) randomOffset(dims int, radius float64) Vec3 {
	for {
		v := Vec3{s.rng.Float64()*2 - 1, s.rng.Float64()*2 - 1, 0}
		if dims == 3 {
			v.Z = s.rng.Float64()*2 - 1
		}
		if v.X*v.X+v.Y*v.Y+v.Z*v.Z <= 1 {
			return Vec3{v.X * radius, v.Y * radius, v.Z * radius}
		}
	}
}

// --- Clip playback ---

// PlayClip starts the named clip on n's ClipPlayer and tracks it until its
// normalized time reaches 1, then calls onComplete.
func (s *Scheduler) PlayClip(n *Node, name string, onComplete func(*Animation)) (*Animation, error) {
	if n == nil {
		return nil, ErrNilTarget
	}
	clips := n.Clips
	if clips == nil {
		return nil, s.missing(n, "clip player")
	}
	if s.closed {
		return nil, ErrClosed
	}
	if !clips.Play(name) {
		return nil, s.missing(n, fmt.Sprintf("clip %q", name))
	}
	a := newAnimation(n, KindClip, func(a *Animation, _ float64, _ bool) {
		a.progress = clips.NormalizedTime(name)
	})
	a.setData(0, 0, 1, false, false, nil, nil, onComplete)
	if err := s.register(a); err != nil {
		return nil, err
	}
	return a, nil
}

// --- Timer ---

// TimerHandle is the target of a Timer animation. It counts as disposed once
// the timer fired or was cancelled.
type TimerHandle struct {
	fired     bool
	cancelled bool
}

// IsDisposed implements Target.
func (h *TimerHandle) IsDisposed() bool {
	return h.fired || h.cancelled
}

// Fired reports whether the timer ran to completion.
func (h *TimerHandle) Fired() bool {
	return h.fired
}

// Cancel ends the timer on the next tick without calling its callback.
func (h *TimerHandle) Cancel() {
	h.cancelled = true
}

// Timer calls onFire once after delay seconds. The returned animation's
// Target is a *TimerHandle. delay must be positive: a zero delay fails with
// ErrInvalidParams instead of firing on the next tick; call onFire directly
// for that.
func (s *Scheduler) Timer(delay float64, onFire func(*Animation)) (*Animation, error) {
	h := &TimerHandle{}
	a := newAnimation(h, KindTimer, func(a *Animation, _ float64, _ bool) {
		if a.progress >= 1 {
			h.fired = true
		}
	})
	return s.start(a, true, NewParams(delay).WithOnComplete(onFire))
}
