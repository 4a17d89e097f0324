package tween

import (
	"fmt"
	"math"
	"slices"

	"gopkg.in/yaml.v3"
)

// Keyframe is one sample of a Curve.
type Keyframe struct {
	Time  float64 `yaml:"t"`
	Value float64 `yaml:"v"`
}

// Curve is an explicit, sampled easing curve. It is evaluated by linear
// interpolation between neighbouring keyframes and clamps to the first and
// last key outside their time range. A Curve is immutable once built.
type Curve struct {
	keys []Keyframe
}

// NewCurve builds a curve from keyframes in any order. At least one key is
// required and all times and values must be finite.
func NewCurve(keys ...Keyframe) (*Curve, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: curve needs at least one keyframe", ErrInvalidParams)
	}
	sorted := slices.Clone(keys)
	for _, k := range sorted {
		if !finite(k.Time) || !finite(k.Value) {
			return nil, fmt.Errorf("%w: non-finite keyframe %+v", ErrInvalidParams, k)
		}
	}
	slices.SortStableFunc(sorted, func(a, b Keyframe) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		}
		return 0
	})
	return &Curve{keys: sorted}, nil
}

// Keys returns the curve's keyframes sorted by time. The returned slice MUST
// NOT be mutated.
func (c *Curve) Keys() []Keyframe {
	return c.keys
}

// Evaluate samples the curve at t.
func (c *Curve) Evaluate(t float64) float64 {
	keys := c.keys
	if len(keys) == 0 {
		return t
	}
	if t <= keys[0].Time {
		return keys[0].Value
	}
	last := keys[len(keys)-1]
	if t >= last.Time {
		return last.Value
	}
	// First key strictly after t; keys[i-1].Time <= t < keys[i].Time.
	i, _ := slices.BinarySearchFunc(keys, t, func(k Keyframe, t float64) int {
		if k.Time <= t {
			return -1
		}
		return 1
	})
	a, b := keys[i-1], keys[i]
	span := b.Time - a.Time
	if span <= 0 {
		return b.Value
	}
	return lerp(a.Value, b.Value, (t-a.Time)/span)
}

// UnmarshalYAML decodes a curve from a list of {t, v} maps.
func (c *Curve) UnmarshalYAML(value *yaml.Node) error {
	var keys []Keyframe
	if err := value.Decode(&keys); err != nil {
		return fmt.Errorf("decode curve: %w", err)
	}
	built, err := NewCurve(keys...)
	if err != nil {
		return err
	}
	*c = *built
	return nil
}

// SampleCurve builds a curve by sampling fn at samples+1 evenly spaced points
// across [0, 1].
func SampleCurve(fn func(float64) float64, samples int) (*Curve, error) {
	if samples < 1 {
		return nil, fmt.Errorf("%w: sample count %d", ErrInvalidParams, samples)
	}
	keys := make([]Keyframe, samples+1)
	for i := range keys {
		t := float64(i) / float64(samples)
		keys[i] = Keyframe{Time: t, Value: fn(t)}
	}
	return NewCurve(keys...)
}

// CubicBezier returns a cubic-bezier easing function matching CSS
// cubic-bezier(). The curve starts at (0,0) and ends at (1,1); (x1,y1) and
// (x2,y2) are the control points. Pass it to SampleCurve to get a Curve.
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := bezierSample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezierSample(y1, y2, clampUnit(u))
			}
			dx := bezierDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection fallback keeps the solution inside [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 20 {
			x := bezierSample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}
		return bezierSample(y1, y2, u)
	}
}

func bezierSample(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
