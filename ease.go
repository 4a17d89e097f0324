package tween

import (
	"fmt"
	"math"
	"strings"

	"github.com/tanema/gween/ease"
)

// EaseType names an easing family. Each value maps to exactly one easing
// function; see Ease.
type EaseType uint8

const (
	Linear EaseType = iota
	Spring
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InQuart
	OutQuart
	InOutQuart
	InQuint
	OutQuint
	InOutQuint
	InSine
	OutSine
	InOutSine
	InExpo
	OutExpo
	InOutExpo
	InCirc
	OutCirc
	InOutCirc
	InBounce
	OutBounce
	InOutBounce
	InBack
	OutBack
	InOutBack
	InElastic
	OutElastic
	InOutElastic

	easeTypeCount
)

var easeNames = [easeTypeCount]string{
	"Linear", "Spring",
	"InQuad", "OutQuad", "InOutQuad",
	"InCubic", "OutCubic", "InOutCubic",
	"InQuart", "OutQuart", "InOutQuart",
	"InQuint", "OutQuint", "InOutQuint",
	"InSine", "OutSine", "InOutSine",
	"InExpo", "OutExpo", "InOutExpo",
	"InCirc", "OutCirc", "InOutCirc",
	"InBounce", "OutBounce", "InOutBounce",
	"InBack", "OutBack", "InOutBack",
	"InElastic", "OutElastic", "InOutElastic",
}

// gween easing for every family except Linear and Spring, which are computed
// in float64 directly.
var easeFuncs = [easeTypeCount]ease.TweenFunc{
	InQuad: ease.InQuad, OutQuad: ease.OutQuad, InOutQuad: ease.InOutQuad,
	InCubic: ease.InCubic, OutCubic: ease.OutCubic, InOutCubic: ease.InOutCubic,
	InQuart: ease.InQuart, OutQuart: ease.OutQuart, InOutQuart: ease.InOutQuart,
	InQuint: ease.InQuint, OutQuint: ease.OutQuint, InOutQuint: ease.InOutQuint,
	InSine: ease.InSine, OutSine: ease.OutSine, InOutSine: ease.InOutSine,
	InExpo: ease.InExpo, OutExpo: ease.OutExpo, InOutExpo: ease.InOutExpo,
	InCirc: ease.InCirc, OutCirc: ease.OutCirc, InOutCirc: ease.InOutCirc,
	InBounce: ease.InBounce, OutBounce: ease.OutBounce, InOutBounce: ease.InOutBounce,
	InBack: ease.InBack, OutBack: ease.OutBack, InOutBack: ease.InOutBack,
	InElastic: ease.InElastic, OutElastic: ease.OutElastic, InOutElastic: ease.InOutElastic,
}

// CustomCurve maps a normalized progress value onto the range [start, end].
type CustomCurve func(start, end, value float64) float64

// Ease reshapes linear progress t. The endpoints are pinned: every family
// returns exactly 0 for t <= 0 and exactly 1 for t >= 1, including the Expo
// families whose closed forms only approach them. Back, Elastic and Spring
// overshoot at interior points only. Unknown values behave as Linear.
//
// The gween families are evaluated in float32, so interior values carry
// about 1e-7 relative error (0.1 units on a 0 to 1e6 tween). Linear and
// Spring are computed in float64.
func (e EaseType) Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch {
	case e == Spring:
		return spring(t)
	case e < easeTypeCount && easeFuncs[e] != nil:
		return float64(easeFuncs[e](float32(t), 0, 1, 1))
	default:
		return t
	}
}

// Curve returns the easing as a CustomCurve over [start, end].
func (e EaseType) Curve() CustomCurve {
	return func(start, end, value float64) float64 {
		return start + (end-start)*e.Ease(value)
	}
}

// Valid reports whether e names a known easing family.
func (e EaseType) Valid() bool {
	return e < easeTypeCount
}

// String returns the family name, e.g. "InOutQuad".
func (e EaseType) String() string {
	if e < easeTypeCount {
		return easeNames[e]
	}
	return fmt.Sprintf("EaseType(%d)", uint8(e))
}

// ParseEaseType looks up an easing family by name. Matching ignores case and
// accepts an optional "Ease" prefix, so "easeInOutBack" and "InOutBack" are
// the same family.
func ParseEaseType(name string) (EaseType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, "ease")
	if key == "" {
		return Linear, nil
	}
	for i, n := range easeNames {
		if strings.ToLower(n) == key {
			return EaseType(i), nil
		}
	}
	return Linear, fmt.Errorf("%w: %q", ErrUnknownEase, name)
}

// MarshalText implements encoding.TextMarshaler.
func (e EaseType) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEase, uint8(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *EaseType) UnmarshalText(text []byte) error {
	v, err := ParseEaseType(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// spring overshoots and settles with a decaying oscillation. gween has no
// equivalent family.
func spring(t float64) float64 {
	t = (math.Sin(t*math.Pi*(0.2+2.5*t*t*t))*math.Pow(1-t, 2.2) + t) * (1 + 1.2*(1-t))
	return t
}
