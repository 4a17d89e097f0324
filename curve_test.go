package tween

import (
	"errors"
	"math"
	"testing"

	"gopkg.in/yaml.v3"
)

func mustCurve(t *testing.T, keys ...Keyframe) *Curve {
	t.Helper()
	c, err := NewCurve(keys...)
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}
	return c
}

func TestCurveEvaluate(t *testing.T) {
	c := mustCurve(t,
		Keyframe{Time: 1, Value: 1},
		Keyframe{Time: 0, Value: 0},
		Keyframe{Time: 0.5, Value: 2},
	)
	tests := []struct {
		t, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 1},
		{0.5, 2},
		{0.75, 1.5},
		{1, 1},
		{3, 1},
	}
	for _, tt := range tests {
		if got := c.Evaluate(tt.t); math.Abs(got-tt.want) > epsilon {
			t.Errorf("Evaluate(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
	if keys := c.Keys(); keys[0].Time != 0 || keys[2].Time != 1 {
		t.Errorf("keys not sorted: %v", keys)
	}
}

func TestCurveSingleKeyIsConstant(t *testing.T) {
	c := mustCurve(t, Keyframe{Time: 0.3, Value: 0.7})
	for _, x := range []float64{0, 0.3, 1} {
		if got := c.Evaluate(x); got != 0.7 {
			t.Errorf("Evaluate(%v) = %v, want 0.7", x, got)
		}
	}
}

func TestCurveDuplicateTimesStep(t *testing.T) {
	c := mustCurve(t,
		Keyframe{Time: 0, Value: 0},
		Keyframe{Time: 0.5, Value: 0},
		Keyframe{Time: 0.5, Value: 1},
		Keyframe{Time: 1, Value: 1},
	)
	if got := c.Evaluate(0.49); got != 0 {
		t.Errorf("before step = %v, want 0", got)
	}
	if got := c.Evaluate(0.5); got != 1 {
		t.Errorf("at step = %v, want 1", got)
	}
}

func TestNewCurveErrors(t *testing.T) {
	if _, err := NewCurve(); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("empty curve error = %v", err)
	}
	if _, err := NewCurve(Keyframe{Time: math.NaN()}); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("NaN time error = %v", err)
	}
	if _, err := NewCurve(Keyframe{Value: math.Inf(1)}); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("Inf value error = %v", err)
	}
}

func TestSampleCurve(t *testing.T) {
	c, err := SampleCurve(OutQuad.Ease, 8)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(c.Keys()); n != 9 {
		t.Fatalf("keys = %d, want 9", n)
	}
	if got := c.Evaluate(0.5); math.Abs(got-0.75) > 1e-4 {
		t.Errorf("Evaluate(0.5) = %v, want 0.75 (a sample point)", got)
	}
	if _, err := SampleCurve(OutQuad.Ease, 0); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("zero samples error = %v", err)
	}
}

func TestCubicBezier(t *testing.T) {
	linear := CubicBezier(0, 0, 1, 1)
	for _, x := range []float64{0.1, 0.5, 0.9} {
		if got := linear(x); math.Abs(got-x) > 1e-5 {
			t.Errorf("linear bezier(%v) = %v", x, got)
		}
	}
	ease := CubicBezier(0.25, 0.1, 0.25, 1)
	if ease(0) != 0 || ease(1) != 1 {
		t.Errorf("endpoints = %v, %v", ease(0), ease(1))
	}
	if got := ease(0.5); got <= 0.5 {
		t.Errorf("css ease(0.5) = %v, want > 0.5", got)
	}
}

func TestCurveUnmarshalYAML(t *testing.T) {
	var c Curve
	doc := "[{t: 1, v: 0}, {t: 0, v: 1}]"
	if err := yaml.Unmarshal([]byte(doc), &c); err != nil {
		t.Fatal(err)
	}
	if got := c.Evaluate(0.25); math.Abs(got-0.75) > epsilon {
		t.Errorf("Evaluate(0.25) = %v, want 0.75", got)
	}

	if err := yaml.Unmarshal([]byte("[]"), &c); err == nil {
		t.Error("expected error for empty curve")
	}
}
