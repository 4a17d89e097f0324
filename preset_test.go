package tween

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

const presetDoc = `
version: 1
presets:
  pop:
    durationOrSpeed: 0.25
    ease: OutBack
  pulse:
    durationOrSpeed: 0.5
    delay: 0.1
    loops: -1
    pingPong: true
    curve: [{t: 0, v: 0}, {t: 0.5, v: 1}, {t: 1, v: 0.5}]
  plain:
    durationOrSpeed: 2
    useCurve: false
    curve: [{t: 0, v: 1}, {t: 1, v: 0}]
`

func TestLoadPresets(t *testing.T) {
	ps, err := LoadPresets([]byte(presetDoc))
	if err != nil {
		t.Fatal(err)
	}
	if got := ps.Names(); !slices.Equal(got, []string{"plain", "pop", "pulse"}) {
		t.Errorf("Names = %v", got)
	}

	pop := ps.MustParams("pop")
	if pop.DurationOrSpeed != 0.25 || pop.Ease != OutBack || pop.UseCurve {
		t.Errorf("pop = %+v", pop)
	}
	if pop.Loops() != 1 {
		t.Errorf("pop loops = %d, want 1", pop.Loops())
	}

	pulse := ps.MustParams("pulse")
	if pulse.Delay != 0.1 || pulse.LoopCount != LoopInfinite || !pulse.PingPong {
		t.Errorf("pulse = %+v", pulse)
	}
	if !pulse.UseCurve || pulse.Curve == nil {
		t.Fatal("a preset with a curve should use it by default")
	}
	if got := pulse.Curve.Evaluate(0.5); got != 1 {
		t.Errorf("pulse curve(0.5) = %v", got)
	}

	plain := ps.MustParams("plain")
	if plain.UseCurve || plain.Curve == nil {
		t.Errorf("explicit useCurve: false should be kept, got %+v", plain)
	}
}

func TestPresetDrivesAnimation(t *testing.T) {
	ps, err := LoadPresets([]byte(presetDoc))
	if err != nil {
		t.Fatal(err)
	}
	s := NewScheduler(Config{})
	var r recorder
	startScalar(t, s, &handle{}, 0, 10, ps.MustParams("pulse"), &r)

	s.Update(0.1) // delay
	s.Update(0.25)
	if r.last() != 10 {
		t.Errorf("value at curve peak = %v, want 10", r.last())
	}
}

func TestLoadPresetsErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"zero duration", "presets: {bad: {durationOrSpeed: 0}}", ErrInvalidParams},
		{"unknown ease", "presets: {bad: {durationOrSpeed: 1, ease: Bouncy}}", ErrUnknownEase},
		{"negative delay", "presets: {bad: {durationOrSpeed: 1, delay: -1}}", ErrInvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPresets([]byte(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := LoadPresets([]byte("presets: [1, 2")); err == nil {
		t.Error("expected parse error")
	}
}

func TestPresetsUnknownName(t *testing.T) {
	ps, err := LoadPresets([]byte(presetDoc))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ps.Params("nope"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Params(nope) = %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("MustParams should panic for unknown names")
		}
	}()
	ps.MustParams("nope")
}

func TestLoadPresetsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(path, []byte(presetDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	ps, err := LoadPresetsFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(ps.Names()) != 3 {
		t.Errorf("Names = %v", ps.Names())
	}
	if _, err := LoadPresetsFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
