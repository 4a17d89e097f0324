package tween

import (
	"errors"
	"image/color"
	"testing"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.root.Name != "root" {
		t.Errorf("root.Name = %q, want %q", s.root.Name, "root")
	}
	if s.root.Type != NodeTypeContainer {
		t.Errorf("root.Type = %v, want NodeTypeContainer", s.root.Type)
	}
	if s.Tweens() == nil {
		t.Fatal("scene should own a scheduler")
	}
}

func TestSceneRoot(t *testing.T) {
	s := NewScene()
	if s.Root() != s.root {
		t.Error("Root() should return the internal root node")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	if !s.debug || !s.tweens.debug {
		t.Error("debug should be true on scene and scheduler")
	}
	s.SetDebugMode(false)
	if s.debug || s.tweens.debug || globalDebug {
		t.Error("debug should be false")
	}
}

func TestSceneAdvanceOrder(t *testing.T) {
	s := NewScene()
	n := NewSprite("box", 1, 1)
	s.Root().AddChild(n)

	var valueSeenByUpdate []float64
	s.SetUpdateFunc(func() error {
		valueSeenByUpdate = append(valueSeenByUpdate, n.X)
		return nil
	})
	if _, err := s.Tweens().MoveLocal2DTo(n, Vec2{0, 0}, Vec2{100, 0}, NewParams(1)); err != nil {
		t.Fatal(err)
	}

	if err := s.Advance(0.5); err != nil {
		t.Fatal(err)
	}
	if err := s.Advance(0.5); err != nil {
		t.Fatal(err)
	}

	// The update callback runs before tweens move the node.
	if len(valueSeenByUpdate) != 2 || valueSeenByUpdate[0] != 0 || valueSeenByUpdate[1] != 50 {
		t.Errorf("update func saw %v, want [0 50]", valueSeenByUpdate)
	}
	// World transforms are refreshed after tweens.
	assertNear(t, "worldTransform.tx", n.worldTransform[4], 100)
	if n.transformDirty {
		t.Error("transform should be clean after Advance")
	}
}

func TestSceneAdvanceUpdateError(t *testing.T) {
	s := NewScene()
	n := NewSprite("box", 1, 1)
	s.Root().AddChild(n)
	if _, err := s.Tweens().AlphaTo(n, 1, 0, NewParams(1)); err != nil {
		t.Fatal(err)
	}

	stop := errors.New("stop")
	s.SetUpdateFunc(func() error { return stop })

	if err := s.Advance(0.5); !errors.Is(err, stop) {
		t.Fatalf("Advance error = %v, want %v", err, stop)
	}
	if n.Color.A != 1 {
		t.Errorf("tweens should not run after an update error, alpha = %v", n.Color.A)
	}
}

func TestSceneAdvancesClipsBeforeTweens(t *testing.T) {
	s := NewScene()
	n := NewSprite("door", 1, 1)
	n.Clips = NewFrameClips(map[string]float64{"open": 1})
	s.Root().AddChild(n)

	a, err := s.Tweens().PlayClip(n, "open", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Advance(0.5); err != nil {
		t.Fatal(err)
	}
	assertNear(t, "progress", a.Progress(), 0.5)
	if err := s.Advance(0.5); err != nil {
		t.Fatal(err)
	}
	if a.State() != StateDone {
		t.Errorf("clip animation state = %v, want done", a.State())
	}
}

func TestSceneCollectOrder(t *testing.T) {
	s := NewScene()
	back := NewSprite("back", 1, 1)
	front := NewSprite("front", 1, 1)
	hidden := NewSprite("hidden", 1, 1)
	inner := NewSprite("inner", 1, 1)
	front.ZIndex = 1
	hidden.Visible = false
	hidden.AddChild(inner)
	s.Root().AddChild(front)
	s.Root().AddChild(back)
	s.Root().AddChild(hidden)

	got := s.collect(s.root, nil)
	want := []*Node{s.root, back, front}
	if len(got) != len(want) {
		t.Fatalf("collect returned %d nodes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("collect[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	// Sorting must not reorder the tree itself.
	if s.root.Children()[0] != front {
		t.Error("collect mutated the child order")
	}
}

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		in   Color
		want color.RGBA
	}{
		{Color{1, 1, 1, 1}, color.RGBA{255, 255, 255, 255}},
		{Color{0, 0, 0, 0}, color.RGBA{}},
		{Color{2, -1, 0.5, 1}, color.RGBA{255, 0, 127, 255}},
	}
	for _, tt := range tests {
		if got := colorToRGBA(tt.in); got != tt.want {
			t.Errorf("colorToRGBA(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
