package tween

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("parent")
	s.Root().AddChild(parent)

	child := NewSprite("child", 10, 10)
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestReleaseMode_DisposedNodeNoOp(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(false)

	child := NewSprite("child", 10, 10)
	child.Dispose()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("release mode should not panic on disposed node, got: %v", r)
		}
	}()

	s.Root().AddChild(child)
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	var buf bytes.Buffer
	s := NewSceneWithConfig(Config{Debug: true, Output: &buf})
	defer s.SetDebugMode(false)

	current := s.Root()
	for i := 0; i < debugMaxTreeDepth+5; i++ {
		child := NewContainer(fmt.Sprintf("depth_%d", i))
		current.AddChild(child)
		current = child
	}

	if !strings.Contains(buf.String(), "[tween] warning: tree depth") {
		t.Errorf("expected tree depth warning on the scene output, got: %q", buf.String())
	}
}

func TestDebugMode_TickStats(t *testing.T) {
	var buf bytes.Buffer
	s := NewScheduler(Config{Debug: true, Output: &buf})

	n := NewSprite("box", 1, 1)
	if _, err := s.AlphaTo(n, 1, 0, NewParams(0.5)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AlphaTo(NewSprite("other", 1, 1), 1, 0, NewParams(1)); err != nil {
		t.Fatal(err)
	}
	s.Update(0.5)

	output := buf.String()
	for _, want := range []string{"[tween] tick:", "active: 2", "advanced: 2", "removed: 1"} {
		if !strings.Contains(output, want) {
			t.Errorf("debug output missing %q: %q", want, output)
		}
	}
}

func TestReleaseMode_NoTickStats(t *testing.T) {
	var buf bytes.Buffer
	s := NewScheduler(Config{Output: &buf})
	if _, err := s.AlphaTo(NewSprite("box", 1, 1), 1, 0, NewParams(0.5)); err != nil {
		t.Fatal(err)
	}
	s.Update(0.25)
	if buf.Len() != 0 {
		t.Errorf("expected no output outside debug mode, got %q", buf.String())
	}
}

func TestDebugMode_ActiveCountWarning(t *testing.T) {
	var buf bytes.Buffer
	s := NewScheduler(Config{Debug: true, Output: &buf})
	h := &TimerHandle{}
	for i := 0; i <= debugMaxActive; i++ {
		if _, err := s.TweenValue(h, KindScalar, Scalar(0), Scalar(1), true, NewParams(1), func(Vec4) {}); err != nil {
			t.Fatal(err)
		}
	}
	if !strings.Contains(buf.String(), "active animations") {
		t.Errorf("expected active count warning, got %q", buf.String())
	}
}

func TestSceneDebugModeTogglesScheduler(t *testing.T) {
	var buf bytes.Buffer
	s := NewSceneWithConfig(Config{Output: &buf})
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	if !globalDebug {
		t.Error("globalDebug should follow the scene")
	}
	n := NewSprite("box", 1, 1)
	s.Root().AddChild(n)
	if _, err := s.Tweens().AlphaTo(n, 1, 0, NewParams(1)); err != nil {
		t.Fatal(err)
	}
	if err := s.Advance(0.5); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "[tween] tick:") {
		t.Errorf("expected scheduler stats after Scene.SetDebugMode, got %q", buf.String())
	}
}
