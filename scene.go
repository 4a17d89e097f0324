package tween

import (
	"image/color"
	"os"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Scene is the top-level object that owns the node tree and the tween
// scheduler, and drives both once per frame.
type Scene struct {
	root   *Node
	tweens *Scheduler
	debug  bool

	// ClearColor fills the screen before drawing. The zero value leaves the
	// screen untouched.
	ClearColor Color

	updateFunc func() error

	// Render state
	whitePixel *ebiten.Image
	drawBuf    []*Node
}

// NewScene creates a new scene with a pre-created root container and a
// scheduler using the default Config.
func NewScene() *Scene {
	return NewSceneWithConfig(Config{})
}

// NewSceneWithConfig creates a scene whose scheduler uses cfg.
func NewSceneWithConfig(cfg Config) *Scene {
	s := &Scene{
		root:   NewContainer("root"),
		tweens: NewScheduler(cfg),
	}
	if cfg.Debug {
		s.SetDebugMode(true)
	}
	return s
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Tweens returns the scene's scheduler. Use it to start, pause and stop
// animations.
func (s *Scene) Tweens() *Scheduler {
	return s.tweens
}

// SetUpdateFunc sets a callback run at the start of every Advance, before
// clips and tweens move. A non-nil error stops the frame and is returned.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetEventSink forwards animation completions to sink.
func (s *Scene) SetEventSink(sink EventSink) {
	s.tweens.SetEventSink(sink)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are printed, and per-tick scheduler
// stats are logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	globalDebugOut = os.Stderr
	if enabled {
		globalDebugOut = s.tweens.out
	}
	s.tweens.SetDebugMode(enabled)
}

// Update advances the scene by one tick of 1/TPS seconds.
func (s *Scene) Update() error {
	return s.Advance(1.0 / float64(ebiten.TPS()))
}

// Advance runs one frame of dt seconds: the update callback, clip playback,
// the tween scheduler, then the world transform refresh.
func (s *Scene) Advance(dt float64) error {
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	updateClips(s.root, dt)
	s.tweens.Update(dt)
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	return nil
}

// Draw renders visible sprite nodes as tinted quads and text nodes as debug
// text, in tree order with siblings sorted by ZIndex.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(colorToRGBA(s.ClearColor))
	}
	if s.whitePixel == nil {
		s.whitePixel = ebiten.NewImage(1, 1)
		s.whitePixel.Fill(color.White)
	}

	s.drawBuf = s.collect(s.root, s.drawBuf[:0])
	for _, n := range s.drawBuf {
		switch n.Type {
		case NodeTypeSprite:
			s.drawQuad(screen, n)
		case NodeTypeText:
			if n.TextBlock != nil {
				x, y := transformPoint(n.worldTransform, 0, 0)
				ebitenutil.DebugPrintAt(screen, n.TextBlock.Content, int(x), int(y))
			}
		}
	}
}

// collect appends the visible subtree of n in draw order.
func (s *Scene) collect(n *Node, buf []*Node) []*Node {
	if !n.Visible || n.disposed {
		return buf
	}
	buf = append(buf, n)
	children := n.children
	if !slices.IsSortedFunc(children, compareZIndex) {
		children = slices.Clone(children)
		slices.SortStableFunc(children, compareZIndex)
	}
	for _, c := range children {
		buf = s.collect(c, buf)
	}
	return buf
}

func compareZIndex(a, b *Node) int {
	return a.ZIndex - b.ZIndex
}

func (s *Scene) drawQuad(screen *ebiten.Image, n *Node) {
	alpha := n.Color.A * n.worldAlpha
	if alpha <= 0 {
		return
	}
	m := n.worldTransform
	var op ebiten.DrawImageOptions
	op.GeoM.SetElement(0, 0, m[0])
	op.GeoM.SetElement(0, 1, m[2])
	op.GeoM.SetElement(0, 2, m[4])
	op.GeoM.SetElement(1, 0, m[1])
	op.GeoM.SetElement(1, 1, m[3])
	op.GeoM.SetElement(1, 2, m[5])
	op.ColorScale.Scale(
		float32(n.Color.R*alpha),
		float32(n.Color.G*alpha),
		float32(n.Color.B*alpha),
		float32(alpha),
	)
	screen.DrawImage(s.whitePixel, &op)
}

func colorToRGBA(c Color) color.RGBA {
	return color.RGBA{
		R: uint8(clampUnit(c.R) * 255),
		G: uint8(clampUnit(c.G) * 255),
		B: uint8(clampUnit(c.B) * 255),
		A: uint8(clampUnit(c.A) * 255),
	}
}
