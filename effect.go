package tween

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Effect defaults, used for any field an effect document leaves out.
const (
	DefaultEffectTime = 0.1
	DefaultEffectEase = InOutBack
)

var (
	defaultEffectScale = Vec3{1.5, 1.5, 1}
	defaultEffectColor = Color{0.5, 0.5, 0.5, 1}
)

// PositionTarget offsets one node's local position while the effect is on.
type PositionTarget struct {
	Node   string   `yaml:"node"`
	Time   float64  `yaml:"time"`
	Offset Vec3     `yaml:"offset"`
	Ease   EaseType `yaml:"ease"`
}

// ScaleTarget multiplies one node's local scale while the effect is on.
type ScaleTarget struct {
	Node  string   `yaml:"node"`
	Time  float64  `yaml:"time"`
	Scale Vec3     `yaml:"scale"`
	Ease  EaseType `yaml:"ease"`
}

// ColorTarget replaces one node's tint while the effect is on.
type ColorTarget struct {
	Node  string   `yaml:"node"`
	Time  float64  `yaml:"time"`
	Color Color    `yaml:"color"`
	Ease  EaseType `yaml:"ease"`
}

// UnmarshalYAML fills defaults before decoding.
func (t *PositionTarget) UnmarshalYAML(value *yaml.Node) error {
	type plain PositionTarget
	v := plain{Time: DefaultEffectTime, Ease: DefaultEffectEase}
	if err := value.Decode(&v); err != nil {
		return err
	}
	*t = PositionTarget(v)
	return nil
}

// UnmarshalYAML fills defaults before decoding.
func (t *ScaleTarget) UnmarshalYAML(value *yaml.Node) error {
	type plain ScaleTarget
	v := plain{Time: DefaultEffectTime, Scale: defaultEffectScale, Ease: DefaultEffectEase}
	if err := value.Decode(&v); err != nil {
		return err
	}
	*t = ScaleTarget(v)
	return nil
}

// UnmarshalYAML fills defaults before decoding.
func (t *ColorTarget) UnmarshalYAML(value *yaml.Node) error {
	type plain ColorTarget
	v := plain{Time: DefaultEffectTime, Color: defaultEffectColor, Ease: DefaultEffectEase}
	if err := value.Decode(&v); err != nil {
		return err
	}
	*t = ColorTarget(v)
	return nil
}

// PositionEffect is the position part of an Effect.
type PositionEffect struct {
	Use     bool             `yaml:"use"`
	ApplyTo []PositionTarget `yaml:"applyTo"`

	nodes     []*Node
	originals []Vec3
}

// ScaleEffect is the scale part of an Effect.
type ScaleEffect struct {
	Use     bool          `yaml:"use"`
	ApplyTo []ScaleTarget `yaml:"applyTo"`

	nodes     []*Node
	originals []Vec3
}

// ColorEffect is the tint part of an Effect.
type ColorEffect struct {
	Use     bool          `yaml:"use"`
	ApplyTo []ColorTarget `yaml:"applyTo"`

	nodes     []*Node
	originals []Color
}

// Effect is a reversible visual state (hover, pressed, selected...) built from
// position, scale and color tweens over named nodes. Bind it to a tree once,
// then Show(true) tweens into the effect and Show(false) tweens back to the
// values captured at bind time.
type Effect struct {
	Position PositionEffect `yaml:"position"`
	Scale    ScaleEffect    `yaml:"scale"`
	Color    ColorEffect    `yaml:"color"`

	bound   bool
	on      bool
	running []*Animation
}

// Bind resolves node names under root and caches their current local
// position, scale and tint. It can be called again to re-capture.
func (e *Effect) Bind(root *Node) error {
	if root == nil {
		return ErrNilTarget
	}
	var errs []error
	find := func(name string) *Node {
		n := root.FindByName(name)
		if n == nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrNodeNotFound, name))
		}
		return n
	}

	pe := &e.Position
	pe.nodes, pe.originals = pe.nodes[:0], pe.originals[:0]
	for _, t := range pe.ApplyTo {
		n := find(t.Node)
		pe.nodes = append(pe.nodes, n)
		pe.originals = append(pe.originals, localPositionOf(n))
	}

	se := &e.Scale
	se.nodes, se.originals = se.nodes[:0], se.originals[:0]
	for _, t := range se.ApplyTo {
		n := find(t.Node)
		se.nodes = append(se.nodes, n)
		se.originals = append(se.originals, localScaleOf(n))
	}

	ce := &e.Color
	ce.nodes, ce.originals = ce.nodes[:0], ce.originals[:0]
	for _, t := range ce.ApplyTo {
		n := find(t.Node)
		var orig Color
		if n != nil {
			c, ok := colorOf(n)
			if !ok {
				errs = append(errs, fmt.Errorf("%w: color on %v", ErrMissingCapability, n))
				n = nil
			} else {
				orig = *c
			}
		}
		ce.nodes = append(ce.nodes, n)
		ce.originals = append(ce.originals, orig)
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	e.bound = true
	return nil
}

func localPositionOf(n *Node) Vec3 {
	if n == nil {
		return Vec3{}
	}
	return n.LocalPosition()
}

func localScaleOf(n *Node) Vec3 {
	if n == nil {
		return Vec3{}
	}
	return n.LocalScale()
}

// Show tweens every enabled part into the effect (on) or back to the bound
// originals (off), starting from the nodes' current values. Tweens started by
// a previous Show that are still running are stopped first.
func (e *Effect) Show(s *Scheduler, on bool) error {
	if !e.bound {
		return ErrUnbound
	}
	for _, a := range e.running {
		s.StopAnimation(a)
	}
	e.running = e.running[:0]
	e.on = on

	var errs []error
	track := func(a *Animation, err error) {
		if err != nil {
			errs = append(errs, err)
			return
		}
		e.running = append(e.running, a)
	}

	if e.Position.Use {
		for i, t := range e.Position.ApplyTo {
			n := e.Position.nodes[i]
			if n == nil || n.IsDisposed() {
				continue
			}
			to := e.Position.originals[i]
			if on {
				to = to.Add(t.Offset)
			}
			track(s.MoveLocalTo(n, n.LocalPosition(), to, NewParams(t.Time).WithEase(t.Ease)))
		}
	}
	if e.Scale.Use {
		for i, t := range e.Scale.ApplyTo {
			n := e.Scale.nodes[i]
			if n == nil || n.IsDisposed() {
				continue
			}
			to := e.Scale.originals[i]
			if on {
				to = to.Mul(t.Scale)
			}
			track(s.ScaleTo(n, n.LocalScale(), to, NewParams(t.Time).WithEase(t.Ease)))
		}
	}
	if e.Color.Use {
		for i, t := range e.Color.ApplyTo {
			n := e.Color.nodes[i]
			if n == nil || n.IsDisposed() {
				continue
			}
			c, ok := colorOf(n)
			if !ok {
				continue
			}
			to := e.Color.originals[i]
			if on {
				to = t.Color
			}
			track(s.ColorTo(n, *c, to, NewParams(t.Time).WithEase(t.Ease)))
		}
	}
	return errors.Join(errs...)
}

// IsOn reports the state requested by the last Show.
func (e *Effect) IsOn() bool {
	return e.on
}

// MaxDuration returns the longest tween time among the enabled parts.
func (e *Effect) MaxDuration() float64 {
	var d float64
	if e.Position.Use {
		for _, t := range e.Position.ApplyTo {
			d = max(d, t.Time)
		}
	}
	if e.Scale.Use {
		for _, t := range e.Scale.ApplyTo {
			d = max(d, t.Time)
		}
	}
	if e.Color.Use {
		for _, t := range e.Color.ApplyTo {
			d = max(d, t.Time)
		}
	}
	return d
}

// Validate checks every target has a node name and a positive time.
func (e *Effect) Validate() error {
	check := func(part string, i int, node string, time float64) error {
		if node == "" {
			return fmt.Errorf("%w: %s[%d] has no node", ErrInvalidParams, part, i)
		}
		if !finite(time) || time <= 0 {
			return fmt.Errorf("%w: %s[%d] time %v must be positive", ErrInvalidParams, part, i, time)
		}
		return nil
	}
	for i, t := range e.Position.ApplyTo {
		if err := check("position", i, t.Node, t.Time); err != nil {
			return err
		}
	}
	for i, t := range e.Scale.ApplyTo {
		if err := check("scale", i, t.Node, t.Time); err != nil {
			return err
		}
	}
	for i, t := range e.Color.ApplyTo {
		if err := check("color", i, t.Node, t.Time); err != nil {
			return err
		}
	}
	return nil
}

// Effects is a named collection of effects loaded from YAML.
type Effects map[string]*Effect

// LoadEffects parses an effect document:
//
//	effects:
//	  hover:
//	    scale:
//	      use: true
//	      applyTo:
//	        - node: button
//	          scale: [1.1, 1.1, 1]
//	    color:
//	      use: true
//	      applyTo:
//	        - node: label
//	          color: gold
func LoadEffects(data []byte) (Effects, error) {
	var file struct {
		Effects Effects `yaml:"effects"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("tween: parse effects: %w", err)
	}
	for name, e := range file.Effects {
		if e == nil {
			return nil, fmt.Errorf("effect %q: %w: empty definition", name, ErrInvalidParams)
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("effect %q: %w", name, err)
		}
	}
	if file.Effects == nil {
		file.Effects = Effects{}
	}
	return file.Effects, nil
}

// LoadEffectsFile reads and parses the effect document at path.
func LoadEffectsFile(path string) (Effects, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tween: read effects: %w", err)
	}
	return LoadEffects(data)
}

// Names returns the effect names in sorted order.
func (es Effects) Names() []string {
	names := make([]string, 0, len(es))
	for name := range es {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- YAML value forms ---

// UnmarshalYAML decodes a Vec3 from a list of two or three numbers. A missing
// Z is zero.
func (v *Vec3) UnmarshalYAML(value *yaml.Node) error {
	var xs []float64
	if err := value.Decode(&xs); err != nil {
		return fmt.Errorf("decode vec3: %w", err)
	}
	if len(xs) < 2 || len(xs) > 3 {
		return fmt.Errorf("decode vec3: want 2 or 3 components, got %d", len(xs))
	}
	*v = Vec3{X: xs[0], Y: xs[1]}
	if len(xs) == 3 {
		v.Z = xs[2]
	}
	return nil
}

// UnmarshalYAML decodes a Color from either an SVG color name ("gold",
// "slategray") or a list of three or four components in [0, 1]. A missing
// alpha is 1.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		name := strings.ToLower(strings.TrimSpace(value.Value))
		rgba, ok := colornames.Map[name]
		if !ok {
			return fmt.Errorf("decode color: unknown color name %q", value.Value)
		}
		*c = Color{
			R: float64(rgba.R) / 255,
			G: float64(rgba.G) / 255,
			B: float64(rgba.B) / 255,
			A: float64(rgba.A) / 255,
		}
		return nil
	}
	var xs []float64
	if err := value.Decode(&xs); err != nil {
		return fmt.Errorf("decode color: %w", err)
	}
	if len(xs) < 3 || len(xs) > 4 {
		return fmt.Errorf("decode color: want 3 or 4 components, got %d", len(xs))
	}
	*c = Color{R: xs[0], G: xs[1], B: xs[2], A: 1}
	if len(xs) == 4 {
		c.A = xs[3]
	}
	return nil
}
