package tween

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec4 converts the color into the value space used by color tweens.
func (c Color) Vec4() Vec4 {
	return Vec4{c.R, c.G, c.B, c.A}
}

// Color converts a Vec4 produced by a color tween back into a Color.
func (v Vec4) Color() Color {
	return Color{v.X, v.Y, v.Z, v.W}
}

// Vec2 is a 2D vector used for 2D positions and scales.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector used for positions, scales and Euler rotations
// (radians).
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 is the common value space every animation interpolates in. Scalar and
// lower-dimensional values occupy the leading components; the rest are zero.
type Vec4 struct {
	X, Y, Z, W float64
}

// Vec4 widens v with zero Z and W.
func (v Vec2) Vec4() Vec4 { return Vec4{X: v.X, Y: v.Y} }

// Vec4 widens v with zero W.
func (v Vec3) Vec4() Vec4 { return Vec4{X: v.X, Y: v.Y, Z: v.Z} }

// Vec2 truncates v to its first two components.
func (v Vec4) Vec2() Vec2 { return Vec2{v.X, v.Y} }

// Vec3 truncates v to its first three components.
func (v Vec4) Vec3() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Mul returns the component-wise product of v and o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Scalar wraps a single value into the Vec4 value space.
func Scalar(f float64) Vec4 { return Vec4{X: f} }

// lerp computes (1-t)*a + t*b. Unlike a+(b-a)*t it returns b exactly at t=1.
func lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// Lerp interpolates every component of v towards o.
func (v Vec4) Lerp(o Vec4, t float64) Vec4 {
	return Vec4{
		lerp(v.X, o.X, t),
		lerp(v.Y, o.Y, t),
		lerp(v.Z, o.Z, t),
		lerp(v.W, o.W, t),
	}
}

// Distance returns the Euclidean distance between v and o over the first
// dims components. For dims == 1 this is |v.X - o.X|.
func (v Vec4) Distance(o Vec4, dims int) float64 {
	d := [4]float64{o.X - v.X, o.Y - v.Y, o.Z - v.Z, o.W - v.W}
	if dims < 1 {
		dims = 1
	}
	if dims > 4 {
		dims = 4
	}
	if dims == 1 {
		return math.Abs(d[0])
	}
	var sum float64
	for i := 0; i < dims; i++ {
		sum += d[i] * d[i]
	}
	return math.Sqrt(sum)
}

// NodeType distinguishes which capabilities a Node exposes to the tween
// factory.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeSprite                    // renderer: tintable, fadable quad
	NodeTypeMesh                      // graphic: tintable, fadable geometry
	NodeTypeText                      // text mesh: colored text content
)

// String returns the node type name used in diagnostics.
func (t NodeType) String() string {
	switch t {
	case NodeTypeContainer:
		return "container"
	case NodeTypeSprite:
		return "sprite"
	case NodeTypeMesh:
		return "mesh"
	case NodeTypeText:
		return "text"
	default:
		return "unknown"
	}
}
