package tween

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the node's
// transform properties. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func computeLocalTransform(n *Node) [6]float64 {
	sx := n.ScaleX
	sy := n.ScaleY

	sin, cos := math.Sincos(n.Rotation)

	preTx := -n.PivotX * sx
	preTy := -n.PivotY * sy

	return [6]float64{
		cos * sx,
		sin * sx,
		-sin * sy,
		cos * sy,
		cos*preTx - sin*preTy + n.X,
		sin*preTx + cos*preTy + n.Y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform recomputes a node's cached worldTransform and
// worldAlpha. parentRecomputed forces recomputation of clean children.
func updateWorldTransform(n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(n)
		n.worldTransform = multiplyAffine(parentTransform, local)
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, n.worldAlpha, recompute)
	}
}

// worldMatrix composes the local transforms from the root down to n. Unlike
// the cached worldTransform it is always current, which tweens need because
// they run before the per-frame refresh.
func worldMatrix(n *Node) [6]float64 {
	if n == nil {
		return identityTransform
	}
	return multiplyAffine(worldMatrix(n.Parent), computeLocalTransform(n))
}

// worldZ sums Z from the root down to n.
func worldZ(n *Node) float64 {
	var z float64
	for p := n; p != nil; p = p.Parent {
		z += p.Z
	}
	return z
}

// worldEuler sums the Euler rotations from the root down to n.
func worldEuler(n *Node) Vec3 {
	var r Vec3
	for p := n; p != nil; p = p.Parent {
		r = r.Add(Vec3{p.RotationX, p.RotationY, p.Rotation})
	}
	return r
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// LocalPosition returns the local position including Z.
func (n *Node) LocalPosition() Vec3 {
	return Vec3{n.X, n.Y, n.Z}
}

// SetLocalPosition sets the local position including Z.
func (n *Node) SetLocalPosition(p Vec3) {
	n.X, n.Y, n.Z = p.X, p.Y, p.Z
	n.transformDirty = true
}

// WorldPosition returns where the node's origin lands in world space.
func (n *Node) WorldPosition() Vec3 {
	x, y := transformPoint(worldMatrix(n.Parent), n.X, n.Y)
	return Vec3{x, y, worldZ(n)}
}

// SetWorldPosition moves the node so its origin lands on p in world space.
func (n *Node) SetWorldPosition(p Vec3) {
	inv := invertAffine(worldMatrix(n.Parent))
	x, y := transformPoint(inv, p.X, p.Y)
	n.X, n.Y = x, y
	n.Z = p.Z - worldZ(n.Parent)
	n.transformDirty = true
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// LocalScale returns the local scale including Z.
func (n *Node) LocalScale() Vec3 {
	return Vec3{n.ScaleX, n.ScaleY, n.ScaleZ}
}

// SetLocalScale sets the local scale including Z.
func (n *Node) SetLocalScale(s Vec3) {
	n.ScaleX, n.ScaleY, n.ScaleZ = s.X, s.Y, s.Z
	n.transformDirty = true
}

// SetRotation sets the node's rotation about Z (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// LocalRotation returns the local Euler rotation in radians.
func (n *Node) LocalRotation() Vec3 {
	return Vec3{n.RotationX, n.RotationY, n.Rotation}
}

// SetLocalRotation sets the local Euler rotation in radians.
func (n *Node) SetLocalRotation(r Vec3) {
	n.RotationX, n.RotationY, n.Rotation = r.X, r.Y, r.Z
	n.transformDirty = true
}

// WorldRotation returns the Euler rotation accumulated from the root.
// Rotations compose additively per axis, which is exact for the Z axis used
// by the 2D transform.
func (n *Node) WorldRotation() Vec3 {
	return worldEuler(n)
}

// SetWorldRotation sets the local rotation so that WorldRotation returns r.
func (n *Node) SetWorldRotation(r Vec3) {
	parent := worldEuler(n.Parent)
	n.SetLocalRotation(Vec3{r.X - parent.X, r.Y - parent.Y, r.Z - parent.Z})
}

// SetPivot sets the node's PivotX and PivotY and marks it dirty.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
	n.transformDirty = true
}

// SetAlpha sets the node's alpha and marks it dirty.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(worldMatrix(n))
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(worldMatrix(n), lx, ly)
}
