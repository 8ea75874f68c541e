package scene

import "render-engine/math"

// Transform owns the local-to-world matrix M, its translation t, and the
// cached inverse M^-1. Rotations/scale updates rebuild M^-1; a pure
// translation only updates t, matching the teacher's lazy-matrix-cache
// idiom (scene.Node) adapted to the (M, M^-1, t) contract instead of a
// TRS decomposition.
type Transform struct {
	M    math.Mat4
	MInv math.Mat4
	T    math.Vec3
}

func NewTransform() Transform {
	return Transform{M: math.Mat4Identity(), MInv: math.Mat4Identity()}
}

// TransformFrom maps a point from local to world space: M*p + t.
func (tr Transform) TransformFrom(p math.Vec3) math.Vec3 {
	return tr.M.MulVec3(p).Add(tr.T)
}

// TransformTo maps a point from world to local space: M^-1*(p - t).
func (tr Transform) TransformTo(p math.Vec3) math.Vec3 {
	return tr.MInv.MulVec3(p.Sub(tr.T))
}

// VectorTransformFrom maps a normal from local to world space via
// (M^-1)^T * v, the inverse-transpose normal transform.
func (tr Transform) VectorTransformFrom(v math.Vec3) math.Vec3 {
	return tr.MInv.Transpose().MulVec3(v)
}

// VectorTransformTo maps a normal from world to local space via M^T * v,
// the inverse-transpose normal transform in the other direction.
func (tr Transform) VectorTransformTo(v math.Vec3) math.Vec3 {
	return tr.M.Transpose().MulVec3(v)
}

// DirectionTo maps a ray direction from world to local space via the
// linear part of TransformTo, M^-1 * v with no translation term — the
// same result as TransformTo(p+v) - TransformTo(p). Unlike
// VectorTransformTo/From, this is not transposed: a direction rides
// along with the point transform it was differenced from, while a
// normal needs the inverse-transpose to stay perpendicular to the
// transformed surface.
func (tr Transform) DirectionTo(v math.Vec3) math.Vec3 {
	return tr.MInv.MulVec3(v)
}

// Translate updates t only, leaving M and M^-1 untouched.
func (tr Transform) Translate(d math.Vec3) Transform {
	tr.T = tr.T.Add(d)
	return tr
}

// RotateAxis post-multiplies a rotation on the left: M <- R*M, t <- R*t,
// then rebuilds M^-1. The rotation itself is built as a quaternion (the
// scene graph's only remaining quaternion use, now that the teacher's
// TRS-decomposed Transform is gone) and converted to a matrix, since a
// quaternion is the numerically stable way to compose a single
// axis-angle rotation before baking it into M.
func (tr Transform) RotateAxis(axis math.Vec3, degrees float32) Transform {
	q := math.QuaternionFromAxisAngle(axis, degrees*3.14159265/180)
	r := q.ToMat4()
	tr.M = r.Mul(tr.M)
	tr.T = r.MulVec3(tr.T)
	tr.MInv = tr.M.Inverse()
	return tr
}

// Scale post-multiplies a nonuniform scale on the left and rebuilds
// M^-1.
func (tr Transform) Scale(s math.Vec3) Transform {
	scaleM := math.Mat4Scale(s)
	tr.M = scaleM.Mul(tr.M)
	tr.T = scaleM.MulVec3(tr.T)
	tr.MInv = tr.M.Inverse()
	return tr
}
