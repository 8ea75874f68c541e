package primitives

import (
	"render-engine/core"
	"render-engine/math"
)

// Face references three vertex/normal/texcoord indices plus a material
// sub-id (§3's TriMesh face table).
type Face struct {
	V, N, UV [3]int
	MtlID    int
}

// TriMesh owns a vertex/normal/texcoord table, a face table, and an
// owned BVH over the faces (§3).
type TriMesh struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	TexCoords []math.Vec3
	Faces     []Face
	bvh       *BVH
}

// Build constructs the owned BVH over this mesh's faces (§4.E), using
// maxElementsPerNode as the leaf-size cutoff (default 4 per §3).
func (m *TriMesh) Build(maxElementsPerNode int) {
	if maxElementsPerNode <= 0 {
		maxElementsPerNode = 4
	}
	boxes := make([]core.AABB, len(m.Faces))
	centroids := make([]math.Vec3, len(m.Faces))
	for i, f := range m.Faces {
		b := core.EmptyAABB()
		b = b.UnionPoint(m.Positions[f.V[0]])
		b = b.UnionPoint(m.Positions[f.V[1]])
		b = b.UnionPoint(m.Positions[f.V[2]])
		boxes[i] = b
		centroids[i] = b.Center()
	}
	m.bvh = BuildBVH(boxes, centroids, maxElementsPerNode)
}

func (m *TriMesh) BoundingBox() core.AABB {
	if m.bvh == nil || len(m.bvh.Nodes) == 0 {
		b := core.EmptyAABB()
		for _, p := range m.Positions {
			b = b.UnionPoint(p)
		}
		return b
	}
	return m.bvh.Nodes[0].Box
}

func (m *TriMesh) Intersect(r core.DiffRay, hit *core.HitInfo, mask core.SideMask) bool {
	if m.bvh == nil {
		return false
	}
	return m.bvh.Traverse(r.Center, func() float32 { return hit.Z }, func(faceIdx int) bool {
		return m.intersectFace(faceIdx, r, hit, mask)
	})
}

// intersectFace implements §4.D's triangle algorithm: face normal,
// ray-plane intersect, drop the numerically dominant axis of |N| to
// project onto 2-D, signed 2-D triangle areas for barycentrics; reject
// if any barycentric is negative.
func (m *TriMesh) intersectFace(faceIdx int, r core.DiffRay, hit *core.HitInfo, mask core.SideMask) bool {
	f := m.Faces[faceIdx]
	v0, v1, v2 := m.Positions[f.V[0]], m.Positions[f.V[1]], m.Positions[f.V[2]]
	n := v1.Sub(v0).Cross(v2.Sub(v0))

	t, b0, b1, b2, ok := triHit(r.Center, v0, v1, v2, n)
	if !ok || t <= intersectionBias || t >= hit.Z {
		return false
	}

	frontHit := n.Dot(r.Center.Dir) <= 0
	if !mask.Accepts(frontHit) {
		return false
	}

	shadingN := interpNormal(m, f, b0, b1, b2)
	uv := interpUV(m, f, b0, b1, b2)

	return hit.TryUpdate(t, func(h *core.HitInfo) {
		h.P = r.Center.At(t)
		h.N = shadingN
		h.FrontHit = frontHit
		h.UVW = uv
		h.MtlID = f.MtlID
		if r.HasDiff {
			if tdx, bx0, bx1, bx2, ok := triHit(r.DX, v0, v1, v2, n); ok && tdx > 0 {
				h.DUVWDX = interpUV(m, f, bx0, bx1, bx2).Sub(uv)
			}
			if tdy, by0, by1, by2, ok := triHit(r.DY, v0, v1, v2, n); ok && tdy > 0 {
				h.DUVWDY = interpUV(m, f, by0, by1, by2).Sub(uv)
			}
		}
	})
}

// triHit intersects r with the plane through (v0,v1,v2) with normal n,
// then computes barycentrics by dropping the axis of largest |n|
// component and comparing signed 2-D triangle areas.
func triHit(r core.Ray, v0, v1, v2, n math.Vec3) (t, b0, b1, b2 float32, ok bool) {
	denom := n.Dot(r.Dir)
	if denom > -1e-9 && denom < 1e-9 {
		return 0, 0, 0, 0, false
	}
	t = v0.Sub(r.Origin).Dot(n) / denom
	p := r.At(t)

	ax, ay, az := absf(n.X), absf(n.Y), absf(n.Z)
	proj := func(v math.Vec3) (float32, float32) {
		switch {
		case ax >= ay && ax >= az:
			return v.Y, v.Z
		case ay >= ax && ay >= az:
			return v.Z, v.X
		default:
			return v.X, v.Y
		}
	}
	px, py := proj(p)
	v0x, v0y := proj(v0)
	v1x, v1y := proj(v1)
	v2x, v2y := proj(v2)

	area := signedArea2(v0x, v0y, v1x, v1y, v2x, v2y)
	if area > -1e-12 && area < 1e-12 {
		return t, 0, 0, 0, false
	}
	invArea := 1 / area
	b0 = signedArea2(px, py, v1x, v1y, v2x, v2y) * invArea
	b1 = signedArea2(v0x, v0y, px, py, v2x, v2y) * invArea
	b2 = 1 - b0 - b1
	if b0 < 0 || b1 < 0 || b2 < 0 {
		return t, b0, b1, b2, false
	}
	return t, b0, b1, b2, true
}

func signedArea2(ax, ay, bx, by, cx, cy float32) float32 {
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func interpNormal(m *TriMesh, f Face, b0, b1, b2 float32) math.Vec3 {
	n0, n1, n2 := m.Normals[f.N[0]], m.Normals[f.N[1]], m.Normals[f.N[2]]
	return n0.Mul(b0).Add(n1.Mul(b1)).Add(n2.Mul(b2)).Normalize()
}

func interpUV(m *TriMesh, f Face, b0, b1, b2 float32) math.Vec3 {
	if len(m.TexCoords) == 0 {
		return math.Vec3{}
	}
	u0, u1, u2 := m.TexCoords[f.UV[0]], m.TexCoords[f.UV[1]], m.TexCoords[f.UV[2]]
	return u0.Mul(b0).Add(u1.Mul(b1)).Add(u2.Mul(b2))
}
