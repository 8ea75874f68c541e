package scene

import "render-engine/core"

// TraceNormal walks the tree rooted at n, converting the ray into each
// node's local coordinates before intersecting that node's own object and
// recursing into its children. Every call that produced a hit maps the
// hit's point and normal from its node's local frame into its parent's
// frame, so once the root call returns the hit is in world coordinates
// (§4.C). The hit's Z is a ray parameter, which these affine transforms
// preserve, so it stays expressed along the original (world) ray.
func (s *Scene) TraceNormal(n *Node, ray core.DiffRay, hit *core.HitInfo, mask core.SideMask) bool {
	local := s.toNodeCoords(n, ray)
	hitAny := false

	if n.ObjectIndex >= 0 {
		obj := s.Objects[n.ObjectIndex]
		if obj.Intersect(local, hit, mask) {
			hit.Node = n
			if n.MaterialIndex >= 0 {
				hit.MtlID = n.MaterialIndex
			}
			hitAny = true
		}
	}
	for _, c := range n.Children {
		if s.TraceNormal(c, local, hit, mask) {
			hitAny = true
		}
	}
	if hitAny {
		s.fromNodeCoords(n, hit)
	}
	return hitAny
}

// TraceShadow is structurally identical to TraceNormal but short-circuits
// on the first intersection closer than maxDist, regardless of distance
// ordering among siblings, using the caller's side mask; Scene.shadowed
// passes SideBoth, since a shadow ray is blocked by front and back faces
// alike.
func (s *Scene) TraceShadow(n *Node, ray core.DiffRay, mask core.SideMask, maxDist float32) bool {
	local := s.toNodeCoords(n, ray)

	if n.ObjectIndex >= 0 {
		probe := core.NewHitInfo()
		if s.Objects[n.ObjectIndex].Intersect(local, &probe, mask) && probe.Z < maxDist {
			return true
		}
	}
	for _, c := range n.Children {
		if s.TraceShadow(c, local, mask, maxDist) {
			return true
		}
	}
	return false
}

func (s *Scene) toNodeCoords(n *Node, ray core.DiffRay) core.DiffRay {
	toPoint := n.Transform.TransformTo
	toDir := n.Transform.DirectionTo
	return ray.Transform(toPoint, toDir)
}

func (s *Scene) fromNodeCoords(n *Node, hit *core.HitInfo) {
	hit.P = n.Transform.TransformFrom(hit.P)
	hit.N = n.Transform.VectorTransformFrom(hit.N).Normalize()
}
