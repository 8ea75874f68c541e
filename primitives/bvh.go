package primitives

import (
	"sort"

	"render-engine/core"
	"render-engine/math"
)

// BVHNode is one node of the binary tree stored in a packed array (§3).
// Leaves hold [start, start+count) into the face-index permutation;
// internal nodes hold explicit child indices, since a top-down build
// over variable-size subtrees does not in general produce the
// right-equals-left+1 layout of a complete binary heap.
type BVHNode struct {
	Box          core.AABB
	Left, Right  int // internal: child node indices; leaf: unused (Count > 0)
	Start        int // leaf: start offset into Faces permutation
	Count        int // leaf: number of faces; 0 for internal nodes
}

// BVH is the top-down-built acceleration structure over a TriMesh's
// faces (§4.E build, §4.D traversal).
type BVH struct {
	Nodes []BVHNode
	Faces []int // permutation of original face indices
}

const maxBVHStackDepth = 40

// BuildBVH constructs the tree top-down: at each step, compute the
// subset's centroid bounding box, split on the longest axis at the
// median of centroid coordinates, partition face indices in place; stop
// when the subset size <= maxElementsPerNode or all centroids coincide
// (§4.E).
func BuildBVH(boxes []core.AABB, centroids []math.Vec3, maxElementsPerNode int) *BVH {
	n := len(boxes)
	faces := make([]int, n)
	for i := range faces {
		faces[i] = i
	}
	bvh := &BVH{Faces: faces}
	if n == 0 {
		return bvh
	}
	bvh.build(boxes, centroids, 0, n, maxElementsPerNode)
	return bvh
}

// build recursively appends nodes in preorder and returns the index of
// the node it created. The left half of the centroid-sorted range
// becomes the left child, the upper half the right child; their node
// indices are recorded explicitly since the left subtree's node count
// varies with its shape.
func (bvh *BVH) build(boxes []core.AABB, centroids []math.Vec3, start, end, maxPerNode int) int {
	box := core.EmptyAABB()
	centroidBox := core.EmptyAABB()
	for i := start; i < end; i++ {
		box = box.Union(boxes[bvh.Faces[i]])
		centroidBox = centroidBox.UnionPoint(centroids[bvh.Faces[i]])
	}

	count := end - start
	if count <= maxPerNode || centroidBox.Extent().LengthSqr() < 1e-20 {
		idx := len(bvh.Nodes)
		bvh.Nodes = append(bvh.Nodes, BVHNode{Box: box, Start: start, Count: count})
		return idx
	}

	axis := centroidBox.LongestAxis()
	mid := (start + end) / 2
	slice := bvh.Faces[start:end]
	sort.Slice(slice, func(i, j int) bool {
		return axisOf(centroids[slice[i]], axis) < axisOf(centroids[slice[j]], axis)
	})

	idx := len(bvh.Nodes)
	bvh.Nodes = append(bvh.Nodes, BVHNode{Box: box})
	left := bvh.build(boxes, centroids, start, mid, maxPerNode)
	right := bvh.build(boxes, centroids, mid, end, maxPerNode)
	bvh.Nodes[idx].Left = left
	bvh.Nodes[idx].Right = right
	return idx
}

func axisOf(v math.Vec3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Traverse walks the tree with an explicit fixed-size stack of at most
// maxBVHStackDepth entries (§4.D — never recurses), testing leaf faces
// via testLeaf. bestZ reports the current best hit distance so a child
// box is only pushed when entry < currentBest && entry < exit; the
// farther-entry child is pushed first so the nearer one is popped next
// (ties push right first). A balanced tree never approaches
// maxBVHStackDepth in practice (it bounds well under 2^40 faces), so a
// push that would overflow the array is simply dropped rather than
// grown, holding the stack to its stated bound.
func (bvh *BVH) Traverse(r core.Ray, bestZ func() float32, testLeaf func(faceIdx int) bool) bool {
	if len(bvh.Nodes) == 0 {
		return false
	}
	hitAny := false

	var stack [maxBVHStackDepth]int
	sp := 0
	stack[sp] = 0
	sp++

	push := func(node int) {
		if sp < len(stack) {
			stack[sp] = node
			sp++
		}
	}

	for sp > 0 {
		sp--
		node := bvh.Nodes[stack[sp]]

		if node.Count > 0 {
			for i := node.Start; i < node.Start+node.Count; i++ {
				if testLeaf(bvh.Faces[i]) {
					hitAny = true
				}
			}
			continue
		}

		leftIdx := node.Left
		rightIdx := node.Right
		lBox := bvh.Nodes[leftIdx].Box
		rBox := bvh.Nodes[rightIdx].Box

		best := bestZ()
		lMin, lMax, lHit := lBox.Intersect(r, best)
		rMin, rMax, rHit := rBox.Intersect(r, best)

		pushLeft := lHit && lMin < best && lMin < lMax
		pushRight := rHit && rMin < best && rMin < rMax
		if pushLeft && pushRight {
			if lMin <= rMin {
				push(rightIdx)
				push(leftIdx)
			} else {
				push(leftIdx)
				push(rightIdx)
			}
		} else if pushLeft {
			push(leftIdx)
		} else if pushRight {
			push(rightIdx)
		}
	}
	return hitAny
}
