package scene

import "render-engine/core"

// Node is a scene-graph tree node. Per the cyclic-graph design note, the
// object and material links are weak references — indices into the
// owning Scene's flat Objects/Materials slices — rather than pointers,
// so a node never holds a strong reference outside its own subtree.
// Children are owned (the teacher's scene.Node shape), so dropping a
// node drops its whole subtree.
type Node struct {
	Name      string
	Transform Transform
	Children  []*Node

	// ObjectIndex/MaterialIndex are weak references into Scene.Objects /
	// Scene.Materials. -1 means "no object" / "no material".
	ObjectIndex   int
	MaterialIndex int

	childBox      core.AABB
	childBoxValid bool
}

func NewNode(name string) *Node {
	return &Node{
		Name:          name,
		Transform:     NewTransform(),
		ObjectIndex:   -1,
		MaterialIndex: -1,
	}
}

func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
	n.childBoxValid = false
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			n.childBoxValid = false
			return
		}
	}
}

// Traverse calls fn on n and every descendant, pre-order.
func (n *Node) Traverse(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Traverse(fn)
	}
}

// Find returns the first descendant (including n) with the given name,
// or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}
