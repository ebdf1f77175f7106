package newick

import (
	"bytes"
	"fmt"
	"math"
	"strings"
)

// Tree corresponds to any value representable in a Newick format. Each
// tree value corresponds to a single node, and the root of a tree is the
// only node without a parent.
type Tree struct {
	// All children of this node, in the order they appear in the input.
	// Empty for leaves.
	Children []*Tree `json:"children,omitempty" yaml:"children,omitempty"`

	// The label of this node. If it's empty, then this node does
	// not have a name.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// The branch length of this node corresponding to the distance between
	// it and its parent node. If it's `nil`, then no distance exists.
	Length *float64 `json:"length,omitempty" yaml:"length,omitempty"`

	// The input or inferred sequence of this node. Never set by the parser.
	Sequence string `json:"sequence,omitempty" yaml:"sequence,omitempty"`

	// Per-position sets of allowed residues. A nil value means the
	// preferences have not been computed. Never set by the parser.
	Preferences Preferences `json:"preferences,omitempty" yaml:"preferences,omitempty"`

	// Not owned. Only used to walk up the tree.
	parent *Tree
}

// Parent returns the parent of this node, or nil if it is the root.
func (t *Tree) Parent() *Tree {
	return t.parent
}

// SetParent sets the parent of this node. It does not add the node to the
// parent's children; see AddChild.
func (t *Tree) SetParent(parent *Tree) {
	t.parent = parent
}

// AddChild appends child to the children of t. The caller is responsible
// for also setting the child's parent.
func (t *Tree) AddChild(child *Tree) {
	t.Children = append(t.Children, child)
}

// attach links child under parent in both directions. A nil parent leaves
// child as a root.
func attach(parent, child *Tree) {
	child.SetParent(parent)
	if parent != nil {
		parent.AddChild(child)
	}
}

// Distance returns the branch length to the parent and whether one was set.
// When no length is set, NaN is returned.
func (t *Tree) Distance() (float64, bool) {
	if t.Length == nil {
		return math.NaN(), false
	}
	return *t.Length, true
}

// SetDistance sets the branch length to the parent.
func (t *Tree) SetDistance(d float64) {
	t.Length = &d
}

// ClearDistance removes the branch length.
func (t *Tree) ClearDistance() {
	t.Length = nil
}

func (t *Tree) IsRoot() bool {
	return t.parent == nil
}

func (t *Tree) IsLeaf() bool {
	return len(t.Children) == 0
}

// Walk visits t and all of its descendants in pre-order, children left to
// right. depth is 0 for t. If fn returns false, the children of that node
// are skipped.
//
// Walk uses an explicit stack, so it is safe on arbitrarily deep trees.
func (t *Tree) Walk(fn func(node *Tree, depth int) bool) {
	type frame struct {
		node  *Tree
		depth int
	}
	stack := []frame{{t, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.node, f.depth) {
			continue
		}
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.Children[i], f.depth + 1})
		}
	}
}

// Leaves returns all leaves below t (or t itself if it is a leaf) from left
// to right.
func (t *Tree) Leaves() []*Tree {
	leaves := make([]*Tree, 0)
	t.Walk(func(n *Tree, _ int) bool {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
		return true
	})
	return leaves
}

// Find returns the first node in pre-order whose label is label, or nil.
func (t *Tree) Find(label string) *Tree {
	var found *Tree
	t.Walk(func(n *Tree, _ int) bool {
		if found != nil {
			return false
		}
		if n.Label == label {
			found = n
			return false
		}
		return true
	})
	return found
}

// Size returns the number of nodes in the tree rooted at t.
func (t *Tree) Size() int {
	n := 0
	t.Walk(func(*Tree, int) bool {
		n++
		return true
	})
	return n
}

// Depth returns the number of edges on the longest path from t to a leaf.
func (t *Tree) Depth() int {
	deepest := 0
	t.Walk(func(_ *Tree, depth int) bool {
		if depth > deepest {
			deepest = depth
		}
		return true
	})
	return deepest
}

// TotalLength returns the sum of all branch lengths below t. The length of
// t itself is not included, and nodes without a length contribute nothing.
func (t *Tree) TotalLength() float64 {
	sum := 0.0
	t.Walk(func(n *Tree, _ int) bool {
		if n != t && n.Length != nil {
			sum += *n.Length
		}
		return true
	})
	return sum
}

// String converts a tree to a string, with whitespace indenting to
// indicate depth.
func (t *Tree) String() string {
	buf := new(bytes.Buffer)
	t.Walk(func(n *Tree, depth int) bool {
		name, length := n.Label, ""
		if len(name) == 0 {
			name = "N/A"
		}
		if n.Length != nil {
			length = fmt.Sprintf(" (%f)", *n.Length)
		}
		fmt.Fprintf(buf, "%s%s%s\n", strings.Repeat("  ", depth), name, length)
		return true
	})
	return buf.String()
}
