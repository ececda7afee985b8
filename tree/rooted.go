package tree

import (
	"strings"

	"phylo/distance"
)

type rootedNode struct {
	label    string
	length   float64
	hasLen   bool
	parent   int
	children []int
}

// Rooted is a rooted tree. Branch lengths hang on the child end of each
// edge; the root may carry a length of its own but it is not part of any
// path.
type Rooted struct {
	nodes []rootedNode
}

// NewRooted returns an empty rooted tree.
func NewRooted() *Rooted { return &Rooted{} }

// NewNode adds a detached node and returns its id.
func (t *Rooted) NewNode(label string) int {
	t.nodes = append(t.nodes, rootedNode{label: label, parent: None})
	return len(t.nodes) - 1
}

// AddChild attaches child under parent. A child already attached elsewhere
// is moved.
func (t *Rooted) AddChild(parent, child int) {
	if p := t.nodes[child].parent; p != None {
		siblings := t.nodes[p].children
		for i, c := range siblings {
			if c == child {
				t.nodes[p].children = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	t.nodes[child].parent = parent
	t.nodes[parent].children = append(t.nodes[parent].children, child)
}

// Size returns the number of nodes.
func (t *Rooted) Size() int { return len(t.nodes) }

// Root returns the id of the parentless node, or None for an empty tree.
func (t *Rooted) Root() int {
	for id := range t.nodes {
		if t.nodes[id].parent == None {
			return id
		}
	}
	return None
}

// Label returns the node label.
func (t *Rooted) Label(id int) string { return t.nodes[id].label }

// SetLabel replaces the node label.
func (t *Rooted) SetLabel(id int, label string) { t.nodes[id].label = label }

// Length returns the branch length above id and whether it is set.
func (t *Rooted) Length(id int) (float64, bool) {
	return t.nodes[id].length, t.nodes[id].hasLen
}

// EdgeLength returns the branch length above id, zero when unset.
func (t *Rooted) EdgeLength(id int) float64 { return t.nodes[id].length }

// SetLength sets the branch length above id.
func (t *Rooted) SetLength(id int, length float64) {
	t.nodes[id].length = length
	t.nodes[id].hasLen = true
}

// Parent returns the parent id, or None for the root.
func (t *Rooted) Parent(id int) int { return t.nodes[id].parent }

// Children returns the child ids in attachment order. The slice is owned by
// the tree.
func (t *Rooted) Children(id int) []int { return t.nodes[id].children }

// IsLeaf reports whether id has no children.
func (t *Rooted) IsLeaf(id int) bool { return len(t.nodes[id].children) == 0 }

// Leaves returns the leaf ids in depth-first order from the root.
func (t *Rooted) Leaves() []int {
	root := t.Root()
	if root == None {
		return nil
	}
	var leaves []int
	t.walk(root, func(id int) {
		if t.IsLeaf(id) {
			leaves = append(leaves, id)
		}
	})
	return leaves
}

// walk visits the subtree under id in depth-first preorder.
func (t *Rooted) walk(id int, visit func(int)) {
	stack := []int{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(cur)
		children := t.nodes[cur].children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// Walk visits the subtree under id in depth-first preorder.
func (t *Rooted) Walk(id int, visit func(int)) { t.walk(id, visit) }

// LeafCount returns the number of leaves in the subtree under id.
func (t *Rooted) LeafCount(id int) int {
	count := 0
	t.walk(id, func(n int) {
		if t.IsLeaf(n) {
			count++
		}
	})
	return count
}

// DistanceFromRoot sums the branch lengths from the root down to id. The
// root's own length, when present, is not on the path and is excluded.
func (t *Rooted) DistanceFromRoot(id int) float64 {
	total := 0.0
	for cur := id; t.nodes[cur].parent != None; cur = t.nodes[cur].parent {
		total += t.nodes[cur].length
	}
	return total
}

// Distance returns the path length between two nodes.
func (t *Rooted) Distance(a, b int) float64 {
	depth := map[int]float64{}
	for cur, d := a, 0.0; ; cur = t.nodes[cur].parent {
		depth[cur] = d
		if t.nodes[cur].parent == None {
			break
		}
		d += t.nodes[cur].length
	}
	for cur, d := b, 0.0; ; cur = t.nodes[cur].parent {
		if up, ok := depth[cur]; ok {
			return up + d
		}
		d += t.nodes[cur].length
		if t.nodes[cur].parent == None {
			break
		}
	}
	return distance.Infinity
}

// MaxLeafDistance returns the largest root-to-leaf path length, zero for
// empty or single-node trees.
func (t *Rooted) MaxLeafDistance() float64 {
	max := 0.0
	for _, leaf := range t.Leaves() {
		if d := t.DistanceFromRoot(leaf); d > max {
			max = d
		}
	}
	return max
}

// DistanceMatrix returns pairwise path lengths between all leaves, keyed by
// leaf label.
func (t *Rooted) DistanceMatrix() *distance.Matrix {
	leaves := t.Leaves()
	m := distance.NewMatrix()
	for _, leaf := range leaves {
		m.AddOTU(t.nodes[leaf].label)
	}
	for _, a := range leaves {
		for _, b := range leaves {
			if a != b {
				m.SetDistance(t.nodes[a].label, t.nodes[b].label, t.Distance(a, b))
			}
		}
	}
	return m
}

// Newick renders the tree without the closing semicolon.
func (t *Rooted) Newick() string {
	root := t.Root()
	if root == None {
		return ""
	}
	var b strings.Builder
	t.writeNewick(&b, root)
	return b.String()
}

func (t *Rooted) writeNewick(b *strings.Builder, id int) {
	node := &t.nodes[id]
	if len(node.children) > 0 {
		b.WriteByte('(')
		for i, child := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			t.writeNewick(b, child)
		}
		b.WriteByte(')')
	}
	b.WriteString(quoteLabel(node.label))
	if node.hasLen {
		b.WriteByte(':')
		b.WriteString(formatLength(node.length))
	}
}

// Rooted returns the tree itself.
func (t *Rooted) Rooted() *Rooted { return t }

// Unrooted converts the tree by turning every parent-child edge into a
// symmetric connection. The root's own length is dropped. Nodes are created
// in depth-first preorder from the root, so neighbor ordering follows tree
// shape rather than construction history.
func (t *Rooted) Unrooted() *Unrooted {
	u := NewUnrooted()
	root := t.Root()
	if root == None {
		return u
	}
	ids := map[int]int{}
	t.walk(root, func(id int) {
		ids[id] = u.NewNode(t.nodes[id].label)
	})
	t.walk(root, func(id int) {
		if p := t.nodes[id].parent; p != None {
			u.Connect(ids[p], ids[id], t.nodes[id].length)
		}
	})
	return u
}
