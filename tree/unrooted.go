package tree

import (
	"sort"

	"phylo/distance"
)

type edge struct {
	to     int
	length float64
}

type unrootedNode struct {
	label string
	adj   []edge // kept sorted by neighbor id
}

// Unrooted is an unrooted tree with symmetric weighted edges. Neighbor
// lists stay ordered by node id, which fixes child order when the tree is
// rooted.
type Unrooted struct {
	nodes []unrootedNode
}

// NewUnrooted returns an empty unrooted tree.
func NewUnrooted() *Unrooted { return &Unrooted{} }

// NewNode adds an isolated node and returns its id.
func (t *Unrooted) NewNode(label string) int {
	t.nodes = append(t.nodes, unrootedNode{label: label})
	return len(t.nodes) - 1
}

// Size returns the number of nodes.
func (t *Unrooted) Size() int { return len(t.nodes) }

// Label returns the node label.
func (t *Unrooted) Label(id int) string { return t.nodes[id].label }

// SetLabel replaces the node label.
func (t *Unrooted) SetLabel(id int, label string) { t.nodes[id].label = label }

// Connect links a and b with the given edge length, replacing any previous
// edge between them.
func (t *Unrooted) Connect(a, b int, length float64) {
	t.setEdge(a, b, length)
	t.setEdge(b, a, length)
}

func (t *Unrooted) setEdge(from, to int, length float64) {
	adj := t.nodes[from].adj
	i := sort.Search(len(adj), func(i int) bool { return adj[i].to >= to })
	if i < len(adj) && adj[i].to == to {
		adj[i].length = length
		return
	}
	adj = append(adj, edge{})
	copy(adj[i+1:], adj[i:])
	adj[i] = edge{to: to, length: length}
	t.nodes[from].adj = adj
}

// Disconnect removes the edge between a and b.
func (t *Unrooted) Disconnect(a, b int) {
	t.dropEdge(a, b)
	t.dropEdge(b, a)
}

func (t *Unrooted) dropEdge(from, to int) {
	adj := t.nodes[from].adj
	for i, e := range adj {
		if e.to == to {
			t.nodes[from].adj = append(adj[:i], adj[i+1:]...)
			return
		}
	}
}

// EdgeLength returns the length of the edge between a and b and whether
// the edge exists.
func (t *Unrooted) EdgeLength(a, b int) (float64, bool) {
	for _, e := range t.nodes[a].adj {
		if e.to == b {
			return e.length, true
		}
	}
	return 0, false
}

// Neighbors returns the neighbor ids of id in ascending order. The slice is
// owned by the tree.
func (t *Unrooted) Neighbors(id int) []int {
	out := make([]int, len(t.nodes[id].adj))
	for i, e := range t.nodes[id].adj {
		out[i] = e.to
	}
	return out
}

// Degree returns the number of neighbors of id.
func (t *Unrooted) Degree(id int) int { return len(t.nodes[id].adj) }

// IsLeaf reports whether id has fewer than two neighbors.
func (t *Unrooted) IsLeaf(id int) bool { return len(t.nodes[id].adj) < 2 }

// Leaves returns the leaf ids in ascending order.
func (t *Unrooted) Leaves() []int {
	var leaves []int
	for id := range t.nodes {
		if t.IsLeaf(id) {
			leaves = append(leaves, id)
		}
	}
	return leaves
}

// Path returns the node ids along the unique path from a to b, inclusive,
// or nil when no path exists.
func (t *Unrooted) Path(a, b int) []int {
	if a == b {
		return []int{a}
	}
	prev := make([]int, len(t.nodes))
	for i := range prev {
		prev[i] = None
	}
	prev[a] = a
	stack := []int{a}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == b {
			var path []int
			for n := b; ; n = prev[n] {
				path = append(path, n)
				if n == a {
					break
				}
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}
		for _, e := range t.nodes[cur].adj {
			if prev[e.to] == None && e.to != a {
				prev[e.to] = cur
				stack = append(stack, e.to)
			}
		}
	}
	return nil
}

// Distance returns the path length between a and b, Infinity when they are
// not connected.
func (t *Unrooted) Distance(a, b int) float64 {
	path := t.Path(a, b)
	if path == nil {
		return distance.Infinity
	}
	total := 0.0
	for i := 1; i < len(path); i++ {
		l, _ := t.EdgeLength(path[i-1], path[i])
		total += l
	}
	return total
}

// DistanceMatrix returns pairwise path lengths between all leaves, keyed by
// leaf label.
func (t *Unrooted) DistanceMatrix() *distance.Matrix {
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

// AddBetween splits the edge between a and b with a new node carrying the
// given label, placed fromA away from a. It returns the new node id.
func (t *Unrooted) AddBetween(a, b int, label string, fromA float64) int {
	length, ok := t.EdgeLength(a, b)
	if !ok {
		return None
	}
	mid := t.NewNode(label)
	t.Disconnect(a, b)
	t.Connect(a, mid, fromA)
	t.Connect(mid, b, length-fromA)
	return mid
}

// Clone returns an independent copy of the tree.
func (t *Unrooted) Clone() *Unrooted {
	out := &Unrooted{nodes: make([]unrootedNode, len(t.nodes))}
	for i, n := range t.nodes {
		out.nodes[i] = unrootedNode{label: n.label, adj: append([]edge(nil), n.adj...)}
	}
	return out
}

// RootedAt grows a rooted tree outward from the given node. Children keep
// their edge lengths and appear in neighbor id order; the root gets no
// length.
func (t *Unrooted) RootedAt(id int) *Rooted {
	rt := NewRooted()
	if id < 0 || id >= len(t.nodes) {
		return rt
	}
	t.buildRooted(rt, id, None, None)
	return rt
}

func (t *Unrooted) buildRooted(rt *Rooted, id, parent, rootedParent int) {
	node := rt.NewNode(t.nodes[id].label)
	if rootedParent != None {
		rt.AddChild(rootedParent, node)
		length, _ := t.EdgeLength(id, parent)
		rt.SetLength(node, length)
	}
	for _, e := range t.nodes[id].adj {
		if e.to != parent {
			t.buildRooted(rt, e.to, id, node)
		}
	}
}

// MidpointRoot reroots the tree at the midpoint of the longest leaf-to-leaf
// path: a new degree-2 node splits the edge where the half distance falls.
// The receiver is left untouched.
func (t *Unrooted) MidpointRoot() *Rooted {
	if len(t.nodes) == 0 {
		return NewRooted()
	}
	cp := t.Clone()
	dm := cp.DistanceMatrix()
	aLabel, bLabel := dm.MaxPair()
	a, b := cp.leafByLabel(aLabel), cp.leafByLabel(bLabel)
	if a == None || b == None || a == b {
		return cp.RootedAt(0)
	}

	max := dm.Distance(aLabel, bLabel)
	path := cp.Path(a, b)
	walked := 0.0
	for i := 1; i < len(path); i++ {
		length, _ := cp.EdgeLength(path[i-1], path[i])
		walked += length
		remaining := max - walked
		if remaining <= max/2 {
			root := cp.AddBetween(path[i], path[i-1], "", max/2-remaining)
			return cp.RootedAt(root)
		}
	}
	return cp.RootedAt(a)
}

func (t *Unrooted) leafByLabel(label string) int {
	for id := range t.nodes {
		if t.IsLeaf(id) && t.nodes[id].label == label {
			return id
		}
	}
	return None
}

// Rooted returns the midpoint-rooted form of the tree.
func (t *Unrooted) Rooted() *Rooted { return t.MidpointRoot() }

// Unrooted returns the tree itself.
func (t *Unrooted) Unrooted() *Unrooted { return t }

// Newick renders the midpoint-rooted form without the closing semicolon.
func (t *Unrooted) Newick() string { return t.MidpointRoot().Newick() }
