package compute

// Edge records one wired connection: src feeds dst at the given slot.
// Equality is by triple.
type Edge struct {
	Src  *Node
	Dst  *Node
	Slot int
}

// Graph is the construction surface shared by the root graph and scoped
// sub-graphs. Nodes are exclusively owned by the root; sub-graphs hold
// reference-counted views.
type Graph interface {
	// NewID issues a fresh identifier, monotone within the root graph.
	NewID() uint32
	// CreateEdge wires src into dst (appending when no slot is given),
	// records the edge, and returns it.
	CreateEdge(src, dst *Node, slot ...int) Edge
	// RemoveEdge unwires and unregisters an edge. Absent edges are a no-op.
	RemoveEdge(e Edge)
	// Edges returns the registered edges of this scope.
	Edges() []Edge
	// RemoveNode drops the scope's claim on n. The node is physically
	// removed from the root pool when its owner count reaches zero.
	// Absent nodes are a no-op.
	RemoveNode(n *Node)
	// RegisterNode takes a claim on n and records it in this scope.
	RegisterNode(n *Node)
	// NodeAt returns the i-th node registered in this scope.
	NodeAt(index int) *Node
	// NbNodes returns the number of nodes registered in this scope.
	NbNodes() int
	// Factory returns the node factory bound to this scope.
	Factory() *Factory
}

// RootGraph owns the node pool and allocates identifiers.
type RootGraph struct {
	nodes   []*Node
	edges   []Edge
	nextID  uint32
	factory *Factory
}

// NewGraph creates an empty root graph.
func NewGraph() *RootGraph {
	g := &RootGraph{}
	g.factory = &Factory{graph: g}
	return g
}

// NewID implements Graph.
func (g *RootGraph) NewID() uint32 {
	id := g.nextID
	g.nextID++
	return id
}

// CreateEdge implements Graph.
func (g *RootGraph) CreateEdge(src, dst *Node, slot ...int) Edge {
	used := src.Connect(dst, slot...)
	e := Edge{Src: src, Dst: dst, Slot: used}
	if !containsEdge(g.edges, e) {
		g.edges = append(g.edges, e)
	}
	return e
}

// RemoveEdge implements Graph.
func (g *RootGraph) RemoveEdge(e Edge) {
	i := indexOfEdge(g.edges, e)
	if i < 0 {
		return
	}
	e.Src.Disconnect(e.Dst)
	g.edges = append(g.edges[:i], g.edges[i+1:]...)
}

// Edges implements Graph.
func (g *RootGraph) Edges() []Edge { return g.edges }

// RemoveNode implements Graph. The claim is dropped immediately; the node
// leaves the pool, loses its connections and its registry edges only when no
// other scope still holds it.
func (g *RootGraph) RemoveNode(n *Node) {
	idx := indexOfNode(g.nodes, n)
	if idx < 0 {
		return
	}
	if n.decOwner() > 0 {
		return
	}
	n.ClearConnections()
	g.edges = dropIncident(g.edges, n)
	g.nodes = append(g.nodes[:idx], g.nodes[idx+1:]...)
}

// RegisterNode implements Graph.
func (g *RootGraph) RegisterNode(n *Node) {
	n.incOwner()
	g.nodes = append(g.nodes, n)
}

// NodeAt implements Graph.
func (g *RootGraph) NodeAt(index int) *Node { return g.nodes[index] }

// NbNodes implements Graph.
func (g *RootGraph) NbNodes() int { return len(g.nodes) }

// Factory implements Graph.
func (g *RootGraph) Factory() *Factory { return g.factory }

func containsEdge(edges []Edge, e Edge) bool {
	return indexOfEdge(edges, e) >= 0
}

func indexOfEdge(edges []Edge, e Edge) int {
	for i, x := range edges {
		if x == e {
			return i
		}
	}
	return -1
}

func indexOfNode(nodes []*Node, n *Node) int {
	for i, x := range nodes {
		if x == n {
			return i
		}
	}
	return -1
}

func dropIncident(edges []Edge, n *Node) []Edge {
	kept := edges[:0]
	for _, e := range edges {
		if e.Src != n && e.Dst != n {
			kept = append(kept, e)
		}
	}
	return kept
}
