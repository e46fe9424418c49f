package compute

// SubGraph is a scoped view over a parent graph (the root or another
// sub-graph). Nodes and edges created through it are registered both locally
// and, transitively, with the root; each level of the chain takes one claim
// on the node. Release drops every local claim, which cascades physical
// deletion to the root for nodes nobody else holds.
type SubGraph struct {
	parent   Graph
	factory  *Factory
	nodes    []*Node
	edges    []Edge
	released bool
}

// NewSubGraph creates a sub-graph scoped under parent.
func NewSubGraph(parent Graph) *SubGraph {
	s := &SubGraph{parent: parent}
	s.factory = &Factory{graph: s}
	return s
}

// Parent returns the graph this sub-graph is scoped under.
func (s *SubGraph) Parent() Graph { return s.parent }

// NewID implements Graph by forwarding to the root.
func (s *SubGraph) NewID() uint32 { return s.parent.NewID() }

// CreateEdge implements Graph.
func (s *SubGraph) CreateEdge(src, dst *Node, slot ...int) Edge {
	e := s.parent.CreateEdge(src, dst, slot...)
	if !containsEdge(s.edges, e) {
		s.edges = append(s.edges, e)
	}
	return e
}

// RemoveEdge implements Graph.
func (s *SubGraph) RemoveEdge(e Edge) {
	if i := indexOfEdge(s.edges, e); i >= 0 {
		s.edges = append(s.edges[:i], s.edges[i+1:]...)
	}
	s.parent.RemoveEdge(e)
}

// Edges implements Graph.
func (s *SubGraph) Edges() []Edge { return s.edges }

// RemoveNode implements Graph. Nodes not registered in this scope are a
// no-op.
func (s *SubGraph) RemoveNode(n *Node) {
	idx := indexOfNode(s.nodes, n)
	if idx < 0 {
		return
	}
	n.decOwner()
	s.edges = dropIncident(s.edges, n)
	s.nodes = append(s.nodes[:idx], s.nodes[idx+1:]...)
	s.parent.RemoveNode(n)
}

// RegisterNode implements Graph.
func (s *SubGraph) RegisterNode(n *Node) {
	n.incOwner()
	s.nodes = append(s.nodes, n)
	s.parent.RegisterNode(n)
}

// NodeAt implements Graph.
func (s *SubGraph) NodeAt(index int) *Node { return s.nodes[index] }

// NbNodes implements Graph.
func (s *SubGraph) NbNodes() int { return len(s.nodes) }

// Factory implements Graph.
func (s *SubGraph) Factory() *Factory { return s.factory }

// Release drops every claim this scope holds and asks the parent to remove
// the nodes; a node is physically deleted when its owner count reaches zero.
// Releasing twice is a no-op.
func (s *SubGraph) Release() {
	if s.released {
		return
	}
	s.released = true
	for _, n := range s.nodes {
		n.decOwner()
		s.parent.RemoveNode(n)
	}
	s.nodes = nil
	s.edges = nil
}
