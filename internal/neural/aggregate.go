package neural

import "github.com/smallcluster/cbnn/internal/compute"

// Aggregate reduces any number of incoming signals to a single node, either
// by summation or by arithmetic mean.
type Aggregate struct {
	*compute.SubGraph
	node *compute.Node
}

// NewSumAggregate creates an aggregate backed by an Add node.
func NewSumAggregate(parent compute.Graph) *Aggregate {
	sg := compute.NewSubGraph(parent)
	return &Aggregate{SubGraph: sg, node: sg.Factory().Add()}
}

// NewAvgAggregate creates an aggregate backed by an Avg node.
func NewAvgAggregate(parent compute.Graph) *Aggregate {
	sg := compute.NewSubGraph(parent)
	return &Aggregate{SubGraph: sg, node: sg.Factory().Avg()}
}

// AddInput appends one incoming signal.
func (a *Aggregate) AddInput(n *compute.Node) {
	a.CreateEdge(n, a.node)
}

// Output returns the aggregating node.
func (a *Aggregate) Output() *compute.Node { return a.node }
