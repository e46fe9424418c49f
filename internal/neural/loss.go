package neural

import "github.com/smallcluster/cbnn/internal/compute"

// Loss accumulates (predicted, truth) node pairs and exposes one scalar node
// holding the current total (or mean) loss. Adding pairs extends the loss
// sub-graph; the pairs themselves stay owned by their original scopes.
type Loss interface {
	AddPair(predicted, truth *compute.Node)
	Output() *compute.Node
	Release()
}

// L2Loss sums squared errors: for each pair it builds
// (truth - predicted)^2 and feeds it into a shared Add node.
type L2Loss struct {
	*compute.SubGraph
	sum *compute.Node
}

// NewL2Loss creates an empty L2 loss scoped under parent.
func NewL2Loss(parent compute.Graph) *L2Loss {
	sg := compute.NewSubGraph(parent)
	return &L2Loss{SubGraph: sg, sum: sg.Factory().Add()}
}

// AddPair appends one squared-error term.
func (l *L2Loss) AddPair(predicted, truth *compute.Node) {
	sub := l.Factory().Sub()
	l.CreateEdge(truth, sub, 0)
	l.CreateEdge(predicted, sub, 1)
	squared := l.Factory().CtePower(2)
	l.CreateEdge(sub, squared)
	l.CreateEdge(squared, l.sum)
}

// Output returns the summation node.
func (l *L2Loss) Output() *compute.Node { return l.sum }

// MSELoss divides the L2 sum by the number of pairs. The divisor is updated
// when pairs are added, not per forward pass.
type MSELoss struct {
	*L2Loss
	div *compute.Node
}

// NewMSELoss creates an empty MSE loss scoped under parent.
func NewMSELoss(parent compute.Graph) *MSELoss {
	l2 := NewL2Loss(parent)
	div := l2.Factory().CteDivide(0)
	l2.CreateEdge(l2.sum, div)
	return &MSELoss{L2Loss: l2, div: div}
}

// AddPair appends one squared-error term and bumps the divisor.
func (l *MSELoss) AddPair(predicted, truth *compute.Node) {
	l.L2Loss.AddPair(predicted, truth)
	l.div.SetCte(l.div.Cte() + 1)
}

// Output returns the dividing node.
func (l *MSELoss) Output() *compute.Node { return l.div }

// L1Loss sums absolute errors: for each pair it builds
// |predicted - truth| and feeds it into a shared Add node.
type L1Loss struct {
	*compute.SubGraph
	sum *compute.Node
}

// NewL1Loss creates an empty L1 loss scoped under parent.
func NewL1Loss(parent compute.Graph) *L1Loss {
	sg := compute.NewSubGraph(parent)
	return &L1Loss{SubGraph: sg, sum: sg.Factory().Add()}
}

// AddPair appends one absolute-error term.
func (l *L1Loss) AddPair(predicted, truth *compute.Node) {
	sub := l.Factory().Sub()
	l.CreateEdge(predicted, sub, 0)
	l.CreateEdge(truth, sub, 1)
	abs := l.Factory().Abs()
	l.CreateEdge(sub, abs)
	l.CreateEdge(abs, l.sum)
}

// Output returns the summation node.
func (l *L1Loss) Output() *compute.Node { return l.sum }
