package compute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smallcluster/cbnn/internal/compute"
)

// countingVisitor records every visited node id and label.
type countingVisitor struct {
	ids    []uint32
	labels []string
}

func (v *countingVisitor) record(n *compute.Node) {
	v.ids = append(v.ids, n.ID())
	v.labels = append(v.labels, n.Label())
}

func (v *countingVisitor) VisitIdentity(n *compute.Node)  { v.record(n) }
func (v *countingVisitor) VisitConstant(n *compute.Node)  { v.record(n) }
func (v *countingVisitor) VisitAdd(n *compute.Node)       { v.record(n) }
func (v *countingVisitor) VisitSub(n *compute.Node)       { v.record(n) }
func (v *countingVisitor) VisitUnarySub(n *compute.Node)  { v.record(n) }
func (v *countingVisitor) VisitMult(n *compute.Node)      { v.record(n) }
func (v *countingVisitor) VisitDivide(n *compute.Node)    { v.record(n) }
func (v *countingVisitor) VisitCteMult(n *compute.Node)   { v.record(n) }
func (v *countingVisitor) VisitCteDivide(n *compute.Node) { v.record(n) }
func (v *countingVisitor) VisitCtePower(n *compute.Node)  { v.record(n) }
func (v *countingVisitor) VisitPower(n *compute.Node)     { v.record(n) }
func (v *countingVisitor) VisitExp(n *compute.Node)       { v.record(n) }
func (v *countingVisitor) VisitLn(n *compute.Node)        { v.record(n) }
func (v *countingVisitor) VisitAbs(n *compute.Node)       { v.record(n) }
func (v *countingVisitor) VisitInvert(n *compute.Node)    { v.record(n) }
func (v *countingVisitor) VisitReLU(n *compute.Node)      { v.record(n) }
func (v *countingVisitor) VisitSigmoid(n *compute.Node)   { v.record(n) }
func (v *countingVisitor) VisitAvg(n *compute.Node)       { v.record(n) }

// A shared sub-expression must be visited exactly once per traversal.
func TestForwardWalk_VisitsReachableNodesOnce(t *testing.T) {
	g := compute.NewGraph()
	f := g.Factory()

	a := f.Constant(2.0)
	b := f.Constant(3.0)
	s := f.Add()
	g.CreateEdge(a, s)
	g.CreateEdge(b, s)
	m := f.Mult()
	g.CreateEdge(s, m)
	g.CreateEdge(a, m) // a is shared

	v := &countingVisitor{}
	compute.ForwardWalk(m, v)

	assert.Len(t, v.ids, 4)
	seen := make(map[uint32]int)
	for _, id := range v.ids {
		seen[id]++
	}
	assert.Equal(t, 1, seen[a.ID()])
	assert.Contains(t, v.labels, "*")
	assert.Contains(t, v.labels, "+")
}

func TestBackwardWalk_FollowsOutputs(t *testing.T) {
	g := compute.NewGraph()
	f := g.Factory()

	x := f.Constant(1.0)
	sig := f.Sigmoid()
	g.CreateEdge(x, sig)
	rel := f.ReLU()
	g.CreateEdge(x, rel)

	v := &countingVisitor{}
	compute.BackwardWalk(x, v)

	assert.Len(t, v.ids, 3)
	assert.Contains(t, v.labels, "Sigmoid")
	assert.Contains(t, v.labels, "ReLU")
}
