package neural

import (
	"fmt"

	"github.com/smallcluster/cbnn/internal/compute"
)

// Neuron combines an aggregate with an activation. Incoming signals are
// multiplied by per-connection weight constants before aggregation; the
// weights are what optimisers mutate.
type Neuron struct {
	*compute.SubGraph
	aggregate  *Aggregate
	activation *Activation
	weights    []*compute.Node
}

// NewNeuron creates a neuron with a summing aggregate and the given
// activation kind, scoped under parent.
func NewNeuron(parent compute.Graph, kind ActivationKind) *Neuron {
	sg := compute.NewSubGraph(parent)
	agg := NewSumAggregate(sg)
	act := NewActivation(sg, kind)
	act.SetInput(agg.Output())
	return &Neuron{SubGraph: sg, aggregate: agg, activation: act}
}

// AddInput feeds n into the aggregate. With withWeight the signal passes
// through a fresh weight constant (initial value 1) and a product node;
// without it the signal is wired directly.
func (ne *Neuron) AddInput(n *compute.Node, withWeight bool) {
	if !withWeight {
		ne.aggregate.AddInput(n)
		return
	}
	ne.AddWeightedInput(n, 1.0)
}

// AddWeightedInput feeds n through a product with a fresh weight constant
// initialised to w.
func (ne *Neuron) AddWeightedInput(n *compute.Node, w float64) {
	weight := ne.Factory().Constant(w)
	ne.weights = append(ne.weights, weight)
	prod := ne.Factory().Mult()
	ne.CreateEdge(weight, prod)
	ne.CreateEdge(n, prod)
	ne.aggregate.AddInput(prod)
}

// ConnectTo feeds this neuron's output into other through a weight
// initialised to w.
func (ne *Neuron) ConnectTo(other *Neuron, w float64) {
	other.AddWeightedInput(ne.Output(), w)
}

// Output returns the activation node.
func (ne *Neuron) Output() *compute.Node { return ne.activation.Output() }

// Weight returns the i-th weight constant in insertion order.
func (ne *Neuron) Weight(index int) *compute.Node {
	if index < 0 || index >= len(ne.weights) {
		panic(fmt.Sprintf("neural: weight index %d out of range [0, %d)", index, len(ne.weights)))
	}
	return ne.weights[index]
}

// NbWeights returns the number of weights.
func (ne *Neuron) NbWeights() int { return len(ne.weights) }

// Release destroys the neuron's nodes, cascading through its aggregate and
// activation scopes.
func (ne *Neuron) Release() {
	ne.aggregate.Release()
	ne.activation.Release()
	ne.SubGraph.Release()
	ne.weights = nil
}
