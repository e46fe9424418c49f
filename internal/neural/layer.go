package neural

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/smallcluster/cbnn/internal/compute"
)

// Layer is a fixed-size list of neurons sharing one activation kind. When
// bias is enabled the layer owns a Constant(1) node fed to every neuron
// through its own weight, so the bias contributes exactly one extra weight
// per neuron.
type Layer struct {
	*compute.SubGraph
	neurons []*Neuron
	bias    *compute.Node
	src     rand.Source
}

// LayerBuilder describes one layer of an MLP.
type LayerBuilder struct {
	Size       int
	Activation ActivationKind
	Bias       bool
}

// Build constructs the layer under parent. src seeds the He-initialised
// weights; pass nil for a time-seeded source.
func (b LayerBuilder) Build(parent compute.Graph, src rand.Source) *Layer {
	if src == nil {
		src = timeSource()
	}
	sg := compute.NewSubGraph(parent)
	l := &Layer{SubGraph: sg, src: src}
	for i := 0; i < b.Size; i++ {
		l.neurons = append(l.neurons, NewNeuron(sg, b.Activation))
	}
	if b.Bias {
		bias := sg.Factory().Constant(1.0)
		bias.SetLabel("B: 1")
		l.bias = bias
		l.AddInput(bias)
	}
	return l
}

// AddInput feeds n to every neuron of the layer, each through an independent
// He-initialised weight.
func (l *Layer) AddInput(n *compute.Node) {
	for _, ne := range l.neurons {
		ne.AddWeightedInput(n, heSample(len(l.neurons), l.src))
	}
}

// ConnectTo fully connects this layer to other: every (source, destination)
// neuron pair gets an independent He-initialised weight, with the fan-in
// taken from this layer's size.
func (l *Layer) ConnectTo(other *Layer) {
	for _, src := range l.neurons {
		for _, dst := range other.neurons {
			src.ConnectTo(dst, heSample(len(l.neurons), l.src))
		}
	}
}

// Neuron returns the i-th neuron.
func (l *Layer) Neuron(index int) *Neuron { return l.neurons[index] }

// Size returns the number of neurons.
func (l *Layer) Size() int { return len(l.neurons) }

// Bias returns the layer's bias constant, or nil when bias is disabled.
func (l *Layer) Bias() *compute.Node { return l.bias }

// Weight returns the index-th weight, enumerating neuron by neuron in neuron
// order and, within a neuron, in insertion order.
func (l *Layer) Weight(index int) *compute.Node {
	i := index
	for _, ne := range l.neurons {
		if i < ne.NbWeights() {
			return ne.Weight(i)
		}
		i -= ne.NbWeights()
	}
	panic(fmt.Sprintf("neural: weight index %d out of range [0, %d)", index, l.NbWeights()))
}

// NbWeights returns the total weight count across all neurons.
func (l *Layer) NbWeights() int {
	total := 0
	for _, ne := range l.neurons {
		total += ne.NbWeights()
	}
	return total
}

// Release destroys every neuron and the layer's own nodes.
func (l *Layer) Release() {
	for _, ne := range l.neurons {
		ne.Release()
	}
	l.neurons = nil
	l.SubGraph.Release()
	l.bias = nil
}
