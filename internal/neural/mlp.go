// Copyright 2025 CBNN. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package neural composes compute-graph nodes into feed-forward network
// topology: aggregates, activations, neurons, layers, multilayer perceptrons
// and loss sub-graphs, plus the tabular dataset they train on.
//
// Every builder is a scoped sub-graph of a shared root graph, so destroying
// a builder releases exactly the nodes it introduced.
package neural

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/smallcluster/cbnn/internal/compute"
)

// MLP is a multilayer perceptron assembled from layer builders. The first
// layer's size is the input dimension: one Constant(0) feature feed is
// created per first-layer neuron and wired one-to-one through a trainable
// weight (initial value 1). Consecutive layers are fully connected with
// He-initialised weights.
type MLP struct {
	*compute.SubGraph
	layers  []*Layer
	inputs  []*compute.Node
	weights []*compute.Node
}

// NewMLP builds the network under parent. src seeds the He-initialised
// weights; pass nil for a time-seeded source.
func NewMLP(parent compute.Graph, builders []LayerBuilder, src rand.Source) *MLP {
	if len(builders) == 0 {
		panic("neural: an MLP needs at least one layer")
	}
	if src == nil {
		src = timeSource()
	}
	sg := compute.NewSubGraph(parent)
	m := &MLP{SubGraph: sg}

	for _, b := range builders {
		m.layers = append(m.layers, b.Build(sg, src))
	}

	// Feature feeds, one per neuron of the input layer.
	first := m.layers[0]
	for i := 0; i < first.Size(); i++ {
		in := sg.Factory().Constant(0.0)
		in.SetLabel(fmt.Sprintf("x%d", i))
		m.inputs = append(m.inputs, in)
		first.Neuron(i).AddWeightedInput(in, 1.0)
	}

	for i := 0; i+1 < len(m.layers); i++ {
		m.layers[i].ConnectTo(m.layers[i+1])
	}

	// Weight registry: layer-major, neuron-major, insertion order.
	for _, l := range m.layers {
		for i := 0; i < l.NbWeights(); i++ {
			m.weights = append(m.weights, l.Weight(i))
		}
	}
	return m
}

// NbInputs returns the input dimension.
func (m *MLP) NbInputs() int { return len(m.inputs) }

// NbOutputs returns the size of the last layer.
func (m *MLP) NbOutputs() int { return m.lastLayer().Size() }

// NbLayers returns the number of layers.
func (m *MLP) NbLayers() int { return len(m.layers) }

// Layer returns the i-th layer.
func (m *MLP) Layer(index int) *Layer { return m.layers[index] }

// OutputNode returns the activation node of the i-th output neuron.
func (m *MLP) OutputNode(index int) *compute.Node {
	return m.lastLayer().Neuron(index).Output()
}

// SetInput writes v into the i-th feature feed.
func (m *MLP) SetInput(v float64, index int) {
	m.inputs[index].SetValue(v)
}

// Output evaluates and returns the i-th network output.
func (m *MLP) Output(index int) float64 {
	return m.OutputNode(index).Eval()
}

// NbWeights returns the number of trainable weights.
func (m *MLP) NbWeights() int { return len(m.weights) }

// WeightNode returns the i-th weight constant.
func (m *MLP) WeightNode(index int) *compute.Node {
	m.checkWeightIndex(index)
	return m.weights[index]
}

// SetWeight writes v into the i-th weight.
func (m *MLP) SetWeight(v float64, index int) {
	m.checkWeightIndex(index)
	m.weights[index].SetValue(v)
}

// Weight returns the current value of the i-th weight.
func (m *MLP) Weight(index int) float64 {
	m.checkWeightIndex(index)
	return m.weights[index].Eval()
}

// WeightDiff returns the gradient accumulated on the i-th weight.
func (m *MLP) WeightDiff(index int) float64 {
	m.checkWeightIndex(index)
	return m.weights[index].Grad()
}

// Eval forces a forward pass through every output node.
func (m *MLP) Eval() {
	last := m.lastLayer()
	for i := 0; i < last.Size(); i++ {
		last.Neuron(i).Output().Eval()
	}
}

// Diff forces a backward pass by reading the gradient of every weight.
func (m *MLP) Diff() {
	for _, w := range m.weights {
		w.Grad()
	}
}

// Release destroys every layer, the feature feeds and the MLP's own scope.
func (m *MLP) Release() {
	for _, l := range m.layers {
		l.Release()
	}
	m.layers = nil
	m.SubGraph.Release()
	m.inputs = nil
	m.weights = nil
}

func (m *MLP) lastLayer() *Layer { return m.layers[len(m.layers)-1] }

func (m *MLP) checkWeightIndex(index int) {
	if index < 0 || index >= len(m.weights) {
		panic(fmt.Sprintf("neural: weight index %d out of range [0, %d)", index, len(m.weights)))
	}
}
