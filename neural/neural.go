// Copyright 2025 CBNN. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package neural

import (
	"golang.org/x/exp/rand"

	"github.com/smallcluster/cbnn/internal/compute"
	"github.com/smallcluster/cbnn/internal/neural"
)

// DataTable is a flat row-major table with a fixed row width.
type DataTable = neural.DataTable

// DataSet pairs an input table with an output table row for row.
type DataSet = neural.DataSet

// NewDataTable validates and wraps a flat row-major value slice.
func NewDataTable(width int, data []float64) (DataTable, error) {
	return neural.NewDataTable(width, data)
}

// NewDataSet validates that both tables have the same number of rows.
func NewDataSet(inputs, outputs DataTable) (DataSet, error) {
	return neural.NewDataSet(inputs, outputs)
}

// ActivationKind selects the transfer function of a neuron or layer.
type ActivationKind = neural.ActivationKind

// Activation kinds.
const (
	ActivationReLU     = neural.ActivationReLU
	ActivationSigmoid  = neural.ActivationSigmoid
	ActivationIdentity = neural.ActivationIdentity
)

// Aggregate reduces incoming signals to a single node.
type Aggregate = neural.Aggregate

// NewSumAggregate creates an aggregate backed by an Add node.
func NewSumAggregate(parent compute.Graph) *Aggregate {
	return neural.NewSumAggregate(parent)
}

// NewAvgAggregate creates an aggregate backed by an Avg node.
func NewAvgAggregate(parent compute.Graph) *Aggregate {
	return neural.NewAvgAggregate(parent)
}

// Activation is a single-node sub-graph applying a transfer function.
type Activation = neural.Activation

// NewActivation creates the activation node for the given kind.
func NewActivation(parent compute.Graph, kind ActivationKind) *Activation {
	return neural.NewActivation(parent, kind)
}

// Neuron combines an aggregate with an activation behind per-connection
// weights.
type Neuron = neural.Neuron

// NewNeuron creates a neuron with a summing aggregate and the given
// activation kind.
func NewNeuron(parent compute.Graph, kind ActivationKind) *Neuron {
	return neural.NewNeuron(parent, kind)
}

// Layer is a fixed-size list of neurons sharing one activation kind.
type Layer = neural.Layer

// LayerBuilder describes one layer of an MLP.
type LayerBuilder = neural.LayerBuilder

// MLP is a multilayer perceptron assembled from layer builders.
type MLP = neural.MLP

// NewMLP builds the network under parent. src seeds the He-initialised
// weights; pass nil for a time-seeded source.
//
// Example:
//
//	mlp := neural.NewMLP(g, []neural.LayerBuilder{
//	    {Size: 2, Activation: neural.ActivationSigmoid, Bias: true},
//	    {Size: 1, Activation: neural.ActivationIdentity},
//	}, nil)
func NewMLP(parent compute.Graph, builders []LayerBuilder, src rand.Source) *MLP {
	return neural.NewMLP(parent, builders, src)
}

// Loss accumulates (predicted, truth) pairs into one scalar output node.
type Loss = neural.Loss

// L1Loss sums absolute errors.
type L1Loss = neural.L1Loss

// L2Loss sums squared errors.
type L2Loss = neural.L2Loss

// MSELoss divides the squared-error sum by the pair count.
type MSELoss = neural.MSELoss

// NewL1Loss creates an empty L1 loss scoped under parent.
func NewL1Loss(parent compute.Graph) *L1Loss {
	return neural.NewL1Loss(parent)
}

// NewL2Loss creates an empty L2 loss scoped under parent.
func NewL2Loss(parent compute.Graph) *L2Loss {
	return neural.NewL2Loss(parent)
}

// NewMSELoss creates an empty MSE loss scoped under parent.
func NewMSELoss(parent compute.Graph) *MSELoss {
	return neural.NewMSELoss(parent)
}
