// Copyright 2025 CBNN. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package neural builds feed-forward network topology out of compute-graph
// nodes.
//
// # Overview
//
// This package contains:
//   - Aggregate, Activation, Neuron, Layer: structural sub-graph builders
//   - LayerBuilder and MLP: multilayer perceptron assembly
//   - L1Loss, L2Loss, MSELoss: loss sub-graphs over (predicted, truth) pairs
//   - DataTable and DataSet: the tabular training data model
//
// # Basic Usage
//
//	import (
//	    "github.com/smallcluster/cbnn/compute"
//	    "github.com/smallcluster/cbnn/neural"
//	)
//
//	func main() {
//	    g := compute.NewGraph()
//	    mlp := neural.NewMLP(g, []neural.LayerBuilder{
//	        {Size: 2, Activation: neural.ActivationSigmoid, Bias: true},
//	        {Size: 2, Activation: neural.ActivationSigmoid, Bias: true},
//	        {Size: 1, Activation: neural.ActivationSigmoid, Bias: true},
//	    }, nil)
//
//	    mlp.SetInput(1.0, 0)
//	    mlp.SetInput(0.0, 1)
//	    prediction := mlp.Output(0)
//	    _ = prediction
//	}
//
// Weights between layers are He-initialised, N(0, sqrt(2/fan-in)); pass a
// fixed-seed rand.Source instead of nil for reproducible networks.
package neural
