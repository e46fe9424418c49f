// Copyright 2025 CBNN. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-descent optimisers for training MLPs.
//
// # Overview
//
// This package contains:
//   - Batch: full-batch gradient descent with classical momentum
//   - SGD: stochastic gradient descent with classical or Nesterov momentum
//   - Optimizer interface shared by both
//
// An optimiser attaches a loss sub-graph to the MLP outputs and drives
// training one step at a time: Optimize loads a dataset row, runs the
// forward and backward passes and applies the update rule. It returns false
// exactly when the call completes an epoch.
//
// # Basic Usage
//
//	import (
//	    "github.com/smallcluster/cbnn/compute"
//	    "github.com/smallcluster/cbnn/neural"
//	    "github.com/smallcluster/cbnn/optim"
//	)
//
//	func main() {
//	    g := compute.NewGraph()
//	    mlp := neural.NewMLP(g, layers, nil)
//
//	    opt := optim.NewSGD(g, mlp, neural.NewMSELoss(g), optim.SGDConfig{
//	        LearningRate: 0.5,
//	        Momentum:     0.9,
//	    })
//	    opt.SetDataset(dataset)
//
//	    for epoch := 0; epoch < 1000; epoch++ {
//	        for opt.Optimize() {
//	        }
//	    }
//	}
//
// LearningRate, Momentum and (for SGD) Nesterov are exported fields and may
// be adjusted between steps.
package optim
