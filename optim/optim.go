// Copyright 2025 CBNN. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/smallcluster/cbnn/internal/compute"
	"github.com/smallcluster/cbnn/internal/neural"
	"github.com/smallcluster/cbnn/internal/optim"
)

// Optimizer is the common interface of the training strategies.
type Optimizer = optim.Optimizer

// Batch implements full-batch gradient descent with momentum.
type Batch = optim.Batch

// BatchConfig contains configuration for the Batch optimiser.
type BatchConfig = optim.BatchConfig

// NewBatch attaches a batch optimiser to mlp under parent.
//
// Example:
//
//	opt := optim.NewBatch(g, mlp, neural.NewMSELoss(g), optim.BatchConfig{
//	    LearningRate: 0.01,
//	    Momentum:     0.9,
//	})
func NewBatch(parent compute.Graph, mlp *neural.MLP, loss neural.Loss, config BatchConfig) *Batch {
	return optim.NewBatch(parent, mlp, loss, config)
}

// SGD implements stochastic gradient descent with classical or Nesterov
// momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimiser.
type SGDConfig = optim.SGDConfig

// NewSGD attaches an SGD optimiser to mlp under parent.
//
// Example:
//
//	opt := optim.NewSGD(g, mlp, neural.NewMSELoss(g), optim.SGDConfig{
//	    LearningRate: 0.5,
//	    Momentum:     0.9,
//	    Nesterov:     true,
//	})
func NewSGD(parent compute.Graph, mlp *neural.MLP, loss neural.Loss, config SGDConfig) *SGD {
	return optim.NewSGD(parent, mlp, loss, config)
}
