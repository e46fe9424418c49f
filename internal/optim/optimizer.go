// Copyright 2025 CBNN. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim implements gradient-descent optimisers driving an MLP from a
// tabular dataset.
//
// This package provides:
//   - Optimizer interface: one training step per Optimize call
//   - Batch: full-batch gradient descent with classical momentum
//   - SGD: stochastic gradient descent with classical or Nesterov momentum
//
// An optimiser is itself a sub-graph: it owns one Constant(0) truth node per
// MLP output and feeds (output, truth) pairs into a loss sub-graph. Each
// step loads one dataset row, evaluates the loss, reads every weight
// gradient and applies the strategy's update rule. Optimize returns false
// exactly when the call crosses an epoch boundary.
package optim

import (
	"fmt"

	"github.com/smallcluster/cbnn/internal/compute"
	"github.com/smallcluster/cbnn/internal/neural"
)

// Optimizer is the common surface of the training strategies.
type Optimizer interface {
	// SetDataset binds the training data. The input and output widths must
	// match the MLP dimensions; the optimiser is unusable until bound.
	SetDataset(ds neural.DataSet)
	// NextTrainingIndex returns the dataset row the next step will use.
	NextTrainingIndex() int
	// Optimize runs one training step and reports whether the epoch is
	// still in progress. Calling it before SetDataset is a fatal
	// precondition violation.
	Optimize() bool
	// Loss returns the loss evaluated by the most recent step.
	Loss() float64
	// Release destroys the optimiser's truth nodes and loss sub-graph.
	Release()
}

// driver carries the state shared by every optimiser: the bound network, the
// loss attachment and the epoch cursor.
type driver struct {
	*compute.SubGraph
	mlp     *neural.MLP
	loss    neural.Loss
	truths  []*compute.Node
	dataset neural.DataSet
	bound   bool
	cursor  int
	grads   []float64
	current float64
}

func newDriver(parent compute.Graph, mlp *neural.MLP, loss neural.Loss) driver {
	sg := compute.NewSubGraph(parent)
	d := driver{SubGraph: sg, mlp: mlp, loss: loss}
	for i := 0; i < mlp.NbOutputs(); i++ {
		truth := sg.Factory().Constant(0.0)
		truth.SetLabel(fmt.Sprintf("t%d", i))
		d.truths = append(d.truths, truth)
		loss.AddPair(mlp.OutputNode(i), truth)
	}
	d.grads = make([]float64, mlp.NbWeights())
	return d
}

// SetDataset binds ds, validating its shape against the network.
func (d *driver) SetDataset(ds neural.DataSet) {
	if ds.InputTable().Width() != d.mlp.NbInputs() {
		panic(fmt.Sprintf("optim: dataset input width %d does not match MLP inputs %d",
			ds.InputTable().Width(), d.mlp.NbInputs()))
	}
	if ds.OutputTable().Width() != d.mlp.NbOutputs() {
		panic(fmt.Sprintf("optim: dataset output width %d does not match MLP outputs %d",
			ds.OutputTable().Width(), d.mlp.NbOutputs()))
	}
	d.dataset = ds
	d.bound = true
	d.cursor = 0
}

// Loss returns the loss evaluated by the most recent step.
func (d *driver) Loss() float64 { return d.current }

func (d *driver) requireBound() {
	if !d.bound {
		panic("optim: Optimize called before SetDataset")
	}
}

// forward loads dataset row into the network and truth constants, then
// evaluates the loss output.
func (d *driver) forward(row int) {
	in := d.dataset.InputTable()
	for i := 0; i < in.Width(); i++ {
		d.mlp.SetInput(in.Get(row, i), i)
	}
	out := d.dataset.OutputTable()
	for i, truth := range d.truths {
		truth.SetValue(out.Get(row, i))
	}
	d.current = d.loss.Output().Eval()
}

// backward forces the gradient of every weight and snapshots the values, so
// updates applied while iterating cannot perturb later reads.
func (d *driver) backward() {
	d.mlp.Diff()
	for i := range d.grads {
		d.grads[i] = d.mlp.WeightDiff(i)
	}
}

// gradient returns the snapshotted gradient of weight i.
func (d *driver) gradient(index int) float64 { return d.grads[index] }

// Release destroys the truth nodes and the attached loss sub-graph.
func (d *driver) Release() {
	d.loss.Release()
	d.SubGraph.Release()
	d.truths = nil
	d.bound = false
}
