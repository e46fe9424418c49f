package optim

import (
	"github.com/smallcluster/cbnn/internal/compute"
	"github.com/smallcluster/cbnn/internal/neural"
)

// Batch implements full-batch gradient descent with classical momentum.
//
// Each step accumulates the current example's weight gradients into
// per-weight running means; weights are only updated when the sequential
// cursor wraps, once per epoch:
//
//	prev[i] = momentum*prev[i] - lr*mean[i]
//	w[i]   += prev[i]
//
// LearningRate and Momentum may be mutated between steps.
type Batch struct {
	driver
	LearningRate float64
	Momentum     float64
	velocities   []float64
	means        []runningMean
}

// BatchConfig holds the construction parameters for Batch.
type BatchConfig struct {
	LearningRate float64 // default: 0.01
	Momentum     float64 // range: [0, 1)
}

// NewBatch attaches a batch optimiser to mlp under parent, feeding the MLP
// outputs and fresh truth constants into loss.
func NewBatch(parent compute.Graph, mlp *neural.MLP, loss neural.Loss, config BatchConfig) *Batch {
	if config.LearningRate == 0 {
		config.LearningRate = 0.01
	}
	return &Batch{
		driver:       newDriver(parent, mlp, loss),
		LearningRate: config.LearningRate,
		Momentum:     config.Momentum,
		velocities:   make([]float64, mlp.NbWeights()),
		means:        make([]runningMean, mlp.NbWeights()),
	}
}

// NextTrainingIndex returns the sequential cursor.
func (b *Batch) NextTrainingIndex() int { return b.cursor }

// Optimize runs one accumulation step; on the epoch boundary it applies the
// averaged update and returns false.
func (b *Batch) Optimize() bool {
	b.requireBound()
	b.forward(b.NextTrainingIndex())
	b.backward()
	for i := range b.means {
		b.means[i].Add(b.gradient(i))
	}

	b.cursor++
	if b.cursor < b.dataset.Size() {
		return true
	}
	b.cursor = 0
	for i := range b.velocities {
		b.velocities[i] = b.Momentum*b.velocities[i] - b.LearningRate*b.means[i].Mean()
		b.mlp.SetWeight(b.mlp.Weight(i)+b.velocities[i], i)
		b.means[i].Reset()
	}
	return false
}
