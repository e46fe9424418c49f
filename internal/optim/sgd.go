package optim

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/smallcluster/cbnn/internal/compute"
	"github.com/smallcluster/cbnn/internal/neural"
)

// SGD implements stochastic gradient descent: each step updates the weights
// from a single example's gradient, visiting the dataset through a shuffled
// index permutation that is reshuffled at every epoch boundary.
//
// Update rule with momentum m, learning rate lr and gradient g:
//
//	classical: v = m*v - lr*g;  w += v
//	Nesterov:  v = m*v - lr*g;  w += m*v - lr*g
//
// LearningRate, Momentum and Nesterov may be mutated between steps.
type SGD struct {
	driver
	LearningRate float64
	Momentum     float64
	Nesterov     bool
	velocities   []float64
	perm         []int
	rng          *rand.Rand
}

// SGDConfig holds the construction parameters for SGD.
type SGDConfig struct {
	LearningRate float64 // default: 0.01
	Momentum     float64 // range: [0, 1)
	Nesterov     bool
	Seed         uint64 // 0 seeds from the clock
}

// NewSGD attaches an SGD optimiser to mlp under parent, feeding the MLP
// outputs and fresh truth constants into loss.
func NewSGD(parent compute.Graph, mlp *neural.MLP, loss neural.Loss, config SGDConfig) *SGD {
	if config.LearningRate == 0 {
		config.LearningRate = 0.01
	}
	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &SGD{
		driver:       newDriver(parent, mlp, loss),
		LearningRate: config.LearningRate,
		Momentum:     config.Momentum,
		Nesterov:     config.Nesterov,
		velocities:   make([]float64, mlp.NbWeights()),
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Reseed resets the random generator, for reproducible shuffles in tests.
// If a dataset is already bound the permutation is rebuilt from the new
// stream.
func (s *SGD) Reseed(seed uint64) {
	s.rng = rand.New(rand.NewSource(seed))
	if s.bound {
		s.perm = s.rng.Perm(s.dataset.Size())
	}
}

// SetDataset binds the training data and builds the first shuffled
// permutation.
func (s *SGD) SetDataset(ds neural.DataSet) {
	s.driver.SetDataset(ds)
	s.perm = s.rng.Perm(ds.Size())
}

// NextTrainingIndex returns the permuted row for the current cursor.
func (s *SGD) NextTrainingIndex() int { return s.perm[s.cursor] }

// Optimize runs one example step and updates the weights immediately; on the
// epoch boundary it reshuffles the permutation and returns false.
func (s *SGD) Optimize() bool {
	s.requireBound()
	s.forward(s.NextTrainingIndex())
	s.backward()

	for i := range s.velocities {
		g := s.gradient(i)
		v := s.Momentum*s.velocities[i] - s.LearningRate*g
		s.velocities[i] = v
		w := s.mlp.Weight(i)
		if s.Nesterov {
			s.mlp.SetWeight(w+s.Momentum*v-s.LearningRate*g, i)
		} else {
			s.mlp.SetWeight(w+v, i)
		}
	}

	s.cursor++
	if s.cursor < s.dataset.Size() {
		return true
	}
	s.cursor = 0
	s.rng.Shuffle(len(s.perm), func(i, j int) {
		s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
	})
	return false
}
