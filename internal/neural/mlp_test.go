package neural_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/smallcluster/cbnn/internal/compute"
	"github.com/smallcluster/cbnn/internal/neural"
)

func TestMLP_Dimensions(t *testing.T) {
	g := compute.NewGraph()
	m := neural.NewMLP(g, []neural.LayerBuilder{
		{Size: 2, Activation: neural.ActivationSigmoid, Bias: true},
		{Size: 3, Activation: neural.ActivationSigmoid, Bias: true},
		{Size: 1, Activation: neural.ActivationIdentity},
	}, rand.NewSource(1))

	assert.Equal(t, 2, m.NbInputs())
	assert.Equal(t, 1, m.NbOutputs())
	assert.Equal(t, 3, m.NbLayers())

	// Layer 0: bias + feature feed per neuron = 2*2.
	// Layer 1: bias + 2 incoming per neuron = 3*3.
	// Layer 2: 3 incoming.
	assert.Equal(t, 2*2+3*3+3, m.NbWeights())
}

// A single identity neuron with bias computes w*x + b*bw once the weights
// are pinned.
func TestMLP_ForwardWithPinnedWeights(t *testing.T) {
	g := compute.NewGraph()
	m := neural.NewMLP(g, []neural.LayerBuilder{
		{Size: 1, Activation: neural.ActivationIdentity, Bias: true},
	}, rand.NewSource(2))

	require.Equal(t, 2, m.NbWeights())
	m.SetWeight(0.5, 0) // bias weight, wired at build time
	m.SetWeight(2.0, 1) // feature weight
	m.SetInput(3.0, 0)

	assert.Equal(t, 6.5, m.Output(0))
}

func TestMLP_WeightDiff(t *testing.T) {
	g := compute.NewGraph()
	m := neural.NewMLP(g, []neural.LayerBuilder{
		{Size: 1, Activation: neural.ActivationIdentity},
	}, rand.NewSource(3))

	require.Equal(t, 1, m.NbWeights())
	m.SetWeight(1.0, 0)
	m.SetInput(3.0, 0)

	m.Eval()
	m.Diff()
	// The output is terminal: d(out)/d(w) is the input value.
	assert.Equal(t, 3.0, m.WeightDiff(0))
}

func TestMLP_WeightBounds(t *testing.T) {
	g := compute.NewGraph()
	m := neural.NewMLP(g, []neural.LayerBuilder{
		{Size: 1, Activation: neural.ActivationIdentity},
	}, rand.NewSource(4))

	assert.Panics(t, func() { m.Weight(5) })
	assert.Panics(t, func() { m.SetWeight(1.0, -1) })
}

func TestMLP_SeededBuildIsDeterministic(t *testing.T) {
	build := func() []float64 {
		g := compute.NewGraph()
		m := neural.NewMLP(g, []neural.LayerBuilder{
			{Size: 2, Activation: neural.ActivationSigmoid, Bias: true},
			{Size: 2, Activation: neural.ActivationSigmoid},
		}, rand.NewSource(99))
		values := make([]float64, m.NbWeights())
		for i := range values {
			values[i] = m.Weight(i)
		}
		return values
	}
	assert.Equal(t, build(), build())
}

func TestMLP_ReleaseRestoresRoot(t *testing.T) {
	g := compute.NewGraph()
	before := g.NbNodes()

	m := neural.NewMLP(g, []neural.LayerBuilder{
		{Size: 2, Activation: neural.ActivationSigmoid, Bias: true},
		{Size: 1, Activation: neural.ActivationIdentity},
	}, rand.NewSource(5))
	require.Greater(t, g.NbNodes(), before)

	m.Release()
	assert.Equal(t, before, g.NbNodes())
	assert.Empty(t, g.Edges())
}
