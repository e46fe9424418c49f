package neural_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallcluster/cbnn/internal/compute"
	"github.com/smallcluster/cbnn/internal/neural"
)

func TestAggregate_SumAndAvg(t *testing.T) {
	g := compute.NewGraph()
	f := g.Factory()
	a := f.Constant(1.0)
	b := f.Constant(3.0)

	sum := neural.NewSumAggregate(g)
	sum.AddInput(a)
	sum.AddInput(b)
	assert.Equal(t, 4.0, sum.Output().Eval())

	avg := neural.NewAvgAggregate(g)
	avg.AddInput(a)
	avg.AddInput(b)
	assert.Equal(t, 2.0, avg.Output().Eval())
}

func TestActivation_Kinds(t *testing.T) {
	g := compute.NewGraph()
	x := g.Factory().Constant(-2.0)

	relu := neural.NewActivation(g, neural.ActivationReLU)
	relu.SetInput(x)
	assert.Equal(t, 0.0, relu.Output().Eval())

	sig := neural.NewActivation(g, neural.ActivationSigmoid)
	sig.SetInput(x)
	assert.InDelta(t, 1.0/(1.0+math.Exp(2.0)), sig.Output().Eval(), 1e-15)

	id := neural.NewActivation(g, neural.ActivationIdentity)
	id.SetInput(x)
	assert.Equal(t, -2.0, id.Output().Eval())
}

func TestNeuron_WeightedInputs(t *testing.T) {
	g := compute.NewGraph()
	x := g.Factory().Constant(2.0)
	y := g.Factory().Constant(3.0)

	ne := neural.NewNeuron(g, neural.ActivationIdentity)
	ne.AddInput(x, true)
	ne.AddWeightedInput(y, 0.5)

	require.Equal(t, 2, ne.NbWeights())
	// 1.0*2 + 0.5*3
	assert.Equal(t, 3.5, ne.Output().Eval())

	// Mutating a weight refreshes the output.
	ne.Weight(0).SetValue(3.0)
	assert.Equal(t, 7.5, ne.Output().Eval())
}

func TestNeuron_UnweightedInput(t *testing.T) {
	g := compute.NewGraph()
	x := g.Factory().Constant(4.0)

	ne := neural.NewNeuron(g, neural.ActivationIdentity)
	ne.AddInput(x, false)

	assert.Equal(t, 0, ne.NbWeights())
	assert.Equal(t, 4.0, ne.Output().Eval())
}

func TestNeuron_ConnectTo(t *testing.T) {
	g := compute.NewGraph()
	x := g.Factory().Constant(2.0)

	first := neural.NewNeuron(g, neural.ActivationIdentity)
	first.AddInput(x, true)
	second := neural.NewNeuron(g, neural.ActivationIdentity)
	first.ConnectTo(second, 0.25)

	require.Equal(t, 1, second.NbWeights())
	assert.Equal(t, 0.5, second.Output().Eval())
}

func TestNeuron_WeightBounds(t *testing.T) {
	g := compute.NewGraph()
	ne := neural.NewNeuron(g, neural.ActivationIdentity)
	assert.Panics(t, func() { ne.Weight(0) })
}

func TestNeuron_GradientThroughWeight(t *testing.T) {
	g := compute.NewGraph()
	x := g.Factory().Constant(3.0)

	ne := neural.NewNeuron(g, neural.ActivationIdentity)
	ne.AddInput(x, true)

	ne.Output().Eval()
	// The output is terminal, so d(out)/d(w) is the raw input value.
	assert.Equal(t, 3.0, ne.Weight(0).Grad())
}

func TestNeuron_ReleaseCascades(t *testing.T) {
	g := compute.NewGraph()
	x := g.Factory().Constant(1.0)
	before := g.NbNodes()

	ne := neural.NewNeuron(g, neural.ActivationSigmoid)
	ne.AddInput(x, true)
	require.Greater(t, g.NbNodes(), before)

	ne.Release()
	assert.Equal(t, before, g.NbNodes())
	assert.Equal(t, 0, x.NbOutputs())
	assert.Empty(t, g.Edges())
}
