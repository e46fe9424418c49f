package neural_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallcluster/cbnn/internal/compute"
	"github.com/smallcluster/cbnn/internal/neural"
)

func TestL2Loss_SumsSquaredErrors(t *testing.T) {
	g := compute.NewGraph()
	f := g.Factory()
	pred := f.Constant(2.0)
	truth := f.Constant(5.0)

	loss := neural.NewL2Loss(g)
	loss.AddPair(pred, truth)
	assert.Equal(t, 9.0, loss.Output().Eval())

	pred2 := f.Constant(1.0)
	truth2 := f.Constant(-1.0)
	loss.AddPair(pred2, truth2)
	assert.Equal(t, 13.0, loss.Output().Eval())
}

func TestMSELoss_DividesByPairCount(t *testing.T) {
	g := compute.NewGraph()
	f := g.Factory()

	loss := neural.NewMSELoss(g)
	loss.AddPair(f.Constant(2.0), f.Constant(5.0))
	assert.Equal(t, 9.0, loss.Output().Eval())

	loss.AddPair(f.Constant(0.0), f.Constant(1.0))
	assert.Equal(t, 5.0, loss.Output().Eval())
}

func TestL1Loss_SumsAbsoluteErrors(t *testing.T) {
	g := compute.NewGraph()
	f := g.Factory()

	loss := neural.NewL1Loss(g)
	loss.AddPair(f.Constant(2.0), f.Constant(5.0))
	assert.Equal(t, 3.0, loss.Output().Eval())

	loss.AddPair(f.Constant(4.0), f.Constant(1.5))
	assert.Equal(t, 5.5, loss.Output().Eval())
}

// The loss gradient reaches the predicted node with the right sign.
func TestL2Loss_GradientSign(t *testing.T) {
	g := compute.NewGraph()
	f := g.Factory()
	pred := f.Constant(2.0)
	truth := f.Constant(5.0)

	loss := neural.NewL2Loss(g)
	loss.AddPair(pred, truth)
	loss.Output().Eval()

	// d/d(pred) (truth - pred)^2 = -2*(truth - pred) = -6
	assert.Equal(t, -6.0, pred.Grad())
	assert.Equal(t, 6.0, truth.Grad())
}

func TestLoss_ReleaseKeepsOperands(t *testing.T) {
	g := compute.NewGraph()
	f := g.Factory()
	pred := f.Constant(2.0)
	truth := f.Constant(5.0)
	before := g.NbNodes()

	loss := neural.NewMSELoss(g)
	loss.AddPair(pred, truth)
	require.Greater(t, g.NbNodes(), before)

	loss.Release()
	assert.Equal(t, before, g.NbNodes())
	assert.Equal(t, 0, pred.NbOutputs())
	assert.Equal(t, 0, truth.NbOutputs())
}
