package neural

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// heSample draws one weight from the He initialisation distribution
// N(0, sqrt(2/fanIn)).
//
// He initialisation keeps the activation variance stable across ReLU-style
// layers. Builders that accept a nil source fall back to a time-seeded one;
// tests pass a fixed-seed source for reproducible weights.
func heSample(fanIn int, src rand.Source) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: math.Sqrt(2.0 / float64(fanIn)),
		Src:   src,
	}
	return dist.Rand()
}

// timeSource returns a non-deterministically seeded random source.
func timeSource() rand.Source {
	return rand.NewSource(uint64(time.Now().UnixNano()))
}
