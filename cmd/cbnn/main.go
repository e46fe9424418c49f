// Package main provides the CBNN command line interface.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/smallcluster/cbnn/compute"
	"github.com/smallcluster/cbnn/neural"
	"github.com/smallcluster/cbnn/optim"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("CBNN %s\n", version)
			return
		case "xor":
			trainXOR()
			return
		}
	}

	fmt.Println("CBNN - scalar compute graphs and gradient descent for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  xor        Train a small MLP on XOR and report the loss")
}

// trainXOR fits a 2-2-1 sigmoid network to the XOR truth table with SGD and
// prints the mean epoch loss as training progresses.
func trainXOR() {
	g := compute.NewGraph()
	mlp := neural.NewMLP(g, []neural.LayerBuilder{
		{Size: 2, Activation: neural.ActivationSigmoid, Bias: true},
		{Size: 2, Activation: neural.ActivationSigmoid, Bias: true},
		{Size: 1, Activation: neural.ActivationSigmoid, Bias: true},
	}, nil)

	inputs, err := neural.NewDataTable(2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	outputs, err := neural.NewDataTable(1, []float64{0, 1, 1, 0})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ds, err := neural.NewDataSet(inputs, outputs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opt := optim.NewSGD(g, mlp, neural.NewMSELoss(g), optim.SGDConfig{
		LearningRate: 0.5,
		Momentum:     0.9,
	})
	opt.SetDataset(ds)

	const epochs = 5000
	for epoch := 1; epoch <= epochs; epoch++ {
		total := 0.0
		steps := 0
		for more := true; more; {
			more = opt.Optimize()
			total += opt.Loss()
			steps++
		}
		if math.IsNaN(total) {
			fmt.Fprintln(os.Stderr, "training diverged")
			os.Exit(1)
		}
		if epoch%500 == 0 {
			fmt.Printf("epoch %4d  loss %.6f\n", epoch, total/float64(steps))
		}
	}

	fmt.Println("\npredictions:")
	for row := 0; row < ds.Size(); row++ {
		a := ds.InputTable().Get(row, 0)
		b := ds.InputTable().Get(row, 1)
		mlp.SetInput(a, 0)
		mlp.SetInput(b, 1)
		fmt.Printf("  %.0f xor %.0f -> %.3f\n", a, b, mlp.Output(0))
	}
}
