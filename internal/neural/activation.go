package neural

import (
	"fmt"

	"github.com/smallcluster/cbnn/internal/compute"
)

// ActivationKind selects the transfer function of a neuron or layer.
type ActivationKind uint8

const (
	ActivationReLU ActivationKind = iota
	ActivationSigmoid
	ActivationIdentity
)

// String returns the kind name.
func (k ActivationKind) String() string {
	switch k {
	case ActivationReLU:
		return "ReLU"
	case ActivationSigmoid:
		return "Sigmoid"
	case ActivationIdentity:
		return "Identity"
	}
	return "Unknown"
}

// Activation is a single-node sub-graph applying a transfer function.
type Activation struct {
	*compute.SubGraph
	node *compute.Node
}

// NewActivation creates the activation node for the given kind.
func NewActivation(parent compute.Graph, kind ActivationKind) *Activation {
	sg := compute.NewSubGraph(parent)
	var n *compute.Node
	switch kind {
	case ActivationReLU:
		n = sg.Factory().ReLU()
	case ActivationSigmoid:
		n = sg.Factory().Sigmoid()
	case ActivationIdentity:
		n = sg.Factory().Identity()
	default:
		panic(fmt.Sprintf("neural: unknown activation kind %d", kind))
	}
	return &Activation{SubGraph: sg, node: n}
}

// SetInput wires n into the activation at slot 0.
func (a *Activation) SetInput(n *compute.Node) {
	a.CreateEdge(n, a.node, 0)
}

// Output returns the activation node.
func (a *Activation) Output() *compute.Node { return a.node }
