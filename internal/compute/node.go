// Copyright 2025 CBNN. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package compute implements a dynamic scalar compute graph with memoised
// forward evaluation and reverse-mode automatic differentiation.
//
// Architecture:
//   - Node: one operator of the expression DAG, identified by a Kind tag.
//     Carries a cached forward value, a cached gradient and a dirty flag.
//   - Slots: ordered input bindings of a node (slot index <-> source).
//   - Graph: exclusive owner of all nodes; SubGraph: scoped view that
//     reference-counts the nodes it registered so destruction cascades.
//   - Factory: typed node constructors bound to a (sub-)graph.
//
// Evaluation is demand-driven recursion: Eval computes an operator from its
// inputs and caches the result; Grad accumulates d(output)/d(node) through
// the output adjacency and caches it. Mutating any constant or any edge
// marks the affected region dirty in both directions; caches are rebuilt
// lazily on the next read.
package compute

import (
	"fmt"
	"math"
)

// Node is one operator in a compute graph.
//
// A node is created through a Factory, owned by the root graph that issued
// its id, and released when every scope that registered it has dropped it.
type Node struct {
	id    uint32
	kind  Kind
	value float64 // Constant value, or CteMult/CteDivide constant
	power int     // CtePower exponent
	label string  // optional Constant display label

	slots   Slots
	outputs []*Node

	cachedValue float64
	hasValue    bool
	cachedGrad  float64
	hasGrad     bool
	dirty       bool

	owners int
}

// ID returns the node identifier, unique within its root graph.
func (n *Node) ID() uint32 { return n.id }

// Kind returns the operator tag.
func (n *Node) Kind() Kind { return n.kind }

// Value returns the payload of a Constant node.
func (n *Node) Value() float64 {
	n.requireKind(KindConstant)
	return n.value
}

// SetValue mutates a Constant node and invalidates dependent caches.
func (n *Node) SetValue(v float64) {
	n.requireKind(KindConstant)
	n.value = v
	n.InvalidateCache()
}

// SetLabel overrides the display label of a Constant node.
func (n *Node) SetLabel(label string) {
	n.requireKind(KindConstant)
	n.label = label
}

// Cte returns the constant of a CteMult or CteDivide node.
func (n *Node) Cte() float64 {
	n.requireKind(KindCteMult, KindCteDivide)
	return n.value
}

// SetCte mutates the constant of a CteMult or CteDivide node and invalidates
// dependent caches.
func (n *Node) SetCte(c float64) {
	n.requireKind(KindCteMult, KindCteDivide)
	n.value = c
	n.InvalidateCache()
}

// Power returns the exponent of a CtePower node.
func (n *Node) Power() int {
	n.requireKind(KindCtePower)
	return n.power
}

// SetPower mutates the exponent of a CtePower node and invalidates dependent
// caches.
func (n *Node) SetPower(p int) {
	n.requireKind(KindCtePower)
	n.power = p
	n.InvalidateCache()
}

func (n *Node) requireKind(kinds ...Kind) {
	for _, k := range kinds {
		if n.kind == k {
			return
		}
	}
	panic(fmt.Sprintf("compute: node %d is %s, want one of %v", n.id, n.kind, kinds))
}

// InputAt returns the input bound at the given slot index.
func (n *Node) InputAt(index int) *Node {
	in := n.slots.Get(index)
	if in == nil {
		panic(fmt.Sprintf("compute: %s node %d has no input at slot %d", n.kind, n.id, index))
	}
	return in
}

// OutputAt returns the i-th observer in insertion order.
func (n *Node) OutputAt(index int) *Node { return n.outputs[index] }

// NbInputs returns the number of bound input slots.
func (n *Node) NbInputs() int { return n.slots.Size() }

// NbOutputs returns the number of observers.
func (n *Node) NbOutputs() int { return len(n.outputs) }

// Inputs returns the bound inputs in slot-ascending order.
func (n *Node) Inputs() []*Node { return n.slots.Nodes() }

// SlotOf returns the slot index at which src feeds this node, or -1.
func (n *Node) SlotOf(src *Node) int { return n.slots.IndexOf(src) }

// OwnerCount returns the number of scopes currently holding the node.
func (n *Node) OwnerCount() int { return n.owners }

func (n *Node) incOwner() int {
	n.owners++
	return n.owners
}

func (n *Node) decOwner() int {
	if n.owners > 0 {
		n.owners--
	}
	return n.owners
}

// Connect wires n as an input of other and returns the slot used. When no
// slot is given the connection appends at index other.NbInputs(). The
// affected region is invalidated.
func (n *Node) Connect(other *Node, slot ...int) int {
	used := other.slots.Size()
	if len(slot) > 0 {
		used = slot[0]
	}
	n.outputs = append(n.outputs, other)
	other.slots.Set(used, n)
	n.InvalidateCache()
	return used
}

// Disconnect removes other from n's observers and erases the slot of other
// fed by n. Invalidation runs first, while the edge still exists, so it
// reaches both sides.
func (n *Node) Disconnect(other *Node) {
	n.InvalidateCache()
	for i, o := range n.outputs {
		if o == other {
			n.outputs = append(n.outputs[:i], n.outputs[i+1:]...)
			break
		}
	}
	other.slots.EraseNode(n)
}

// ClearInputs disconnects every input from n.
func (n *Node) ClearInputs() {
	for _, in := range n.slots.Nodes() {
		in.Disconnect(n)
	}
}

// ClearOutputs disconnects n from every observer.
func (n *Node) ClearOutputs() {
	outs := make([]*Node, len(n.outputs))
	copy(outs, n.outputs)
	for _, o := range outs {
		n.Disconnect(o)
	}
}

// ClearConnections leaves the node stand-alone.
func (n *Node) ClearConnections() {
	n.ClearInputs()
	n.ClearOutputs()
}

// InvalidateCache marks n and everything depending on it, upstream and
// downstream, as stale. The dirty flag doubles as the visited marker, which
// bounds the traversal in DAGs with shared sub-expressions.
func (n *Node) InvalidateCache() {
	if n.dirty {
		return
	}
	n.dirty = true
	for _, o := range n.outputs {
		o.InvalidateCache()
	}
	for _, in := range n.slots.Nodes() {
		in.InvalidateCache()
	}
}

func (n *Node) clearCache() {
	n.hasValue = false
	n.hasGrad = false
}

// Eval returns the forward value of the node, computing and caching it on
// demand. Inputs are read in slot-ascending order.
func (n *Node) Eval() float64 {
	if n.dirty {
		n.clearCache()
		n.dirty = false
	}
	if n.hasValue {
		return n.cachedValue
	}
	v := n.forward()
	n.cachedValue = v
	n.hasValue = true
	return v
}

// Grad returns d(terminal)/d(n) accumulated through the output adjacency,
// computing and caching it on demand. A node with no observers seeds the
// recursion with 1, so invoking Grad on a weight below a loss root yields
// dLoss/dWeight directly. Outputs are read in insertion order.
func (n *Node) Grad() float64 {
	if n.dirty {
		n.clearCache()
		n.dirty = false
	}
	if n.hasGrad {
		return n.cachedGrad
	}
	g := 1.0
	if len(n.outputs) > 0 {
		g = 0.0
		for _, o := range n.outputs {
			g += o.Grad() * o.partial(o.slots.IndexOf(n))
		}
	}
	n.cachedGrad = g
	n.hasGrad = true
	return g
}

func (n *Node) requireInputs(min int) {
	if n.slots.Size() < min {
		panic(fmt.Sprintf("compute: %s node %d needs %d inputs, has %d",
			n.kind, n.id, min, n.slots.Size()))
	}
}

// forward computes the operator value from the inputs.
func (n *Node) forward() float64 {
	switch n.kind {
	case KindConstant:
		return n.value
	case KindIdentity:
		n.requireInputs(1)
		return n.InputAt(0).Eval()
	case KindAdd:
		n.requireInputs(1)
		r := 0.0
		for _, in := range n.slots.Nodes() {
			r += in.Eval()
		}
		return r
	case KindAvg:
		n.requireInputs(1)
		r := 0.0
		for _, in := range n.slots.Nodes() {
			r += in.Eval()
		}
		return r / float64(n.slots.Size())
	case KindSub:
		n.requireInputs(2)
		return n.InputAt(0).Eval() - n.InputAt(1).Eval()
	case KindUnarySub:
		n.requireInputs(1)
		return -n.InputAt(0).Eval()
	case KindMult:
		n.requireInputs(2)
		r := 1.0
		for _, in := range n.slots.Nodes() {
			r *= in.Eval()
		}
		return r
	case KindDivide:
		n.requireInputs(2)
		return n.InputAt(0).Eval() / n.InputAt(1).Eval()
	case KindCteMult:
		n.requireInputs(1)
		return n.InputAt(0).Eval() * n.value
	case KindCteDivide:
		n.requireInputs(1)
		return n.InputAt(0).Eval() / n.value
	case KindCtePower:
		n.requireInputs(1)
		return math.Pow(n.InputAt(0).Eval(), float64(n.power))
	case KindPower:
		n.requireInputs(2)
		return math.Pow(n.InputAt(0).Eval(), n.InputAt(1).Eval())
	case KindExp:
		n.requireInputs(1)
		return math.Exp(n.InputAt(0).Eval())
	case KindLn:
		n.requireInputs(1)
		return math.Log(n.InputAt(0).Eval())
	case KindAbs:
		n.requireInputs(1)
		return math.Abs(n.InputAt(0).Eval())
	case KindInvert:
		n.requireInputs(1)
		return 1.0 / n.InputAt(0).Eval()
	case KindReLU:
		n.requireInputs(1)
		return math.Max(0.0, n.InputAt(0).Eval())
	case KindSigmoid:
		n.requireInputs(1)
		return 1.0 / (1.0 + math.Exp(-n.InputAt(0).Eval()))
	}
	panic(fmt.Sprintf("compute: node %d has unknown kind %d", n.id, n.kind))
}

// partial computes the local partial derivative of the operator with respect
// to the input bound at the given slot.
func (n *Node) partial(slot int) float64 {
	switch n.kind {
	case KindConstant:
		return 0.0
	case KindIdentity, KindAdd:
		return 1.0
	case KindAvg:
		n.requireInputs(1)
		return 1.0 / float64(n.slots.Size())
	case KindSub:
		if slot == 0 {
			return 1.0
		}
		return -1.0
	case KindUnarySub:
		return -1.0
	case KindMult:
		n.requireInputs(2)
		r := 1.0
		for _, idx := range n.slots.Indices() {
			if idx != slot {
				r *= n.slots.Get(idx).Eval()
			}
		}
		return r
	case KindDivide:
		n.requireInputs(2)
		x1 := n.InputAt(1).Eval()
		if slot == 0 {
			return 1.0 / x1
		}
		return -n.InputAt(0).Eval() / (x1 * x1)
	case KindCteMult:
		return n.value
	case KindCteDivide:
		return 1.0 / n.value
	case KindCtePower:
		n.requireInputs(1)
		return float64(n.power) * math.Pow(n.InputAt(0).Eval(), float64(n.power-1))
	case KindPower:
		n.requireInputs(2)
		x0, x1 := n.InputAt(0).Eval(), n.InputAt(1).Eval()
		if slot == 0 {
			return x1 * math.Pow(x0, x1-1)
		}
		return math.Pow(x0, x1) * math.Log(x1)
	case KindExp:
		n.requireInputs(1)
		return math.Exp(n.InputAt(0).Eval())
	case KindLn:
		n.requireInputs(1)
		return 1.0 / n.InputAt(0).Eval()
	case KindAbs:
		n.requireInputs(1)
		v := n.InputAt(0).Eval()
		if v == 0.0 {
			return 0.0
		}
		if v < 0 {
			return -1.0
		}
		return 1.0
	case KindInvert:
		n.requireInputs(1)
		v := n.InputAt(0).Eval()
		return -1.0 / (v * v)
	case KindReLU:
		n.requireInputs(1)
		if n.InputAt(0).Eval() <= 0 {
			return 0.0
		}
		return 1.0
	case KindSigmoid:
		s := n.Eval()
		return s * (1.0 - s)
	}
	panic(fmt.Sprintf("compute: node %d has unknown kind %d", n.id, n.kind))
}
