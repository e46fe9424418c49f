// Copyright 2025 CBNN. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package compute

import (
	"github.com/smallcluster/cbnn/internal/compute"
)

// Node is one operator in a compute graph.
type Node = compute.Node

// Kind identifies the operator of a node.
type Kind = compute.Kind

// Operator kinds.
const (
	KindIdentity  = compute.KindIdentity
	KindConstant  = compute.KindConstant
	KindAdd       = compute.KindAdd
	KindSub       = compute.KindSub
	KindUnarySub  = compute.KindUnarySub
	KindMult      = compute.KindMult
	KindDivide    = compute.KindDivide
	KindCteMult   = compute.KindCteMult
	KindCteDivide = compute.KindCteDivide
	KindCtePower  = compute.KindCtePower
	KindPower     = compute.KindPower
	KindExp       = compute.KindExp
	KindLn        = compute.KindLn
	KindAbs       = compute.KindAbs
	KindInvert    = compute.KindInvert
	KindReLU      = compute.KindReLU
	KindSigmoid   = compute.KindSigmoid
	KindAvg       = compute.KindAvg
)

// Edge records one wired connection (source, destination, slot).
type Edge = compute.Edge

// Slots is the ordered input table of a node.
type Slots = compute.Slots

// Graph is the construction surface shared by root graphs and sub-graphs.
type Graph = compute.Graph

// RootGraph owns the node pool and allocates identifiers.
type RootGraph = compute.RootGraph

// SubGraph is a scoped view over a parent graph.
type SubGraph = compute.SubGraph

// Factory creates nodes bound to one (sub-)graph.
type Factory = compute.Factory

// Visitor receives one hook per node kind during a graph walk.
type Visitor = compute.Visitor

// NewGraph creates an empty root graph.
func NewGraph() *RootGraph {
	return compute.NewGraph()
}

// NewSubGraph creates a sub-graph scoped under parent.
func NewSubGraph(parent Graph) *SubGraph {
	return compute.NewSubGraph(parent)
}

// ForwardWalk visits n and every node reachable through its inputs, once
// each.
func ForwardWalk(n *Node, v Visitor) {
	compute.ForwardWalk(n, v)
}

// BackwardWalk visits n and every node reachable through its outputs, once
// each.
func BackwardWalk(n *Node, v Visitor) {
	compute.BackwardWalk(n, v)
}
