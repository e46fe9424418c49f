// Copyright 2025 CBNN. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package compute provides the scalar compute-graph engine.
//
// # Overview
//
// An expression is a directed acyclic graph of typed operator nodes owned by
// a root graph. Forward values and reverse-mode gradients are cached on the
// nodes and rebuilt lazily after any mutation.
//
// # Basic Usage
//
//	import "github.com/smallcluster/cbnn/compute"
//
//	func main() {
//	    g := compute.NewGraph()
//	    f := g.Factory()
//
//	    // y = sigmoid(w*x)
//	    w := f.Constant(0.5)
//	    x := f.Constant(2.0)
//	    prod := f.Mult()
//	    g.CreateEdge(w, prod)
//	    g.CreateEdge(x, prod)
//	    y := f.Sigmoid()
//	    g.CreateEdge(prod, y)
//
//	    value := y.Eval()   // forward pass
//	    grad := w.Grad()    // dy/dw by reverse-mode autodiff
//	    _ = value
//	    _ = grad
//	}
//
// # Sub-graphs
//
// A SubGraph is a scoped view over a parent graph. Nodes created through it
// are registered with every level up to the root, and Release drops exactly
// the nodes the scope introduced:
//
//	sg := compute.NewSubGraph(g)
//	tmp := sg.Factory().Constant(1.0)
//	_ = tmp
//	sg.Release() // tmp is gone, the rest of g is untouched
//
// # Caching
//
// Eval and Grad memoise their results per node. Mutating a constant or the
// graph structure marks the affected region dirty in both directions;
// caches rebuild on the next read. Repeated Eval calls return bit-identical
// values until something changes.
package compute
