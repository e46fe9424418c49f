package compute

import "sort"

// Slots is the ordered input table of a node: a bidirectional mapping between
// slot indices and source nodes. Indices are dense from zero for freshly
// built nodes but need not stay contiguous after arbitrary erases; Size
// always reports the number of live bindings.
type Slots struct {
	inputs  map[int]*Node
	indices map[*Node]int
}

func (s *Slots) ensure() {
	if s.inputs == nil {
		s.inputs = make(map[int]*Node)
		s.indices = make(map[*Node]int)
	}
}

// Set binds slot index to node, replacing any previous binding at that index.
func (s *Slots) Set(index int, node *Node) {
	s.ensure()
	if prev, ok := s.inputs[index]; ok && prev != node {
		delete(s.indices, prev)
	}
	s.inputs[index] = node
	s.indices[node] = index
}

// Get returns the source bound at index, or nil.
func (s *Slots) Get(index int) *Node {
	return s.inputs[index]
}

// IndexOf returns the slot index of node, or -1 when node is not an input.
func (s *Slots) IndexOf(node *Node) int {
	if i, ok := s.indices[node]; ok {
		return i
	}
	return -1
}

// Erase removes the binding at index. Absent indices are a no-op.
func (s *Slots) Erase(index int) {
	node, ok := s.inputs[index]
	if !ok {
		return
	}
	delete(s.inputs, index)
	delete(s.indices, node)
}

// EraseNode removes the binding whose source is node. Absent nodes are a
// no-op.
func (s *Slots) EraseNode(node *Node) {
	index, ok := s.indices[node]
	if !ok {
		return
	}
	delete(s.indices, node)
	delete(s.inputs, index)
}

// Size returns the number of live bindings.
func (s *Slots) Size() int {
	return len(s.inputs)
}

// Indices returns the live slot indices in ascending order.
func (s *Slots) Indices() []int {
	indices := make([]int, 0, len(s.inputs))
	for i := range s.inputs {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// Nodes returns the bound sources in slot-ascending order. Evaluation reads
// inputs in this order, which is observable through floating-point rounding.
func (s *Slots) Nodes() []*Node {
	indices := s.Indices()
	nodes := make([]*Node, len(indices))
	for i, idx := range indices {
		nodes[i] = s.inputs[idx]
	}
	return nodes
}
