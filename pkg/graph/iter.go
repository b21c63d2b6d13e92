package graph

import "iter"

// ===== Cursor primitives ====================================================
//
// The first/next pairs mirror the engine's intrusive list walks. They never
// return an error: a dead graph or handle simply reports no further element.

// FirstNode returns the first node in creation order.
func (g *Graph) FirstNode() (Node, bool) {
	a, err := g.arenaLive()
	if err != nil {
		return Node{}, false
	}
	if a.first == noIndex {
		return Node{}, false
	}
	return Node{a: a, idx: a.first, gen: a.nodes[a.first].gen}, true
}

// NextNode returns the node created after n.
func (g *Graph) NextNode(n Node) (Node, bool) {
	a, err := g.arenaLive()
	if err != nil {
		return Node{}, false
	}
	rec, err := a.nodeRec(n)
	if err != nil {
		return Node{}, false
	}
	if rec.next == noIndex {
		return Node{}, false
	}
	return Node{a: a, idx: rec.next, gen: a.nodes[rec.next].gen}, true
}

// FirstOut returns the first edge leaving n, in creation order.
func (g *Graph) FirstOut(n Node) (Edge, bool) {
	a, err := g.arenaLive()
	if err != nil {
		return Edge{}, false
	}
	rec, err := a.nodeRec(n)
	if err != nil {
		return Edge{}, false
	}
	if len(rec.out) == 0 {
		return Edge{}, false
	}
	ei := rec.out[0]
	return Edge{a: a, idx: ei, gen: a.edges[ei].gen}, true
}

// NextOut returns the edge created after e among the edges leaving e's
// source. It scans the source's edge list, so a full walk of a node's out
// edges costs O(degree squared).
func (g *Graph) NextOut(e Edge) (Edge, bool) {
	a, err := g.arenaLive()
	if err != nil {
		return Edge{}, false
	}
	rec, err := a.edgeRec(e)
	if err != nil {
		return Edge{}, false
	}
	return a.edgeAfter(a.nodes[rec.tail].out, e.idx)
}

// FirstIn returns the first edge entering n, in creation order.
func (g *Graph) FirstIn(n Node) (Edge, bool) {
	a, err := g.arenaLive()
	if err != nil {
		return Edge{}, false
	}
	rec, err := a.nodeRec(n)
	if err != nil {
		return Edge{}, false
	}
	if len(rec.in) == 0 {
		return Edge{}, false
	}
	ei := rec.in[0]
	return Edge{a: a, idx: ei, gen: a.edges[ei].gen}, true
}

// NextIn returns the edge created after e among the edges entering e's
// destination.
func (g *Graph) NextIn(e Edge) (Edge, bool) {
	a, err := g.arenaLive()
	if err != nil {
		return Edge{}, false
	}
	rec, err := a.edgeRec(e)
	if err != nil {
		return Edge{}, false
	}
	return a.edgeAfter(a.nodes[rec.head].in, e.idx)
}

// edgeAfter returns the edge following idx in an endpoint's edge list.
func (a *arena) edgeAfter(list []int, idx int) (Edge, bool) {
	for i, v := range list {
		if v == idx && i+1 < len(list) {
			next := list[i+1]
			return Edge{a: a, idx: next, gen: a.edges[next].gen}, true
		}
	}
	return Edge{}, false
}

// ===== Sequence wrappers ====================================================
//
// The range-over-func wrappers are thin layers over the cursors. They are
// lazy: nothing is visited until the loop body runs, and breaking out of the
// loop stops the walk. Mutating the graph while ranging invalidates the
// walk; it terminates early instead of panicking.

// Nodes yields the graph's nodes in creation order.
func (g *Graph) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for n, ok := g.FirstNode(); ok; n, ok = g.NextNode(n) {
			if !yield(n) {
				return
			}
		}
	}
}

// Edges yields every edge exactly once, grouped by source node in creation
// order. Self-loops appear once.
func (g *Graph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for n, ok := g.FirstNode(); ok; n, ok = g.NextNode(n) {
			for e, eok := g.FirstOut(n); eok; e, eok = g.NextOut(e) {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// OutEdges yields the edges leaving the node in creation order. On an
// undirected graph the out/in split reflects each edge's creation
// orientation.
func (n Node) OutEdges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		g := n.Graph()
		for e, ok := g.FirstOut(n); ok; e, ok = g.NextOut(e) {
			if !yield(e) {
				return
			}
		}
	}
}

// InEdges yields the edges entering the node in creation order.
func (n Node) InEdges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		g := n.Graph()
		for e, ok := g.FirstIn(n); ok; e, ok = g.NextIn(e) {
			if !yield(e) {
				return
			}
		}
	}
}
