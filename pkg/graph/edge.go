package graph

import "github.com/matzehuels/vizier/pkg/errors"

// Edge is a handle to an edge in a graph. Like [Node] it is a cheap,
// comparable value; operations on a stale or unbound handle fail with
// NULL_POINTER.
type Edge struct {
	a   *arena
	idx int
	gen uint64
}

// rec resolves the handle, failing with NULL_POINTER when the handle is
// unbound, the graph is closed, or the edge has been removed.
func (e Edge) rec() (*edgeRecord, error) {
	if e.a == nil {
		return nil, errors.NullPointer("edge handle is unbound")
	}
	if e.a.closed {
		return nil, errors.NullPointer("graph is closed")
	}
	r := &e.a.edges[e.idx]
	if !r.alive || r.gen != e.gen {
		return nil, errors.NullPointer("stale edge handle")
	}
	return r, nil
}

// Name returns the edge's name, empty for positional edges.
func (e Edge) Name() (string, error) {
	rec, err := e.rec()
	if err != nil {
		return "", err
	}
	if err := errors.ValidateUTF8([]byte(rec.name)); err != nil {
		return "", err
	}
	return rec.name, nil
}

// Source returns the node the edge starts at. Each edge records its
// endpoints, so this is O(1). On an undirected graph the source is whichever
// endpoint the edge was created from.
func (e Edge) Source() (Node, error) {
	rec, err := e.rec()
	if err != nil {
		return Node{}, err
	}
	return Node{a: e.a, idx: rec.tail, gen: e.a.nodes[rec.tail].gen}, nil
}

// Dest returns the node the edge points at, the counterpart of
// [Edge.Source].
func (e Edge) Dest() (Node, error) {
	rec, err := e.rec()
	if err != nil {
		return Node{}, err
	}
	return Node{a: e.a, idx: rec.head, gen: e.a.nodes[rec.head].gen}, nil
}

// Graph returns a borrowed view of the edge's graph. Closing the view is a
// no-op.
func (e Edge) Graph() *Graph {
	return &Graph{a: e.a}
}
