package graph

import "github.com/matzehuels/vizier/pkg/errors"

// Node is a handle to a node in a graph. The zero value is unbound. Handles
// are cheap values safe to copy and compare: two handles are equal exactly
// when they refer to the same live incarnation of a node. A handle outlives
// neither its node nor its graph; operations on a stale or unbound handle
// fail with NULL_POINTER.
type Node struct {
	a   *arena
	idx int
	gen uint64
}

// rec resolves the handle, failing with NULL_POINTER when the handle is
// unbound, the graph is closed, or the node has been removed.
func (n Node) rec() (*nodeRecord, error) {
	if n.a == nil {
		return nil, errors.NullPointer("node handle is unbound")
	}
	if n.a.closed {
		return nil, errors.NullPointer("graph is closed")
	}
	r := &n.a.nodes[n.idx]
	if !r.alive || r.gen != n.gen {
		return nil, errors.NullPointer("stale node handle")
	}
	return r, nil
}

// Name returns the node's name.
func (n Node) Name() (string, error) {
	rec, err := n.rec()
	if err != nil {
		return "", err
	}
	if err := errors.ValidateUTF8([]byte(rec.name)); err != nil {
		return "", err
	}
	return rec.name, nil
}

// Graph returns a borrowed view of the node's graph. Closing the view is a
// no-op; the owning view stays responsible for the release.
func (n Node) Graph() *Graph {
	return &Graph{a: n.a}
}
