package graph

import (
	"slices"

	"github.com/matzehuels/vizier/pkg/errors"
)

// Desc fixes a graph's directedness and strictness. Both are immutable after
// creation, matching the engine's graph descriptors.
type Desc struct {
	Directed bool
	Strict   bool
}

// Predeclared descriptors for the four graph kinds.
var (
	Directed         = Desc{Directed: true}
	StrictDirected   = Desc{Directed: true, Strict: true}
	Undirected       = Desc{}
	StrictUndirected = Desc{Strict: true}
)

// noIndex terminates the intrusive creation-order lists.
const noIndex = -1

// nodeRecord is one slot in the arena's node table. The out and in slices
// hold indices of live edges only, in creation order; removal splices the
// index out of both endpoint lists.
type nodeRecord struct {
	name  string
	gen   uint64
	alive bool

	// creation-order list links
	next, prev int

	attrs map[string]string
	out   []int
	in    []int
}

// edgeRecord is one slot in the arena's edge table. For directed graphs tail
// is the source and head the destination; for undirected graphs the roles
// record insertion order only.
type edgeRecord struct {
	name  string
	gen   uint64
	alive bool

	tail, head int

	attrs map[string]string
}

// arena is the backing store shared by the owning Graph and every borrowed
// view. Slots are recycled through free lists; each recycle bumps the slot's
// generation so handles into the old incarnation turn stale instead of
// silently aliasing the new one.
type arena struct {
	name   string
	desc   Desc
	closed bool

	nodes     []nodeRecord
	edges     []edgeRecord
	freeNodes []int
	freeEdges []int

	// bounds of the node creation-order list
	first, last int

	byName map[string]int

	nodeCount int
	edgeCount int

	defaults [domainCount]map[string]string
	attrs    map[string]string
}

// Graph is a view over a graph arena. The view returned by [New] owns the
// arena and releases it on [Graph.Close]; views returned by [Node.Graph] and
// [Edge.Graph] are borrowed and never release anything.
//
// The zero value is not usable. Graph is not safe for concurrent use.
type Graph struct {
	a     *arena
	owned bool
}

// Handle identifies the storage behind a Graph. Every view of the same graph
// (owned or borrowed) yields an equal Handle, so it is suitable as a map key
// where graph identity matters across views.
type Handle struct {
	a *arena
}

// New creates an empty graph with the given name and descriptor. The name
// must not contain a NUL byte; it fails with GRAPH_CREATION_FAILED otherwise.
func New(name string, desc Desc) (*Graph, error) {
	if err := errors.ValidateName(name); err != nil {
		return nil, errors.Wrap(errors.ErrCodeGraphCreationFailed, err, "invalid graph name")
	}
	a := &arena{
		name:   name,
		desc:   desc,
		first:  noIndex,
		last:   noIndex,
		byName: make(map[string]int),
	}
	return &Graph{a: a, owned: true}, nil
}

// arenaLive resolves the view to a usable arena, failing with NULL_POINTER
// when the view is unbound or the graph has been closed.
func (g *Graph) arenaLive() (*arena, error) {
	if g == nil || g.a == nil {
		return nil, errors.NullPointer("graph handle is unbound")
	}
	if g.a.closed {
		return nil, errors.NullPointer("graph is closed")
	}
	return g.a, nil
}

// nodeRec resolves a node handle against this arena.
func (a *arena) nodeRec(n Node) (*nodeRecord, error) {
	if n.a == nil {
		return nil, errors.NullPointer("node handle is unbound")
	}
	if n.a != a {
		return nil, errors.NullPointer("node belongs to a different graph")
	}
	r := &a.nodes[n.idx]
	if !r.alive || r.gen != n.gen {
		return nil, errors.NullPointer("stale node handle")
	}
	return r, nil
}

// edgeRec resolves an edge handle against this arena.
func (a *arena) edgeRec(e Edge) (*edgeRecord, error) {
	if e.a == nil {
		return nil, errors.NullPointer("edge handle is unbound")
	}
	if e.a != a {
		return nil, errors.NullPointer("edge belongs to a different graph")
	}
	r := &a.edges[e.idx]
	if !r.alive || r.gen != e.gen {
		return nil, errors.NullPointer("stale edge handle")
	}
	return r, nil
}

// AddNode returns the node with the given name, creating it if missing.
// Creation is idempotent: calling AddNode twice with one name returns equal
// handles and leaves the node count unchanged. Fails with
// NODE_CREATION_FAILED when the name cannot cross the engine boundary.
func (g *Graph) AddNode(name string) (Node, error) {
	a, err := g.arenaLive()
	if err != nil {
		return Node{}, err
	}
	if err := errors.ValidateName(name); err != nil {
		return Node{}, errors.Wrap(errors.ErrCodeNodeCreationFailed, err, "invalid node name")
	}
	if idx, ok := a.byName[name]; ok {
		return Node{a: a, idx: idx, gen: a.nodes[idx].gen}, nil
	}
	idx := a.allocNode(name)
	return Node{a: a, idx: idx, gen: a.nodes[idx].gen}, nil
}

func (a *arena) allocNode(name string) int {
	var idx int
	if n := len(a.freeNodes); n > 0 {
		idx = a.freeNodes[n-1]
		a.freeNodes = a.freeNodes[:n-1]
		rec := &a.nodes[idx]
		*rec = nodeRecord{name: name, gen: rec.gen, alive: true, next: noIndex, prev: a.last}
	} else {
		idx = len(a.nodes)
		a.nodes = append(a.nodes, nodeRecord{name: name, alive: true, next: noIndex, prev: a.last})
	}
	if a.last != noIndex {
		a.nodes[a.last].next = idx
	} else {
		a.first = idx
	}
	a.last = idx
	a.byName[name] = idx
	a.nodeCount++
	return idx
}

// Node looks up a node by name. It reports absence instead of creating,
// the lookup counterpart of [Graph.AddNode]. A closed graph reports absent.
func (g *Graph) Node(name string) (Node, bool) {
	a, err := g.arenaLive()
	if err != nil {
		return Node{}, false
	}
	idx, ok := a.byName[name]
	if !ok {
		return Node{}, false
	}
	return Node{a: a, idx: idx, gen: a.nodes[idx].gen}, true
}

// AddEdge creates an edge from one node to another. An empty name creates a
// positional edge: every call adds a new one. A non-empty name is idempotent
// per endpoint pair, returning the existing edge when present. On a strict
// graph an occupied pair (ordered when directed, unordered otherwise) always
// returns the existing edge instead of creating a duplicate.
//
// Both endpoints must be live handles into this graph; anything else fails
// with EDGE_CREATION_FAILED rather than trusting the caller.
func (g *Graph) AddEdge(from, to Node, name string) (Edge, error) {
	a, err := g.arenaLive()
	if err != nil {
		return Edge{}, err
	}
	if _, err := a.nodeRec(from); err != nil {
		return Edge{}, errors.Wrap(errors.ErrCodeEdgeCreationFailed, err, "edge tail")
	}
	if _, err := a.nodeRec(to); err != nil {
		return Edge{}, errors.Wrap(errors.ErrCodeEdgeCreationFailed, err, "edge head")
	}
	if err := errors.ValidateName(name); err != nil {
		return Edge{}, errors.Wrap(errors.ErrCodeEdgeCreationFailed, err, "invalid edge name")
	}
	if name != "" {
		if e, ok := a.findEdge(from.idx, to.idx, name); ok {
			return e, nil
		}
	}
	if a.desc.Strict {
		if e, ok := a.findEdge(from.idx, to.idx, ""); ok {
			return e, nil
		}
	}
	idx := a.allocEdge(from.idx, to.idx, name)
	return Edge{a: a, idx: idx, gen: a.edges[idx].gen}, nil
}

func (a *arena) allocEdge(tail, head int, name string) int {
	var idx int
	if n := len(a.freeEdges); n > 0 {
		idx = a.freeEdges[n-1]
		a.freeEdges = a.freeEdges[:n-1]
		rec := &a.edges[idx]
		*rec = edgeRecord{name: name, gen: rec.gen, alive: true, tail: tail, head: head}
	} else {
		idx = len(a.edges)
		a.edges = append(a.edges, edgeRecord{name: name, alive: true, tail: tail, head: head})
	}
	a.nodes[tail].out = append(a.nodes[tail].out, idx)
	a.nodes[head].in = append(a.nodes[head].in, idx)
	a.edgeCount++
	return idx
}

// findEdge scans the tail's edge lists for a connection to head. An empty
// name matches any edge; a set name must match exactly. Undirected graphs
// match either orientation.
func (a *arena) findEdge(tail, head int, name string) (Edge, bool) {
	for _, ei := range a.nodes[tail].out {
		rec := &a.edges[ei]
		if rec.head != head {
			continue
		}
		if name == "" || rec.name == name {
			return Edge{a: a, idx: ei, gen: rec.gen}, true
		}
	}
	if !a.desc.Directed {
		for _, ei := range a.nodes[tail].in {
			rec := &a.edges[ei]
			if rec.tail != head {
				continue
			}
			if name == "" || rec.name == name {
				return Edge{a: a, idx: ei, gen: rec.gen}, true
			}
		}
	}
	return Edge{}, false
}

// FindEdge looks up an edge between two nodes, reporting absence instead of
// creating one. The asymmetry with [Graph.AddEdge] is deliberate: lookups
// report "not found" as an absent result, never as an error. On undirected
// graphs either orientation matches. When parallel edges exist the first in
// creation order is returned.
func (g *Graph) FindEdge(from, to Node) (Edge, bool) {
	a, err := g.arenaLive()
	if err != nil {
		return Edge{}, false
	}
	if _, err := a.nodeRec(from); err != nil {
		return Edge{}, false
	}
	if _, err := a.nodeRec(to); err != nil {
		return Edge{}, false
	}
	return a.findEdge(from.idx, to.idx, "")
}

// RemoveNode deletes a node and all of its incident edges. The handle (and
// any alias of it, and handles to the removed edges) turns stale. Fails with
// NODE_REMOVAL_FAILED when the handle does not resolve to a live node of
// this graph.
func (g *Graph) RemoveNode(n Node) error {
	a, err := g.arenaLive()
	if err != nil {
		return err
	}
	rec, err := a.nodeRec(n)
	if err != nil {
		return errors.Wrap(errors.ErrCodeNodeRemovalFailed, err, "remove node")
	}
	for _, ei := range slices.Clone(rec.out) {
		a.removeEdgeAt(ei)
	}
	for _, ei := range slices.Clone(rec.in) {
		a.removeEdgeAt(ei)
	}
	if rec.prev != noIndex {
		a.nodes[rec.prev].next = rec.next
	} else {
		a.first = rec.next
	}
	if rec.next != noIndex {
		a.nodes[rec.next].prev = rec.prev
	} else {
		a.last = rec.prev
	}
	delete(a.byName, rec.name)
	rec.alive = false
	rec.gen++
	rec.attrs = nil
	rec.out, rec.in = nil, nil
	a.freeNodes = append(a.freeNodes, n.idx)
	a.nodeCount--
	return nil
}

// RemoveEdge deletes an edge. The handle and any alias of it turns stale.
// Fails with EDGE_REMOVAL_FAILED when the handle does not resolve to a live
// edge of this graph.
func (g *Graph) RemoveEdge(e Edge) error {
	a, err := g.arenaLive()
	if err != nil {
		return err
	}
	if _, err := a.edgeRec(e); err != nil {
		return errors.Wrap(errors.ErrCodeEdgeRemovalFailed, err, "remove edge")
	}
	a.removeEdgeAt(e.idx)
	return nil
}

func (a *arena) removeEdgeAt(idx int) {
	rec := &a.edges[idx]
	a.nodes[rec.tail].out = spliceOut(a.nodes[rec.tail].out, idx)
	a.nodes[rec.head].in = spliceOut(a.nodes[rec.head].in, idx)
	rec.alive = false
	rec.gen++
	rec.attrs = nil
	a.freeEdges = append(a.freeEdges, idx)
	a.edgeCount--
}

func spliceOut(list []int, idx int) []int {
	for i, v := range list {
		if v == idx {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// NodeCount returns the number of live nodes. O(1); a closed graph counts 0.
func (g *Graph) NodeCount() int {
	if g == nil || g.a == nil || g.a.closed {
		return 0
	}
	return g.a.nodeCount
}

// EdgeCount returns the number of live edges. O(1); a closed graph counts 0.
func (g *Graph) EdgeCount() int {
	if g == nil || g.a == nil || g.a.closed {
		return 0
	}
	return g.a.edgeCount
}

// Name returns the graph's declared name. Fails with NULL_POINTER on a
// closed graph and with INVALID_UTF8 when the stored name is not valid text.
func (g *Graph) Name() (string, error) {
	a, err := g.arenaLive()
	if err != nil {
		return "", err
	}
	if err := errors.ValidateUTF8([]byte(a.name)); err != nil {
		return "", err
	}
	return a.name, nil
}

// Directed reports whether the graph was created directed.
func (g *Graph) Directed() bool {
	return g != nil && g.a != nil && g.a.desc.Directed
}

// Strict reports whether the graph was created strict.
func (g *Graph) Strict() bool {
	return g != nil && g.a != nil && g.a.desc.Strict
}

// Desc returns the graph's descriptor.
func (g *Graph) Desc() Desc {
	if g == nil || g.a == nil {
		return Desc{}
	}
	return g.a.desc
}

// Handle returns the identity of the underlying storage, shared by every
// view of this graph.
func (g *Graph) Handle() Handle {
	if g == nil {
		return Handle{}
	}
	return Handle{a: g.a}
}

// Close releases the graph's tables. Only the owning view releases anything:
// borrowed views and repeated calls are no-ops, so an owned graph and a
// borrowed view of it can both be closed in any order without a double
// release. After an owning Close every handle into the graph is dead.
func (g *Graph) Close() error {
	if g == nil || g.a == nil || !g.owned {
		return nil
	}
	a := g.a
	if a.closed {
		return nil
	}
	a.closed = true
	a.nodes, a.edges = nil, nil
	a.freeNodes, a.freeEdges = nil, nil
	a.byName = nil
	a.attrs = nil
	a.defaults = [domainCount]map[string]string{}
	a.first, a.last = noIndex, noIndex
	a.nodeCount, a.edgeCount = 0, 0
	return nil
}
