package graph

import (
	"maps"
	"slices"
)

// GraphBuilder stages a graph before creation. Populate the fields (or use
// [GraphBuilder.Set] for attributes) and call [GraphBuilder.Build] once; the
// builder is plain mutable state, not a fluent chain. Attributes apply in
// key order.
type GraphBuilder struct {
	Name  string
	Desc  Desc
	Attrs map[string]string
}

// NewGraphBuilder returns a builder for a directed, non-strict graph, the
// most common shape. Adjust Desc before building for anything else.
func NewGraphBuilder(name string) *GraphBuilder {
	return &GraphBuilder{Name: name, Desc: Directed}
}

// Set stages one graph attribute.
func (b *GraphBuilder) Set(key, value string) {
	if b.Attrs == nil {
		b.Attrs = make(map[string]string)
	}
	b.Attrs[key] = value
}

// Build creates the graph and applies the staged attributes. When an
// attribute fails to apply the half-built graph is closed before the error
// is returned, so a failed Build leaks nothing.
func (b *GraphBuilder) Build() (*Graph, error) {
	g, err := New(b.Name, b.Desc)
	if err != nil {
		return nil, err
	}
	for _, k := range slices.Sorted(maps.Keys(b.Attrs)) {
		if err := g.SetAttribute(k, b.Attrs[k]); err != nil {
			g.Close()
			return nil, err
		}
	}
	return g, nil
}

// NodeBuilder stages a node on an existing graph.
type NodeBuilder struct {
	Name  string
	Attrs map[string]string

	g *Graph
}

// NodeBuilder returns a builder that will add a node to g.
func (g *Graph) NodeBuilder(name string) *NodeBuilder {
	return &NodeBuilder{Name: name, g: g}
}

// Set stages one node attribute.
func (b *NodeBuilder) Set(key, value string) {
	if b.Attrs == nil {
		b.Attrs = make(map[string]string)
	}
	b.Attrs[key] = value
}

// Build adds the node and applies the staged attributes in key order.
// Unlike [GraphBuilder.Build] a failed attribute leaves the node in the
// graph: the node may have existed before this call, so the builder never
// removes it.
func (b *NodeBuilder) Build() (Node, error) {
	n, err := b.g.AddNode(b.Name)
	if err != nil {
		return Node{}, err
	}
	for _, k := range slices.Sorted(maps.Keys(b.Attrs)) {
		if err := n.SetAttribute(k, b.Attrs[k]); err != nil {
			return Node{}, err
		}
	}
	return n, nil
}

// EdgeBuilder stages an edge between two existing nodes.
type EdgeBuilder struct {
	From, To Node
	Name     string
	Attrs    map[string]string

	g *Graph
}

// EdgeBuilder returns a builder that will connect from to to. Set Name
// before building to create a named (idempotent) edge.
func (g *Graph) EdgeBuilder(from, to Node) *EdgeBuilder {
	return &EdgeBuilder{From: from, To: to, g: g}
}

// Set stages one edge attribute.
func (b *EdgeBuilder) Set(key, value string) {
	if b.Attrs == nil {
		b.Attrs = make(map[string]string)
	}
	b.Attrs[key] = value
}

// Build adds the edge and applies the staged attributes in key order. As
// with [NodeBuilder.Build], a failed attribute leaves the edge in place.
func (b *EdgeBuilder) Build() (Edge, error) {
	e, err := b.g.AddEdge(b.From, b.To, b.Name)
	if err != nil {
		return Edge{}, err
	}
	for _, k := range slices.Sorted(maps.Keys(b.Attrs)) {
		if err := e.SetAttribute(k, b.Attrs[k]); err != nil {
			return Edge{}, err
		}
	}
	return e, nil
}
