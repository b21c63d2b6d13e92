// Package graph provides the core object model for building Graphviz graphs:
// graphs, nodes, edges, and their attributes.
//
// # Overview
//
// The package mirrors the engine's C object model (cgraph) without touching
// native memory. A [Graph] owns an internal arena holding a node table and an
// edge table; [Node] and [Edge] are small comparable handles into those
// tables. Handles carry a generation counter, so using a handle after the
// entity was removed is detected and reported instead of corrupting state.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [Graph.AddNode], and connect them
// with [Graph.AddEdge]:
//
//	g, _ := graph.New("deps", graph.Directed)
//	defer g.Close()
//	app, _ := g.AddNode("app")
//	lib, _ := g.AddNode("lib")
//	g.AddEdge(app, lib, "")
//
// Node creation is idempotent: adding a name that already exists returns the
// existing node. Use [Graph.Node] and [Graph.FindEdge] for lookups that
// report absence instead of creating.
//
// # Ownership
//
// Exactly one owning Graph exists per underlying arena. Views obtained by
// navigating from a child entity ([Node.Graph], [Edge.Graph]) are borrowed:
// closing them is a no-op, and only the owning Graph's [Graph.Close] releases
// the tables. Close is idempotent. After Close, every operation through any
// view or handle fails with a NULL_POINTER error rather than touching freed
// state.
//
// # Attributes
//
// Graphs, nodes, and edges share one attribute contract: SetAttribute,
// GetAttribute, HasAttribute, SetAttributeIfAbsent, RemoveAttribute.
// Setting an attribute first declares the name on the entity's domain
// (graph, node, or edge) with an empty default, then assigns the value to
// the specific entity. Declaring through one node makes the name visible on
// every node in the graph with the empty default; a name never declared on
// the domain reads as absent. Removal assigns the empty string because the
// underlying model has no true delete. Attribute tables are created lazily
// per entity.
//
// # Iteration
//
// Traversal follows the engine's first/next protocol. The cursor methods
// ([Graph.FirstNode], [Graph.NextNode], [Graph.FirstOut], ...) expose it
// directly; [Graph.Nodes], [Graph.Edges], [Node.OutEdges], and
// [Node.InEdges] wrap the cursors in lazy iter.Seq sequences. Sequences are
// finite, yield entities in creation order, and never yield errors: a
// liveness failure mid-walk terminates the sequence early. Mutating the
// graph during iteration is an unchecked precondition; removed entities
// simply stop appearing, while entities added behind the cursor do appear.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. The engine's object model
// is single-threaded, and this package adds no internal locking; callers
// that share a Graph across goroutines must serialize access externally.
package graph
