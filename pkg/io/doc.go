// Package io provides DOT import and export for graphs.
//
// # Overview
//
// This package serializes [graph.Graph] values to canonical DOT text and
// parses DOT text back into graphs. The format is what every layout engine
// consumes, so export is also the bridge between the in-memory model and the
// engine boundary:
//
//   - Interchange with the wider Graphviz toolchain
//   - Feeding [engine.Runtime] implementations, which take DOT source
//   - Persisting graphs in a human-readable form
//
// # DOT Output
//
// Export is deterministic: nodes and edges appear in creation order and
// attribute lists are sorted by key. A directed graph uses digraph/->, an
// undirected one graph/--, and strict graphs carry the strict keyword:
//
//	strict digraph build {
//	  rankdir="LR"
//	  app [shape="box"];
//	  lib;
//	  app -> lib [weight="2"];
//	}
//
// Names and keys that are plain identifiers stay bare; everything else is
// quoted with Go escaping rules, which Graphviz reads back unchanged for
// the usual cases (quotes, backslashes, line breaks in labels). Edge names
// are a lookup concept only and do not appear in the output.
//
// # Import
//
// Use [ImportDOT] to read a file or [ReadDOT]/[UnmarshalDOT] for readers
// and byte slices. Import creates a new owned graph; the caller closes it.
// The parser validates attribute names against the standard Graphviz
// vocabulary, so DOT carrying made-up attribute keys is rejected. Subgraph
// blocks are flattened: their nodes and edges are kept, the grouping is not.
//
// # Concurrency
//
// Export reads the graph without locking; do not mutate the graph while an
// export is running. Imported graphs are independent instances.
package io
