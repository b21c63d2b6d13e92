// Package pkg provides the core libraries for Vizier graph visualization.
//
// # Overview
//
// Vizier builds, lays out, and renders Graphviz graphs from Go without
// hand-managing native object lifetimes. The pkg directory is organized into
// four main areas:
//
//  1. [graph] - Object model (graphs, nodes, edges, attributes)
//  2. [engine], [layout], [render] - Layout engines and output formats
//  3. [io] - DOT import and export
//  4. [pipeline] - Orchestration (parse → layout → render) with caching
//
// # Architecture
//
// The typical data flow through Vizier:
//
//	DOT source / programmatic construction
//	         ↓
//	    [graph] package (object model + attributes)
//	         ↓
//	    [layout] package (dot, neato, fdp, ... via [engine])
//	         ↓
//	    [render] package (typed formats + encoding)
//	         ↓
//	    SVG/PNG/PDF/DOT output
//
// # Quick Start
//
// Build a small graph, lay it out, and render it as SVG:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/vizier/pkg/engine"
//	    "github.com/matzehuels/vizier/pkg/graph"
//	    "github.com/matzehuels/vizier/pkg/layout"
//	    "github.com/matzehuels/vizier/pkg/render"
//	)
//
//	// 1. Build the graph
//	g, _ := graph.New("deps", graph.Directed)
//	defer g.Close()
//	app, _ := g.AddNode("app")
//	lib, _ := g.AddNode("lib")
//	g.AddEdge(app, lib, "")
//
//	// 2. Lay it out
//	ctx := context.Background()
//	lc, _ := layout.New(ctx)
//	defer lc.Close()
//	lc.Apply(ctx, g, engine.Dot)
//
//	// 3. Render to a file
//	render.ToFile(ctx, lc, g, render.SVG, "deps.svg")
//
// # Main Packages
//
// ## Object Model
//
// [graph] - Graphs, nodes, and edges with shared attribute handling.
// Handle-based: entities are small comparable values tied to an owning
// Graph, and stale handles are detected rather than dereferenced.
//
// [attrs] - Names and well-known values for common Graphviz attributes
// (shape, color, rankdir, splines, ...).
//
// [io] - DOT codec: deterministic export of the object model and import of
// existing DOT text.
//
// ## Layout and Rendering
//
// [engine] - Layout engine identifiers (dot, neato, fdp, sfdp, circo,
// twopi, osage, patchwork) and the Runtime boundary with two
// implementations: the in-process WASM engine and an external dot binary.
//
// [layout] - Layout contexts: apply an engine to a graph and keep the
// positioned result until it is freed or the context closes. Includes
// Settings presets (Hierarchical, Radial, ForceDirected, ...).
//
// [render] - Typed output formats (SVG, PNG, PDF, JSON, ...) with MIME
// types, file extensions, and binary/text classification; renders to bytes,
// strings, writers, and files.
//
// ## Infrastructure
//
// [pipeline] - Complete visualization pipeline (parse → layout → render)
// used by the CLI and the HTTP server. Ensures consistent behavior across
// all entry points.
//
// [cache] - Content-addressed caching of positioned layouts and rendered
// artifacts. FileCache for the CLI (filesystem), RedisCache and MongoCache
// for server deployments, NullCache for tests and --refresh.
//
// [observability] - Hook interfaces for pipeline, cache, and HTTP events
// with no-op defaults.
//
// [errors] - Coded errors (LAYOUT_FAILED, NULL_POINTER, ...) shared by
// every package; codes survive wrapping.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Common Workflows
//
// Import DOT text instead of building programmatically:
//
//	g, _ := io.ImportDOT("digraph { a -> b }")
//	defer g.Close()
//
// Use a layout preset:
//
//	s := layout.Radial()
//	s.RankSep = 2.0
//	lc.ApplySettings(ctx, g, s)
//
// Run the full pipeline with caching:
//
//	rt, _ := engine.NewGraphviz(ctx)
//	runner := pipeline.NewRunner(rt, fileCache, nil, logger)
//	defer runner.Close()
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    Source:  src,
//	    Engine:  "dot",
//	    Formats: []string{"svg", "png"},
//	})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/graph/...       # Specific package
//	go test -run Example          # Examples only
//	go test -short ./pkg/...      # Skip tests that exercise the WASM engine
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/vizier/pkg/graph
// [attrs]: https://pkg.go.dev/github.com/matzehuels/vizier/pkg/attrs
// [io]: https://pkg.go.dev/github.com/matzehuels/vizier/pkg/io
// [engine]: https://pkg.go.dev/github.com/matzehuels/vizier/pkg/engine
// [layout]: https://pkg.go.dev/github.com/matzehuels/vizier/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/vizier/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/vizier/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/vizier/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/vizier/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/vizier/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/vizier/pkg/buildinfo
package pkg
