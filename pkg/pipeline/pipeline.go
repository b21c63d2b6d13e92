// Package pipeline provides the core visualization pipeline for Vizier.
//
// This package implements the complete parse, layout, and render pipeline
// shared by the CLI and the HTTP server, so both entry points behave the
// same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Build a graph from DOT source text or a file
//  2. Layout: Run a Graphviz engine to compute node and edge positions
//  3. Render: Generate output in the requested formats (SVG, PNG, PDF, ...)
//
// Each stage can be run independently or as part of the complete pipeline.
// Layout and render results are cached by content hash, so repeated runs
// over the same source skip the engine entirely.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	rt, err := engine.NewGraphviz(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	runner := pipeline.NewRunner(rt, cache, nil, logger)
//	defer runner.Close()
//
//	opts := pipeline.Options{
//	    Source:  "digraph g { a -> b; }",
//	    Engine:  "dot",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Parse only
//	g, err := runner.Parse(ctx, opts)
//
//	// Layout with existing graph
//	positioned, err := runner.ComputeLayout(ctx, g, opts)
//
//	// Render with existing layout
//	artifacts, err := runner.Render(ctx, positioned, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vizier/pkg/engine"
	"github.com/matzehuels/vizier/pkg/graph"
	"github.com/matzehuels/vizier/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultEngine is the layout engine used when none is requested.
	DefaultEngine = "dot"

	// DefaultFormat is the output format used when none is requested.
	DefaultFormat = "svg"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the visualization pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Parse options
	Source     string `json:"source,omitempty"`      // Inline DOT source, wins over SourcePath
	SourcePath string `json:"source_path,omitempty"` // Path to a DOT file
	Refresh    bool   `json:"refresh,omitempty"`     // Bypass the cache and recompute

	// Layout options
	Engine string `json:"engine,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the parsed input graph. The caller owns it and must Close it.
	Graph *graph.Graph

	// SourceHash is the content hash of the canonical DOT source.
	SourceHash string

	// Positioned is the engine output: the graph with position attributes.
	Positioned []byte

	// Artifacts contains rendered outputs keyed by canonical format name.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the positioned graph came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateEngine checks that a layout engine name is valid.
func ValidateEngine(name string) error {
	_, err := engine.ParseEngine(name)
	return err
}

// ValidateFormat checks that a format name is valid.
func ValidateFormat(name string) error {
	_, err := render.ParseFormat(name)
	return err
}

// ValidateFormats checks that all format names are valid.
func ValidateFormats(names []string) error {
	for _, name := range names {
		if err := ValidateFormat(name); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	if o.Source == "" && o.SourcePath == "" {
		return fmt.Errorf("source or source_path is required")
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and canonicalizes the engine name.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	eng, err := engine.ParseEngine(o.Engine)
	if err != nil {
		return err
	}
	o.Engine = eng.String()
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and canonicalizes the format names.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	for i, name := range o.Formats {
		f, err := render.ParseFormat(name)
		if err != nil {
			return err
		}
		o.Formats[i] = f.String()
	}
	return nil
}
