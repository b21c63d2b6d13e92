package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vizier/pkg/cache"
	"github.com/matzehuels/vizier/pkg/engine"
	"github.com/matzehuels/vizier/pkg/graph"
	dotio "github.com/matzehuels/vizier/pkg/io"
	"github.com/matzehuels/vizier/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both the CLI and the HTTP server execute renders through a Runner.
//
// The Runner is stateless except for the runtime, cache, and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Runtime engine.Runtime
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger
}

// NewRunner creates a runner over the given engine runtime.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
// The runner takes ownership of the runtime and cache; Close releases both.
func NewRunner(rt engine.Runtime, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Runtime: rt,
		Cache:   c,
		Keyer:   keyer,
		Logger:  logger,
	}
}

// Execute runs the complete parse → layout → render pipeline with caching.
// The caller owns Result.Graph and must Close it.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	g, err := Parse(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Graph = g
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	// Content hash of the canonical source for cache keys and API responses
	if src, err := dotio.MarshalDOT(g); err == nil {
		result.SourceHash = cache.Hash(src)
	}

	r.Logger.Info("parsed source",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.ParseTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	positioned, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, g, opts)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Positioned = positioned
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"engine", opts.Engine,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, positioned, opts)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Parse validates options and builds the input graph.
// Parsing is local and fast, so it is never cached.
func (r *Runner) Parse(ctx context.Context, opts Options) (*graph.Graph, error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	return Parse(ctx, opts)
}

// ComputeLayoutWithCacheInfo lays out a graph with caching and returns cache hit info.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, g *graph.Graph, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from the canonical source
	src, err := dotio.MarshalDOT(g)
	if err != nil {
		return nil, false, fmt.Errorf("serialize graph for cache key: %w", err)
	}
	cacheKey := r.Keyer.LayoutKey(cache.Hash(src), cache.LayoutKeyOpts{Engine: opts.Engine})

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "layout")
			return data, true, nil // Cache hit
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	// Run the engine
	positioned, err := ComputeLayout(ctx, r.Runtime, g, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if r.Cache.Set(ctx, cacheKey, positioned, cache.TTLLayout) == nil {
		observability.Cache().OnCacheSet(ctx, "layout", len(positioned))
	}

	return positioned, false, nil // Cache miss
}

// ComputeLayout is a convenience wrapper that calls ComputeLayoutWithCacheInfo
// and discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, g *graph.Graph, opts Options) ([]byte, error) {
	positioned, _, err := r.ComputeLayoutWithCacheInfo(ctx, g, opts)
	return positioned, err
}

// RenderWithCacheInfo renders artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, positioned []byte, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	layoutHash := cache.Hash(positioned)

	// Try to get all formats from cache
	allCached := !opts.Refresh
	artifacts := make(map[string][]byte)

	if allCached {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.RenderKey(layoutHash, cache.RenderKeyOpts{Format: format})
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "render")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "render")

	// Render all formats
	rendered, err := RenderArtifacts(ctx, r.Runtime, positioned, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.RenderKey(layoutHash, cache.RenderKeyOpts{Format: format})
		if r.Cache.Set(ctx, cacheKey, data, cache.TTLRender) == nil {
			observability.Cache().OnCacheSet(ctx, "render", len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Render(ctx context.Context, positioned []byte, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, positioned, opts)
	return artifacts, err
}

// Close releases resources held by the runner (the cache and the runtime).
func (r *Runner) Close() error {
	var firstErr error
	if r.Cache != nil {
		firstErr = r.Cache.Close()
	}
	if r.Runtime != nil {
		if err := r.Runtime.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
