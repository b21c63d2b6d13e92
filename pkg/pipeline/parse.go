package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/vizier/pkg/graph"
	dotio "github.com/matzehuels/vizier/pkg/io"
	"github.com/matzehuels/vizier/pkg/observability"
)

// Parse builds a graph from the configured DOT source.
// Inline source takes precedence over a source path.
// The caller owns the returned graph and must Close it.
func Parse(ctx context.Context, opts Options) (*graph.Graph, error) {
	start := time.Now()
	observability.Pipeline().OnParseStart(ctx, len(opts.Source))

	g, err := parseSource(opts)

	var name string
	var nodes int
	if err == nil {
		name, _ = g.Name()
		nodes = g.NodeCount()
	}
	observability.Pipeline().OnParseComplete(ctx, name, nodes, time.Since(start), err)

	return g, err
}

// parseSource dispatches between inline source and a file path.
func parseSource(opts Options) (*graph.Graph, error) {
	if opts.Source != "" {
		g, err := dotio.UnmarshalDOT([]byte(opts.Source))
		if err != nil {
			return nil, fmt.Errorf("parse source: %w", err)
		}
		return g, nil
	}

	g, err := dotio.ImportDOT(opts.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", opts.SourcePath, err)
	}
	return g, nil
}
