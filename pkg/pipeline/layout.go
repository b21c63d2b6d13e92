package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/vizier/pkg/engine"
	"github.com/matzehuels/vizier/pkg/graph"
	dotio "github.com/matzehuels/vizier/pkg/io"
	"github.com/matzehuels/vizier/pkg/observability"
)

// ComputeLayout runs the configured engine over the graph and returns the
// positioned DOT output.
//
// The positioned output is plain DOT text with position attributes attached,
// so it can be cached, inspected, or fed back into Render at any later time.
func ComputeLayout(ctx context.Context, rt engine.Runtime, g *graph.Graph, opts Options) ([]byte, error) {
	eng, err := engine.ParseEngine(opts.Engine)
	if err != nil {
		return nil, err
	}

	src, err := dotio.MarshalDOT(g)
	if err != nil {
		return nil, fmt.Errorf("serialize graph: %w", err)
	}

	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, eng.String(), g.NodeCount())

	positioned, err := rt.Layout(ctx, src, eng.String())

	observability.Pipeline().OnLayoutComplete(ctx, eng.String(), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("layout with %s: %w", eng, err)
	}

	return positioned, nil
}
