package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/vizier/pkg/engine"
	"github.com/matzehuels/vizier/pkg/observability"
	"github.com/matzehuels/vizier/pkg/render"
)

// RenderArtifacts renders positioned DOT output into each requested format.
// The returned map is keyed by canonical format name.
func RenderArtifacts(ctx context.Context, rt engine.Runtime, positioned []byte, opts Options) (map[string][]byte, error) {
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)

	artifacts := make(map[string][]byte)
	var err error
	for _, name := range opts.Formats {
		var f render.Format
		if f, err = render.ParseFormat(name); err != nil {
			break
		}

		var data []byte
		if data, err = rt.Render(ctx, positioned, f.String()); err != nil {
			err = fmt.Errorf("render %s: %w", f, err)
			break
		}
		artifacts[f.String()] = data
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	return artifacts, nil
}
