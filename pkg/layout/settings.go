package layout

import (
	"context"
	"strconv"

	"github.com/matzehuels/vizier/pkg/attrs"
	"github.com/matzehuels/vizier/pkg/engine"
	"github.com/matzehuels/vizier/pkg/graph"
)

// Settings bundles an engine choice with the graph-level knobs that shape a
// layout. Zero values mean "leave the graph as it is"; an empty Engine means
// dot. Use one of the presets as a starting point or fill the struct
// directly.
type Settings struct {
	Engine  engine.Engine
	RankDir string
	Splines string
	Overlap string
	RankSep float64
	NodeSep float64
}

// Hierarchical lays out directed graphs in layers, top to bottom.
func Hierarchical() Settings {
	return Settings{Engine: engine.Dot}
}

// LeftToRight is the hierarchical layout rotated a quarter turn.
func LeftToRight() Settings {
	return Settings{Engine: engine.Dot, RankDir: attrs.RankDirLR}
}

// Radial arranges nodes on concentric circles around a root.
func Radial() Settings {
	return Settings{Engine: engine.Twopi}
}

// ForceDirected spreads nodes by simulated forces, with overlap removal so
// labels stay readable.
func ForceDirected() Settings {
	return Settings{Engine: engine.FDP, Overlap: attrs.OverlapFalse}
}

// Circular places all nodes on a single circle.
func Circular() Settings {
	return Settings{Engine: engine.Circo}
}

// ApplySettings writes the non-zero knobs onto g as graph attributes, then
// applies the layout engine.
func (c *Context) ApplySettings(ctx context.Context, g *graph.Graph, s Settings) error {
	eng := s.Engine
	if eng == "" {
		eng = engine.Dot
	}
	for _, kv := range [][2]string{
		{attrs.RankDir, s.RankDir},
		{attrs.Splines, s.Splines},
		{attrs.Overlap, s.Overlap},
		{attrs.RankSep, formatSep(s.RankSep)},
		{attrs.NodeSep, formatSep(s.NodeSep)},
	} {
		if kv[1] == "" {
			continue
		}
		if err := g.SetAttribute(kv[0], kv[1]); err != nil {
			return err
		}
	}
	return c.Apply(ctx, g, eng)
}

func formatSep(v float64) string {
	if v <= 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
