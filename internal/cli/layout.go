package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vizier/pkg/pipeline"
)

// layoutCommand creates the layout command for computing node positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		eng     string
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Compute node and edge positions for a graph",
		Long: `Compute node and edge positions for a graph.

The layout command reads DOT source from a file (or stdin when no file is
given) and runs a layout engine. The output is DOT text with position
attributes attached, which 'render' (or any Graphviz tool) can turn into
images without re-running the engine.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			if !cmd.Flags().Changed("engine") && c.Config.Render.Engine != "" {
				eng = c.Config.Render.Engine
			}
			if eng == "" {
				eng = pipeline.DefaultEngine
			}
			if err := pipeline.ValidateEngine(eng); err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), input, eng, output, refresh)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.dot, or stdout for stdin input)")
	cmd.Flags().StringVarP(&eng, "engine", "e", "", "layout engine: dot (default), neato, fdp, sfdp, twopi, circo, osage, patchwork")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache and recompute")

	return cmd
}

// runLayout parses the source, computes the layout, and writes positioned DOT.
func (c *CLI) runLayout(ctx context.Context, input, eng, output string, refresh bool) error {
	runner, err := c.newRunner(ctx)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{
		Engine:  eng,
		Refresh: refresh,
		Logger:  c.Logger,
	}
	if input == "" || input == "-" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		opts.Source = string(src)
	} else {
		opts.SourcePath = input
	}

	g, err := runner.Parse(ctx, opts)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	defer g.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", eng))
	spinner.Start()

	positioned, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, g, opts)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
		} else {
			spinner.StopWithError("Layout failed")
		}
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	// Stdin input without -o streams positioned DOT to stdout, so layout
	// pipes into render.
	if output == "" && (input == "" || input == "-") {
		_, err := os.Stdout.Write(positioned)
		return err
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.dot"
	}
	if err := os.WriteFile(outputPath, positioned, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(g.NodeCount(), g.EdgeCount(), cacheHit)
	printNewline()
	printNextStep("Render", "vizier render "+outputPath)

	return nil
}
