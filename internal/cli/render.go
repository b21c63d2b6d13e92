package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vizier/pkg/pipeline"
	"github.com/matzehuels/vizier/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file (single format) or base path (multiple)
	engine  string   // layout engine name
	formats []string // output format names
	refresh bool     // bypass the cache and recompute
	pick    bool     // interactive engine/format selection
}

// renderCommand creates the render command: parse, layout, and render in one
// step.
//
// Engine and formats resolve in order: flag, config file, interactive picker
// (--pick), pipeline defaults.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph to image or text formats",
		Long: `Render a graph to image or text formats.

The render command reads DOT source from a file (or stdin when no file is
given), runs a layout engine to position nodes and edges, and writes the
result in one or more output formats.

Layout and render results are cached by content hash, so repeated runs over
the same source skip the engine entirely. Use --refresh to bypass the cache.

Use 'layout' instead to stop after the layout stage and inspect positions.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}

			if !cmd.Flags().Changed("engine") && c.Config.Render.Engine != "" {
				opts.engine = c.Config.Render.Engine
			}
			opts.formats = splitFormats(formatsStr)
			if len(opts.formats) == 0 {
				opts.formats = c.Config.Render.Formats
			}

			if opts.pick {
				if err := c.pickRenderOptions(&opts); err != nil {
					return err
				}
			}

			if opts.engine == "" {
				opts.engine = pipeline.DefaultEngine
			}
			if len(opts.formats) == 0 {
				opts.formats = []string{pipeline.DefaultFormat}
			}

			if err := pipeline.ValidateEngine(opts.engine); err != nil {
				return err
			}
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.engine, "engine", "e", "", "layout engine: dot (default), neato, fdp, sfdp, twopi, circo, osage, patchwork")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, ... (comma-separated)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache and recompute")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "select engine and formats interactively")

	return cmd
}

// pickRenderOptions runs the interactive engine and format selectors and
// stores the choices on opts.
func (c *CLI) pickRenderOptions(opts *renderOpts) error {
	if !interactive() {
		return fmt.Errorf("--pick requires an interactive terminal")
	}

	em := NewEngineListModel()
	p := tea.NewProgram(em)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	efm, ok := finalModel.(EngineListModel)
	if !ok || efm.Selected == nil {
		printDetail("No selection made")
		return fmt.Errorf("no engine selected")
	}
	opts.engine = efm.Selected.String()
	printInfo("Engine: %s", StyleHighlight.Render(opts.engine))

	fm := NewFormatListModel()
	fp := tea.NewProgram(fm)
	finalFormat, err := fp.Run()
	if err != nil {
		return err
	}
	ffm, ok := finalFormat.(FormatListModel)
	if !ok || len(ffm.Selected()) == 0 {
		printDetail("No selection made")
		return fmt.Errorf("no formats selected")
	}
	opts.formats = ffm.Selected()
	printInfo("Formats: %s", StyleHighlight.Render(strings.Join(opts.formats, ", ")))
	printNewline()

	return nil
}

// runRender executes the full pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	runner, err := c.newRunner(ctx)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	popts := pipeline.Options{
		Engine:  opts.engine,
		Formats: opts.formats,
		Refresh: opts.refresh,
		Logger:  c.Logger,
	}
	if input == "" || input == "-" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		popts.Source = string(src)
	} else {
		popts.SourcePath = input
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering with %s...", opts.engine))
	spinner.Start()

	result, err := runner.Execute(ctx, popts)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
		} else {
			spinner.StopWithError("Render failed")
		}
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()
	defer result.Graph.Close()

	paths, err := writeArtifacts(result.Artifacts, opts.formats, opts.output, input)
	if err != nil {
		return err
	}

	cached := result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit
	printSuccess("Rendered %d of %d formats", len(paths), len(opts.formats))
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, cached)
	for _, p := range paths {
		printFile(p)
	}

	return nil
}

// splitFormats parses the --format flag into a slice of format names.
func splitFormats(s string) []string {
	if s == "" {
		return nil
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

// basePath derives the base output path from the output flag and input path.
// If output is empty, it strips the extension from input; stdin input falls
// back to "graph". If output carries a known format extension, that extension
// is stripped so per-format extensions can be appended.
func basePath(output, input string) string {
	if output == "" {
		if input == "" || input == "-" {
			return "graph"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if _, err := render.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactPath builds the output path for one format. Formats that share a
// file extension (dot and canon, cmapx and imap) get the format name inserted
// to keep the files apart.
func artifactPath(base string, format render.Format, requested []render.Format) string {
	ext := format.Ext()
	for _, other := range requested {
		if other != format && other.Ext() == ext {
			return fmt.Sprintf("%s_%s.%s", base, format, ext)
		}
	}
	return fmt.Sprintf("%s.%s", base, ext)
}

// writeArtifacts writes rendered outputs to disk and returns the paths
// written, in the order formats were requested. A single format with an
// explicit output path writes exactly there.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, input string) ([]string, error) {
	if len(formats) == 1 && output != "" {
		data, ok := artifacts[formats[0]]
		if !ok {
			return nil, fmt.Errorf("no artifact for format %s", formats[0])
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return nil, err
		}
		return []string{output}, nil
	}

	parsed := make([]render.Format, 0, len(formats))
	for _, name := range formats {
		f, err := render.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, f)
	}

	base := basePath(output, input)
	var paths []string
	for _, f := range parsed {
		data, ok := artifacts[f.String()]
		if !ok {
			continue
		}
		path := artifactPath(base, f, parsed)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
