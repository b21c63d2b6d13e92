package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vizier/pkg/cache"
)

// stubRuntime fakes the engine boundary so runner behavior can be tested
// without a real Graphviz instance.
type stubRuntime struct {
	layoutCalls int
	renderCalls int
	failLayout  bool
}

func (s *stubRuntime) Layout(_ context.Context, src []byte, eng string) ([]byte, error) {
	s.layoutCalls++
	if s.failLayout {
		return nil, fmt.Errorf("engine exploded")
	}
	return append([]byte("positioned."+eng+":"), src...), nil
}

func (s *stubRuntime) Render(_ context.Context, positioned []byte, format string) ([]byte, error) {
	s.renderCalls++
	return append([]byte(format+":"), positioned...), nil
}

func (s *stubRuntime) Close() error { return nil }

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

const testSource = "digraph g {\n  a -> b;\n}\n"

func TestRunnerExecute(t *testing.T) {
	rt := &stubRuntime{}
	r := NewRunner(rt, nil, nil, quietLogger())
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{
		Source:  testSource,
		Formats: []string{"svg", "png"},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	defer result.Graph.Close()

	if result.Stats.NodeCount != 2 || result.Stats.EdgeCount != 1 {
		t.Errorf("stats = %d nodes, %d edges, want 2 nodes, 1 edge",
			result.Stats.NodeCount, result.Stats.EdgeCount)
	}
	if len(result.SourceHash) != 64 {
		t.Errorf("SourceHash length = %d, want 64", len(result.SourceHash))
	}
	if !bytes.HasPrefix(result.Positioned, []byte("positioned.dot:")) {
		t.Errorf("Positioned = %q, want dot engine output", result.Positioned)
	}
	for _, format := range []string{"svg", "png"} {
		data, ok := result.Artifacts[format]
		if !ok {
			t.Fatalf("missing %s artifact", format)
		}
		if !bytes.HasPrefix(data, []byte(format+":")) {
			t.Errorf("%s artifact = %q, want %s render output", format, data, format)
		}
	}
	if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Error("first run should not hit the cache")
	}
}

func TestRunnerExecuteCaching(t *testing.T) {
	ctx := context.Background()
	rt := &stubRuntime{}
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(rt, fc, nil, quietLogger())
	defer r.Close()

	opts := Options{Source: testSource, Formats: []string{"svg"}}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	first.Graph.Close()
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	defer second.Graph.Close()

	if !second.CacheInfo.LayoutHit {
		t.Error("second run should hit the layout cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the render cache")
	}
	if rt.layoutCalls != 1 {
		t.Errorf("layout engine ran %d times, want 1", rt.layoutCalls)
	}
	if rt.renderCalls != 1 {
		t.Errorf("render engine ran %d times, want 1", rt.renderCalls)
	}
	if !bytes.Equal(first.Artifacts["svg"], second.Artifacts["svg"]) {
		t.Error("cached artifact differs from computed artifact")
	}
}

func TestRunnerExecuteRefresh(t *testing.T) {
	ctx := context.Background()
	rt := &stubRuntime{}
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(rt, fc, nil, quietLogger())
	defer r.Close()

	warm, err := r.Execute(ctx, Options{Source: testSource})
	if err != nil {
		t.Fatalf("warm Execute: %v", err)
	}
	warm.Graph.Close()

	result, err := r.Execute(ctx, Options{Source: testSource, Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	defer result.Graph.Close()

	if result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Error("refresh run should bypass the cache")
	}
	if rt.layoutCalls != 2 {
		t.Errorf("layout engine ran %d times, want 2", rt.layoutCalls)
	}
}

func TestRunnerExecuteInvalidOptions(t *testing.T) {
	r := NewRunner(&stubRuntime{}, nil, nil, quietLogger())
	defer r.Close()
	ctx := context.Background()

	if _, err := r.Execute(ctx, Options{}); err == nil {
		t.Error("missing source should fail")
	}
	if _, err := r.Execute(ctx, Options{Source: testSource, Engine: "magic"}); err == nil {
		t.Error("invalid engine should fail")
	}
	if _, err := r.Execute(ctx, Options{Source: testSource, Formats: []string{"webp"}}); err == nil {
		t.Error("invalid format should fail")
	}
}

func TestRunnerExecuteLayoutFailure(t *testing.T) {
	r := NewRunner(&stubRuntime{failLayout: true}, nil, nil, quietLogger())
	defer r.Close()

	_, err := r.Execute(context.Background(), Options{Source: testSource})
	if err == nil {
		t.Fatal("Execute should surface layout failure")
	}
	if !strings.Contains(err.Error(), "layout") {
		t.Errorf("error should name the failing stage: %v", err)
	}
}

func TestRunnerStages(t *testing.T) {
	ctx := context.Background()
	rt := &stubRuntime{}
	r := NewRunner(rt, nil, nil, quietLogger())
	defer r.Close()

	opts := Options{Source: testSource, Engine: "neato", Formats: []string{"plain"}}

	g, err := r.Parse(ctx, opts)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer g.Close()

	positioned, err := r.ComputeLayout(ctx, g, opts)
	if err != nil {
		t.Fatalf("ComputeLayout: %v", err)
	}
	if !bytes.HasPrefix(positioned, []byte("positioned.neato:")) {
		t.Errorf("positioned = %q, want neato output", positioned)
	}

	artifacts, err := r.Render(ctx, positioned, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, ok := artifacts["plain"]; !ok {
		t.Errorf("artifacts = %v, want plain output", artifacts)
	}
}

func TestParseFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.dot")
	if err := os.WriteFile(path, []byte(testSource), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	g, err := Parse(context.Background(), Options{SourcePath: path})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	defer g.Close()

	if g.NodeCount() != 2 {
		t.Errorf("NodeCount = %d, want 2", g.NodeCount())
	}
}
