package engine

import (
	"bytes"
	"context"
	"testing"

	"github.com/matzehuels/vizier/pkg/errors"
)

const testSource = "digraph g {\n  a -> b;\n}\n"

func newTestRuntime(t *testing.T) *Graphviz {
	t.Helper()
	rt, err := NewGraphviz(context.Background())
	if err != nil {
		t.Fatalf("NewGraphviz: %v", err)
	}
	t.Cleanup(func() { rt.Close() })
	return rt
}

func TestGraphvizLayout(t *testing.T) {
	rt := newTestRuntime(t)

	out, err := rt.Layout(context.Background(), []byte(testSource), "dot")
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if !bytes.Contains(out, []byte("pos=")) {
		t.Errorf("layout output has no positions:\n%s", out)
	}
}

func TestGraphvizLayoutBadSource(t *testing.T) {
	rt := newTestRuntime(t)

	_, err := rt.Layout(context.Background(), []byte("this is not a graph"), "dot")
	if !errors.Is(err, errors.ErrCodeLayoutFailed) {
		t.Fatalf("Layout = %v, want LAYOUT_FAILED", err)
	}
}

func TestGraphvizRender(t *testing.T) {
	rt := newTestRuntime(t)
	ctx := context.Background()

	positioned, err := rt.Layout(ctx, []byte(testSource), "dot")
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	out, err := rt.Render(ctx, positioned, "svg")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Contains(out, []byte("<svg")) {
		t.Errorf("render output is not SVG:\n%.200s", out)
	}
}

func TestGraphvizClosed(t *testing.T) {
	rt, err := NewGraphviz(context.Background())
	if err != nil {
		t.Fatalf("NewGraphviz: %v", err)
	}
	if err := rt.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := rt.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if _, err := rt.Layout(context.Background(), []byte(testSource), "dot"); !errors.Is(err, errors.ErrCodeNullPointer) {
		t.Errorf("Layout after Close = %v, want NULL_POINTER", err)
	}
	if _, err := rt.Render(context.Background(), []byte(testSource), "svg"); !errors.Is(err, errors.ErrCodeNullPointer) {
		t.Errorf("Render after Close = %v, want NULL_POINTER", err)
	}
}
