package io

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/vizier/pkg/errors"
	"github.com/matzehuels/vizier/pkg/graph"
)

func buildTriangle(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New("build", graph.Directed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { g.Close() })

	if err := g.SetAttribute("rankdir", "LR"); err != nil {
		t.Fatalf("SetAttribute: %v", err)
	}
	app, err := g.AddNode("app")
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := app.SetAttribute("shape", "box"); err != nil {
		t.Fatalf("SetAttribute: %v", err)
	}
	lib, err := g.AddNode("lib")
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	e, err := g.AddEdge(app, lib, "")
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if err := e.SetAttribute("weight", "2"); err != nil {
		t.Fatalf("SetAttribute: %v", err)
	}
	return g
}

func TestMarshalDOT(t *testing.T) {
	g := buildTriangle(t)

	data, err := MarshalDOT(g)
	if err != nil {
		t.Fatalf("MarshalDOT: %v", err)
	}

	want := `digraph build {
  rankdir="LR"
  app [shape="box"];
  lib;
  app -> lib [weight="2"];
}
`
	if got := string(data); got != want {
		t.Errorf("MarshalDOT =\n%s\nwant\n%s", got, want)
	}
}

func TestMarshalDOTStrictUndirected(t *testing.T) {
	g, err := graph.New("pair", graph.StrictUndirected)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer g.Close()

	a, _ := g.AddNode("a")
	b, _ := g.AddNode("b")
	if _, err := g.AddEdge(a, b, ""); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	data, err := MarshalDOT(g)
	if err != nil {
		t.Fatalf("MarshalDOT: %v", err)
	}
	want := `strict graph pair {
  a;
  b;
  a -- b;
}
`
	if got := string(data); got != want {
		t.Errorf("MarshalDOT =\n%s\nwant\n%s", got, want)
	}
}

func TestMarshalDOTQuoting(t *testing.T) {
	tests := []struct {
		name string
		node string
		want string
	}{
		{"bare identifier", "plain_id", "plain_id;"},
		{"space", "my node", `"my node";`},
		{"keyword", "graph", `"graph";`},
		{"leading digit", "2fast", `"2fast";`},
		{"embedded quote", `say "hi"`, `"say \"hi\"";`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := graph.New("", graph.Directed)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			defer g.Close()
			if _, err := g.AddNode(tt.node); err != nil {
				t.Fatalf("AddNode: %v", err)
			}

			data, err := MarshalDOT(g)
			if err != nil {
				t.Fatalf("MarshalDOT: %v", err)
			}
			if !strings.Contains(string(data), "  "+tt.want+"\n") {
				t.Errorf("MarshalDOT =\n%s\nwant line %q", data, tt.want)
			}
		})
	}
}

func TestMarshalDOTClosedGraph(t *testing.T) {
	g, err := graph.New("g", graph.Directed)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Close()

	if _, err := MarshalDOT(g); !errors.Is(err, errors.ErrCodeNullPointer) {
		t.Errorf("MarshalDOT = %v, want NULL_POINTER", err)
	}
}

func TestUnmarshalDOT(t *testing.T) {
	input := `digraph deps {
		rankdir="TB"
		"app" [shape="box"]
		"app" -> "lib" [weight="2"]
	}`

	g, err := UnmarshalDOT([]byte(input))
	if err != nil {
		t.Fatalf("UnmarshalDOT: %v", err)
	}
	defer g.Close()

	if !g.Directed() {
		t.Error("Directed() = false, want true")
	}
	name, err := g.Name()
	if err != nil {
		t.Fatalf("Name: %v", err)
	}
	if name != "deps" {
		t.Errorf("Name() = %q, want deps", name)
	}

	// lib is only mentioned in the edge statement but must exist.
	if got := g.NodeCount(); got != 2 {
		t.Errorf("NodeCount() = %d, want 2", got)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d, want 1", got)
	}

	app, ok := g.Node("app")
	if !ok {
		t.Fatal("node app missing")
	}
	shape, ok, err := app.GetAttribute("shape")
	if err != nil {
		t.Fatalf("GetAttribute: %v", err)
	}
	if !ok || shape != "box" {
		t.Errorf("shape = %q, %v, want box, true", shape, ok)
	}
	rankdir, _, err := g.GetAttribute("rankdir")
	if err != nil {
		t.Fatalf("GetAttribute: %v", err)
	}
	if rankdir != "TB" {
		t.Errorf("rankdir = %q, want TB", rankdir)
	}
}

func TestUnmarshalDOTInvalid(t *testing.T) {
	_, err := UnmarshalDOT([]byte("this is not a graph"))
	if !errors.Is(err, errors.ErrCodeGraphCreationFailed) {
		t.Fatalf("UnmarshalDOT = %v, want GRAPH_CREATION_FAILED", err)
	}
}

func TestRoundTrip(t *testing.T) {
	g := buildTriangle(t)

	data, err := MarshalDOT(g)
	if err != nil {
		t.Fatalf("MarshalDOT: %v", err)
	}
	back, err := UnmarshalDOT(data)
	if err != nil {
		t.Fatalf("UnmarshalDOT: %v", err)
	}
	defer back.Close()

	if back.Directed() != g.Directed() {
		t.Error("directedness lost in round trip")
	}
	var names []string
	for n := range back.Nodes() {
		name, err := n.Name()
		if err != nil {
			t.Fatalf("Name: %v", err)
		}
		names = append(names, name)
	}
	slices.Sort(names)
	if want := []string{"app", "lib"}; !slices.Equal(names, want) {
		t.Errorf("nodes = %v, want %v", names, want)
	}
	if got := back.EdgeCount(); got != g.EdgeCount() {
		t.Errorf("EdgeCount() = %d, want %d", got, g.EdgeCount())
	}
}

func TestExportImportDOTFile(t *testing.T) {
	g := buildTriangle(t)

	path := filepath.Join(t.TempDir(), "graph.dot")
	if err := ExportDOT(g, path); err != nil {
		t.Fatalf("ExportDOT: %v", err)
	}

	back, err := ImportDOT(path)
	if err != nil {
		t.Fatalf("ImportDOT: %v", err)
	}
	defer back.Close()

	if got := back.NodeCount(); got != 2 {
		t.Errorf("NodeCount() = %d, want 2", got)
	}
}

func TestImportDOTNotFound(t *testing.T) {
	_, err := ImportDOT(filepath.Join(t.TempDir(), "missing.dot"))
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Fatalf("ImportDOT = %v, want IO_ERROR", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("disk full")
}

func TestWriteDOTWriterError(t *testing.T) {
	g := buildTriangle(t)

	err := WriteDOT(g, failingWriter{})
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Fatalf("WriteDOT = %v, want IO_ERROR", err)
	}
}

func TestReadDOTStream(t *testing.T) {
	g, err := ReadDOT(strings.NewReader("graph { a -- b }"))
	if err != nil {
		t.Fatalf("ReadDOT: %v", err)
	}
	defer g.Close()

	if g.Directed() {
		t.Error("Directed() = true, want false")
	}
	if got := g.NodeCount(); got != 2 {
		t.Errorf("NodeCount() = %d, want 2", got)
	}
}
