package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/vizier/pkg/render"
)

func TestSplitFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces trimmed", " svg , pdf ", []string{"svg", "pdf"}},
		{"empty elements dropped", "svg,,png", []string{"svg", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("splitFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("splitFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derive from input", "", "graphs/flow.dot", "graphs/flow"},
		{"stdin falls back", "", "", "graph"},
		{"stdin dash falls back", "", "-", "graph"},
		{"output without extension", "out/diagram", "flow.dot", "out/diagram"},
		{"format extension stripped", "diagram.svg", "flow.dot", "diagram"},
		{"unknown extension kept", "diagram.final", "flow.dot", "diagram.final"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := basePath(tt.output, tt.input)
			if got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestArtifactPath(t *testing.T) {
	tests := []struct {
		name      string
		format    render.Format
		requested []render.Format
		want      string
	}{
		{"plain extension", render.SVG, []render.Format{render.SVG, render.PNG}, "base.svg"},
		{"jpeg maps to jpg", render.JPEG, []render.Format{render.JPEG}, "base.jpg"},
		{"dot/canon collision", render.Dot, []render.Format{render.Dot, render.Canon}, "base_dot.dot"},
		{"collision tags both sides", render.Canon, []render.Format{render.Dot, render.Canon}, "base_canon.dot"},
		{"cmapx/imap collision", render.Cmapx, []render.Format{render.Cmapx, render.Imap}, "base_cmapx.map"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := artifactPath("base", tt.format, tt.requested)
			if got != tt.want {
				t.Errorf("artifactPath(base, %s) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestWriteArtifactsSingleExplicitOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "diagram.svg")

	artifacts := map[string][]byte{"svg": []byte("<svg/>")}
	paths, err := writeArtifacts(artifacts, []string{"svg"}, out, "flow.dot")
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}
	if len(paths) != 1 || paths[0] != out {
		t.Fatalf("writeArtifacts() paths = %v, want [%s]", paths, out)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("output = %q, want %q", data, "<svg/>")
	}
}

func TestWriteArtifactsMultipleFormats(t *testing.T) {
	base := filepath.Join(t.TempDir(), "flow")

	artifacts := map[string][]byte{
		"svg":   []byte("<svg/>"),
		"dot":   []byte("digraph g {\n}\n"),
		"canon": []byte("digraph g {\n}\n"),
	}
	paths, err := writeArtifacts(artifacts, []string{"svg", "dot", "canon"}, base, "")
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	want := []string{base + ".svg", base + "_dot.dot", base + "_canon.dot"}
	if len(paths) != len(want) {
		t.Fatalf("writeArtifacts() paths = %v, want %v", paths, want)
	}
	for i, p := range paths {
		if p != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, p, want[i])
		}
		if _, err := os.Stat(p); err != nil {
			t.Errorf("artifact %s not written: %v", p, err)
		}
	}
}

func TestWriteArtifactsUnknownFormat(t *testing.T) {
	if _, err := writeArtifacts(map[string][]byte{}, []string{"bogus", "svg"}, "", "in.dot"); err == nil {
		t.Fatal("writeArtifacts() with unknown format should fail")
	}
}
