package io

import (
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/matzehuels/vizier/pkg/errors"
	"github.com/matzehuels/vizier/pkg/graph"
)

// dotKeywords cannot be used bare as identifiers.
var dotKeywords = map[string]bool{
	"graph":    true,
	"digraph":  true,
	"subgraph": true,
	"node":     true,
	"edge":     true,
	"strict":   true,
}

// MarshalDOT renders g as canonical DOT text. Output is deterministic:
// creation order for nodes and edges, key order for attributes.
func MarshalDOT(g *graph.Graph) ([]byte, error) {
	name, err := g.Name()
	if err != nil {
		return nil, err
	}

	var buf strings.Builder
	if g.Strict() {
		buf.WriteString("strict ")
	}
	if g.Directed() {
		buf.WriteString("digraph")
	} else {
		buf.WriteString("graph")
	}
	if name != "" {
		buf.WriteString(" " + quoteID(name))
	}
	buf.WriteString(" {\n")

	for k, v := range g.Attributes() {
		fmt.Fprintf(&buf, "  %s=%s\n", quoteID(k), quoteValue(v))
	}

	for n := range g.Nodes() {
		nodeName, err := n.Name()
		if err != nil {
			return nil, err
		}
		if attrs := formatAttrs(n.Attributes()); attrs != "" {
			fmt.Fprintf(&buf, "  %s [%s];\n", quoteID(nodeName), attrs)
		} else {
			fmt.Fprintf(&buf, "  %s;\n", quoteID(nodeName))
		}
	}

	arrow := " -- "
	if g.Directed() {
		arrow = " -> "
	}
	for e := range g.Edges() {
		src, dst, err := endpointNames(e)
		if err != nil {
			return nil, err
		}
		if attrs := formatAttrs(e.Attributes()); attrs != "" {
			fmt.Fprintf(&buf, "  %s%s%s [%s];\n", quoteID(src), arrow, quoteID(dst), attrs)
		} else {
			fmt.Fprintf(&buf, "  %s%s%s;\n", quoteID(src), arrow, quoteID(dst))
		}
	}

	buf.WriteString("}\n")
	return []byte(buf.String()), nil
}

// WriteDOT serializes g as canonical DOT and writes it to w.
func WriteDOT(g *graph.Graph, w io.Writer) error {
	data, err := MarshalDOT(g)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write graph")
	}
	return nil
}

// ExportDOT writes g to a DOT file at path.
// This is a convenience wrapper around [WriteDOT] for file-based output.
func ExportDOT(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer f.Close()
	return WriteDOT(g, f)
}

func endpointNames(e graph.Edge) (string, string, error) {
	src, err := e.Source()
	if err != nil {
		return "", "", err
	}
	dst, err := e.Dest()
	if err != nil {
		return "", "", err
	}
	srcName, err := src.Name()
	if err != nil {
		return "", "", err
	}
	dstName, err := dst.Name()
	if err != nil {
		return "", "", err
	}
	return srcName, dstName, nil
}

// formatAttrs renders an attribute sequence as a DOT attribute list.
func formatAttrs(attrs iter.Seq2[string, string]) string {
	var parts []string
	for k, v := range attrs {
		parts = append(parts, quoteID(k)+"="+quoteValue(v))
	}
	return strings.Join(parts, ", ")
}

// quoteID returns a DOT-safe identifier. Plain identifiers stay bare,
// keywords and anything else get quoted.
func quoteID(id string) string {
	if id == "" || dotKeywords[strings.ToLower(id)] {
		return fmt.Sprintf("%q", id)
	}
	for i, c := range id {
		if !isIDChar(c) || (i == 0 && c >= '0' && c <= '9') {
			return fmt.Sprintf("%q", id)
		}
	}
	return id
}

// quoteValue always quotes: values are freeform text, not identifiers.
func quoteValue(v string) string {
	return fmt.Sprintf("%q", v)
}

func isIDChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}
