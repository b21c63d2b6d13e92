package io

import (
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"

	"github.com/matzehuels/vizier/pkg/errors"
	"github.com/matzehuels/vizier/pkg/graph"
)

// UnmarshalDOT parses DOT text into a new owned graph. The caller closes
// the result. Malformed source, or attribute names outside the standard
// Graphviz vocabulary, fail with GRAPH_CREATION_FAILED.
func UnmarshalDOT(data []byte) (*graph.Graph, error) {
	parsed, err := gographviz.Read(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeGraphCreationFailed, err, "parse DOT")
	}

	desc := graph.Desc{Directed: parsed.Directed, Strict: parsed.Strict}
	g, err := graph.New(unquote(parsed.Name), desc)
	if err != nil {
		return nil, err
	}
	done := false
	defer func() {
		if !done {
			g.Close()
		}
	}()

	for _, k := range sortedAttrKeys(parsed.Attrs) {
		if err := g.SetAttribute(k, unquote(parsed.Attrs[gographviz.Attr(k)])); err != nil {
			return nil, err
		}
	}

	for _, pn := range parsed.Nodes.Nodes {
		n, err := g.AddNode(unquote(pn.Name))
		if err != nil {
			return nil, err
		}
		for _, k := range sortedAttrKeys(pn.Attrs) {
			if err := n.SetAttribute(k, unquote(pn.Attrs[gographviz.Attr(k)])); err != nil {
				return nil, err
			}
		}
	}

	for _, pe := range parsed.Edges.Edges {
		// AddNode is idempotent, which also covers nodes a DOT file only
		// mentions inside an edge statement.
		src, err := g.AddNode(unquote(pe.Src))
		if err != nil {
			return nil, err
		}
		dst, err := g.AddNode(unquote(pe.Dst))
		if err != nil {
			return nil, err
		}
		e, err := g.AddEdge(src, dst, "")
		if err != nil {
			return nil, err
		}
		for _, k := range sortedAttrKeys(pe.Attrs) {
			if err := e.SetAttribute(k, unquote(pe.Attrs[gographviz.Attr(k)])); err != nil {
				return nil, err
			}
		}
	}

	done = true
	return g, nil
}

// ReadDOT parses DOT text from r into a new owned graph.
func ReadDOT(r io.Reader) (*graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read graph source")
	}
	return UnmarshalDOT(data)
}

// ImportDOT reads a DOT file at path and returns the decoded graph.
// This is a convenience wrapper around [ReadDOT] for file-based input.
func ImportDOT(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ReadDOT(f)
}

func sortedAttrKeys(attrs gographviz.Attrs) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, string(k))
	}
	slices.Sort(keys)
	return keys
}

// unquote strips DOT quoting from a parsed token. The parser keeps names
// and values in their source form, quotes included.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
		return s[1 : len(s)-1]
	}
	return s
}
