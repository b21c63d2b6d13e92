package graph

import (
	"testing"

	"github.com/matzehuels/vizier/pkg/errors"
)

func TestNodeAttributeRoundtrip(t *testing.T) {
	g := mustGraph(t, "g", Directed)
	n := mustNode(t, g, "a")

	if err := n.SetAttribute("color", "red"); err != nil {
		t.Fatalf("SetAttribute: %v", err)
	}
	got, ok, err := n.GetAttribute("color")
	if err != nil {
		t.Fatalf("GetAttribute: %v", err)
	}
	if !ok || got != "red" {
		t.Errorf("GetAttribute = %q, %v, want red, true", got, ok)
	}
	if !n.HasAttribute("color") {
		t.Error("HasAttribute(color) = false")
	}
}

func TestAttributeAbsent(t *testing.T) {
	g := mustGraph(t, "g", Directed)
	n := mustNode(t, g, "a")

	got, ok, err := n.GetAttribute("never")
	if err != nil {
		t.Fatalf("GetAttribute: %v", err)
	}
	if ok || got != "" {
		t.Errorf("GetAttribute = %q, %v, want absent", got, ok)
	}
	if n.HasAttribute("never") {
		t.Error("HasAttribute(never) = true")
	}
}

func TestAttributeDomainDefault(t *testing.T) {
	g := mustGraph(t, "g", Directed)
	a := mustNode(t, g, "a")
	b := mustNode(t, g, "b")

	if err := a.SetAttribute("shape", "box"); err != nil {
		t.Fatalf("SetAttribute: %v", err)
	}

	// Setting on one node declares the key for the whole domain: the other
	// node now resolves it to the empty default.
	got, ok, err := b.GetAttribute("shape")
	if err != nil {
		t.Fatalf("GetAttribute: %v", err)
	}
	if !ok || got != "" {
		t.Errorf("GetAttribute on sibling = %q, %v, want empty, true", got, ok)
	}

	// The declaration is per domain, not per graph.
	if _, ok, _ := g.GetAttribute("shape"); ok {
		t.Error("node declaration leaked onto the graph domain")
	}
	e := mustEdge(t, g, a, b, "")
	if _, ok, _ := e.GetAttribute("shape"); ok {
		t.Error("node declaration leaked onto the edge domain")
	}
}

func TestRemoveAttributeReadsEmpty(t *testing.T) {
	g := mustGraph(t, "g", Directed)
	n := mustNode(t, g, "a")

	if err := n.SetAttribute("label", "start"); err != nil {
		t.Fatalf("SetAttribute: %v", err)
	}
	if err := n.RemoveAttribute("label"); err != nil {
		t.Fatalf("RemoveAttribute: %v", err)
	}

	// Declared keys cannot be undeclared: removal reads back empty, not
	// absent.
	got, ok, err := n.GetAttribute("label")
	if err != nil {
		t.Fatalf("GetAttribute: %v", err)
	}
	if !ok || got != "" {
		t.Errorf("GetAttribute after remove = %q, %v, want empty, true", got, ok)
	}
}

func TestRemoveAttributeUndeclared(t *testing.T) {
	g := mustGraph(t, "g", Directed)
	n := mustNode(t, g, "a")

	if err := n.RemoveAttribute("never"); err != nil {
		t.Fatalf("RemoveAttribute: %v", err)
	}
	if n.HasAttribute("never") {
		t.Error("removing an undeclared key declared it")
	}
}

func TestSetAttributeIfAbsent(t *testing.T) {
	g := mustGraph(t, "g", Directed)
	n := mustNode(t, g, "a")

	if err := n.SetAttributeIfAbsent("color", "red"); err != nil {
		t.Fatalf("SetAttributeIfAbsent: %v", err)
	}
	if err := n.SetAttributeIfAbsent("color", "blue"); err != nil {
		t.Fatalf("SetAttributeIfAbsent: %v", err)
	}
	got, _, err := n.GetAttribute("color")
	if err != nil {
		t.Fatalf("GetAttribute: %v", err)
	}
	if got != "red" {
		t.Errorf("GetAttribute = %q, want red (first value kept)", got)
	}

	// Present-but-empty still counts as present.
	if err := n.RemoveAttribute("color"); err != nil {
		t.Fatalf("RemoveAttribute: %v", err)
	}
	if err := n.SetAttributeIfAbsent("color", "green"); err != nil {
		t.Fatalf("SetAttributeIfAbsent: %v", err)
	}
	got, _, err = n.GetAttribute("color")
	if err != nil {
		t.Fatalf("GetAttribute: %v", err)
	}
	if got != "" {
		t.Errorf("GetAttribute = %q, want empty preserved", got)
	}
}

func TestGraphAttributes(t *testing.T) {
	g := mustGraph(t, "g", Directed)

	if err := g.SetAttribute("rankdir", "LR"); err != nil {
		t.Fatalf("SetAttribute: %v", err)
	}
	got, ok, err := g.GetAttribute("rankdir")
	if err != nil {
		t.Fatalf("GetAttribute: %v", err)
	}
	if !ok || got != "LR" {
		t.Errorf("GetAttribute = %q, %v, want LR, true", got, ok)
	}
}

func TestEdgeAttributes(t *testing.T) {
	g := mustGraph(t, "g", Directed)
	a := mustNode(t, g, "a")
	b := mustNode(t, g, "b")
	e := mustEdge(t, g, a, b, "")

	if err := e.SetAttribute("weight", "2"); err != nil {
		t.Fatalf("SetAttribute: %v", err)
	}
	got, ok, err := e.GetAttribute("weight")
	if err != nil {
		t.Fatalf("GetAttribute: %v", err)
	}
	if !ok || got != "2" {
		t.Errorf("GetAttribute = %q, %v, want 2, true", got, ok)
	}
}

func TestAttributesSorted(t *testing.T) {
	g := mustGraph(t, "g", Directed)
	n := mustNode(t, g, "a")

	for _, kv := range [][2]string{{"zorder", "1"}, {"color", "red"}, {"label", "x"}} {
		if err := n.SetAttribute(kv[0], kv[1]); err != nil {
			t.Fatalf("SetAttribute: %v", err)
		}
	}

	var keys []string
	for k := range n.Attributes() {
		keys = append(keys, k)
	}
	want := []string{"color", "label", "zorder"}
	for i, k := range keys {
		if k != want[i] {
			t.Fatalf("Attributes() keys = %v, want %v", keys, want)
		}
	}
}

func TestSetAttributeInvalid(t *testing.T) {
	g := mustGraph(t, "g", Directed)
	n := mustNode(t, g, "a")

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"NulInKey", "col\x00or", "red"},
		{"NulInValue", "color", "re\x00d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := n.SetAttribute(tt.key, tt.value)
			if !errors.Is(err, errors.ErrCodeAttributeSetFailed) {
				t.Fatalf("SetAttribute = %v, want ATTRIBUTE_SET_FAILED", err)
			}
			if !errors.Has(err, errors.ErrCodeInvalidString) {
				t.Errorf("cause chain = %v, want INVALID_STRING", err)
			}
		})
	}
}

func TestGetAttributeInvalidKey(t *testing.T) {
	g := mustGraph(t, "g", Directed)
	n := mustNode(t, g, "a")

	_, _, err := n.GetAttribute("col\x00or")
	if !errors.Is(err, errors.ErrCodeAttributeGetFailed) {
		t.Fatalf("GetAttribute = %v, want ATTRIBUTE_GET_FAILED", err)
	}
	if !errors.Has(err, errors.ErrCodeInvalidString) {
		t.Errorf("cause chain = %v, want INVALID_STRING", err)
	}
}

func TestGetAttributeInvalidUTF8(t *testing.T) {
	g := mustGraph(t, "g", Directed)
	n := mustNode(t, g, "a")

	// NUL-free but not valid UTF-8; storage accepts it, reading does not.
	if err := n.SetAttribute("data", "\xff\xfe"); err != nil {
		t.Fatalf("SetAttribute: %v", err)
	}
	_, _, err := n.GetAttribute("data")
	if !errors.Is(err, errors.ErrCodeInvalidUTF8) {
		t.Errorf("GetAttribute = %v, want INVALID_UTF8", err)
	}
	if n.HasAttribute("data") {
		t.Error("HasAttribute = true for unreadable value")
	}
}

func TestAttributeOnStaleHandle(t *testing.T) {
	g := mustGraph(t, "g", Directed)
	n := mustNode(t, g, "a")
	if err := g.RemoveNode(n); err != nil {
		t.Fatalf("RemoveNode: %v", err)
	}

	if err := n.SetAttribute("color", "red"); !errors.Is(err, errors.ErrCodeNullPointer) {
		t.Errorf("SetAttribute = %v, want NULL_POINTER", err)
	}
	if _, _, err := n.GetAttribute("color"); !errors.Is(err, errors.ErrCodeNullPointer) {
		t.Errorf("GetAttribute = %v, want NULL_POINTER", err)
	}
	if n.HasAttribute("color") {
		t.Error("HasAttribute = true on stale handle")
	}
}
