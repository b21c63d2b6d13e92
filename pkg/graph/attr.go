package graph

import (
	"iter"
	"maps"
	"slices"

	"github.com/matzehuels/vizier/pkg/errors"
)

// ===== Attribute domains ====================================================

// domain selects which default table an attribute key is declared on. The
// engine scopes declarations per kind, so a key set on one node becomes
// visible (with the declared default) on every node of the graph.
type domain int

const (
	domainGraph domain = iota
	domainNode
	domainEdge
	domainCount
)

// ensureDeclared declares key on the domain with an empty default when no
// declaration exists yet. Setting a value on any entity declares the key for
// the whole domain.
func (a *arena) ensureDeclared(d domain, key string) {
	if a.defaults[d] == nil {
		a.defaults[d] = make(map[string]string)
	}
	if _, ok := a.defaults[d][key]; !ok {
		a.defaults[d][key] = ""
	}
}

// setAttr validates one key/value pair and stores it in an entity's own
// table, declaring the key on the domain first. The caller wraps failures
// in its operation code.
func (a *arena) setAttr(d domain, attrs *map[string]string, key, value string) error {
	if err := errors.ValidateName(key); err != nil {
		return err
	}
	if err := errors.ValidateValue(value); err != nil {
		return err
	}
	a.ensureDeclared(d, key)
	if *attrs == nil {
		*attrs = make(map[string]string)
	}
	(*attrs)[key] = value
	return nil
}

// getAttr resolves key against an entity's own table, falling back to the
// domain default. Absent means the key was never declared on the domain.
func (a *arena) getAttr(d domain, attrs map[string]string, key string) (string, bool, error) {
	if err := errors.ValidateName(key); err != nil {
		return "", false, err
	}
	v, ok := attrs[key]
	if !ok {
		v, ok = a.defaults[d][key]
		if !ok {
			return "", false, nil
		}
	}
	if err := errors.ValidateUTF8([]byte(v)); err != nil {
		return "", false, err
	}
	return v, true, nil
}

// wrapGetErr applies the read-path error convention: values that decode to
// invalid text surface as INVALID_UTF8 themselves, anything else is an
// ATTRIBUTE_GET_FAILED with the cause attached.
func wrapGetErr(err error, what string) error {
	if errors.Is(err, errors.ErrCodeInvalidUTF8) {
		return err
	}
	return errors.Wrap(errors.ErrCodeAttributeGetFailed, err, "get %s attribute", what)
}

// sortedAttrs yields a table's pairs in key order.
func sortedAttrs(attrs map[string]string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range slices.Sorted(maps.Keys(attrs)) {
			if !yield(k, attrs[k]) {
				return
			}
		}
	}
}

// ===== Graph attributes =====================================================

// SetAttribute sets key to value on the graph itself, declaring the key on
// the graph domain when it is new. Fails with ATTRIBUTE_SET_FAILED when key
// or value cannot be stored.
func (g *Graph) SetAttribute(key, value string) error {
	a, err := g.arenaLive()
	if err != nil {
		return err
	}
	if err := a.setAttr(domainGraph, &a.attrs, key, value); err != nil {
		return errors.Wrap(errors.ErrCodeAttributeSetFailed, err, "set graph attribute %q", key)
	}
	return nil
}

// GetAttribute returns the graph's value for key. The boolean reports
// presence: a key that was never declared on the graph domain is absent,
// while a declared key resolves to its set value or the domain default.
func (g *Graph) GetAttribute(key string) (string, bool, error) {
	a, err := g.arenaLive()
	if err != nil {
		return "", false, err
	}
	v, ok, err := a.getAttr(domainGraph, a.attrs, key)
	if err != nil {
		return "", false, wrapGetErr(err, "graph")
	}
	return v, ok, nil
}

// HasAttribute reports whether key resolves to a value on the graph.
func (g *Graph) HasAttribute(key string) bool {
	_, ok, err := g.GetAttribute(key)
	return err == nil && ok
}

// SetAttributeIfAbsent sets key to value only when the key does not resolve
// yet. A present-but-empty value counts as present and is kept.
func (g *Graph) SetAttributeIfAbsent(key, value string) error {
	_, ok, err := g.GetAttribute(key)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return g.SetAttribute(key, value)
}

// RemoveAttribute clears key by writing an empty value over it. Once a key
// is declared on a domain there is no true deletion, so a removed attribute
// reads back as present and empty rather than absent.
func (g *Graph) RemoveAttribute(key string) error {
	_, ok, err := g.GetAttribute(key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return g.SetAttribute(key, "")
}

// Attributes yields the graph's own attribute pairs in key order. Keys that
// exist only as domain declarations are not included.
func (g *Graph) Attributes() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		a, err := g.arenaLive()
		if err != nil {
			return
		}
		sortedAttrs(a.attrs)(yield)
	}
}

// ===== Node attributes ======================================================

// SetAttribute sets key to value on the node, declaring the key on the node
// domain when it is new. After the first set, every other node in the graph
// resolves the key to the empty default until it sets its own value.
func (n Node) SetAttribute(key, value string) error {
	rec, err := n.rec()
	if err != nil {
		return err
	}
	if err := n.a.setAttr(domainNode, &rec.attrs, key, value); err != nil {
		return errors.Wrap(errors.ErrCodeAttributeSetFailed, err, "set node attribute %q", key)
	}
	return nil
}

// GetAttribute returns the node's value for key, falling back to the node
// domain default when the node has no own value.
func (n Node) GetAttribute(key string) (string, bool, error) {
	rec, err := n.rec()
	if err != nil {
		return "", false, err
	}
	v, ok, err := n.a.getAttr(domainNode, rec.attrs, key)
	if err != nil {
		return "", false, wrapGetErr(err, "node")
	}
	return v, ok, nil
}

// HasAttribute reports whether key resolves to a value on the node.
func (n Node) HasAttribute(key string) bool {
	_, ok, err := n.GetAttribute(key)
	return err == nil && ok
}

// SetAttributeIfAbsent sets key to value only when the key does not resolve
// on the node yet.
func (n Node) SetAttributeIfAbsent(key, value string) error {
	_, ok, err := n.GetAttribute(key)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return n.SetAttribute(key, value)
}

// RemoveAttribute clears key on the node by writing an empty value over it.
func (n Node) RemoveAttribute(key string) error {
	_, ok, err := n.GetAttribute(key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return n.SetAttribute(key, "")
}

// Attributes yields the node's own attribute pairs in key order.
func (n Node) Attributes() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		rec, err := n.rec()
		if err != nil {
			return
		}
		sortedAttrs(rec.attrs)(yield)
	}
}

// ===== Edge attributes ======================================================

// SetAttribute sets key to value on the edge, declaring the key on the edge
// domain when it is new.
func (e Edge) SetAttribute(key, value string) error {
	rec, err := e.rec()
	if err != nil {
		return err
	}
	if err := e.a.setAttr(domainEdge, &rec.attrs, key, value); err != nil {
		return errors.Wrap(errors.ErrCodeAttributeSetFailed, err, "set edge attribute %q", key)
	}
	return nil
}

// GetAttribute returns the edge's value for key, falling back to the edge
// domain default when the edge has no own value.
func (e Edge) GetAttribute(key string) (string, bool, error) {
	rec, err := e.rec()
	if err != nil {
		return "", false, err
	}
	v, ok, err := e.a.getAttr(domainEdge, rec.attrs, key)
	if err != nil {
		return "", false, wrapGetErr(err, "edge")
	}
	return v, ok, nil
}

// HasAttribute reports whether key resolves to a value on the edge.
func (e Edge) HasAttribute(key string) bool {
	_, ok, err := e.GetAttribute(key)
	return err == nil && ok
}

// SetAttributeIfAbsent sets key to value only when the key does not resolve
// on the edge yet.
func (e Edge) SetAttributeIfAbsent(key, value string) error {
	_, ok, err := e.GetAttribute(key)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return e.SetAttribute(key, value)
}

// RemoveAttribute clears key on the edge by writing an empty value over it.
func (e Edge) RemoveAttribute(key string) error {
	_, ok, err := e.GetAttribute(key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return e.SetAttribute(key, "")
}

// Attributes yields the edge's own attribute pairs in key order.
func (e Edge) Attributes() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		rec, err := e.rec()
		if err != nil {
			return
		}
		sortedAttrs(rec.attrs)(yield)
	}
}
