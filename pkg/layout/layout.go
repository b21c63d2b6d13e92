// Package layout runs layout engines over graphs and owns the resulting
// positioned state.
//
// A [Context] wraps an [engine.Runtime] and keeps one layout snapshot per
// graph, keyed by graph identity rather than by view: a layout applied
// through an owned graph is visible when rendering through a borrowed view
// of the same graph. Snapshots capture the graph at Apply time; after
// mutating a graph, run Apply again before rendering.
package layout

import (
	"context"

	"github.com/matzehuels/vizier/pkg/engine"
	"github.com/matzehuels/vizier/pkg/errors"
	"github.com/matzehuels/vizier/pkg/graph"
	"github.com/matzehuels/vizier/pkg/io"
)

// snapshot is the positioned DOT produced by one Apply.
type snapshot struct {
	engine string
	data   []byte
}

// Context owns a runtime and the layouts computed through it. Close it when
// done; closing releases the runtime and every stored layout.
//
// A Context is not safe for concurrent use.
type Context struct {
	rt      engine.Runtime
	layouts map[graph.Handle]snapshot
	closed  bool
}

// New creates a context backed by the in-process engine.
func New(ctx context.Context) (*Context, error) {
	rt, err := engine.NewGraphviz(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeContextCreationFailed, err, "create layout context")
	}
	return NewWithRuntime(rt)
}

// NewWithRuntime wraps an existing runtime. The context takes ownership of
// it and closes it with [Context.Close].
func NewWithRuntime(rt engine.Runtime) (*Context, error) {
	if rt == nil {
		return nil, errors.New(errors.ErrCodeContextCreationFailed, "runtime is nil")
	}
	return &Context{rt: rt, layouts: make(map[graph.Handle]snapshot)}, nil
}

func (c *Context) live() error {
	if c == nil || c.closed {
		return errors.NullPointer("layout context is closed")
	}
	return nil
}

// Apply runs eng over g and stores the positioned result, replacing any
// previous layout for the same graph.
func (c *Context) Apply(ctx context.Context, g *graph.Graph, eng engine.Engine) error {
	if err := c.live(); err != nil {
		return err
	}
	src, err := io.MarshalDOT(g)
	if err != nil {
		return err
	}
	out, err := c.rt.Layout(ctx, src, eng.String())
	if err != nil {
		return err
	}
	c.layouts[g.Handle()] = snapshot{engine: eng.String(), data: out}
	return nil
}

// HasLayout reports whether g currently has a stored layout.
func (c *Context) HasLayout(g *graph.Graph) bool {
	if c == nil || c.closed {
		return false
	}
	_, ok := c.layouts[g.Handle()]
	return ok
}

// Engine returns the engine that produced g's stored layout.
func (c *Context) Engine(g *graph.Graph) (engine.Engine, bool) {
	if c == nil || c.closed {
		return "", false
	}
	snap, ok := c.layouts[g.Handle()]
	return engine.Engine(snap.engine), ok
}

// Render draws g's stored layout in the named output format. Rendering a
// graph without a layout fails with RENDER_FAILED; apply one first.
func (c *Context) Render(ctx context.Context, g *graph.Graph, format string) ([]byte, error) {
	if err := c.live(); err != nil {
		return nil, err
	}
	snap, ok := c.layouts[g.Handle()]
	if !ok {
		return nil, errors.New(errors.ErrCodeRenderFailed, "layout was not done")
	}
	return c.rt.Render(ctx, snap.data, format)
}

// Free discards the stored layout for g. Freeing a graph that has no layout
// fails with FREE_LAYOUT_FAILED.
func (c *Context) Free(g *graph.Graph) error {
	if err := c.live(); err != nil {
		return err
	}
	h := g.Handle()
	if _, ok := c.layouts[h]; !ok {
		return errors.New(errors.ErrCodeFreeLayoutFailed, "no layout to free")
	}
	delete(c.layouts, h)
	return nil
}

// Close drops all stored layouts and releases the runtime. Repeated calls
// are no-ops.
func (c *Context) Close() error {
	if c == nil || c.closed {
		return nil
	}
	c.closed = true
	c.layouts = nil
	return c.rt.Close()
}
