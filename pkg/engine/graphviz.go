package engine

import (
	"bytes"
	"context"
	"sync"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/vizier/pkg/errors"
)

// layoutKeepPositions redraws a graph from the pos attributes already in the
// source without moving anything.
const layoutKeepPositions = graphviz.Layout("nop2")

// Graphviz is a [Runtime] backed by the in-process Graphviz build. Each
// instance owns one isolated engine context; no system installation is
// required. Layout and render calls are serialized because the underlying
// context keeps the selected engine as instance state.
type Graphviz struct {
	mu     sync.Mutex
	gv     *graphviz.Graphviz
	closed bool
}

var _ Runtime = (*Graphviz)(nil)

// NewGraphviz creates an engine context. Fails with CONTEXT_CREATION_FAILED
// when the context cannot be brought up.
func NewGraphviz(ctx context.Context) (*Graphviz, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeContextCreationFailed, err, "create graphviz context")
	}
	return &Graphviz{gv: gv}, nil
}

// Layout implements [Runtime]. Failures to parse the source or to run the
// engine surface as LAYOUT_FAILED.
func (r *Graphviz) Layout(ctx context.Context, src []byte, engine string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, errors.NullPointer("runtime is closed")
	}

	g, err := graphviz.ParseBytes(src)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLayoutFailed, err, "parse graph source")
	}
	defer g.Close()

	r.gv.SetLayout(graphviz.Layout(engine))
	var buf bytes.Buffer
	if err := r.gv.Render(ctx, g, graphviz.XDOT, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeLayoutFailed, err, "run %s layout", engine)
	}
	return buf.Bytes(), nil
}

// Render implements [Runtime]. Failures surface as RENDER_FAILED.
func (r *Graphviz) Render(ctx context.Context, src []byte, format string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, errors.NullPointer("runtime is closed")
	}

	g, err := graphviz.ParseBytes(src)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse positioned source")
	}
	defer g.Close()

	r.gv.SetLayout(layoutKeepPositions)
	var buf bytes.Buffer
	if err := r.gv.Render(ctx, g, graphviz.Format(format), &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

// Close releases the engine context. Repeated calls are no-ops; a release
// failure surfaces as CLEANUP_FAILED.
func (r *Graphviz) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	if err := r.gv.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeCleanupFailed, err, "close graphviz context")
	}
	return nil
}
