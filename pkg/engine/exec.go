package engine

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/matzehuels/vizier/pkg/errors"
)

// Exec is a [Runtime] that pipes graph source through a locally installed
// graphviz binary. It exists for environments where the system installation
// must be authoritative, for example to pick up locally configured plugins
// or fonts.
type Exec struct {
	path string
}

var _ Runtime = (*Exec)(nil)

// NewExec locates the dot binary on PATH. Fails with INITIALIZATION_FAILED
// when no installation is found.
func NewExec() (*Exec, error) {
	path, err := exec.LookPath("dot")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInitializationFailed, err, "graphviz binary not found")
	}
	return &Exec{path: path}, nil
}

// NewExecPath uses an explicit binary instead of searching PATH.
func NewExecPath(path string) *Exec {
	return &Exec{path: path}
}

// Layout implements [Runtime] via `dot -K<engine> -Tdot`.
func (r *Exec) Layout(ctx context.Context, src []byte, engine string) ([]byte, error) {
	out, err := r.run(ctx, src, "-K"+engine, "-Tdot")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLayoutFailed, err, "run %s layout", engine)
	}
	return out, nil
}

// Render implements [Runtime] via `dot -Knop2 -T<format>`, which draws the
// positions already present in the source.
func (r *Exec) Render(ctx context.Context, src []byte, format string) ([]byte, error) {
	out, err := r.run(ctx, src, "-Knop2", "-T"+format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return out, nil
}

func (r *Exec) run(ctx context.Context, src []byte, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.path, args...)
	cmd.Stdin = bytes.NewReader(src)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

// Close implements [Runtime]. The process-per-call model holds nothing
// between calls, so there is nothing to release.
func (r *Exec) Close() error {
	return nil
}
