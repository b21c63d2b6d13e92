package render

import (
	"context"
	"encoding/base64"
	"io"
	"os"

	"github.com/matzehuels/vizier/pkg/errors"
	"github.com/matzehuels/vizier/pkg/graph"
	"github.com/matzehuels/vizier/pkg/layout"
)

// ToBytes renders g's stored layout and returns the raw payload, whatever
// the format.
func ToBytes(ctx context.Context, lc *layout.Context, g *graph.Graph, f Format) ([]byte, error) {
	return lc.Render(ctx, g, f.String())
}

// ToString renders g's stored layout as text. Binary formats come back
// base64-encoded; text formats are returned as-is after UTF-8 validation,
// so for text formats the result carries exactly the [ToBytes] payload.
func ToString(ctx context.Context, lc *layout.Context, g *graph.Graph, f Format) (string, error) {
	data, err := ToBytes(ctx, lc, g, f)
	if err != nil {
		return "", err
	}
	if f.Binary() {
		return base64.StdEncoding.EncodeToString(data), nil
	}
	if err := errors.ValidateUTF8(data); err != nil {
		return "", err
	}
	return string(data), nil
}

// ToWriter renders g's stored layout and streams the payload to w. The
// write either completes in full or fails with IO_ERROR.
func ToWriter(ctx context.Context, lc *layout.Context, g *graph.Graph, f Format, w io.Writer) error {
	data, err := ToBytes(ctx, lc, g, f)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s output", f)
	}
	return nil
}

// ToFile renders g's stored layout into a file at path. The path is taken
// as given; use [Format.Ext] to build conventional names.
func ToFile(ctx context.Context, lc *layout.Context, g *graph.Graph, f Format, path string) error {
	data, err := ToBytes(ctx, lc, g, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}
