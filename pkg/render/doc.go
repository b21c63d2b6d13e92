// Package render turns laid-out graphs into output artifacts.
//
// # Overview
//
// This package is the typed surface over [layout.Context.Render]. It
// provides:
//
//   - The closed [Format] enumeration with MIME type, file extension, and
//     binary/text classification per format
//   - Output helpers for bytes, strings, writers, and files
//
// # Formats
//
// Formats map 1:1 to the identifiers the engine understands; there is no
// coercion. [ParseFormat] resolves user input and fails with INVALID_FORMAT
// for anything outside the set. Binary formats (png, gif, jpeg, pdf, bmp,
// svgz) and text formats differ only in how [ToString] treats them.
//
// # Output Helpers
//
// [ToBytes] returns the raw payload for any format. [ToString] is the
// text-friendly variant: binary payloads come back base64-encoded, text
// payloads are validated as UTF-8 and returned as-is, so for a text format
// ToString and ToBytes carry identical bytes. [ToWriter] streams to a sink
// with full-write-or-error semantics and [ToFile] writes an output file:
//
//	lc, _ := layout.New(ctx)
//	defer lc.Close()
//	_ = lc.Apply(ctx, g, engine.Dot)
//	svg, err := render.ToString(ctx, lc, g, render.SVG)
//	err = render.ToFile(ctx, lc, g, render.PNG, "out.png")
//
// All helpers require a layout to have been applied first; rendering an
// unlaid-out graph fails with RENDER_FAILED.
package render
