package render

import (
	"strings"

	"github.com/matzehuels/vizier/pkg/errors"
)

// Format identifies an output format.
type Format string

const (
	PNG    Format = "png"
	SVG    Format = "svg"
	PDF    Format = "pdf"
	PS     Format = "ps"
	EPS    Format = "eps"
	GIF    Format = "gif"
	JPEG   Format = "jpeg"
	JSON   Format = "json"
	Dot    Format = "dot"
	XDot   Format = "xdot"
	Plain  Format = "plain"
	Canon  Format = "canon"
	Fig    Format = "fig"
	VRML   Format = "vrml"
	Cmapx  Format = "cmapx"
	Imap   Format = "imap"
	BMP    Format = "bmp"
	SVGZ   Format = "svgz"
)

type formatMeta struct {
	mime   string
	ext    string
	binary bool
}

// formatInfo is a table, not logic: every format carries its MIME type,
// file extension, and binary/text classification.
var formatInfo = map[Format]formatMeta{
	PNG:   {"image/png", "png", true},
	SVG:   {"image/svg+xml", "svg", false},
	PDF:   {"application/pdf", "pdf", true},
	PS:    {"application/postscript", "ps", false},
	EPS:   {"application/postscript", "eps", false},
	GIF:   {"image/gif", "gif", true},
	JPEG:  {"image/jpeg", "jpg", true},
	JSON:  {"application/json", "json", false},
	Dot:   {"text/vnd.graphviz", "dot", false},
	XDot:  {"text/vnd.graphviz", "xdot", false},
	Plain: {"text/plain", "txt", false},
	Canon: {"text/vnd.graphviz", "dot", false},
	Fig:   {"image/x-xfig", "fig", false},
	VRML:  {"model/vrml", "wrl", false},
	Cmapx: {"text/html", "map", false},
	Imap:  {"text/plain", "map", false},
	BMP:   {"image/bmp", "bmp", true},
	SVGZ:  {"image/svg+xml", "svgz", true},
}

// Formats returns every known format in display order.
func Formats() []Format {
	return []Format{
		PNG, SVG, PDF, PS, EPS, GIF, JPEG, JSON,
		Dot, XDot, Plain, Canon, Fig, VRML, Cmapx, Imap, BMP, SVGZ,
	}
}

// ParseFormat resolves a name to a format, ignoring case. Unknown names
// fail with INVALID_FORMAT.
func ParseFormat(s string) (Format, error) {
	name := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := formatInfo[name]; ok {
		return name, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q", s)
}

func (f Format) String() string {
	return string(f)
}

// MIME returns the format's media type.
func (f Format) MIME() string {
	return formatInfo[f].mime
}

// Ext returns the conventional file extension, without the dot.
func (f Format) Ext() string {
	return formatInfo[f].ext
}

// Binary reports whether the payload is binary rather than text.
func (f Format) Binary() bool {
	return formatInfo[f].binary
}
