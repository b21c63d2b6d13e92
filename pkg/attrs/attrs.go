// Package attrs declares well-known Graphviz attribute keys and values.
//
// The engine matches attribute keys case-sensitively against its builtin
// vocabulary, but arbitrary custom keys are permitted everywhere; these
// constants only cover the common builtins so callers avoid typos. Keys are
// grouped by the domain they usually apply to. A handful of keys (label,
// color, style, the font family) are meaningful on more than one domain and
// are declared once under "shared".
package attrs

// Graph attribute keys.
const (
	RankDir     = "rankdir"
	Size        = "size"
	Ratio       = "ratio"
	BGColor     = "bgcolor"
	Page        = "page"
	Margin      = "margin"
	Concentrate = "concentrate"
	Ordering    = "ordering"
	RankSep     = "ranksep"
	NodeSep     = "nodesep"
	Rotate      = "rotate"
	Splines     = "splines"
	Overlap     = "overlap"
)

// Node attribute keys.
const (
	Shape       = "shape"
	FillColor   = "fillcolor"
	Width       = "width"
	Height      = "height"
	FixedSize   = "fixedsize"
	Pos         = "pos"
	Group       = "group"
	Image       = "image"
	Distortion  = "distortion"
	Skew        = "skew"
	Sides       = "sides"
	Orientation = "orientation"
	Peripheries = "peripheries"
)

// Edge attribute keys.
const (
	Dir           = "dir"
	Weight        = "weight"
	MinLen        = "minlen"
	Constraint    = "constraint"
	Decorate      = "decorate"
	TailPort      = "tailport"
	HeadPort      = "headport"
	ArrowHead     = "arrowhead"
	ArrowTail     = "arrowtail"
	LabelAngle    = "labelangle"
	LabelDistance = "labeldistance"
	LabelTooltip  = "labeltooltip"
)

// Keys shared across domains.
const (
	Label     = "label"
	Color     = "color"
	Style     = "style"
	FontName  = "fontname"
	FontSize  = "fontsize"
	FontColor = "fontcolor"
	PenWidth  = "penwidth"
	Tooltip   = "tooltip"
	URL       = "URL"
)
