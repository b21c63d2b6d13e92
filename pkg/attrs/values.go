package attrs

// Node shape values.
const (
	ShapeBox           = "box"
	ShapeBox3D         = "box3d"
	ShapeCircle        = "circle"
	ShapeComponent     = "component"
	ShapeCylinder      = "cylinder"
	ShapeDiamond       = "diamond"
	ShapeDoubleCircle  = "doublecircle"
	ShapeDoubleOctagon = "doubleoctagon"
	ShapeEllipse       = "ellipse"
	ShapeFolder        = "folder"
	ShapeHexagon       = "hexagon"
	ShapeHouse         = "house"
	ShapeInvHouse      = "invhouse"
	ShapeInvTrapezium  = "invtrapezium"
	ShapeInvTriangle   = "invtriangle"
	ShapeNote          = "note"
	ShapeOctagon       = "octagon"
	ShapeParallelogram = "parallelogram"
	ShapePlaintext     = "plaintext"
	ShapePoint         = "point"
	ShapePolygon       = "polygon"
	ShapeRecord        = "record"
	ShapeTab           = "tab"
	ShapeTrapezium     = "trapezium"
	ShapeTriangle      = "triangle"
	ShapeTripleOctagon = "tripleoctagon"
)

// Node and edge style values.
const (
	StyleSolid     = "solid"
	StyleDashed    = "dashed"
	StyleDotted    = "dotted"
	StyleBold      = "bold"
	StyleFilled    = "filled"
	StyleRounded   = "rounded"
	StyleDiagonals = "diagonals"
	StyleInvis     = "invis"
	StyleTapered   = "tapered"
)

// Edge dir values.
const (
	DirForward = "forward"
	DirBack    = "back"
	DirBoth    = "both"
	DirNone    = "none"
)

// Graph rankdir values.
const (
	RankDirTB = "TB"
	RankDirLR = "LR"
	RankDirBT = "BT"
	RankDirRL = "RL"
)

// Edge arrowhead and arrowtail values.
const (
	ArrowNormal  = "normal"
	ArrowBox     = "box"
	ArrowCrow    = "crow"
	ArrowDiamond = "diamond"
	ArrowDot     = "dot"
	ArrowInv     = "inv"
	ArrowNone    = "none"
	ArrowTee     = "tee"
	ArrowVee     = "vee"
)

// Graph splines values.
const (
	SplinesTrue     = "true"
	SplinesFalse    = "false"
	SplinesNone     = "none"
	SplinesLine     = "line"
	SplinesPolyline = "polyline"
	SplinesCurved   = "curved"
	SplinesOrtho    = "ortho"
	SplinesSpline   = "spline"
)

// Graph overlap values.
const (
	OverlapTrue     = "true"
	OverlapFalse    = "false"
	OverlapScale    = "scale"
	OverlapScaleXY  = "scalexy"
	OverlapPrism    = "prism"
	OverlapCompress = "compress"
	OverlapVPSC     = "vpsc"
	OverlapFDP      = "fdp"
)
