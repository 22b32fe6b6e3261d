package model

import "time"

// TimeDomain is the [min, max] date extent a chart's X scale covers.
type TimeDomain struct {
	Min time.Time
	Max time.Time
}

// ValueDomain is the [min, max] value extent of a Y scale.
type ValueDomain struct {
	Min float64
	Max float64
}

// AxisSlot selects which Y axis a path is measured against.
type AxisSlot int

const (
	AxisLeft AxisSlot = iota
	AxisRight
)

// PathKind selects the geometry drawn for a path.
type PathKind int

const (
	// PathLine is a stroked line through the points.
	PathLine PathKind = iota
	// PathArea is a filled region between the points and the chart baseline.
	PathArea
)

// CurveKind is the interpolation a renderer should apply between points.
type CurveKind int

const (
	CurveLinear CurveKind = iota
	// CurveMonotone interpolates smoothly without overshooting the data.
	// Renderers lacking monotone curves may fall back to linear segments.
	CurveMonotone
)

// Path is one line or area geometry over a series.
type Path struct {
	Name   string
	Kind   PathKind
	Curve  CurveKind
	Axis   AxisSlot
	Points Series
	Color  string // hex, e.g. "#4c78a8"
}

// OverlayKind selects the shape primitive an overlay renders as.
type OverlayKind int

const (
	// OverlayGuide is a vertical guide line spanning full chart height.
	OverlayGuide OverlayKind = iota
	// OverlayBand is a filled rectangle between two dates, full chart height.
	OverlayBand
	// OverlayLabel is a text label anchored at a date.
	OverlayLabel
)

// Overlay is one annotation primitive. X and X2 are positions already mapped
// through the chart's time scale (same range as the encoding's Width), so a
// renderer only needs to rescale them onto its canvas.
type Overlay struct {
	Kind  OverlayKind
	At    time.Time
	To    time.Time // band end; zero otherwise
	X     float64
	X2    float64 // band end position; 0 otherwise
	Label string
	// YOffset positions a label vertically, in pixels from the chart top.
	YOffset float64
	Color   string // hex; empty means renderer default
}

// ChartEncoding is the complete declarative description of one chart: scale
// domains, path geometry and annotation overlays. A renderer consumes it
// without knowing the data semantics. Encodings are recomputed from scratch
// whenever their input series change.
type ChartEncoding struct {
	Title   string
	Width   int
	Height  int
	XDomain TimeDomain
	// YLeft is the primary value domain. YRight is set only for dual-axis
	// charts and must never be conflated with YLeft when mapping to pixels.
	YLeft  ValueDomain
	YRight *ValueDomain
	// YTickFormat is a fmt verb applied to tick values, e.g. "%.0f%%".
	YTickFormat string
	// XTickLayout is a time layout for X tick labels.
	XTickLayout string
	Paths       []Path
	Overlays    []Overlay
}
