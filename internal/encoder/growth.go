// Package encoder turns loaded series into declarative chart encodings:
// scale domains, path geometry and annotation overlays. Encoders are pure
// functions of their input series; calling one twice with the same inputs
// yields the same encoding, and a change in the inputs means a full
// recompute, never an incremental update.
package encoder

import (
	"RetailRadar/internal/model"
)

// Growth encodes the dual-axis sales vs. loans chart. Sales map to the left
// axis, loans to the right; the two axes keep independent domains and must
// not be conflated. Returns nil unless both series are non-empty.
func Growth(sales, loans model.Series, width, height int) *model.ChartEncoding {
	if sales.Empty() || loans.Empty() {
		return nil
	}

	sMin, sMax, _ := sales.DateExtent()
	lMin, lMax, _ := loans.DateExtent()
	x := model.TimeDomain{Min: sMin, Max: sMax}
	if lMin.Before(x.Min) {
		x.Min = lMin
	}
	if lMax.After(x.Max) {
		x.Max = lMax
	}

	right := valueDomain(loans)
	scale := TimeScale{Domain: x, Min: 0, Max: float64(width)}

	return &model.ChartEncoding{
		Title:       "E-commerce sales vs. consumer loans",
		Width:       width,
		Height:      height,
		XDomain:     x,
		YLeft:       valueDomain(sales),
		YRight:      &right,
		YTickFormat: "%.0f",
		XTickLayout: "2006",
		Paths: []model.Path{
			{Name: "E-commerce sales", Kind: model.PathLine, Curve: model.CurveMonotone, Axis: model.AxisLeft, Points: sales, Color: colorSales},
			{Name: "Consumer loans", Kind: model.PathLine, Curve: model.CurveMonotone, Axis: model.AxisRight, Points: loans, Color: colorLoans},
		},
		Overlays: []model.Overlay{
			{
				Kind:    model.OverlayLabel,
				At:      x.Max,
				X:       scale.Pos(x.Max),
				Label:   "Loans on right axis ($B)",
				YOffset: 16,
			},
		},
	}
}
