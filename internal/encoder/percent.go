package encoder

import (
	"RetailRadar/internal/model"
)

// Percent encodes the share-of-retail area chart with event markers. Of the
// fixed marker catalog, only events dated within the series' extent
// (inclusive on both ends) are emitted, each as a vertical guide plus a
// label at its fixed offset. Returns nil for an empty series.
func Percent(percent model.Series, width, height int) *model.ChartEncoding {
	if percent.Empty() {
		return nil
	}

	min, max, _ := percent.DateExtent()
	x := model.TimeDomain{Min: min, Max: max}
	scale := TimeScale{Domain: x, Min: 0, Max: float64(width)}

	var overlays []model.Overlay
	for _, ev := range events {
		if ev.date.Before(min) || ev.date.After(max) {
			continue
		}
		pos := scale.Pos(ev.date)
		overlays = append(overlays,
			model.Overlay{Kind: model.OverlayGuide, At: ev.date, X: pos, Color: colorGuide},
			model.Overlay{Kind: model.OverlayLabel, At: ev.date, X: pos, Label: ev.label, YOffset: ev.yOffset},
		)
	}

	return &model.ChartEncoding{
		Title:       "E-commerce share of retail sales",
		Width:       width,
		Height:      height,
		XDomain:     x,
		YLeft:       valueDomain(percent),
		YTickFormat: "%.0f%%",
		XTickLayout: "2006",
		Paths: []model.Path{
			{Name: "Share of retail", Kind: model.PathArea, Curve: model.CurveMonotone, Axis: model.AxisLeft, Points: percent, Color: colorArea},
			{Name: "Share of retail", Kind: model.PathLine, Curve: model.CurveMonotone, Axis: model.AxisLeft, Points: percent, Color: colorSales},
		},
		Overlays: overlays,
	}
}
