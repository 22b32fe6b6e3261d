package encoder

import (
	"RetailRadar/internal/model"
)

// Founding label stagger: labels cycle through three vertical offsets by
// record position to reduce overlap when founding dates cluster.
const (
	foundingLabelBase = 56
	foundingLabelStep = 14
	foundingCycle     = 3
)

// lookBackYears is the fixed padding subtracted from the earliest date, in
// calendar years.
const lookBackYears = 2

// Timeline encodes the founding-events chart: the sales series as a filled
// area, one full-height guide plus staggered label per founding record, and
// the four fixed phase bands. The X domain starts two calendar years before
// the earliest sales or founding date. Returns nil unless both inputs are
// non-empty.
func Timeline(sales model.Series, founding []model.FoundingRecord, width, height int) *model.ChartEncoding {
	if sales.Empty() || len(founding) == 0 {
		return nil
	}

	min, max, _ := sales.DateExtent()
	for _, f := range founding {
		if f.Founded.Before(min) {
			min = f.Founded
		}
		if f.Founded.After(max) {
			max = f.Founded
		}
	}
	x := model.TimeDomain{Min: min.AddDate(-lookBackYears, 0, 0), Max: max}
	scale := TimeScale{Domain: x, Min: 0, Max: float64(width)}

	overlays := make([]model.Overlay, 0, 2*len(founding)+2*len(phases))

	// Phase bands span their fixed eras regardless of the data extent.
	for i, p := range phases {
		start := day(p.startYear, 1, 1)
		end := day(p.endYear, 1, 1)
		mid := start.Add(end.Sub(start) / 2)
		overlays = append(overlays,
			model.Overlay{
				Kind:  model.OverlayBand,
				At:    start,
				To:    end,
				X:     scale.Pos(start),
				X2:    scale.Pos(end),
				Color: phasePalette[i%len(phasePalette)],
			},
			model.Overlay{
				Kind:    model.OverlayLabel,
				At:      mid,
				X:       scale.Pos(mid),
				Label:   p.name,
				YOffset: 12,
			},
		)
	}

	for i, f := range founding {
		pos := scale.Pos(f.Founded)
		offset := FoundingLabelOffset(i)
		overlays = append(overlays,
			model.Overlay{Kind: model.OverlayGuide, At: f.Founded, X: pos, Color: colorGuide},
			model.Overlay{Kind: model.OverlayLabel, At: f.Founded, X: pos, Label: f.Company, YOffset: offset},
		)
	}

	return &model.ChartEncoding{
		Title:       "Company foundings against e-commerce sales",
		Width:       width,
		Height:      height,
		XDomain:     x,
		YLeft:       valueDomain(sales),
		YTickFormat: "%.0f",
		XTickLayout: "2006",
		Paths: []model.Path{
			{Name: "E-commerce sales", Kind: model.PathArea, Curve: model.CurveMonotone, Axis: model.AxisLeft, Points: sales, Color: colorArea},
			{Name: "E-commerce sales", Kind: model.PathLine, Curve: model.CurveMonotone, Axis: model.AxisLeft, Points: sales, Color: colorSales},
		},
		Overlays: overlays,
	}
}

// FoundingLabelOffset returns the staggered vertical offset for the founding
// record at position i: base minus (i mod 3) steps.
func FoundingLabelOffset(i int) float64 {
	return float64(foundingLabelBase - (i%foundingCycle)*foundingLabelStep)
}
