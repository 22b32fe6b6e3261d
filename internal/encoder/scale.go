package encoder

import (
	"time"

	"RetailRadar/internal/model"
)

// TimeScale maps calendar dates linearly onto a coordinate range. All overlay
// positions within one chart go through the same scale so that guides, bands
// and labels line up with the path geometry.
type TimeScale struct {
	Domain model.TimeDomain
	Min    float64
	Max    float64
}

// Pos returns the coordinate for t. Dates outside the domain extrapolate.
func (s TimeScale) Pos(t time.Time) float64 {
	span := s.Domain.Max.Sub(s.Domain.Min).Seconds()
	if span == 0 {
		return s.Min
	}
	frac := t.Sub(s.Domain.Min).Seconds() / span
	return s.Min + frac*(s.Max-s.Min)
}

// headroom is the fixed 10% padding applied above every Y domain's maximum.
const headroom = 1.1

// valueDomain returns [0, 1.1×max] for a series.
func valueDomain(s model.Series) model.ValueDomain {
	return model.ValueDomain{Min: 0, Max: headroom * s.MaxValue()}
}
