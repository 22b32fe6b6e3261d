package model

import "time"

// SeriesPoint is a single dated observation.
type SeriesPoint struct {
	Date  time.Time
	Value float64
}

// Series is an ordered sequence of dated observations.
type Series []SeriesPoint

// Empty reports whether the series holds no points.
func (s Series) Empty() bool { return len(s) == 0 }

// DateExtent returns the earliest and latest dates in the series.
// ok is false for an empty series.
func (s Series) DateExtent() (min, max time.Time, ok bool) {
	if len(s) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = s[0].Date, s[0].Date
	for _, p := range s[1:] {
		if p.Date.Before(min) {
			min = p.Date
		}
		if p.Date.After(max) {
			max = p.Date
		}
	}
	return min, max, true
}

// MaxValue returns the largest observation value, or 0 for an empty series.
func (s Series) MaxValue() float64 {
	max := 0.0
	for i, p := range s {
		if i == 0 || p.Value > max {
			max = p.Value
		}
	}
	return max
}

// FoundingRecord marks when a company was founded.
type FoundingRecord struct {
	Company string
	Founded time.Time
}
