package model

import (
	"testing"
	"time"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestSeries_DateExtent(t *testing.T) {
	s := Series{
		{Date: day(2015, 1, 1), Value: 1},
		{Date: day(2010, 1, 1), Value: 2},
		{Date: day(2020, 1, 1), Value: 3},
	}
	min, max, ok := s.DateExtent()
	if !ok {
		t.Fatal("expected ok for non-empty series")
	}
	if !min.Equal(day(2010, 1, 1)) || !max.Equal(day(2020, 1, 1)) {
		t.Errorf("extent: got [%v, %v]", min, max)
	}

	if _, _, ok := (Series{}).DateExtent(); ok {
		t.Error("expected ok=false for empty series")
	}
}

func TestSeries_MaxValue(t *testing.T) {
	tests := []struct {
		name   string
		series Series
		want   float64
	}{
		{"empty", Series{}, 0},
		{"single", Series{{Date: day(2010, 1, 1), Value: 5}}, 5},
		{"negative only", Series{{Date: day(2010, 1, 1), Value: -3}, {Date: day(2011, 1, 1), Value: -7}}, -3},
		{"mixed", Series{{Date: day(2010, 1, 1), Value: 2}, {Date: day(2011, 1, 1), Value: 9}, {Date: day(2012, 1, 1), Value: 4}}, 9},
	}
	for _, tt := range tests {
		if got := tt.series.MaxValue(); got != tt.want {
			t.Errorf("%s: MaxValue = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSeries_Empty(t *testing.T) {
	if !(Series{}).Empty() {
		t.Error("empty series must report Empty")
	}
	if (Series{{Date: day(2010, 1, 1)}}).Empty() {
		t.Error("non-empty series must not report Empty")
	}
}
