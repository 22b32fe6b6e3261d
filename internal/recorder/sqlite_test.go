package recorder

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"RetailRadar/internal/dataset"
	"RetailRadar/internal/model"
	"RetailRadar/internal/store"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	rec, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "radar.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rec.Close()

	res := &store.Result{
		Sales:   model.Series{{Date: day(2010, 1, 1), Value: 100}, {Date: day(2020, 1, 1), Value: 400}},
		Loans:   model.Series{{Date: day(2010, 1, 1), Value: 50}},
		Percent: model.Series{{Date: day(2010, 1, 1), Value: 4.2}},
		Founding: []model.FoundingRecord{
			{Company: "Amazon", Founded: day(1994, 7, 5)},
			{Company: "eBay", Founded: day(1995, 9, 3)},
		},
		Errors:  map[string]error{},
		Skipped: map[string]int{},
	}
	if err := rec.RecordSnapshot(res); err != nil {
		t.Fatalf("record: %v", err)
	}

	got, err := rec.LoadSnapshot()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Sales) != 2 || len(got.Loans) != 1 || len(got.Percent) != 1 || len(got.Founding) != 2 {
		t.Fatalf("unexpected snapshot sizes: %+v", got)
	}
	if !got.Sales[1].Date.Equal(day(2020, 1, 1)) || got.Sales[1].Value != 400 {
		t.Errorf("sales round trip: %+v", got.Sales[1])
	}
	if got.Founding[0].Company != "Amazon" || !got.Founding[0].Founded.Equal(day(1994, 7, 5)) {
		t.Errorf("founding round trip: %+v", got.Founding[0])
	}
}

func TestSQLiteRecorder_FailedDatasetKeepsPreviousSnapshot(t *testing.T) {
	rec, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "radar.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rec.Close()

	first := &store.Result{
		Sales:   model.Series{{Date: day(2010, 1, 1), Value: 100}},
		Errors:  map[string]error{},
		Skipped: map[string]int{},
	}
	if err := rec.RecordSnapshot(first); err != nil {
		t.Fatalf("record first: %v", err)
	}

	second := &store.Result{
		Loans:   model.Series{{Date: day(2011, 1, 1), Value: 60}},
		Errors:  map[string]error{dataset.Sales: errors.New("fetch failed")},
		Skipped: map[string]int{},
	}
	if err := rec.RecordSnapshot(second); err != nil {
		t.Fatalf("record second: %v", err)
	}

	got, err := rec.LoadSnapshot()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Sales) != 1 {
		t.Errorf("failed sales load must not wipe the stored sales snapshot: %v", got.Sales)
	}
	if len(got.Loans) != 1 {
		t.Errorf("loans snapshot missing: %v", got.Loans)
	}
}

func TestNoopRecorder(t *testing.T) {
	n := NewNoopRecorder()
	if err := n.RecordSnapshot(&store.Result{}); err != nil {
		t.Errorf("noop record: %v", err)
	}
	if _, err := n.LoadSnapshot(); err == nil {
		t.Error("noop load must fail")
	}
	if err := n.Close(); err != nil {
		t.Errorf("noop close: %v", err)
	}
}
