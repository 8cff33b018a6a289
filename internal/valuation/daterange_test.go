package valuation_test

import (
	"testing"
	"time"

	"github.com/mverkerk/portfoliodb/internal/testutil"
	"github.com/mverkerk/portfoliodb/internal/valuation"
)

// TestGetDateRange tests reporting-window resolution.
//
// WHY: The window end anchors every range at the latest data point, not at
// the wall clock, and an unknown range must fail loudly instead of quietly
// defaulting to something plausible.
func TestGetDateRange(t *testing.T) {
	dates := []time.Time{
		testutil.Date(2021, 1, 5),
		testutil.Date(2021, 6, 15),
		testutil.Date(2021, 3, 20),
	}

	t.Run("calendar ranges anchor at the latest date", func(t *testing.T) {
		tests := []struct {
			timeRange valuation.TimeRange
			wantStart time.Time
		}{
			{valuation.Range1M, testutil.Date(2021, 5, 15)},
			{valuation.Range3M, testutil.Date(2021, 3, 15)},
			{valuation.Range6M, testutil.Date(2020, 12, 15)},
			{valuation.Range1Y, testutil.Date(2020, 6, 15)},
		}
		for _, tt := range tests {
			got := valuation.GetDateRange(dates, tt.timeRange, time.Time{})
			if !got.EndDate.Equal(testutil.Date(2021, 6, 15)) {
				t.Errorf("%s: expected end 2021-06-15, got %v", tt.timeRange, got.EndDate)
			}
			if !got.StartDate.Equal(tt.wantStart) {
				t.Errorf("%s: expected start %v, got %v", tt.timeRange, tt.wantStart, got.StartDate)
			}
		}
	})

	t.Run("ALL spans the full history", func(t *testing.T) {
		got := valuation.GetDateRange(dates, valuation.RangeAll, time.Time{})
		if !got.StartDate.Equal(testutil.Date(2021, 1, 5)) {
			t.Errorf("Expected start 2021-01-05, got %v", got.StartDate)
		}
		if !got.EndDate.Equal(testutil.Date(2021, 6, 15)) {
			t.Errorf("Expected end 2021-06-15, got %v", got.EndDate)
		}
	})

	t.Run("an earlier explicit end date wins", func(t *testing.T) {
		got := valuation.GetDateRange(dates, valuation.Range1M, testutil.Date(2021, 4, 1))
		if !got.EndDate.Equal(testutil.Date(2021, 4, 1)) {
			t.Errorf("Expected end 2021-04-01, got %v", got.EndDate)
		}
		if !got.StartDate.Equal(testutil.Date(2021, 3, 1)) {
			t.Errorf("Expected start 2021-03-01, got %v", got.StartDate)
		}
	})

	t.Run("a later explicit end date is ignored", func(t *testing.T) {
		got := valuation.GetDateRange(dates, valuation.Range1M, testutil.Date(2022, 1, 1))
		if !got.EndDate.Equal(testutil.Date(2021, 6, 15)) {
			t.Errorf("Expected end at the latest data point, got %v", got.EndDate)
		}
	})

	t.Run("empty dates anchor at the current time", func(t *testing.T) {
		before := time.Now()
		got := valuation.GetDateRange(nil, valuation.Range1M, time.Time{})
		after := time.Now()

		if got.EndDate.Before(before) || got.EndDate.After(after) {
			t.Errorf("Expected end between %v and %v, got %v", before, after, got.EndDate)
		}
	})

	t.Run("unknown range panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected a panic for an unknown time range")
			}
		}()
		valuation.GetDateRange(dates, valuation.TimeRange("2W"), time.Time{})
	})
}
