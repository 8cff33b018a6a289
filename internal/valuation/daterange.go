package valuation

import (
	"fmt"
	"time"
)

// TimeRange identifies a reporting window ending at the most recent data
// point.
type TimeRange string

const (
	Range1M  TimeRange = "1M"
	Range3M  TimeRange = "3M"
	Range6M  TimeRange = "6M"
	Range1Y  TimeRange = "1Y"
	RangeAll TimeRange = "ALL"
)

// DateRange is a resolved inclusive reporting window.
type DateRange struct {
	StartDate time.Time
	EndDate   time.Time
}

// GetDateRange resolves a reporting window over the given dates.
//
// The window end is the maximum of dates ("now" when dates is empty), unless
// endDate is set and earlier than that maximum, in which case endDate is
// used. For RangeAll the start is the minimum of dates ("now" when empty);
// for the month/year ranges the start is the window end minus the calendar
// interval.
//
// An unrecognized TimeRange is a programmer error and panics; it must never
// be silently defaulted.
func GetDateRange(dates []time.Time, timeRange TimeRange, endDate time.Time) DateRange {
	now := time.Now()

	maxDate, minDate := now, now
	for i, d := range dates {
		if i == 0 {
			maxDate, minDate = d, d
			continue
		}
		if d.After(maxDate) {
			maxDate = d
		}
		if d.Before(minDate) {
			minDate = d
		}
	}

	end := maxDate
	if !endDate.IsZero() && endDate.Before(maxDate) {
		end = endDate
	}

	var start time.Time
	switch timeRange {
	case Range1M:
		start = end.AddDate(0, -1, 0)
	case Range3M:
		start = end.AddDate(0, -3, 0)
	case Range6M:
		start = end.AddDate(0, -6, 0)
	case Range1Y:
		start = end.AddDate(-1, 0, 0)
	case RangeAll:
		start = minDate
	default:
		panic(fmt.Sprintf("unsupported time range %q", timeRange))
	}

	return DateRange{StartDate: start, EndDate: end}
}
