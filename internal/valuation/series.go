package valuation

import (
	"sort"
	"time"

	"github.com/mverkerk/portfoliodb/internal/model"
)

// CalculateInvestmentPerformance builds the ISIN-keyed performance series
// from all developments on or before targetDate.
//
// Developments are grouped by exact date; each point carries the summed value
// for that date plus one entry per investment keyed by its ISIN. Investments
// without a snapshot on a given date are simply absent from that point - no
// filling happens in this view (DevelopmentsToChartPoints is the
// forward-filled one).
func CalculateInvestmentPerformance(
	developments []model.Development,
	investments []model.Investment,
	targetDate time.Time,
) []model.PerformancePoint {

	isinByID := make(map[int64]string, len(investments))
	for _, inv := range investments {
		isinByID[inv.ID] = inv.ISIN
	}

	byDay := make(map[string]*model.PerformancePoint)
	for _, dev := range developments {
		if dev.Date.After(targetDate) {
			continue
		}
		key := dev.Date.Format(model.DayFormat)
		point, ok := byDay[key]
		if !ok {
			point = &model.PerformancePoint{
				Date:   day(dev.Date),
				ByISIN: make(map[string]float64),
			}
			byDay[key] = point
		}
		point.Value += dev.Value
		if isin, ok := isinByID[dev.InvestmentID]; ok {
			point.ByISIN[isin] = dev.Value
		}
	}

	points := make([]model.PerformancePoint, 0, len(byDay))
	for _, point := range byDay {
		points = append(points, *point)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

// DevelopmentsToChartPoints builds the id-keyed chart series with
// forward-fill: an asset's value at any point is its most-recently-seen value
// on or before that date. Assets with no observation yet are omitted from the
// point (and contribute 0 to the sum). Two records for the same asset on the
// same date: the last one wins.
func DevelopmentsToChartPoints(developments []model.Development) []model.ChartPoint {
	observed := make(map[string]map[int64]float64)
	for _, dev := range developments {
		key := dev.Date.Format(model.DayFormat)
		if observed[key] == nil {
			observed[key] = make(map[int64]float64)
		}
		observed[key][dev.InvestmentID] = dev.Value
	}

	days := make([]string, 0, len(observed))
	for key := range observed {
		days = append(days, key)
	}
	sort.Strings(days)

	lastSeen := make(map[int64]float64)
	points := make([]model.ChartPoint, 0, len(days))
	for _, key := range days {
		for id, value := range observed[key] {
			lastSeen[id] = value
		}

		values := make(map[int64]float64, len(lastSeen))
		var sum float64
		for id, value := range lastSeen {
			values[id] = value
			sum += value
		}

		points = append(points, model.ChartPoint{
			Date:   key,
			Values: values,
			Sum:    sum,
		})
	}
	return points
}

// FilterDevelopmentsByDate returns the developments with minDate <= date <=
// maxDate (both inclusive). A minDate after maxDate yields an empty result.
func FilterDevelopmentsByDate(developments []model.Development, minDate, maxDate time.Time) []model.Development {
	filtered := []model.Development{}
	if minDate.After(maxDate) {
		return filtered
	}
	for _, dev := range developments {
		if dev.Date.Before(minDate) || dev.Date.After(maxDate) {
			continue
		}
		filtered = append(filtered, dev)
	}
	return filtered
}

// day truncates a time to midnight UTC.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
