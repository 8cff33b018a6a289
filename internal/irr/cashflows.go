package irr

import (
	"time"

	"github.com/mverkerk/portfoliodb/internal/model"
)

// CashFlows maps a movement history to the parallel date/value series
// Calculate expects: buys are outflows (negative, fee included), sells and
// dividends are inflows (net of fee). Movements after targetDate are ignored.
//
// finalValue, when non-zero, is appended as a terminal inflow at targetDate -
// typically the position's valuation as of that date, so the rate reflects an
// assumed liquidation.
func CashFlows(movements []model.Movement, finalValue float64, targetDate time.Time) ([]time.Time, []float64) {
	var dates []time.Time
	var values []float64

	for _, movement := range movements {
		if movement.Date.After(targetDate) {
			continue
		}
		switch movement.Action {
		case model.Buy:
			dates = append(dates, movement.Date)
			values = append(values, -(movement.Amount + movement.Fee))
		case model.Sell, model.Dividend:
			dates = append(dates, movement.Date)
			values = append(values, movement.Amount-movement.Fee)
		}
	}

	if finalValue != 0 {
		dates = append(dates, targetDate)
		values = append(values, finalValue)
	}

	return dates, values
}
