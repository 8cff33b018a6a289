// Package valuation computes point-in-time and time-series metrics from
// investments, their movement history and the externally produced position
// snapshot (Development) series. All functions are pure and synchronous over
// immutable input slices.
package valuation

import (
	"math"
	"time"

	"github.com/mverkerk/portfoliodb/internal/model"
)

// RoundingPrecision controls rounding of percentage returns (100 = 2 decimal
// places).
const RoundingPrecision = 100

// round2 rounds a value to two decimal places.
func round2(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

// ValuateInvestment calculates the snapshot metrics of a single investment as
// of targetDate.
//
// The snapshot used is the development row for this investment with the
// latest date on or before targetDate. When targetDate precedes the entire
// history, the earliest available snapshot is used instead (kept for
// compatibility; see the note on Totals for the other preserved quirk). When
// no snapshots exist at all, every output is zero.
//
// PaymentSum accumulates movements on or before targetDate: buys add
// amount + fee, sells and dividends subtract the amount but still add the
// fee, since a fee is a cost regardless of direction.
//
// Return is the percentage gain on paid-in capital, rounded to two decimals,
// and 0 whenever PaymentSum is not strictly positive.
func ValuateInvestment(
	investment model.Investment,
	developments []model.Development,
	movements []model.Movement,
	targetDate time.Time,
) model.InvestmentMetrics {

	snapshot, found := selectSnapshot(investment.ID, developments, targetDate)
	if !found {
		return model.InvestmentMetrics{}
	}

	var paymentSum float64
	for _, movement := range movements {
		if movement.InvestmentID != investment.ID || movement.Date.After(targetDate) {
			continue
		}
		switch movement.Action {
		case model.Buy:
			paymentSum += movement.Amount + movement.Fee
		case model.Sell, model.Dividend:
			paymentSum += -movement.Amount + movement.Fee
		}
	}

	balance := snapshot.Value - paymentSum

	var percentage float64
	if paymentSum > 0 {
		percentage = round2((snapshot.Value - paymentSum) / paymentSum * 100)
	}

	return model.InvestmentMetrics{
		PaymentSum:    paymentSum,
		QuantityAfter: snapshot.Quantity,
		ValueAfter:    snapshot.Value,
		Balance:       balance,
		Return:        percentage,
	}
}

// selectSnapshot picks the development row for the investment with the
// latest date <= targetDate, falling back to the earliest row when every
// snapshot is later than the target. The second return is false when the
// investment has no snapshots at all.
func selectSnapshot(investmentID int64, developments []model.Development, targetDate time.Time) (model.Development, bool) {
	var atOrBefore, earliest model.Development
	var haveAtOrBefore, haveEarliest bool

	for _, dev := range developments {
		if dev.InvestmentID != investmentID {
			continue
		}
		if !haveEarliest || dev.Date.Before(earliest.Date) {
			earliest = dev
			haveEarliest = true
		}
		if dev.Date.After(targetDate) {
			continue
		}
		if !haveAtOrBefore || dev.Date.After(atOrBefore.Date) {
			atOrBefore = dev
			haveAtOrBefore = true
		}
	}

	if haveAtOrBefore {
		return atOrBefore, true
	}
	return earliest, haveEarliest
}

// CalculateTotals combines per-investment metrics into portfolio totals.
//
// The portfolio Return is the simple sum of each investment's individual
// return percentage, not a value-weighted blend. This matches the behavior
// downstream consumers rely on and is preserved exactly.
func CalculateTotals(metrics []model.InvestmentMetrics) model.Totals {
	var totals model.Totals
	for _, m := range metrics {
		totals.ValueAfter += m.ValueAfter
		totals.PaymentSum += m.PaymentSum
		totals.Balance += m.ValueAfter - m.PaymentSum
		totals.Return += m.Return
	}
	return totals
}
