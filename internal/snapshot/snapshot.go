// Package snapshot derives the daily Development series from a movement
// history and fetched market quotes. The valuation engine consumes the
// resulting series as read-only input.
package snapshot

import (
	"math"
	"sort"
	"time"

	"github.com/mverkerk/portfoliodb/internal/model"
)

// pointKey identifies one investment on one day.
type pointKey struct {
	investmentID int64
	date         time.Time
}

// BuildDevelopments computes one Development row per investment per day the
// investment is observed, where a day counts as observed when it has either a
// movement or a quote.
//
// For each (investment, date):
//   - quantity is the cumulative bought minus sold quantity up to the date
//   - price prefers the fetched quote for the day, then the average absolute
//     transaction price (|amount/quantity|) of the day's movements, then the
//     last known price of the investment
//   - value is quantity * price
//
// Days for which no price can be determined at all produce no row.
func BuildDevelopments(movements []model.Movement, prices []model.InvestmentPrice) []model.Development {
	transactionPrices := averageTransactionPrices(movements)

	quotes := make(map[pointKey]float64, len(prices))
	for _, price := range prices {
		quotes[pointKey{price.InvestmentID, day(price.Date)}] = price.Price
	}

	buys := aggregateQuantities(movements, model.Buy)
	sells := aggregateQuantities(movements, model.Sell)

	keys := collectKeys(movements, quotes)

	developments := make([]model.Development, 0, len(keys))
	lastPrice := make(map[int64]float64)
	quantity := make(map[int64]float64)

	// Keys are sorted by investment then date, so running totals per
	// investment stand in for a rescan of the full history at every date.
	for _, key := range keys {
		quantity[key.investmentID] += buys[key] - sells[key]

		price, ok := quotes[key]
		if !ok {
			price, ok = transactionPrices[key]
		}
		if !ok {
			price, ok = lastPrice[key.investmentID]
		}
		if !ok {
			continue
		}
		lastPrice[key.investmentID] = price

		held := quantity[key.investmentID]
		developments = append(developments, model.Development{
			InvestmentID: key.investmentID,
			Date:         key.date,
			Quantity:     held,
			Price:        price,
			Value:        held * price,
		})
	}

	return developments
}

// averageTransactionPrices computes the average |amount/quantity| of the
// movements of each (investment, date). Zero-quantity movements carry no
// price information and are skipped.
func averageTransactionPrices(movements []model.Movement) map[pointKey]float64 {
	sums := make(map[pointKey]float64)
	counts := make(map[pointKey]int)
	for _, movement := range movements {
		if movement.Quantity == 0 {
			continue
		}
		key := pointKey{movement.InvestmentID, day(movement.Date)}
		sums[key] += math.Abs(movement.Amount / movement.Quantity)
		counts[key]++
	}

	averages := make(map[pointKey]float64, len(sums))
	for key, sum := range sums {
		averages[key] = sum / float64(counts[key])
	}
	return averages
}

// aggregateQuantities sums movement quantities per (investment, date) for one
// action.
func aggregateQuantities(movements []model.Movement, action model.Action) map[pointKey]float64 {
	aggregates := make(map[pointKey]float64)
	for _, movement := range movements {
		if movement.Action != action {
			continue
		}
		aggregates[pointKey{movement.InvestmentID, day(movement.Date)}] += movement.Quantity
	}
	return aggregates
}

// collectKeys unions the observed (investment, date) pairs and sorts them by
// investment, then date. Every movement observes its day, including
// zero-quantity ones; those days fall through to the last known price.
func collectKeys(movements []model.Movement, quotes map[pointKey]float64) []pointKey {
	seen := make(map[pointKey]struct{}, len(movements)+len(quotes))
	for _, movement := range movements {
		seen[pointKey{movement.InvestmentID, day(movement.Date)}] = struct{}{}
	}
	for key := range quotes {
		seen[key] = struct{}{}
	}

	keys := make([]pointKey, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].investmentID != keys[j].investmentID {
			return keys[i].investmentID < keys[j].investmentID
		}
		return keys[i].date.Before(keys[j].date)
	})
	return keys
}

// day truncates a time to midnight UTC.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
