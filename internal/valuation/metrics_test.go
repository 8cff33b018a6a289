package valuation_test

import (
	"testing"

	"github.com/mverkerk/portfoliodb/internal/model"
	"github.com/mverkerk/portfoliodb/internal/testutil"
	"github.com/mverkerk/portfoliodb/internal/valuation"
)

// TestValuateInvestment tests the point-in-time metrics of one investment.
//
// WHY: PaymentSum signs are the heart of the valuation: buys add amount and
// fee, sells and dividends subtract the amount but still add the fee. A sign
// slip here corrupts balance and return for every caller.
func TestValuateInvestment(t *testing.T) {
	investment := testutil.Investment(1, "IE00B4L5Y983", "World Fund")
	target := testutil.Date(2021, 6, 30)

	movements := []model.Movement{
		testutil.Movement(1, testutil.Date(2021, 1, 10), model.Buy, 10, 650, 10),
		testutil.Movement(1, testutil.Date(2021, 2, 10), model.Buy, 4, 295, 5),
		testutil.Movement(1, testutil.Date(2021, 3, 10), model.Sell, 2, 100, 5),
		testutil.Movement(1, testutil.Date(2021, 4, 10), model.Dividend, 0, 25, 5),
	}
	developments := []model.Development{
		testutil.Development(1, testutil.Date(2021, 6, 1), 12, 90),
		testutil.Development(1, testutil.Date(2021, 6, 15), 11, 100),
		testutil.Development(1, testutil.Date(2021, 7, 15), 11, 120),
	}

	t.Run("accumulates signed payments and picks the latest snapshot", func(t *testing.T) {
		metrics := valuation.ValuateInvestment(investment, developments, movements, target)

		// 660 + 300 - 95 - 20
		if metrics.PaymentSum != 845 {
			t.Errorf("Expected payment sum 845, got %v", metrics.PaymentSum)
		}
		if metrics.QuantityAfter != 11 {
			t.Errorf("Expected quantity 11 from the June 15 snapshot, got %v", metrics.QuantityAfter)
		}
		if metrics.ValueAfter != 1100 {
			t.Errorf("Expected value 1100, got %v", metrics.ValueAfter)
		}
		if metrics.Balance != 255 {
			t.Errorf("Expected balance 255, got %v", metrics.Balance)
		}
		if metrics.Return != 30.18 {
			t.Errorf("Expected return 30.18, got %v", metrics.Return)
		}
	})

	t.Run("ignores movements after the target date", func(t *testing.T) {
		later := append(movements,
			testutil.Movement(1, testutil.Date(2021, 7, 1), model.Buy, 5, 500, 0))
		metrics := valuation.ValuateInvestment(investment, developments, later, target)

		if metrics.PaymentSum != 845 {
			t.Errorf("Expected payment sum 845, got %v", metrics.PaymentSum)
		}
	})

	t.Run("ignores movements of other investments", func(t *testing.T) {
		mixed := append(movements,
			testutil.Movement(2, testutil.Date(2021, 2, 1), model.Buy, 3, 999, 0))
		metrics := valuation.ValuateInvestment(investment, developments, mixed, target)

		if metrics.PaymentSum != 845 {
			t.Errorf("Expected payment sum 845, got %v", metrics.PaymentSum)
		}
	})

	t.Run("falls back to the earliest snapshot before the history", func(t *testing.T) {
		early := testutil.Date(2020, 1, 1)
		metrics := valuation.ValuateInvestment(investment, developments, nil, early)

		if metrics.ValueAfter != 12*90 {
			t.Errorf("Expected value from the earliest snapshot, got %v", metrics.ValueAfter)
		}
		if metrics.QuantityAfter != 12 {
			t.Errorf("Expected quantity 12, got %v", metrics.QuantityAfter)
		}
	})

	t.Run("returns zero metrics without any snapshot", func(t *testing.T) {
		metrics := valuation.ValuateInvestment(investment, nil, movements, target)

		if metrics != (model.InvestmentMetrics{}) {
			t.Errorf("Expected zero metrics, got %+v", metrics)
		}
	})

	t.Run("return is zero when nothing was paid in", func(t *testing.T) {
		// Dividends alone drive the payment sum negative.
		dividendOnly := []model.Movement{
			testutil.Movement(1, testutil.Date(2021, 1, 10), model.Dividend, 0, 50, 0),
		}
		metrics := valuation.ValuateInvestment(investment, developments, dividendOnly, target)

		if metrics.PaymentSum != -50 {
			t.Errorf("Expected payment sum -50, got %v", metrics.PaymentSum)
		}
		if metrics.Return != 0 {
			t.Errorf("Expected return 0 for non-positive payments, got %v", metrics.Return)
		}
	})
}

// TestCalculateTotals tests the portfolio aggregation.
//
// WHY: The portfolio return is the plain sum of the individual percentages.
// That is unusual enough that a well-meaning refactor could "fix" it to a
// weighted average and silently change every report.
func TestCalculateTotals(t *testing.T) {
	metrics := []model.InvestmentMetrics{
		{PaymentSum: 800, ValueAfter: 1000, Balance: 200, Return: 25},
		{PaymentSum: 200, ValueAfter: 190, Balance: -10, Return: -5},
	}

	totals := valuation.CalculateTotals(metrics)

	if totals.ValueAfter != 1190 {
		t.Errorf("Expected total value 1190, got %v", totals.ValueAfter)
	}
	if totals.PaymentSum != 1000 {
		t.Errorf("Expected total payments 1000, got %v", totals.PaymentSum)
	}
	if totals.Balance != 190 {
		t.Errorf("Expected total balance 190, got %v", totals.Balance)
	}
	if totals.Return != 20 {
		t.Errorf("Expected summed return 20, got %v", totals.Return)
	}

	t.Run("empty input yields zero totals", func(t *testing.T) {
		if got := valuation.CalculateTotals(nil); got != (model.Totals{}) {
			t.Errorf("Expected zero totals, got %+v", got)
		}
	})
}
