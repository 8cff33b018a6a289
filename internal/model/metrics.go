package model

// InvestmentMetrics is the point-in-time valuation of a single investment.
// All monetary fields are in the portfolio base currency.
type InvestmentMetrics struct {
	PaymentSum    float64 `json:"paymentSum"`    // Net capital paid in (buys + fees - sells - dividends)
	QuantityAfter float64 `json:"quantityAfter"` // Quantity held per the selected snapshot
	ValueAfter    float64 `json:"valueAfter"`    // Value per the selected snapshot
	Balance       float64 `json:"balance"`       // ValueAfter - PaymentSum
	Return        float64 `json:"return"`        // Percentage return, rounded to 2 decimals
}

// Totals aggregates per-investment metrics into portfolio-level figures.
//
// Return is the plain sum of the individual return percentages, not a
// value-weighted blend. Kept as-is for compatibility with downstream
// consumers that expect this figure.
type Totals struct {
	ValueAfter float64 `json:"valueAfter"`
	PaymentSum float64 `json:"paymentSum"`
	Balance    float64 `json:"balance"`
	Return     float64 `json:"return"`
}
