package model

import "time"

// Development is a daily position snapshot for one investment: the quantity
// held, the price used and the resulting value. Value is the authoritative
// valuation for that date; the valuation engine treats this series as
// read-only input.
type Development struct {
	InvestmentID int64     `json:"investment"`
	Date         time.Time `json:"date"`
	Quantity     float64   `json:"quantity"`
	Price        float64   `json:"price"`
	Value        float64   `json:"value"`
}

// InvestmentPrice is a fetched market quote for one investment on one date.
// Quote rows feed the snapshot builder; Source records where the quote came
// from (e.g. a provider name or "manual").
type InvestmentPrice struct {
	InvestmentID int64     `json:"investment"`
	Date         time.Time `json:"date"`
	Price        float64   `json:"price"`
	Source       string    `json:"source,omitempty"`
}
