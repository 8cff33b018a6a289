package model

import "time"

// Action classifies a movement. The integer values are stable and appear
// verbatim in import/export JSON.
type Action int

const (
	// ActionUnknown marks a row whose narration could not be classified.
	// Movements with this action are never emitted by parsers.
	ActionUnknown Action = 0

	Buy      Action = 1
	Sell     Action = 2
	Dividend Action = 3
)

// String returns the human-readable name of the action.
func (a Action) String() string {
	switch a {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	case Dividend:
		return "dividend"
	default:
		return "unknown"
	}
}

// Valid reports whether the action is one of the persisted action codes.
func (a Action) Valid() bool {
	return a == Buy || a == Sell || a == Dividend
}

// Movement represents a discrete cash/quantity-affecting transaction for one
// investment. Quantity and amount are stored as non-negative magnitudes;
// direction is implied solely by Action.
type Movement struct {
	ID           int64     `json:"id"`
	Date         time.Time `json:"date"`
	Action       Action    `json:"action"`
	InvestmentID int64     `json:"investment"`
	Quantity     float64   `json:"quantity"`
	Amount       float64   `json:"amount"`
	Fee          float64   `json:"fee"`
}
