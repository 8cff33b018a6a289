package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// DayFormat is the ISO day layout used wherever dates cross a JSON boundary
// at day granularity.
const DayFormat = "2006-01-02"

// ParseDay parses an ISO YYYY-MM-DD day string into a UTC midnight time.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

// DraftInvestment is a provisional, not-yet-persisted investment extracted
// from an import file. It carries only the fields a source file can provide.
type DraftInvestment struct {
	Name      string `json:"name"`
	ISIN      string `json:"isin"`
	ShortName string `json:"shortname"`
}

// DraftMovement is a provisional movement extracted from an import file.
//
// Investment is a provisional sequential id scoped to the single parse call
// that produced it (1-based index into the surrounding result's investment
// slice). It must never be interpreted as a persisted id; consumers re-resolve
// it against persisted investments by ISIN.
type DraftMovement struct {
	Date       time.Time `json:"-"`
	Action     Action    `json:"action"`
	Investment int       `json:"investment"`
	Quantity   float64   `json:"quantity"`
	Amount     float64   `json:"amount"`
	Fee        float64   `json:"fee"`
}

// draftMovementJSON is the wire shape of a draft movement. Every supported
// import format is day-granular, so the date travels as YYYY-MM-DD.
type draftMovementJSON struct {
	Date       string  `json:"date"`
	Action     Action  `json:"action"`
	Investment int     `json:"investment"`
	Quantity   float64 `json:"quantity"`
	Amount     float64 `json:"amount"`
	Fee        float64 `json:"fee"`
}

// MarshalJSON emits the movement with its date as an ISO day string.
func (m DraftMovement) MarshalJSON() ([]byte, error) {
	return json.Marshal(draftMovementJSON{
		Date:       m.Date.Format(DayFormat),
		Action:     m.Action,
		Investment: m.Investment,
		Quantity:   m.Quantity,
		Amount:     m.Amount,
		Fee:        m.Fee,
	})
}

// UnmarshalJSON accepts the wire shape produced by MarshalJSON.
func (m *DraftMovement) UnmarshalJSON(data []byte) error {
	var wire draftMovementJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	date, err := ParseDay(wire.Date)
	if err != nil {
		return fmt.Errorf("draft movement date: %w", err)
	}
	m.Date = date
	m.Action = wire.Action
	m.Investment = wire.Investment
	m.Quantity = wire.Quantity
	m.Amount = wire.Amount
	m.Fee = wire.Fee
	return nil
}

// DataImportResult is the outcome of parsing one import file. Row-level
// problems are collected in Errors (row blocked) and Warnings (row
// intentionally excluded); parsing always continues past them.
type DataImportResult struct {
	Investments []DraftInvestment `json:"investments"`
	Movements   []DraftMovement   `json:"movements"`
	Errors      []string          `json:"errors"`
	Warnings    []string          `json:"warnings"`
}

// NewDataImportResult returns an empty result with all slices allocated so
// the JSON form always contains arrays rather than nulls.
func NewDataImportResult() DataImportResult {
	return DataImportResult{
		Investments: []DraftInvestment{},
		Movements:   []DraftMovement{},
		Errors:      []string{},
		Warnings:    []string{},
	}
}

// Errorf records a row-level error.
func (r *DataImportResult) Errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Warnf records a row-level warning.
func (r *DataImportResult) Warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
