// Package cli implements the portfoliodb subcommands. Commands read local
// JSON documents and import files, run the pure core packages over them and
// print JSON to stdout; logs go to stderr.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mverkerk/portfoliodb/internal/model"
)

// portfolioFile is the on-disk JSON document the read commands consume. All
// dates are ISO YYYY-MM-DD day strings.
type portfolioFile struct {
	Investments  []model.Investment  `json:"investments"`
	Movements    []movementRecord    `json:"movements"`
	Developments []developmentRecord `json:"developments"`
	Prices       []priceRecord       `json:"prices,omitempty"`
}

type movementRecord struct {
	ID         int64   `json:"id"`
	Date       string  `json:"date"`
	Action     int     `json:"action"`
	Investment int64   `json:"investment"`
	Quantity   float64 `json:"quantity"`
	Amount     float64 `json:"amount"`
	Fee        float64 `json:"fee"`
}

type developmentRecord struct {
	Investment int64   `json:"investment"`
	Date       string  `json:"date"`
	Quantity   float64 `json:"quantity"`
	Price      float64 `json:"price"`
	Value      float64 `json:"value"`
}

type priceRecord struct {
	Investment int64   `json:"investment"`
	Date       string  `json:"date"`
	Price      float64 `json:"price"`
	Source     string  `json:"source,omitempty"`
}

// portfolioData is the decoded, date-parsed form of a portfolioFile.
type portfolioData struct {
	Investments  []model.Investment
	Movements    []model.Movement
	Developments []model.Development
	Prices       []model.InvestmentPrice
}

// loadPortfolioFile reads and decodes a portfolio document.
func loadPortfolioFile(path string) (*portfolioData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read portfolio file: %w", err)
	}

	var file portfolioFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode portfolio file %s: %w", path, err)
	}

	data := &portfolioData{Investments: file.Investments}

	for i, rec := range file.Movements {
		date, err := model.ParseDay(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("movement %d in %s: %w", i+1, path, err)
		}
		data.Movements = append(data.Movements, model.Movement{
			ID:           rec.ID,
			Date:         date,
			Action:       model.Action(rec.Action),
			InvestmentID: rec.Investment,
			Quantity:     rec.Quantity,
			Amount:       rec.Amount,
			Fee:          rec.Fee,
		})
	}

	for i, rec := range file.Developments {
		date, err := model.ParseDay(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("development %d in %s: %w", i+1, path, err)
		}
		data.Developments = append(data.Developments, model.Development{
			InvestmentID: rec.Investment,
			Date:         date,
			Quantity:     rec.Quantity,
			Price:        rec.Price,
			Value:        rec.Value,
		})
	}

	for i, rec := range file.Prices {
		date, err := model.ParseDay(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("price %d in %s: %w", i+1, path, err)
		}
		data.Prices = append(data.Prices, model.InvestmentPrice{
			InvestmentID: rec.Investment,
			Date:         date,
			Price:        rec.Price,
			Source:       rec.Source,
		})
	}

	return data, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
