// Package testutil provides pure factories for the entities used across
// package tests. There is no database behind them; everything stays in
// memory.
package testutil

import (
	"time"

	"github.com/mverkerk/portfoliodb/internal/model"
)

// Date builds a UTC midnight time for the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Investment builds an investment with sensible defaults.
func Investment(id int64, isin, name string) model.Investment {
	return model.Investment{
		ID:        id,
		Name:      name,
		ISIN:      isin,
		ShortName: name,
	}
}

// Movement builds a movement for the given investment.
func Movement(investmentID int64, date time.Time, action model.Action, quantity, amount, fee float64) model.Movement {
	return model.Movement{
		Date:         date,
		Action:       action,
		InvestmentID: investmentID,
		Quantity:     quantity,
		Amount:       amount,
		Fee:          fee,
	}
}

// Development builds a position snapshot for the given investment. Value is
// derived as quantity * price, matching how the snapshot series is produced.
func Development(investmentID int64, date time.Time, quantity, price float64) model.Development {
	return model.Development{
		InvestmentID: investmentID,
		Date:         date,
		Quantity:     quantity,
		Price:        price,
		Value:        quantity * price,
	}
}

// Quote builds a fetched market price for the given investment.
func Quote(investmentID int64, date time.Time, price float64) model.InvestmentPrice {
	return model.InvestmentPrice{
		InvestmentID: investmentID,
		Date:         date,
		Price:        price,
		Source:       "test",
	}
}
