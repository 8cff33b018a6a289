// Package reconcile resolves a parser's draft import result against already
// persisted investments. This is the create-or-match-by-ISIN step: it is
// all-or-nothing, so a result that fails validation changes nothing.
package reconcile

import (
	"fmt"

	"github.com/mverkerk/portfoliodb/internal/apperrors"
	"github.com/mverkerk/portfoliodb/internal/model"
	"github.com/mverkerk/portfoliodb/internal/validation"
)

// Resolution is the outcome of resolving one DataImportResult.
type Resolution struct {
	// NewInvestments are the drafts that matched no existing ISIN, converted
	// to full investments with ids assigned after the existing maximum.
	NewInvestments []model.Investment `json:"newInvestments"`

	// Movements are the draft movements with their provisional investment ids
	// rewritten to persisted ids. Movement ids themselves are left zero; the
	// persistence layer assigns them.
	Movements []model.Movement `json:"movements"`
}

// Resolve validates the drafts in result, matches draft investments against
// existing ones by ISIN, creates full investments for the rest, and rewrites
// every draft movement's provisional id to the persisted investment id.
//
// The provisional id of a draft investment is its 1-based position in
// result.Investments; that invariant is what makes the rewrite possible
// without re-parsing.
func Resolve(result model.DataImportResult, existing []model.Investment) (Resolution, error) {
	for i, draft := range result.Investments {
		if err := validation.ValidateDraftInvestment(draft); err != nil {
			return Resolution{}, fmt.Errorf("%w: investment %d (%s): %v",
				apperrors.ErrInvalidDraft, i+1, draft.ISIN, err)
		}
	}
	for i, draft := range result.Movements {
		if err := validation.ValidateDraftMovement(draft); err != nil {
			return Resolution{}, fmt.Errorf("%w: movement %d: %v",
				apperrors.ErrInvalidDraft, i+1, err)
		}
	}

	byISIN := make(map[string]model.Investment, len(existing))
	nextID := int64(1)
	for _, inv := range existing {
		byISIN[inv.ISIN] = inv
		if inv.ID >= nextID {
			nextID = inv.ID + 1
		}
	}

	resolution := Resolution{
		NewInvestments: []model.Investment{},
		Movements:      []model.Movement{},
	}

	persistedID := make(map[int]int64, len(result.Investments))
	for i, draft := range result.Investments {
		if inv, ok := byISIN[draft.ISIN]; ok {
			persistedID[i+1] = inv.ID
			continue
		}
		inv := model.Investment{
			ID:        nextID,
			Name:      draft.Name,
			ISIN:      draft.ISIN,
			ShortName: draft.ShortName,
		}
		nextID++
		byISIN[inv.ISIN] = inv
		persistedID[i+1] = inv.ID
		resolution.NewInvestments = append(resolution.NewInvestments, inv)
	}

	for i, draft := range result.Movements {
		id, ok := persistedID[draft.Investment]
		if !ok {
			return Resolution{}, fmt.Errorf("%w: movement %d references id %d",
				apperrors.ErrUnknownProvisionalID, i+1, draft.Investment)
		}
		resolution.Movements = append(resolution.Movements, model.Movement{
			Date:         draft.Date,
			Action:       draft.Action,
			InvestmentID: id,
			Quantity:     draft.Quantity,
			Amount:       draft.Amount,
			Fee:          draft.Fee,
		})
	}

	return resolution, nil
}
