package reconcile_test

import (
	"errors"
	"testing"

	"github.com/mverkerk/portfoliodb/internal/apperrors"
	"github.com/mverkerk/portfoliodb/internal/model"
	"github.com/mverkerk/portfoliodb/internal/reconcile"
	"github.com/mverkerk/portfoliodb/internal/testutil"
)

func importResult() model.DataImportResult {
	result := model.NewDataImportResult()
	result.Investments = []model.DraftInvestment{
		{Name: "iShares Core MSCI World UCITS ETF", ISIN: "IE00B4L5Y983", ShortName: "MSCI World"},
		{Name: "ComStage MSCI Europe TRN UCITS ETF", ISIN: "LU0392494646", ShortName: "MSCI Europe"},
	}
	result.Movements = []model.DraftMovement{
		{Date: testutil.Date(2021, 2, 1), Action: model.Buy, Investment: 1, Quantity: 10, Amount: 700, Fee: 1.5},
		{Date: testutil.Date(2021, 3, 1), Action: model.Sell, Investment: 2, Quantity: 3, Amount: 196.5, Fee: 1},
	}
	return result
}

// TestResolve tests create-or-match of drafts against persisted investments.
//
// WHY: The provisional ids inside a DataImportResult mean nothing outside
// it; the rewrite to persisted ids is what makes an import result safe to
// store, and id allocation must never collide with existing records.
func TestResolve(t *testing.T) {
	t.Run("matches by ISIN and creates the rest", func(t *testing.T) {
		existing := []model.Investment{
			testutil.Investment(7, "IE00B4L5Y983", "World Fund"),
		}

		resolution, err := reconcile.Resolve(importResult(), existing)
		if err != nil {
			t.Fatalf("Resolve() returned unexpected error: %v", err)
		}

		if len(resolution.NewInvestments) != 1 {
			t.Fatalf("Expected 1 new investment, got %d", len(resolution.NewInvestments))
		}
		created := resolution.NewInvestments[0]
		if created.ISIN != "LU0392494646" {
			t.Errorf("Expected the unmatched ISIN to be created, got %s", created.ISIN)
		}
		if created.ID != 8 {
			t.Errorf("Expected id 8 (after the existing maximum), got %d", created.ID)
		}

		if len(resolution.Movements) != 2 {
			t.Fatalf("Expected 2 movements, got %d", len(resolution.Movements))
		}
		if resolution.Movements[0].InvestmentID != 7 {
			t.Errorf("Expected the matched movement to point at id 7, got %d",
				resolution.Movements[0].InvestmentID)
		}
		if resolution.Movements[1].InvestmentID != 8 {
			t.Errorf("Expected the created movement to point at id 8, got %d",
				resolution.Movements[1].InvestmentID)
		}
	})

	t.Run("creates everything against an empty portfolio", func(t *testing.T) {
		resolution, err := reconcile.Resolve(importResult(), nil)
		if err != nil {
			t.Fatalf("Resolve() returned unexpected error: %v", err)
		}
		if len(resolution.NewInvestments) != 2 {
			t.Fatalf("Expected 2 new investments, got %d", len(resolution.NewInvestments))
		}
		if resolution.NewInvestments[0].ID != 1 || resolution.NewInvestments[1].ID != 2 {
			t.Errorf("Expected ids 1 and 2, got %d and %d",
				resolution.NewInvestments[0].ID, resolution.NewInvestments[1].ID)
		}
	})

	t.Run("movement fields survive the rewrite", func(t *testing.T) {
		resolution, err := reconcile.Resolve(importResult(), nil)
		if err != nil {
			t.Fatalf("Resolve() returned unexpected error: %v", err)
		}
		movement := resolution.Movements[0]
		if movement.Action != model.Buy || movement.Quantity != 10 ||
			movement.Amount != 700 || movement.Fee != 1.5 {
			t.Errorf("Movement fields changed during the rewrite: %+v", movement)
		}
		if !movement.Date.Equal(testutil.Date(2021, 2, 1)) {
			t.Errorf("Expected date 2021-02-01, got %v", movement.Date)
		}
		if movement.ID != 0 {
			t.Errorf("Expected the movement id to stay unassigned, got %d", movement.ID)
		}
	})

	t.Run("an invalid draft fails the whole resolution", func(t *testing.T) {
		result := importResult()
		result.Investments[1].ISIN = "too-short"

		_, err := reconcile.Resolve(result, nil)
		if !errors.Is(err, apperrors.ErrInvalidDraft) {
			t.Errorf("Expected ErrInvalidDraft, got %v", err)
		}
	})

	t.Run("a dangling provisional id fails the whole resolution", func(t *testing.T) {
		result := importResult()
		result.Movements[1].Investment = 99

		_, err := reconcile.Resolve(result, nil)
		if !errors.Is(err, apperrors.ErrUnknownProvisionalID) {
			t.Errorf("Expected ErrUnknownProvisionalID, got %v", err)
		}
	})
}
