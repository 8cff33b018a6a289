package validation

import (
	"strings"

	"github.com/mverkerk/portfoliodb/internal/model"
)

// ISINLength is the fixed length of an International Securities
// Identification Number.
const ISINLength = 12

// ValidateDraftInvestment checks that a draft investment extracted from an
// import file carries everything needed to become a persisted investment.
//
// Required fields:
//   - name: Must be non-empty
//   - isin: Must be exactly 12 alphanumeric characters
//
// Returns a validation Error with field-specific messages if validation fails.
func ValidateDraftInvestment(draft model.DraftInvestment) error {
	errors := make(map[string]string)

	if strings.TrimSpace(draft.Name) == "" {
		errors["name"] = "name is required"
	}

	isin := strings.TrimSpace(draft.ISIN)
	switch {
	case isin == "":
		errors["isin"] = "isin is required"
	case len(isin) != ISINLength || !isAlphanumeric(isin):
		errors["isin"] = "isin must be 12 alphanumeric characters"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateDraftMovement checks that a draft movement is internally consistent
// before it is resolved against persisted investments.
//
// Required fields:
//   - date: Must be set
//   - action: Must be one of the persisted action codes (1=Buy, 2=Sell, 3=Dividend)
//   - investment: Must be a positive provisional id
//   - quantity, amount, fee: Must be non-negative
//
// Returns a validation Error with field-specific messages if validation fails.
func ValidateDraftMovement(draft model.DraftMovement) error {
	errors := make(map[string]string)

	if draft.Date.IsZero() {
		errors["date"] = "date is required"
	}

	if !draft.Action.Valid() {
		errors["action"] = "action must be buy, sell or dividend"
	}

	if draft.Investment < 1 {
		errors["investment"] = "provisional investment id must be positive"
	}

	if draft.Quantity < 0 {
		errors["quantity"] = "quantity cannot be negative"
	}
	if draft.Amount < 0 {
		errors["amount"] = "amount cannot be negative"
	}
	if draft.Fee < 0 {
		errors["fee"] = "fee cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
