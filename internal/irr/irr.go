// Package irr computes the money-weighted (internal) rate of return of a
// cash-flow series via bracketed root-finding.
package irr

import (
	"fmt"
	"math"
	"time"

	"github.com/mverkerk/portfoliodb/internal/apperrors"
)

const (
	// bracketLow and bracketHigh delimit the fixed search interval for the
	// rate: -90% to +200%. Cash-flow patterns with their root outside this
	// interval are the caller's problem and surface as non-convergence.
	bracketLow  = -0.9
	bracketHigh = 2.0

	// tolerance is the net-present-value magnitude below which the search
	// accepts a rate.
	tolerance = 1e-10

	// maxIterations caps the bisection steps.
	maxIterations = 100

	// daysPerYear converts day offsets into year fractions (mean Gregorian
	// year).
	daysPerYear = 365.2425

	hoursPerDay = 24
)

// Calculate finds the rate r such that the net present value of the given
// cash flows is zero: sum(values[i] / (1+r)^t[i]) == 0, with t[i] the offset
// of dates[i] from the earliest date, in years.
//
// Invalid input and non-convergence are expected outcomes and are reported as
// errors (apperrors.ErrSeriesLengthMismatch, apperrors.ErrMissingSignChange,
// apperrors.ErrNoConvergence) rather than panics. The series must contain at
// least one strictly positive and one strictly negative value. No secondary
// bracket or multi-root handling is attempted.
func Calculate(dates []time.Time, values []float64) (float64, error) {
	if len(dates) != len(values) {
		return 0, fmt.Errorf("%w: %d dates, %d values",
			apperrors.ErrSeriesLengthMismatch, len(dates), len(values))
	}

	var hasPositive, hasNegative bool
	for _, v := range values {
		if v > 0 {
			hasPositive = true
		}
		if v < 0 {
			hasNegative = true
		}
	}
	if !hasPositive || !hasNegative {
		return 0, apperrors.ErrMissingSignChange
	}

	earliest := dates[0]
	for _, d := range dates[1:] {
		if d.Before(earliest) {
			earliest = d
		}
	}

	years := make([]float64, len(dates))
	for i, d := range dates {
		years[i] = d.Sub(earliest).Hours() / hoursPerDay / daysPerYear
	}

	npv := func(rate float64) float64 {
		var sum float64
		for i, v := range values {
			sum += v / math.Pow(1+rate, years[i])
		}
		return sum
	}

	low, high := bracketLow, bracketHigh
	npvLow := npv(low)

	for i := 0; i < maxIterations; i++ {
		mid := (low + high) / 2
		npvMid := npv(mid)

		if math.Abs(npvMid) < tolerance {
			return mid, nil
		}

		if (npvLow < 0) == (npvMid < 0) {
			low, npvLow = mid, npvMid
		} else {
			high = mid
		}
	}

	return 0, fmt.Errorf("%w after %d iterations", apperrors.ErrNoConvergence, maxIterations)
}
