package apperrors

import "errors"

// Import errors represent failures to locate or apply an import parser.
// Row-level parse problems are not errors in this sense; they are recorded
// inside the DataImportResult that the parser returns.
var (
	// ErrParserNotFound indicates that no registered parser carries the requested name.
	ErrParserNotFound = errors.New("import parser not found")

	// ErrNoParserForExtension indicates that no registered parser supports the
	// file extension of the input file.
	ErrNoParserForExtension = errors.New("no import parser for file extension")

	// ErrAmbiguousExtension indicates that more than one registered parser
	// supports the file extension, so the caller must name one explicitly.
	ErrAmbiguousExtension = errors.New("multiple import parsers match file extension")
)

// Return-calculator errors represent invalid cash-flow input or a failed
// numeric search. Both are expected, recoverable outcomes; callers branch on
// them rather than on panics.
var (
	// ErrSeriesLengthMismatch indicates that the dates and values series have
	// different lengths.
	ErrSeriesLengthMismatch = errors.New("dates and values must have the same length")

	// ErrMissingSignChange indicates that the cash-flow values do not contain
	// both a strictly positive and a strictly negative entry, so no internal
	// rate of return exists.
	ErrMissingSignChange = errors.New("cash flows need at least one positive and one negative value")

	// ErrNoConvergence indicates that the root search exhausted its iteration
	// budget without finding a rate inside the bracket.
	ErrNoConvergence = errors.New("rate calculation did not converge")
)

// Reconciliation errors represent draft import results that cannot be
// resolved into persisted entities.
var (
	// ErrInvalidDraft indicates that a draft entity failed required-field validation.
	ErrInvalidDraft = errors.New("invalid draft entity")

	// ErrUnknownProvisionalID indicates that a draft movement references a
	// provisional investment id that does not exist in its own import result.
	ErrUnknownProvisionalID = errors.New("unknown provisional investment id")
)
