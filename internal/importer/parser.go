// Package importer provides the import-parser framework: a parser contract,
// a registry of available parsers, and the concrete format parsers that turn
// broker-exported transaction files into draft investments and movements.
package importer

import "github.com/mverkerk/portfoliodb/internal/model"

// Parser converts the raw text of one broker export file into a
// DataImportResult.
//
// Parse must never fail for malformed input: row-level problems are recorded
// inside the result (Errors for blocked rows, Warnings for intentionally
// excluded ones) and the remainder of the file is still processed. The only
// whole-file condition, an input without any non-empty line, yields exactly
// one error and an otherwise empty result.
type Parser interface {
	// Name is the unique registry key of this parser.
	Name() string

	// Description is a one-line, human-readable summary of the supported format.
	Description() string

	// SupportedExtensions lists file extensions (with leading dot, lower-case)
	// this parser is willing to handle. Extensions are not exclusive; several
	// parsers may claim the same one.
	SupportedExtensions() []string

	// Parse processes the full file content.
	Parse(content string) model.DataImportResult
}
