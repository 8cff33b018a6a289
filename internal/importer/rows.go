package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mverkerk/portfoliodb/internal/model"
)

// line couples a raw file line with its 1-based position in the file, so
// diagnostics keep pointing at the right row even when blank lines are
// interleaved.
type line struct {
	number int
	text   string
}

// splitLines breaks file content into non-empty lines, preserving 1-based
// file line numbers. Windows line endings are tolerated.
func splitLines(content string) []line {
	var lines []line
	for i, raw := range strings.Split(content, "\n") {
		text := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, line{number: i + 1, text: text})
	}
	return lines
}

// looksLikeHeader reports whether the first line of a file is a column header
// rather than data, by checking for known column-name substrings.
func looksLikeHeader(text string, markers []string) bool {
	lower := strings.ToLower(text)
	for _, marker := range markers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// parseCommaDecimal parses a number in comma-decimal locale notation
// ("1.234,56" or "-3,5"). Dots are thousands separators.
func parseCommaDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

// parseFlexibleDecimal parses a number in dot-decimal notation, falling back
// to comma-decimal when the value contains no dot ("1,5" -> 1.5). Values with
// a dot treat commas as thousands separators.
func parseFlexibleDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", "")
		return strconv.ParseFloat(s, 64)
	}
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

// parseDate tries the given layouts in order and returns the first match.
func parseDate(s string, layouts []string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// draftIndex deduplicates investments by ISIN within a single parse call and
// hands out provisional ids. The provisional id of an investment is its
// 1-based position in the drafts slice and is meaningless outside the
// DataImportResult that carries it.
type draftIndex struct {
	byISIN map[string]int
	drafts []model.DraftInvestment
}

func newDraftIndex() *draftIndex {
	return &draftIndex{byISIN: make(map[string]int)}
}

// idFor returns the provisional id for the given ISIN, creating a draft
// investment on first sighting. Later rows with the same ISIN reuse the id;
// their name is ignored.
func (d *draftIndex) idFor(isin, name string) int {
	if id, ok := d.byISIN[isin]; ok {
		return id
	}
	d.drafts = append(d.drafts, model.DraftInvestment{
		Name:      name,
		ISIN:      isin,
		ShortName: deriveShortName(name),
	})
	id := len(d.drafts)
	d.byISIN[isin] = id
	return id
}

// finish applies the end-of-file rules shared by all parsers: copy the
// deduplicated drafts into the result and add the general "nothing found"
// warning when the file produced no data and no errors.
func (d *draftIndex) finish(result *model.DataImportResult) {
	result.Investments = append(result.Investments, d.drafts...)
	if len(result.Investments) == 0 && len(result.Movements) == 0 && len(result.Errors) == 0 {
		result.Warnf("no investments or transactions found in file")
	}
}
