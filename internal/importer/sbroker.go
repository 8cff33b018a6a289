package importer

import (
	"math"
	"strings"

	"github.com/mverkerk/portfoliodb/internal/model"
)

// sbrokerDateLayout is the German day notation used by the export.
const sbrokerDateLayout = "02.01.2006"

// sbrokerHeaderMarkers identify the optional column header row.
var sbrokerHeaderMarkers = []string{"datum", "isin", "vorgang", "bezeichnung", "stück", "stueck"}

// SBrokerParser parses the semicolon-delimited transaction export of a German
// broker. Expected columns:
//
//	Datum;Vorgang;ISIN;Bezeichnung;Stück;Kurs[;Entgelt]
//
// Dates are DD.MM.YYYY, numbers use comma decimals. The Vorgang narration
// classifies the row; an "Ausführung" (execution) narration is ambiguous and
// is resolved by the sign of the quantity. Custody transfers (Umbuchung,
// Depotübertrag) never represent an economic change and are always skipped.
type SBrokerParser struct{}

// NewSBrokerParser creates the semicolon-export parser.
func NewSBrokerParser() *SBrokerParser {
	return &SBrokerParser{}
}

func (p *SBrokerParser) Name() string { return "sbroker" }

func (p *SBrokerParser) Description() string {
	return "Semicolon-delimited German broker transaction export (DD.MM.YYYY, comma decimals)"
}

func (p *SBrokerParser) SupportedExtensions() []string { return []string{".csv", ".txt"} }

// Parse implements the Parser contract.
func (p *SBrokerParser) Parse(content string) model.DataImportResult {
	result := model.NewDataImportResult()

	lines := splitLines(content)
	if len(lines) == 0 {
		result.Errorf("file is empty")
		return result
	}

	if looksLikeHeader(lines[0].text, sbrokerHeaderMarkers) {
		lines = lines[1:]
	}

	index := newDraftIndex()
	for _, row := range lines {
		p.parseRow(row, index, &result)
	}

	index.finish(&result)
	return result
}

// parseRow processes a single data row independently of all others.
func (p *SBrokerParser) parseRow(row line, index *draftIndex, result *model.DataImportResult) {
	fields := strings.Split(row.text, ";")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	if len(fields) < 6 || fields[0] == "" || fields[2] == "" || fields[3] == "" || fields[4] == "" {
		result.Errorf("line %d: missing required fields (Datum, ISIN, Bezeichnung, Stück)", row.number)
		return
	}

	rawDate, narration, isin, name := fields[0], fields[1], fields[2], fields[3]
	rawQuantity, rawPrice := fields[4], fields[5]

	// The investment draft is created before classification so that rows
	// skipped later still contribute the security itself.
	provisionalID := index.idFor(isin, name)

	date, err := parseDate(rawDate, []string{sbrokerDateLayout})
	if err != nil {
		result.Errorf("line %d: invalid date %q", row.number, rawDate)
		return
	}

	quantity, err := parseCommaDecimal(rawQuantity)
	if err != nil {
		result.Errorf("line %d: invalid quantity %q", row.number, rawQuantity)
		return
	}

	price, err := parseCommaDecimal(rawPrice)
	if err != nil {
		result.Errorf("line %d: invalid price %q", row.number, rawPrice)
		return
	}

	fee := 0.0
	if len(fields) >= 7 && fields[6] != "" {
		fee, err = parseCommaDecimal(fields[6])
		if err != nil {
			result.Errorf("line %d: invalid fee %q", row.number, fields[6])
			return
		}
	}

	if isCustodyTransfer(narration) {
		result.Warnf("line %d: internal custody transfer skipped (%s)", row.number, narration)
		return
	}

	action := classifyGermanNarration(narration, quantity)
	if action == model.ActionUnknown {
		result.Warnf("line %d: unknown action %q, row skipped", row.number, narration)
		return
	}

	result.Movements = append(result.Movements, model.DraftMovement{
		Date:       date,
		Action:     action,
		Investment: provisionalID,
		Quantity:   math.Abs(quantity),
		Amount:     math.Abs(price * quantity),
		Fee:        fee,
	})
}

// isCustodyTransfer recognizes narrations for internal custody transfers.
func isCustodyTransfer(narration string) bool {
	lower := strings.ToLower(narration)
	return strings.Contains(lower, "umbuchung") ||
		strings.Contains(lower, "depotübertrag") ||
		strings.Contains(lower, "depotuebertrag")
}

// classifyGermanNarration maps a free-text Vorgang to an action. "Verkauf" is
// checked before "Kauf" because the former contains the latter. Execution
// narrations carry no direction of their own; the sign of the quantity is the
// tie-break. Merger (Fusion) legs intentionally fall through to plain
// buy/sell classification so each leg books against its own ISIN.
func classifyGermanNarration(narration string, quantity float64) model.Action {
	lower := strings.ToLower(narration)
	switch {
	case strings.Contains(lower, "verkauf"):
		return model.Sell
	case strings.Contains(lower, "kauf"):
		return model.Buy
	case strings.Contains(lower, "dividende"),
		strings.Contains(lower, "ausschüttung"),
		strings.Contains(lower, "ausschuettung"),
		strings.Contains(lower, "ertrag"):
		return model.Dividend
	case strings.Contains(lower, "ausführung"),
		strings.Contains(lower, "ausfuehrung"),
		strings.Contains(lower, "fusion"):
		if quantity < 0 {
			return model.Sell
		}
		return model.Buy
	default:
		return model.ActionUnknown
	}
}
