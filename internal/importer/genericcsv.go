package importer

import (
	"math"
	"strings"

	"github.com/mverkerk/portfoliodb/internal/model"
)

// genericDateLayouts are tried in order: ISO, German day notation, US day
// notation.
var genericDateLayouts = []string{"2006-01-02", "02.01.2006", "01/02/2006"}

// genericHeaderMarkers identify the optional column header row.
var genericHeaderMarkers = []string{"date", "isin", "quantity", "description", "type"}

// GenericCSVParser parses a generic comma-delimited transaction format.
// Expected columns:
//
//	date,type,isin,name,quantity,price[,amount[,fee]]
//
// Dates may be ISO (YYYY-MM-DD), DD.MM.YYYY or MM/DD/YYYY. Numbers use dot
// decimals, with a comma-decimal fallback for values written without a dot.
// When the amount column is present it is taken over the computed
// quantity*price product.
type GenericCSVParser struct{}

// NewGenericCSVParser creates the comma-delimited parser.
func NewGenericCSVParser() *GenericCSVParser {
	return &GenericCSVParser{}
}

func (p *GenericCSVParser) Name() string { return "generic-csv" }

func (p *GenericCSVParser) Description() string {
	return "Generic comma-delimited transaction format (ISO, DD.MM.YYYY or MM/DD/YYYY dates)"
}

func (p *GenericCSVParser) SupportedExtensions() []string { return []string{".csv"} }

// Parse implements the Parser contract.
func (p *GenericCSVParser) Parse(content string) model.DataImportResult {
	result := model.NewDataImportResult()

	lines := splitLines(content)
	if len(lines) == 0 {
		result.Errorf("file is empty")
		return result
	}

	if looksLikeHeader(lines[0].text, genericHeaderMarkers) {
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
func (p *GenericCSVParser) parseRow(row line, index *draftIndex, result *model.DataImportResult) {
	fields := strings.Split(row.text, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	if len(fields) < 6 || fields[0] == "" || fields[2] == "" || fields[3] == "" || fields[4] == "" {
		result.Errorf("line %d: missing required fields (date, isin, name, quantity)", row.number)
		return
	}

	rawDate, narration, isin, name := fields[0], fields[1], fields[2], fields[3]
	rawQuantity, rawPrice := fields[4], fields[5]

	provisionalID := index.idFor(isin, name)

	date, err := parseDate(rawDate, genericDateLayouts)
	if err != nil {
		result.Errorf("line %d: invalid date %q", row.number, rawDate)
		return
	}

	quantity, err := parseFlexibleDecimal(rawQuantity)
	if err != nil {
		result.Errorf("line %d: invalid quantity %q", row.number, rawQuantity)
		return
	}

	price, err := parseFlexibleDecimal(rawPrice)
	if err != nil {
		result.Errorf("line %d: invalid price %q", row.number, rawPrice)
		return
	}

	amount := math.Abs(price * quantity)
	if len(fields) >= 7 && fields[6] != "" {
		amount, err = parseFlexibleDecimal(fields[6])
		if err != nil {
			result.Errorf("line %d: invalid amount %q", row.number, fields[6])
			return
		}
		amount = math.Abs(amount)
	}

	fee := 0.0
	if len(fields) >= 8 && fields[7] != "" {
		fee, err = parseFlexibleDecimal(fields[7])
		if err != nil {
			result.Errorf("line %d: invalid fee %q", row.number, fields[7])
			return
		}
	}

	if isInternalTransfer(narration) {
		result.Warnf("line %d: internal custody transfer skipped (%s)", row.number, narration)
		return
	}

	action := classifyEnglishNarration(narration, quantity)
	if action == model.ActionUnknown {
		result.Warnf("line %d: unknown action %q, row skipped", row.number, narration)
		return
	}

	result.Movements = append(result.Movements, model.DraftMovement{
		Date:       date,
		Action:     action,
		Investment: provisionalID,
		Quantity:   math.Abs(quantity),
		Amount:     amount,
		Fee:        fee,
	})
}

// isInternalTransfer recognizes narrations for internal custody transfers.
func isInternalTransfer(narration string) bool {
	return strings.Contains(strings.ToLower(narration), "transfer")
}

// classifyEnglishNarration maps a free-text type column to an action.
// Execution/fill narrations are ambiguous and resolved by the quantity sign;
// merger legs likewise book as plain buy/sell against their own ISIN.
func classifyEnglishNarration(narration string, quantity float64) model.Action {
	lower := strings.ToLower(narration)
	switch {
	case strings.Contains(lower, "sell"), strings.Contains(lower, "sale"):
		return model.Sell
	case strings.Contains(lower, "buy"), strings.Contains(lower, "purchase"):
		return model.Buy
	case strings.Contains(lower, "dividend"), strings.Contains(lower, "distribution"):
		return model.Dividend
	case strings.Contains(lower, "execution"),
		strings.Contains(lower, "fill"),
		strings.Contains(lower, "merger"):
		if quantity < 0 {
			return model.Sell
		}
		return model.Buy
	default:
		return model.ActionUnknown
	}
}
