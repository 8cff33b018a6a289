package importer

import "strings"

// issuerPrefix is special-cased by the short-name heuristic: fund names that
// open with it are shortened to the words after the issuer instead of the
// issuer itself.
const issuerPrefix = "iShares"

// deriveShortName produces a compact display name for an investment.
//
// Heuristic, in order:
//  1. If the name contains an "ETF" or "UCITS" token, use up to two words
//     directly before it (e.g. "iShares Core MSCI World UCITS ETF" ->
//     "MSCI World").
//  2. If the name starts with the known issuer prefix, use the two words
//     after the issuer.
//  3. Otherwise use the first two words.
func deriveShortName(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return ""
	}

	for i, word := range words {
		token := strings.ToUpper(strings.Trim(word, ".,()"))
		if (token == "ETF" || token == "UCITS") && i > 0 {
			start := i - 2
			if start < 0 {
				start = 0
			}
			return strings.Join(words[start:i], " ")
		}
	}

	if strings.EqualFold(words[0], issuerPrefix) && len(words) >= 3 {
		return strings.Join(words[1:3], " ")
	}

	if len(words) >= 2 {
		return strings.Join(words[:2], " ")
	}
	return words[0]
}
