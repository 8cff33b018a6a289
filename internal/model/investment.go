package model

// Investment represents a security held in the portfolio, identified by its ISIN.
// Uniqueness of the ISIN is enforced by the persistence layer, not here.
type Investment struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ISIN          string `json:"isin"`
	ShortName     string `json:"shortname"`
	TickerSymbol  string `json:"tickerSymbol,omitempty"`
	QuoteProvider string `json:"quoteProvider,omitempty"`
}
