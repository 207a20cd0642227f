package adapters

import "importcli/pkg/contracts/domain"

// newTrading212 parses the Trading 212 history export. Actions arrive as
// phrases ("Market buy", "Limit sell", "Dividend (Ordinary)") the activity
// classifier already understands.
func newTrading212() Adapter {
	return &dialect{
		id:            domain.SourceTrading212,
		defaultLocale: "en-GB",
		homeCurrency:  "GBP",
		overrides: synonyms{
			fieldDate:     {"Time", "Date"},
			fieldTicker:   {"Ticker"},
			fieldAction:   {"Action"},
			fieldQuantity: {"No. of shares"},
			fieldPrice:    {"Price / share"},
			fieldCurrency: {"Currency (Price / share)"},
			fieldTotal:    {"Total"},
			fieldID:       {"ID"},
			fieldNotes:    {"Notes"},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			return hasAll(h, "action", "no. of shares") ||
				hasAll(h, "action", "isin", "ticker")
		},
	}
}
