package adapters

import "importcli/pkg/contracts/domain"

// newSaxo parses Saxo Bank trade exports. It shares most of its header
// vocabulary with IG, so it is registered ahead of IG and claims files
// carrying both "Trade Date" and "Instrument".
func newSaxo() Adapter {
	return &dialect{
		id:            domain.SourceSaxo,
		defaultLocale: "en-GB",
		homeCurrency:  "EUR",
		overrides: synonyms{
			fieldDate:   {"Trade Date", "Date"},
			fieldTicker: {"Instrument", "Instrument Symbol", "Symbol"},
			fieldAction: {"Action", "B/S", "Buy/Sell"},
			fieldTotal:  {"Amount", "Traded Value"},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			return hasAll(h, "trade date", "instrument") ||
				sampleContains(sample, "saxo")
		},
	}
}
