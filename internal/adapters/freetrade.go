package adapters

import "importcli/pkg/contracts/domain"

// newFreetrade parses Freetrade activity exports. The newer full export
// prices in the instrument's native currency and carries the fee in GBP;
// its "Price (native)" column is the variant signature.
func newFreetrade() Adapter {
	return &dialect{
		id:            domain.SourceFreetrade,
		defaultLocale: "en-GB",
		homeCurrency:  "GBP",
		overrides: synonyms{
			fieldTicker: {"Stock", "Symbol", "Ticker"},
			fieldAction: {"Type", "Action"},
		},
		variants: []variant{
			{
				signature: "Price (native)",
				overrides: synonyms{
					fieldPrice:    {"Price (native)"},
					fieldCurrency: {"Currency (native)", "Instrument Currency"},
					fieldFee:      {"Fee (GBP)", "FX Fee (GBP)"},
					fieldTotal:    {"Total Amount (GBP)", "Total Amount"},
				},
			},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			return hasAll(h, "date", "stock", "action", "quantity", "price") ||
				hasAll(h, "price (native)", "quantity") ||
				sampleContains(sample, "freetrade")
		},
	}
}
