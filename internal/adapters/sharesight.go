package adapters

import "importcli/pkg/contracts/domain"

// newSharesight parses the Sharesight trade export.
func newSharesight() Adapter {
	return &dialect{
		id:            domain.SourceSharesight,
		defaultLocale: "en-AU",
		homeCurrency:  "AUD",
		overrides: synonyms{
			fieldDate:   {"Trade Date", "Date"},
			fieldTicker: {"Stock", "Code", "Symbol"},
			fieldFee:    {"Brokerage", "Brokerage (AUD)"},
			fieldVenue:  {"Market"},
			fieldAction: {"Type", "Transaction Type"},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			return hasAll(h, "stock", "type", "quantity", "price") ||
				hasAll(h, "code", "market", "brokerage") ||
				sampleContains(sample, "sharesight")
		},
	}
}
