package adapters

import "importcli/pkg/contracts/domain"

// newRevolut parses Revolut trading statements. Action values like
// "BUY - MARKET" and "CASH TOP-UP" resolve through the classifier.
func newRevolut() Adapter {
	return &dialect{
		id:            domain.SourceRevolut,
		defaultLocale: "en-GB",
		homeCurrency:  "GBP",
		overrides: synonyms{
			fieldPrice:  {"Price per share", "Price"},
			fieldTotal:  {"Total Amount", "Total"},
			fieldAction: {"Type", "Action"},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			return hasAny(h, "price per share") ||
				sampleContains(sample, "revolut")
		},
	}
}
