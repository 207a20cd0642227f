package adapters

import "importcli/pkg/contracts/domain"

// newFidelity parses Fidelity account history downloads. Actions such as
// "YOU BOUGHT" and "YOU SOLD" resolve through the classifier.
func newFidelity() Adapter {
	return &dialect{
		id:            domain.SourceFidelity,
		defaultLocale: "en-US",
		homeCurrency:  "USD",
		overrides: synonyms{
			fieldDate:  {"Run Date", "Date"},
			fieldPrice: {"Price ($)", "Price"},
			fieldFee:   {"Commission ($)", "Fees ($)", "Commission"},
			fieldTotal: {"Amount ($)", "Amount"},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			return hasAny(h, "run date") ||
				hasAll(h, "price ($)", "action")
		},
	}
}
