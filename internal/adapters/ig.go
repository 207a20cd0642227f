package adapters

import "importcli/pkg/contracts/domain"

// newIG parses IG share dealing exports.
func newIG() Adapter {
	return &dialect{
		id:            domain.SourceIG,
		defaultLocale: "en-GB",
		homeCurrency:  "GBP",
		overrides: synonyms{
			fieldTicker: {"Instrument", "Market", "Epic"},
			fieldAction: {"Action", "Direction", "Activity"},
			fieldTotal:  {"Consideration", "Total"},
			fieldFee:    {"Commission", "Charges"},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			return hasAll(h, "instrument", "action") ||
				hasAll(h, "epic", "direction")
		},
	}
}
