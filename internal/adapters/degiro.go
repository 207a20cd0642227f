package adapters

import (
	"strings"

	"importcli/pkg/contracts/domain"
)

// newDegiro parses DEGIRO transaction statements. There is no action column;
// a negative quantity means a sale. Statements are day-first with European
// number formatting, so the locale default matters here.
func newDegiro() Adapter {
	return &dialect{
		id:            domain.SourceDegiro,
		defaultLocale: "en-GB",
		homeCurrency:  "EUR",
		overrides: synonyms{
			fieldTicker: {"Product"},
			fieldAction: {},
			fieldTotal:  {"Value", "Local value"},
			fieldFee:    {"Transaction and/or third party costs", "Transaction costs"},
			fieldVenue:  {"Venue", "Exchange"},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			return hasAll(h, "product", "isin", "quantity")
		},
		prepare: func(v *rowView) {
			if strings.HasPrefix(strings.TrimSpace(v.quantity), "-") {
				v.side = domain.SideSell
			} else {
				v.side = domain.SideBuy
			}
			v.sideSet = true
			// Costs are booked negative (money out); the charge itself is
			// still a real fee.
			v.fee = strings.TrimPrefix(strings.TrimSpace(v.fee), "-")
		},
	}
}
