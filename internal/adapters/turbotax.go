package adapters

import "importcli/pkg/contracts/domain"

// newTurboTax parses the TurboTax/Intuit capital gains worksheet. The
// worksheet layout ("Date Sold", "Proceeds", "Cost Basis") describes
// disposals only, so every such row is a sale. Its generic header variant
// overlaps with almost everything else, which is why this adapter is
// registered last.
func newTurboTax() Adapter {
	return &dialect{
		id:            domain.SourceTurboTax,
		defaultLocale: "en-US",
		homeCurrency:  "USD",
		overrides: synonyms{
			fieldTicker: {"Currency Name", "Symbol", "Description"},
		},
		variants: []variant{
			{
				signature: "Date Sold",
				overrides: synonyms{
					fieldDate:  {"Date Sold"},
					fieldTotal: {"Proceeds"},
				},
			},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			return sampleContains(sample, "turbotax") ||
				sampleContains(sample, "intuit") ||
				hasAll(h, "date sold", "cost basis", "proceeds") ||
				hasAll(h, "date", "symbol", "type", "quantity", "price", "currency")
		},
		prepare: func(v *rowView) {
			if v.rec.has("Date Sold") {
				v.side = domain.SideSell
				v.sideSet = true
			}
		},
	}
}
