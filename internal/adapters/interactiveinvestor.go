package adapters

import (
	"strings"

	"importcli/pkg/contracts/domain"
)

// newInteractiveInvestor parses interactive investor (ii) transaction
// exports. Direction lives in the Debit/Credit money columns; the
// Description field still feeds the classifier so dividends and cash
// movements are skipped.
func newInteractiveInvestor() Adapter {
	return &dialect{
		id:            domain.SourceInteractiveInvestor,
		defaultLocale: "en-GB",
		homeCurrency:  "GBP",
		overrides: synonyms{
			fieldTicker: {"Symbol", "Sedol"},
			fieldAction: {"Description"},
			fieldDate:   {"Date", "Settlement Date"},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			return hasAny(h, "sedol") ||
				hasAll(h, "settlement date", "running balance")
		},
		prepare: func(v *rowView) {
			debit := strings.TrimSpace(v.rec.first([]string{"Debit"}))
			credit := strings.TrimSpace(v.rec.first([]string{"Credit"}))
			if credit != "" && debit == "" {
				v.side = domain.SideSell
				v.sideSet = true
				if v.total == "" {
					v.total = credit
				}
			} else if debit != "" {
				v.side = domain.SideBuy
				v.sideSet = true
				if v.total == "" {
					v.total = debit
				}
			}
		},
	}
}
