package adapters

import "importcli/pkg/contracts/domain"

// newCoinbase handles both Coinbase export layouts: the retail transaction
// history (Transaction Type / Asset / Quantity Transacted / Spot Price at
// Transaction) and the advanced-trade fill report (Product / Side / Size /
// Created at). The signature column of each layout selects its synonym set
// per row.
func newCoinbase() Adapter {
	return &dialect{
		id:            domain.SourceCoinbase,
		defaultLocale: "en-US",
		homeCurrency:  "USD",
		variants: []variant{
			{
				signature: "Transaction Type",
				overrides: synonyms{
					fieldAction:   {"Transaction Type"},
					fieldTicker:   {"Asset"},
					fieldQuantity: {"Quantity Transacted", "Quantity Transacted (asset)", "Crypto Amount"},
					fieldPrice:    {"Spot Price at Transaction", "Spot Price", "USD Spot Price at Transaction"},
					fieldDate:     {"Timestamp", "Timestamp (UTC)", "Time"},
					fieldCurrency: {"Spot Price Currency", "Quote Currency"},
					fieldTotal:    {"Total (inclusive of fees)", "Total (incl. fees)", "Subtotal"},
					fieldFee:      {"Fees and/or Spread", "Fees"},
					fieldNotes:    {"Notes"},
				},
			},
			{
				signature: "Side",
				overrides: synonyms{
					fieldAction:   {"Side"},
					fieldTicker:   {"Product"},
					fieldQuantity: {"Size"},
					fieldPrice:    {"Price"},
					fieldDate:     {"Created at", "Created At", "created_at"},
					fieldCurrency: {"Price/Fee/Total Unit"},
					fieldFee:      {"Fee"},
					fieldVenue:    {"Portfolio"},
				},
			},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			retail := h["transaction type"] &&
				hasAny(h, "quantity transacted", "spot price at transaction", "spot price currency", "usd spot price at transaction")
			advanced := hasAll(h, "product", "side") && hasAny(h, "created at", "created_at")
			return retail || advanced
		},
	}
}
