package adapters

import "strings"

// field names one logical trade attribute an adapter must resolve from a
// row. Each dialect maps fields onto an ordered list of column-name
// synonyms for its export; resolution takes the first present, non-blank
// value. Missing synonyms show up as test failures, not as silent blanks.
type field int

const (
	fieldDate field = iota
	fieldTicker
	fieldQuantity
	fieldPrice
	fieldTotal
	fieldAction
	fieldCurrency
	fieldFee
	fieldID
	fieldVenue
	fieldNotes
)

type synonyms map[field][]string

// baseSynonyms is the cross-brokerage vocabulary observed across all
// supported exports. Dialects override individual fields where their export
// uses bespoke names.
func baseSynonyms() synonyms {
	return synonyms{
		fieldDate: {
			"Date", "date", "Trade Date", "Transaction Date", "Open Date",
			"Open Time", "Time", "Timestamp", "Timestamp (UTC)",
			"Execution Time", "Fill Date", "Order Date", "Created at",
			"Created At", "created_at", "Run Date", "TransactionDate",
			"Settlement Date",
		},
		fieldTicker: {
			"Ticker", "ticker", "Symbol", "Instrument", "Stock", "Security",
			"Product", "Asset", "Description", "Investment Name", "RIC",
			"ISIN", "SEDOL",
		},
		fieldQuantity: {
			"Quantity", "quantity", "Qty", "qty", "Units", "Shares",
			"No. of shares", "No of shares", "Filled Qty", "Filled Quantity",
			"Size", "Amount", "Quantity Transacted", "vol",
		},
		fieldPrice: {
			"Price", "price", "Price per share", "Price / share", "Rate",
			"Open Rate", "Execution Price", "Average Price", "Fill Price",
			"Trade Price", "T.Price", "Share Price", "Unit Price",
			"Spot Price at Transaction", "Spot Price", "Price ($)",
		},
		fieldTotal: {
			"Total", "total", "Total Amount", "Value", "Proceeds",
			"Net Amount", "Gross Amount", "Consideration", "Cash Amount",
			"Subtotal", "Amount ($)", "Principal Amount", "cost",
		},
		fieldAction: {
			"Action", "action", "Type", "type", "Side", "Buy/Sell",
			"Transaction Type", "TransactionType", "Direction", "Activity",
			"Operation", "Order Type", "Record Type", "Details",
		},
		fieldCurrency: {
			"Currency", "currency", "Ccy", "CCY", "Currency Code",
			"Currency (native)", "Settlement Currency", "Spot Price Currency",
			"Quote Currency",
		},
		fieldFee: {
			"Fee", "fee", "Fees", "Commission", "Comm/Fee", "Fees & Comm",
			"Fee Amount", "Commission ($)", "Commission Fees", "Brokerage",
			"Fee (GBP)", "Charges",
		},
		fieldID: {
			"Order ID", "Trade ID", "Transaction ID", "Reference",
			"Position ID", "OrderNumber", "External ID", "txid", "ID", "id",
		},
		fieldVenue: {
			"Venue", "Exchange", "Account",
		},
		fieldNotes: {
			"Notes", "Note", "Comment",
		},
	}
}

// merged returns base with the dialect's overrides replacing whole fields.
func (s synonyms) merged(overrides synonyms) synonyms {
	out := make(synonyms, len(s))
	for f, names := range s {
		out[f] = names
	}
	for f, names := range overrides {
		out[f] = names
	}
	return out
}

// first returns the first present, non-blank value among names.
func (r RawRecord) first(names []string) string {
	for _, name := range names {
		if v, ok := r[name]; ok {
			if t := strings.TrimSpace(v); t != "" {
				return t
			}
		}
	}
	return ""
}

// has reports whether the record carries a non-blank value in the column.
func (r RawRecord) has(name string) bool {
	return strings.TrimSpace(r[name]) != ""
}
