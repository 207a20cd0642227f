package adapters

import (
	"strconv"
	"strings"

	"importcli/internal/normalize"
	"importcli/pkg/contracts/domain"
)

// newKoinly handles the Koinly transaction export, which records a trade as
// two legs (Sent Amount/Currency, Received Amount/Currency) instead of a
// quantity and price. The hook rebuilds side, quantity and the implied
// exchange-rate price from whichever legs are present; the Pair column, when
// set, decides which asset the trade is tracked against.
func newKoinly() Adapter {
	return &dialect{
		id:            domain.SourceKoinly,
		defaultLocale: "en-US",
		homeCurrency:  "USD",
		overrides: synonyms{
			fieldDate:   {"Koinly Date", "Date"},
			fieldAction: {"Label", "Type", "Tag"},
			fieldFee:    {"Fee Amount"},
			fieldNotes:  {"Description", "Notes"},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			return hasAny(h, "koinly date") ||
				hasAll(h, "sent amount", "received amount") ||
				sampleContains(sample, "koinly")
		},
		prepare: prepareKoinlyRow,
	}
}

func prepareKoinlyRow(v *rowView) {
	sentRaw := v.rec.first([]string{"Sent Amount"})
	recvRaw := v.rec.first([]string{"Received Amount"})
	sentCur := strings.ToUpper(v.rec.first([]string{"Sent Currency"}))
	recvCur := strings.ToUpper(v.rec.first([]string{"Received Currency"}))

	if sentRaw == "" && recvRaw == "" {
		// Not a two-leg row; leave the generic resolution alone.
		return
	}

	// Koinly exports are machine generated with en-US number formatting.
	sent, sentErr := normalize.Number(sentRaw, "en-US")
	recv, recvErr := normalize.Number(recvRaw, "en-US")
	hasSent := sentErr == nil && sent > 0
	hasRecv := recvErr == nil && recv > 0

	base := sentCur
	if pair := v.rec.first([]string{"Pair"}); pair != "" {
		if b, _, ok := splitMarketPair(pair); ok {
			base = b
		}
	}

	switch {
	case hasSent && hasRecv:
		// One asset exchanged for another; track the base leg.
		if base == "" || sentCur == base {
			v.side = domain.SideSell
			setQtyPrice(v, sent, recv/sent)
			v.tickerCanonical = sentCur
			v.currency = recvCur
		} else {
			v.side = domain.SideBuy
			setQtyPrice(v, recv, sent/recv)
			v.tickerCanonical = recvCur
			v.currency = sentCur
		}
		v.sideSet = true
	case hasSent:
		v.side = domain.SideSell
		v.sideSet = true
		setQtyPrice(v, sent, 0)
		v.tickerCanonical = sentCur
	case hasRecv:
		v.side = domain.SideBuy
		v.sideSet = true
		setQtyPrice(v, recv, 0)
		v.tickerCanonical = recvCur
	default:
		v.skip = true
		return
	}

	if v.tickerCanonical == "" {
		v.tickerCanonical = base
	}
	// Transfers between own wallets still carry legs; the classifier must
	// keep seeing the label so they are skipped as non-trade activity.
}

// setQtyPrice overwrites the resolved quantity/price strings with values a
// hook computed from the row's legs. Zero price leaves the resolved price
// (or the total fallback) in effect.
func setQtyPrice(v *rowView, qty, price float64) {
	v.quantity = strconv.FormatFloat(qty, 'f', -1, 64)
	if price > 0 {
		v.price = strconv.FormatFloat(price, 'f', -1, 64)
	}
}
