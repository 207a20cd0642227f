package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"importcli/internal/normalize"
	"importcli/pkg/contracts/domain"
)

const adapterVersion = "1.0.0"

// rowView is one row after synonym resolution, before normalization.
// Dialect hooks may adjust the resolved values, force a side (for exports
// that encode direction in a sign or across columns), supply an
// already-canonical ticker, or mark the row irrelevant.
type rowView struct {
	rec RawRecord

	date     string
	ticker   string
	quantity string
	price    string
	total    string
	action   string
	currency string
	fee      string
	id       string
	venue    string
	notes    string

	// tickerCanonical bypasses normalize.Ticker when a hook has already
	// built the canonical form (crypto pair reconstruction).
	tickerCanonical string

	side    domain.TradeSide
	sideSet bool
	skip    bool
}

// variant selects an alternate synonym set when a signature column is
// present, for providers that ship more than one export layout.
type variant struct {
	signature string
	overrides synonyms
}

// dialect is the descriptor a concrete adapter supplies to the shared parse
// driver: its synonym tables, defaults reflecting the brokerage's home
// market, detection heuristic, and an optional per-row hook.
type dialect struct {
	id            domain.SourceFormat
	defaultLocale string
	homeCurrency  string
	overrides     synonyms
	variants      []variant
	detect        func(sample string) bool
	prepare       func(v *rowView)
}

func (d *dialect) ID() domain.SourceFormat { return d.id }

func (d *dialect) Detect(sample string) bool {
	if d.detect == nil {
		return false
	}
	return d.detect(sample)
}

// Parse implements the shared algorithm: tokenize, resolve fields through
// the synonym tables, classify, normalize, hash, validate. A malformed row
// never stops the remaining rows; only an undecodable file returns an error.
func (d *dialect) Parse(ctx context.Context, r io.Reader, locale string) (*domain.ParseResult, error) {
	start := time.Now()
	_ = ctx // parses are synchronous; callers impose deadlines externally

	records, err := readRows(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.id, err)
	}
	if locale == "" {
		locale = d.defaultLocale
	}

	base := baseSynonyms().merged(d.overrides)

	trades := make([]domain.Trade, 0, len(records))
	var warnings []string
	reject := func(rec RawRecord, reason string) {
		warnings = append(warnings, fmt.Sprintf("row %s: %s", snippet(rec), reason))
	}

	for _, rec := range records {
		v := d.resolve(rec, base)
		if d.prepare != nil {
			d.prepare(v)
		}
		if v.skip {
			continue
		}

		activity := ClassifyActivity(v.action)
		if activity == ActivityNonTrade {
			continue // expected noise, not an error
		}
		if activity == ActivityUnknown && !v.sideSet {
			reject(rec, "unrecognised activity")
			continue
		}

		side := domain.SideBuy
		if v.sideSet {
			side = v.side
		} else if activity == ActivityTradeSell {
			side = domain.SideSell
		}

		qty, err := normalize.Number(v.quantity, locale)
		if err != nil {
			reject(rec, "invalid quantity: "+err.Error())
			continue
		}
		qty = math.Abs(qty)
		if qty == 0 {
			reject(rec, "quantity must be positive")
			continue
		}

		price, perr := normalize.Number(v.price, locale)
		if perr != nil || price == 0 {
			// Derive from total when the export omits a unit price.
			if total, terr := normalize.Number(v.total, locale); terr == nil && total != 0 {
				price = math.Abs(total) / qty
			} else if perr != nil {
				reject(rec, "invalid price: "+perr.Error())
				continue
			}
		}
		price = math.Abs(price)
		if price <= 0 {
			reject(rec, "price must be positive")
			continue
		}

		date, err := normalize.Date(v.date, locale)
		if err != nil {
			reject(rec, err.Error())
			continue
		}

		ticker := v.tickerCanonical
		if ticker == "" {
			ticker, err = normalize.Ticker(v.ticker)
			if err != nil {
				reject(rec, "missing ticker: "+err.Error())
				continue
			}
		}

		fees := 0.0
		if v.fee != "" {
			fees, err = normalize.Number(v.fee, locale)
			if err != nil {
				reject(rec, "invalid fee: "+err.Error())
				continue
			}
			// Brokerage credits show up as negative fees; the trade itself
			// is still valid.
			if fees < 0 {
				fees = 0
			}
		}

		currency := strings.ToUpper(strings.TrimSpace(v.currency))
		if currency == "" {
			currency = normalize.Currency(rec, d.homeCurrency)
		}

		trades = append(trades, domain.Trade{
			Date:         date,
			Ticker:       ticker,
			Side:         side,
			Quantity:     qty,
			Price:        price,
			Currency:     currency,
			Fees:         fees,
			Venue:        v.venue,
			Notes:        v.notes,
			SourceFormat: d.id,
			ContentHash:  normalize.HashRecord(rec),
		})
	}

	return &domain.ParseResult{
		SourceFormat: d.id,
		Trades:       trades,
		Warnings:     warnings,
		Metadata: domain.ParseMetadata{
			TotalRows:      len(records),
			InvalidRows:    len(warnings),
			ElapsedMillis:  time.Since(start).Milliseconds(),
			AdapterVersion: adapterVersion,
		},
	}, nil
}

// resolve reads every logical field through the synonym tables, applying
// variant overrides when their signature column is present in the row.
func (d *dialect) resolve(rec RawRecord, base synonyms) *rowView {
	syn := base
	for _, va := range d.variants {
		if rec.has(va.signature) {
			syn = syn.merged(va.overrides)
		}
	}
	return &rowView{
		rec:      rec,
		date:     rec.first(syn[fieldDate]),
		ticker:   rec.first(syn[fieldTicker]),
		quantity: rec.first(syn[fieldQuantity]),
		price:    rec.first(syn[fieldPrice]),
		total:    rec.first(syn[fieldTotal]),
		action:   rec.first(syn[fieldAction]),
		currency: rec.first(syn[fieldCurrency]),
		fee:      rec.first(syn[fieldFee]),
		id:       rec.first(syn[fieldID]),
		venue:    rec.first(syn[fieldVenue]),
		notes:    rec.first(syn[fieldNotes]),
	}
}

// snippet renders a truncated view of the raw row for warning messages.
func snippet(rec RawRecord) string {
	b, err := json.Marshal(rec)
	if err != nil {
		return "{}"
	}
	const max = 120
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
