package domain

import (
	"time"
)

// Trade is the canonical representation of one executed buy or sell,
// produced by a format adapter from a single export row.
type Trade struct {
	Date         time.Time    `json:"date" validate:"required"`
	Ticker       string       `json:"ticker" validate:"required"`
	Side         TradeSide    `json:"side" validate:"required,oneof=BUY SELL"`
	Quantity     float64      `json:"quantity" validate:"required,gt=0"`
	Price        float64      `json:"price" validate:"required,gt=0"`
	Currency     string       `json:"currency" validate:"required,min=3,max=4"`
	Fees         float64      `json:"fees" validate:"gte=0"`
	Venue        string       `json:"venue,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	SourceFormat SourceFormat `json:"source_format" validate:"required"`
	ContentHash  string       `json:"content_hash" validate:"required,len=64"`
}

// TradeSide is the direction of a trade.
type TradeSide string

const (
	SideBuy  TradeSide = "BUY"
	SideSell TradeSide = "SELL"
)

// SourceFormat identifies the export dialect an adapter handles. The set is
// closed: every emitted trade carries one of these for traceability, and
// callers may store them.
type SourceFormat string

const (
	SourceSchwab               SourceFormat = "schwab"
	SourceVanguard             SourceFormat = "vanguard"
	SourceEtrade               SourceFormat = "etrade"
	SourceFidelity             SourceFormat = "fidelity"
	SourceTrading212           SourceFormat = "trading212"
	SourceFreetrade            SourceFormat = "freetrade"
	SourceDegiro               SourceFormat = "degiro"
	SourceIG                   SourceFormat = "ig"
	SourceSaxo                 SourceFormat = "saxo"
	SourceInteractiveInvestor  SourceFormat = "interactive-investor"
	SourceRevolut              SourceFormat = "revolut"
	SourceIBKRFlex             SourceFormat = "ibkr-flex"
	SourceKraken               SourceFormat = "kraken"
	SourceBinance              SourceFormat = "binance"
	SourceCoinbase             SourceFormat = "coinbase"
	SourceKoinly               SourceFormat = "koinly"
	SourceTurboTax             SourceFormat = "turbotax"
	SourceGhostfolio           SourceFormat = "ghostfolio"
	SourceSharesight           SourceFormat = "sharesight"

	// SourceUnknown is the sentinel returned when no adapter claims a sample.
	SourceUnknown SourceFormat = "unknown"
)
