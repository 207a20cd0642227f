package adapters

import (
	"context"
	"io"

	"importcli/pkg/contracts/domain"
)

// RawRecord is one input row exactly as read from the file: column names as
// exported, values unparsed. It exists only inside the adapter boundary; it
// is hashed and discarded, never returned to callers.
type RawRecord map[string]string

// Adapter is the contract every export dialect implements.
//
// Detect is a fast heuristic over a small text sample (header plus a few
// data rows). It must be cheap and must never panic. Parse consumes the full
// file; row-level problems become warnings in the result, and only
// whole-file conditions (undecodable input) return an error.
type Adapter interface {
	ID() domain.SourceFormat
	Detect(sample string) bool
	Parse(ctx context.Context, r io.Reader, locale string) (*domain.ParseResult, error)
}
