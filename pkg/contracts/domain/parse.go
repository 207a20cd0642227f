package domain

// ParseResult is the output of one adapter invocation. It is constructed
// fresh per call, never mutated after return, and owned by the caller.
//
// Trades preserves source-row order. Warnings holds one entry per rejected
// row (a truncated snippet of the offending row plus the reason); rows
// recognized as non-trade activity (dividends, transfers, interest) are
// skipped without a warning.
type ParseResult struct {
	SourceFormat SourceFormat  `json:"source_format"`
	Trades       []Trade       `json:"trades"`
	Warnings     []string      `json:"warnings"`
	Metadata     ParseMetadata `json:"metadata"`
}

// ParseMetadata carries per-invocation counters. TotalRows counts every data
// row read from the file; InvalidRows counts rejected rows, so
// len(Trades)+InvalidRows == TotalRows minus silently skipped non-trade rows.
type ParseMetadata struct {
	TotalRows      int    `json:"total_rows"`
	InvalidRows    int    `json:"invalid_rows"`
	ElapsedMillis  int64  `json:"elapsed_millis"`
	AdapterVersion string `json:"adapter_version"`
}
