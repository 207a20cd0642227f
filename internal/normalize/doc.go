// Package normalize holds the shared parsing primitives used by every format
// adapter: locale-aware date and number parsing, ticker canonicalization,
// currency inference and deterministic content hashing.
//
// All functions are pure. Failures return typed errors naming the offending
// input so adapters can demote them to per-row warnings.
package normalize
