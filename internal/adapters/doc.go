// Package adapters implements the broker export dialects: one adapter per
// supported source format, a shared row-parse driver, and the ordered
// registry that performs first-match format detection over a text sample.
//
// Adapters are stateless and pure with respect to their inputs; callers may
// run detect/parse for different files concurrently with no coordination.
package adapters
