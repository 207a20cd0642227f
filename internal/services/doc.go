// Package services contains the import orchestration layer: format
// detection over uploaded files, adapter dispatch, post-parse validation,
// concurrent multi-file imports, and the Prometheus metrics the pipeline
// emits. Transport handlers and the CLI both call into this package.
package services
