// Package http exposes the import pipeline over HTTP: multipart upload
// endpoints for importing and detecting broker exports, a format listing,
// and health probes. Handlers translate service errors into the structured
// JSON error envelope and never leak internals.
package http
