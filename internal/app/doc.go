// Package app wires the HTTP server together: configuration, logging,
// middleware chain, route mounting, and graceful shutdown. cmd/server is a
// thin shell around this package.
package app
