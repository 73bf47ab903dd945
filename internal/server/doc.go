// Package server runs a wiki: it opens the configured store, builds the
// renderer, render cache, wiki service, and web site, and serves them on a
// TCP address or as a Tailscale node.
//
// Run blocks until its context is canceled, then shuts down within
// ShutdownTimeout.
package server
