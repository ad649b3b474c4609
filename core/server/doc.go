// Package server holds the HTTP server configuration.
//
// The main application entry point handles the actual server startup; this
// package only defines the configuration structure: the HTTP port, the API
// key protecting the console API, and the freshness window for cached view
// state.
//
// It is primarily consumed by core/config, which embeds the server settings
// into the aggregated application configuration.
package server
