package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// ViewTTLSeconds is the freshness window for cached view state.
	// Zero means every list request refreshes from the sources.
	ViewTTLSeconds int `mapstructure:"view_ttl_seconds" default:"60"`
}

// ViewTTL returns the view freshness window as a duration.
func (c Config) ViewTTL() time.Duration {
	if c.ViewTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.ViewTTLSeconds) * time.Second
}
