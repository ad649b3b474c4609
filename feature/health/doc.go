// Package health implements the console health check feature.
//
// It probes the dependencies the view features rely on: the platform
// database connection, the presence of the columns the view sources read,
// and the storage bucket holding the volume objects.
//
// # HTTP Endpoints
//
//   - GET /health : Run all probes. Returns 503 when any probe fails.
package health
