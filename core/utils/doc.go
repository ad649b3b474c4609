// Package utils provides small conversion helpers shared across the
// storage-console application. View records mix values decoded from JSON
// (where every number arrives as float64) with values scanned from the
// database (int64, []byte), so the helpers normalize both worlds before
// records are compared or merged.
package utils
