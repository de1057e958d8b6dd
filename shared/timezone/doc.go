// Package timezone centralizes time handling in the configured
// application timezone so persisted timestamps stay consistent across
// read/write replicas regardless of the host's locale.
package timezone
