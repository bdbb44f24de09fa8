// Package timezone centralizes clock access so that every date comparison in
// the booking and refund logic happens in the hotel's configured timezone
// rather than the server's.
package timezone
