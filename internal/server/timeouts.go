package server

import "time"

const (
	readTimeout  = 10 * time.Second
	idleTimeout  = 60 * time.Second
	writeHeadway = 15 * time.Second
	// pacingHeadway bounds the extra queueing a lookup may do behind other
	// lookups. It stays under writeHeadway so the error response still fits.
	pacingHeadway = 10 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeoutFor leaves room for a full upstream call plus pacing before the
// server gives up on writing a response.
func writeTimeoutFor(upstreamTimeout, pacing time.Duration) time.Duration {
	if upstreamTimeout <= 0 {
		upstreamTimeout = 60 * time.Second
	}
	return upstreamTimeout + pacing + writeHeadway
}

// pacingWaitFor is the longest a lookup may queue for an upstream slot.
// Added to the upstream timeout it stays inside writeTimeoutFor.
func pacingWaitFor(pacing time.Duration) time.Duration {
	if pacing < 0 {
		pacing = 0
	}
	return pacing + pacingHeadway
}
