package server

import "time"

const (
	readTimeout = 10 * time.Second
	idleTimeout = 60 * time.Second
	writeSlack  = 30 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeoutFor keeps the write deadline past the longest stats resolution
// so a slow upstream still gets its fallback response delivered.
func writeTimeoutFor(requestTimeout time.Duration) time.Duration {
	if requestTimeout <= 0 {
		requestTimeout = 2 * time.Minute
	}
	return requestTimeout + writeSlack
}
