package translate

import "time"

const (
	// DefaultEndpoint is the unauthenticated Google Translate web endpoint.
	DefaultEndpoint = "https://translate.googleapis.com/translate_a/single"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 15 * time.Second

	// DefaultRequestsPerMin throttles outgoing calls; the endpoint bans
	// aggressive clients.
	DefaultRequestsPerMin = 60
)
