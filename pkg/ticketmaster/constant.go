package ticketmaster

import (
	"errors"
	"time"
)

const (
	// DefaultAPIURL is the Ticketmaster Discovery API base URL.
	DefaultAPIURL = "https://app.ticketmaster.com/discovery/v2"

	// DefaultTimeout is the default HTTP timeout for API calls.
	DefaultTimeout = 15 * time.Second

	// DefaultPageSize is the number of events returned per page.
	DefaultPageSize = 5

	// DateTimeFormat is the timestamp layout the Discovery API expects.
	DateTimeFormat = "2006-01-02T15:04:05Z"
)

var (
	ErrAPIKeyRequired = errors.New("ticketmaster: API key is required")
)
