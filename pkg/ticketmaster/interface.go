package ticketmaster

import "context"

// ITicketmaster defines the interface for the Ticketmaster Discovery API.
type ITicketmaster interface {
	// SearchEvents lists events matching the search parameters.
	SearchEvents(ctx context.Context, params SearchParams) ([]Event, error)
}
