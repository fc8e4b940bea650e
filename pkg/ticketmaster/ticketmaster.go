package ticketmaster

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

type implTicketmaster struct {
	config Config
}

// New creates a new Ticketmaster Discovery API client.
func New(cfg Config) (ITicketmaster, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &implTicketmaster{config: cfg}, nil
}

// SearchEvents lists events matching the search parameters.
func (c *implTicketmaster) SearchEvents(ctx context.Context, params SearchParams) ([]Event, error) {
	if params.Size <= 0 {
		params.Size = DefaultPageSize
	}

	q := url.Values{}
	q.Set("apikey", c.config.APIKey)
	q.Set("size", strconv.Itoa(params.Size))
	q.Set("page", strconv.Itoa(params.Page))
	q.Set("sort", "date,asc")
	if params.City != "" {
		q.Set("city", params.City)
	}
	if !params.StartTime.IsZero() {
		q.Set("startDateTime", params.StartTime.UTC().Format(DateTimeFormat))
	}
	if !params.EndTime.IsZero() {
		q.Set("endDateTime", params.EndTime.UTC().Format(DateTimeFormat))
	}

	endpoint := fmt.Sprintf("%s/events.json?%s", c.config.APIURL, q.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("ticketmaster: failed to create request: %w", err)
	}

	resp, err := c.config.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ticketmaster: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ticketmaster: API error %d: %s", resp.StatusCode, string(raw))
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("ticketmaster: failed to decode response: %w", err)
	}

	events := make([]Event, 0, len(parsed.Embedded.Events))
	for _, e := range parsed.Embedded.Events {
		venue := ""
		if len(e.Embedded.Venues) > 0 {
			venue = e.Embedded.Venues[0].Name
		}
		events = append(events, Event{
			Name:      e.Name,
			LocalDate: e.Dates.Start.LocalDate,
			Venue:     venue,
			URL:       e.URL,
		})
	}
	return events, nil
}
