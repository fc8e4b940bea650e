package ticketmaster

import (
	"net/http"
	"time"
)

// Config holds Ticketmaster Discovery API client configuration.
type Config struct {
	APIKey     string
	APIURL     string // optional, defaults to DefaultAPIURL
	HTTPClient *http.Client
}

// Validate checks if the config is valid.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrAPIKeyRequired
	}
	return nil
}

// SearchParams are the event search parameters.
type SearchParams struct {
	City      string
	StartTime time.Time
	EndTime   time.Time
	Page      int
	Size      int
}

// Event is a single discovered event.
type Event struct {
	Name      string
	LocalDate string
	Venue     string
	URL       string
}

// Wire types for the Discovery API response.
type searchResponse struct {
	Embedded struct {
		Events []eventResponse `json:"events"`
	} `json:"_embedded"`
	Page struct {
		TotalElements int `json:"totalElements"`
		TotalPages    int `json:"totalPages"`
		Number        int `json:"number"`
	} `json:"page"`
}

type eventResponse struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Dates struct {
		Start struct {
			LocalDate string `json:"localDate"`
		} `json:"start"`
	} `json:"dates"`
	Embedded struct {
		Venues []struct {
			Name string `json:"name"`
		} `json:"venues"`
	} `json:"_embedded"`
}
