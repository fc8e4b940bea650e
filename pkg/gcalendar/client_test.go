package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"studybuddy/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func TestCalendarClient(t *testing.T) {
	// Constructing fake credentials for local parsing flows
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Initialize with broken JWT/OAuth config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		// Native oauth load requires token.json
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from installed app config bad token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"broken": true`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds))
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), tmpFile.Name())
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("List Events E2E", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/test-fail/events" && r.Method == http.MethodGet {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"items": [
						{
							"id": "event-123",
							"summary": "Orientation Day",
							"location": "Main Campus Hall",
							"start": { "date": "2026-09-01" },
							"end": { "date": "2026-09-01" }
						},
						{
							"id": "event-456",
							"summary": "Career Fair",
							"start": { "dateTime": "2026-09-03T10:00:00Z" },
							"end": { "dateTime": "2026-09-03T16:00:00Z" }
						}
					]
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		tsClient := ts.Client()
		tsClient.Transport = &rewriteTransport{
			Transport: tsClient.Transport,
			Host:      strings.TrimPrefix(ts.URL, "http://"),
		}

		client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			CalendarID: "primary",
			TimeMin:    time.Now(),
			TimeMax:    time.Now().Add(time.Hour * 24 * 7),
		})
		if err != nil {
			t.Fatalf("failed to list events: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[0].Summary != "Orientation Day" {
			t.Errorf("unexpected event: %s", events[0].Summary)
		}
		if events[0].StartTime.Format("2006-01-02") != "2026-09-01" {
			t.Errorf("all-day start not parsed: %v", events[0].StartTime)
		}
		if events[1].StartTime.Hour() != 10 {
			t.Errorf("timed start not parsed: %v", events[1].StartTime)
		}

		_, err = client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			CalendarID: "test-fail",
			TimeMin:    time.Now(),
			TimeMax:    time.Now().Add(time.Hour * 24),
		})
		if err == nil {
			t.Fatalf("expected api error on test-fail")
		}
	})
}
