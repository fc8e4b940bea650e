package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"studybuddy/internal/model"
	"studybuddy/pkg/gcalendar"
	"studybuddy/pkg/ticketmaster"
)

// answerEvents lists events for the requested period with pagination
// continuation: a "more/other events" follow-up to a prior events turn over
// the same normalized period advances the page.
func (uc *implUseCase) answerEvents(ctx context.Context, session model.Session, text string) (string, map[string]string) {
	if uc.events == nil {
		return fmt.Sprintf("I couldn't fetch events for %s right now. Please try again in a moment.", uc.city), nil
	}

	period := uc.dateMath.ParsePeriod(text, time.Now())

	page := 0
	if eventsFollowUp.MatchString(text) && session.LastIntent == "events" && session.LastParams["period"] == period.Label {
		if prev, err := strconv.Atoi(session.LastParams["page"]); err == nil {
			page = prev + 1
		} else {
			page = 1
		}
		uc.l.Debugf(ctx, "chat.answerEvents: follow-up detected, page=%d", page)
	}

	events, err := uc.events.SearchEvents(ctx, ticketmaster.SearchParams{
		City:      uc.city,
		StartTime: period.Start,
		EndTime:   period.End,
		Page:      page,
		Size:      EventsPageSize,
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat.answerEvents: event lookup failed: %v", err)
		// pagination state must not advance without its event reply
		return fmt.Sprintf("I couldn't fetch events for %s right now. Please try again in a moment.", uc.city), nil
	}

	reply := uc.formatEvents(ctx, events, period.Start, period.End, page)
	return reply, map[string]string{"period": period.Label, "page": strconv.Itoa(page)}
}

// formatEvents renders a numbered event listing, merging in campus calendar
// events when a campus calendar is configured.
func (uc *implUseCase) formatEvents(ctx context.Context, events []ticketmaster.Event, start, end time.Time, page int) string {
	campusEvents := uc.listCampusEvents(ctx, start, end)

	if len(events) == 0 && len(campusEvents) == 0 {
		return fmt.Sprintf("No events in %s.", uc.city)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Upcoming events in %s (page %d):\n", uc.city, page+1)

	n := page * EventsPageSize
	for _, e := range events {
		n++
		date := e.LocalDate
		if parsed, err := time.Parse("2006-01-02", e.LocalDate); err == nil {
			date = parsed.Format("Monday, January 02, 2006")
		}
		venue := e.Venue
		if venue == "" {
			venue = uc.city
		}
		fmt.Fprintf(&b, "\n%d. %s\n   Date: %s\n   Venue: %s\n", n, e.Name, date, venue)
	}

	if len(campusEvents) > 0 {
		b.WriteString("\nOn campus:\n")
		for _, e := range campusEvents {
			fmt.Fprintf(&b, "• %s — %s", e.Summary, e.StartTime.Format("Monday, January 02"))
			if e.Location != "" {
				fmt.Fprintf(&b, " (%s)", e.Location)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// listCampusEvents queries the campus calendar; a missing or failing calendar
// just yields no campus section.
func (uc *implUseCase) listCampusEvents(ctx context.Context, start, end time.Time) []gcalendar.Event {
	if uc.campus == nil {
		return nil
	}
	events, err := uc.campus.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendar,
		TimeMin:    start,
		TimeMax:    end,
		MaxResults: EventsPageSize,
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat.listCampusEvents: calendar lookup failed: %v", err)
		return nil
	}
	return events
}
