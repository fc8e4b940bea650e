package datemath_test

import (
	"testing"
	"time"

	"studybuddy/pkg/datemath"
)

func TestParsePeriod(t *testing.T) {
	parser := datemath.NewParser("UTC")
	base := time.Date(2026, time.August, 30, 15, 30, 0, 0, time.UTC)

	t.Run("Default is the coming week", func(t *testing.T) {
		got := parser.ParsePeriod("what concerts are there", base)
		if got.Start.Day() != 30 {
			t.Errorf("unexpected start: %v", got.Start)
		}
		if got.End.Sub(got.Start) != 7*24*time.Hour {
			t.Errorf("expected a 7 day window, got %v", got.End.Sub(got.Start))
		}
		if got.Label != "2026-08-30/2026-09-06" {
			t.Errorf("unexpected label: %s", got.Label)
		}
	})

	t.Run("This week", func(t *testing.T) {
		got := parser.ParsePeriod("any events this week?", base)
		if got.Label != "2026-08-30/2026-09-06" {
			t.Errorf("unexpected label: %s", got.Label)
		}
	})

	t.Run("Next week", func(t *testing.T) {
		got := parser.ParsePeriod("what about next week", base)
		if got.Label != "2026-09-06/2026-09-13" {
			t.Errorf("unexpected label: %s", got.Label)
		}
	})

	t.Run("This month runs to month end", func(t *testing.T) {
		got := parser.ParsePeriod("events this month", base)
		if got.Start.Day() != 30 {
			t.Errorf("unexpected start: %v", got.Start)
		}
		if got.End.Month() != time.September || got.End.Day() != 1 {
			t.Errorf("unexpected end: %v", got.End)
		}
	})

	t.Run("Next month", func(t *testing.T) {
		got := parser.ParsePeriod("anything next month", base)
		if got.Label != "2026-09-01/2026-10-01" {
			t.Errorf("unexpected label: %s", got.Label)
		}
	})

	t.Run("Month name in the future stays this year", func(t *testing.T) {
		got := parser.ParsePeriod("concerts in november", base)
		if got.Label != "2026-11-01/2026-12-01" {
			t.Errorf("unexpected label: %s", got.Label)
		}
	})

	t.Run("Month name already past rolls to next year", func(t *testing.T) {
		got := parser.ParsePeriod("concerts in march", base)
		if got.Label != "2027-03-01/2027-04-01" {
			t.Errorf("unexpected label: %s", got.Label)
		}
	})

	t.Run("Two month names resolve to the earlier one", func(t *testing.T) {
		got := parser.ParsePeriod("events in october or november", base)
		if got.Label != "2026-10-01/2026-11-01" {
			t.Errorf("unexpected label: %s", got.Label)
		}
		reversed := parser.ParsePeriod("events in november or october", base)
		if reversed.Label != got.Label {
			t.Errorf("month order in text changed the period: %s vs %s", reversed.Label, got.Label)
		}
	})

	t.Run("Month name must match whole word", func(t *testing.T) {
		got := parser.ParsePeriod("maybe something fun", base)
		if got.Label != "2026-08-30/2026-09-06" {
			t.Errorf("'maybe' should not resolve to May, got %s", got.Label)
		}
	})

	t.Run("Same period yields the same label", func(t *testing.T) {
		a := parser.ParsePeriod("events this week", base)
		b := parser.ParsePeriod("more events", base)
		if a.Label != b.Label {
			t.Errorf("labels differ: %s vs %s", a.Label, b.Label)
		}
	})

	t.Run("Invalid timezone falls back to UTC", func(t *testing.T) {
		p := datemath.NewParser("Not/AZone")
		got := p.ParsePeriod("this week", base)
		if got.Start.Location() != time.UTC {
			t.Errorf("expected UTC, got %v", got.Start.Location())
		}
	})
}
