package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Period is a resolved half-open time range [Start, End). Label is a
// normalized identifier for the range, stable across rephrasings of the
// same period.
type Period struct {
	Start time.Time
	End   time.Time
	Label string
}

// Parser resolves natural-language period expressions against a base time.
type Parser struct {
	loc *time.Location
}

// NewParser creates a period parser for the given IANA timezone. An empty or
// invalid timezone falls back to UTC.
func NewParser(timezone string) *Parser {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &Parser{loc: loc}
}

// monthNames is indexed by month-1. Kept as a slice so text naming several
// months always resolves to the earliest one in calendar order.
var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// ParsePeriod resolves a period expression in text relative to base. Text with
// no recognized period defaults to the week starting at base.
func (p *Parser) ParsePeriod(text string, base time.Time) Period {
	lowered := strings.ToLower(text)
	today := p.startOfDay(base)

	switch {
	case strings.Contains(lowered, "next week"):
		start := today.AddDate(0, 0, 7)
		return p.period(start, start.AddDate(0, 0, 7))
	case strings.Contains(lowered, "next month"):
		start := p.startOfMonth(today).AddDate(0, 1, 0)
		return p.period(start, start.AddDate(0, 1, 0))
	case strings.Contains(lowered, "this month"):
		return p.period(today, p.startOfMonth(today).AddDate(0, 1, 0))
	case strings.Contains(lowered, "this week"):
		return p.period(today, today.AddDate(0, 0, 7))
	}

	for i, name := range monthNames {
		if !containsWord(lowered, name) {
			continue
		}
		month := time.Month(i + 1)
		year := today.Year()
		if month < today.Month() {
			year++
		}
		start := time.Date(year, month, 1, 0, 0, 0, 0, p.loc)
		return p.period(start, start.AddDate(0, 1, 0))
	}

	return p.period(today, today.AddDate(0, 0, 7))
}

func (p *Parser) period(start, end time.Time) Period {
	return Period{
		Start: start,
		End:   end,
		Label: fmt.Sprintf("%s/%s", start.Format("2006-01-02"), end.Format("2006-01-02")),
	}
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.loc)
}

func (p *Parser) startOfMonth(t time.Time) time.Time {
	t = t.In(p.loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, p.loc)
}

// containsWord reports whether lowered contains name as a whole word, so that
// "may" does not match inside "maybe".
func containsWord(lowered, name string) bool {
	idx := 0
	for {
		i := strings.Index(lowered[idx:], name)
		if i < 0 {
			return false
		}
		i += idx
		before := i == 0 || !isLetter(lowered[i-1])
		afterIdx := i + len(name)
		after := afterIdx >= len(lowered) || !isLetter(lowered[afterIdx])
		if before && after {
			return true
		}
		idx = i + len(name)
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
