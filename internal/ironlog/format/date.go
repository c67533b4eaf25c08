package format

import (
	"regexp"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	dateTimeLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
	}
	weekYearPrefix = regexp.MustCompile(`^\d{4}-`)
)

// ParseDate accepts both plain ISO dates ("2024-01-15") and date-times.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, "T ") {
		return time.Parse(DateLayout, s)
	}
	var err error
	for _, layout := range dateTimeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// DisplayDate renders an ISO date as "15 Jan 2024".
// Unparsable input is returned as is.
func DisplayDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("2 Jan 2006")
}

// MonthDay truncates an ISO date to its month-day part ("2024-01-15" -> "01-15").
func MonthDay(s string) string {
	if len(s) < 5 {
		return ""
	}
	return s[5:]
}

// WeekLabel strips the year from a "2024-W03" week key.
func WeekLabel(week string) string {
	return weekYearPrefix.ReplaceAllString(week, "")
}

// Today returns the current date in the given location as an ISO date.
func Today(now time.Time, loc *time.Location) string {
	if loc != nil {
		now = now.In(loc)
	}
	return now.Format(DateLayout)
}
