package scraper

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var relativeTimePattern = regexp.MustCompile(`(\d+)\s+(minute|hour|day|week|month|year)s?\s+ago`)

// relativePostedDate resolves a relative posted-time label ("3 days ago")
// against now and returns the posting date. Unrecognized labels return nil;
// the raw label is stored alongside either way.
func relativePostedDate(raw string, now time.Time) *string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" || lower == strings.ToLower(defaultNA) {
		return nil
	}
	if strings.Contains(lower, "just now") || strings.Contains(lower, "moments ago") {
		d := now.Format("2006-01-02")
		return &d
	}

	m := relativeTimePattern.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}

	var t time.Time
	switch m[2] {
	case "minute":
		t = now.Add(-time.Duration(n) * time.Minute)
	case "hour":
		t = now.Add(-time.Duration(n) * time.Hour)
	case "day":
		t = now.AddDate(0, 0, -n)
	case "week":
		t = now.AddDate(0, 0, -7*n)
	case "month":
		t = now.AddDate(0, -n, 0)
	case "year":
		t = now.AddDate(-n, 0, 0)
	}
	d := t.Format("2006-01-02")
	return &d
}
