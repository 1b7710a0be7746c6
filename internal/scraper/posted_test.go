package scraper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativePostedDate(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		raw      string
		expected string //"" means nil
	}{
		{"Minutes ago", "30 minutes ago", "2026-03-14"},
		{"Hours ago", "5 hours ago", "2026-03-14"},
		{"Days ago", "3 days ago", "2026-03-11"},
		{"Single day", "1 day ago", "2026-03-13"},
		{"Weeks ago", "2 weeks ago", "2026-02-28"},
		{"Months ago", "1 month ago", "2026-02-14"},
		{"Years ago", "1 year ago", "2025-03-14"},
		{"Just now", "Just now", "2026-03-14"},
		{"Not available", "N/A", ""},
		{"Empty", "", ""},
		{"Unrecognized", "a while back", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := relativePostedDate(tt.raw, now)
			if tt.expected == "" {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.Equal(t, tt.expected, *got)
			}
		})
	}
}
