package cleaner

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"go-jobfinder/internal/ai"
	"go-jobfinder/internal/models"
)

// salaryPatterns match the common inline salary notations.
var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*-\s*\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*to\s*\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)\$(\d{1,3}(?:,\d{3})*)\s*k?\s*to\s*\$(\d{1,3}(?:,\d{3})*)\s*k?\s*(?:per\s+year|annually|/year)?`),
	regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})*)\s*k\s*-\s*(\d{1,3}(?:,\d{3})*)\s*k\s*(?:per\s+year|annually|/year)?`),
	regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})*)\s*k\s*to\s*(\d{1,3}(?:,\d{3})*)\s*k\s*(?:per\s+year|annually|/year)?`),
	regexp.MustCompile(`(?i)\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)/yr\s*-\s*\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)/yr`),
}

var nonNumeric = regexp.MustCompile(`[^\d.]`)

// SalaryChain extracts a normalized salary range: regex patterns first, the
// model as fallback.
type SalaryChain struct {
	llm ai.Client
}

func NewSalaryChain(llm ai.Client) *SalaryChain {
	return &SalaryChain{llm: llm}
}

// Extract returns nil when no salary information can be found; that is a
// normal outcome, not an error.
func (c *SalaryChain) Extract(ctx context.Context, content string) (*models.SalaryRange, error) {
	if r := extractSalaryPattern(content); r != nil {
		return r, nil
	}

	resp, err := c.llm.Generate(ctx, salaryPrompt(content))
	if err != nil {
		return nil, err
	}
	return parseSalaryResponse(resp), nil
}

// extractSalaryPattern runs the deterministic patterns. Values under 1000 in
// a text that mentions "k" are treated as thousands.
func extractSalaryPattern(text string) *models.SalaryRange {
	for _, p := range salaryPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		min, err1 := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		max, err2 := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		if strings.Contains(strings.ToLower(text), "k") && min < 1000 {
			min *= 1000
			max *= 1000
		}
		return models.NewSalaryRange(&min, &max, "USD", "yearly")
	}
	return nil
}

// parseSalaryResponse reads the line-per-field format the salary prompt
// demands. Returns nil unless at least one bound was given.
func parseSalaryResponse(text string) *models.SalaryRange {
	var min, max *float64
	currency := ""
	period := ""

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "MIN_SALARY:"):
			min = parseSalaryNumber(strings.TrimPrefix(line, "MIN_SALARY:"))
		case strings.HasPrefix(line, "MAX_SALARY:"):
			max = parseSalaryNumber(strings.TrimPrefix(line, "MAX_SALARY:"))
		case strings.HasPrefix(line, "CURRENCY:"):
			if v := salaryFieldValue(line, "CURRENCY:"); v != "" {
				currency = strings.ToUpper(v)
			}
		case strings.HasPrefix(line, "PERIOD:"):
			if v := salaryFieldValue(line, "PERIOD:"); v != "" {
				period = strings.ToLower(v)
			}
		}
	}

	if min == nil && max == nil {
		return nil
	}
	return models.NewSalaryRange(min, max, currency, period)
}

func salaryFieldValue(line, prefix string) string {
	v := strings.TrimSpace(strings.TrimPrefix(line, prefix))
	switch strings.ToLower(v) {
	case "null", "none", "":
		return ""
	}
	return v
}

func parseSalaryNumber(raw string) *float64 {
	v := salaryFieldValue(raw, "")
	if v == "" {
		return nil
	}
	n, err := strconv.ParseFloat(nonNumeric.ReplaceAllString(v, ""), 64)
	if err != nil {
		return nil
	}
	return &n
}
