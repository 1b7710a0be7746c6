package cleaner

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"go-jobfinder/internal/ai"
)

// yearPatterns match explicit experience requirements in lowercased content.
// Order matters: the more specific phrasings come first.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`minimum\s+(\d+)\s*years?`),
	regexp.MustCompile(`at\s+least\s+(\d+)\s*years?`),
	regexp.MustCompile(`(\d+)\s*-\s*\d+\s*years?\s+experience`),
	regexp.MustCompile(`(\d+)\+\s*years?`),
	regexp.MustCompile(`(\d+)\s*(?:to\s+\d+\s*)?years?\s+(?:of\s+)?experience`),
}

// levelKeywords maps seniority wording to a representative year count when
// no explicit year requirement is present. First match wins.
var levelKeywords = []struct {
	keywords []string
	years    int
}{
	{[]string{"intern", "internship", "student", "trainee"}, 0},
	{[]string{"entry", "junior", "graduate", "new grad", "beginner"}, 0},
	{[]string{"associate", "early career", "1-3 years"}, 2},
	{[]string{"mid-level", "mid level", "intermediate", "3-5 years"}, 4},
	{[]string{"senior", "sr.", "experienced", "5-8 years"}, 6},
	{[]string{"staff", "principal", "lead", "8-12 years"}, 10},
	{[]string{"director", "vp", "executive", "manager", "12+ years"}, 15},
}

var firstInt = regexp.MustCompile(`\b\d+\b`)

// ExperienceChain extracts the minimum years of experience a posting asks
// for: regex and keyword matching first, the model only when both miss.
type ExperienceChain struct {
	llm ai.Client
}

func NewExperienceChain(llm ai.Client) *ExperienceChain {
	return &ExperienceChain{llm: llm}
}

// Extract returns the minimum years of experience, never negative. An LLM
// answer of -1 (undetermined) is floored to zero.
func (c *ExperienceChain) Extract(ctx context.Context, content string) (int, error) {
	if years := keywordYears(content); years >= 0 {
		return years, nil
	}

	resp, err := c.llm.Generate(ctx, experiencePrompt(content))
	if err != nil {
		return 0, err
	}
	years := parseFirstInt(resp)
	if years < 0 {
		return 0, nil
	}
	return years, nil
}

// keywordYears runs the deterministic ladder: explicit year patterns first,
// then seniority keywords. Returns -1 when neither matches.
func keywordYears(content string) int {
	lower := normalizeContent(content)

	for _, p := range yearPatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n
			}
		}
	}

	for _, level := range levelKeywords {
		for _, kw := range level.keywords {
			if strings.Contains(lower, kw) {
				return level.years
			}
		}
	}
	return -1
}

// parseFirstInt pulls the first standalone integer out of a model response,
// -1 when there is none.
func parseFirstInt(text string) int {
	m := firstInt.FindString(strings.TrimSpace(text))
	if m == "" {
		return -1
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return -1
	}
	return n
}
