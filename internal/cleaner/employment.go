package cleaner

import (
	"context"
	"strings"

	"go-jobfinder/internal/ai"
	"go-jobfinder/internal/models"
)

// employmentKeywords is checked in order; the first class with a hit wins.
var employmentKeywords = []struct {
	keywords []string
	result   models.EmploymentType
}{
	{[]string{"full-time", "full time", "40 hours", "permanent"}, models.EmploymentFullTime},
	{[]string{"part-time", "part time", "20 hours"}, models.EmploymentPartTime},
	{[]string{"contract", "contractor", "freelance"}, models.EmploymentContract},
	{[]string{"intern", "internship", "student"}, models.EmploymentInternship},
}

// EmploymentChain validates the employment type: keyword matching first, the
// model only when no class matches.
type EmploymentChain struct {
	llm ai.Client
}

func NewEmploymentChain(llm ai.Client) *EmploymentChain {
	return &EmploymentChain{llm: llm}
}

func (c *EmploymentChain) Validate(ctx context.Context, content, currentType string) (models.EmploymentType, error) {
	if t := detectEmploymentType(content); t != models.EmploymentUnknown {
		return t, nil
	}

	resp, err := c.llm.Generate(ctx, employmentPrompt(content, currentType))
	if err != nil {
		return models.EmploymentUnknown, err
	}
	return parseEmploymentType(resp), nil
}

func detectEmploymentType(content string) models.EmploymentType {
	lower := normalizeContent(content)
	for _, class := range employmentKeywords {
		for _, kw := range class.keywords {
			if strings.Contains(lower, kw) {
				return class.result
			}
		}
	}
	return models.EmploymentUnknown
}

func parseEmploymentType(text string) models.EmploymentType {
	lower := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.Contains(lower, "full-time"), strings.Contains(lower, "full time"):
		return models.EmploymentFullTime
	case strings.Contains(lower, "part-time"), strings.Contains(lower, "part time"):
		return models.EmploymentPartTime
	case strings.Contains(lower, "contract"):
		return models.EmploymentContract
	case strings.Contains(lower, "intern"):
		return models.EmploymentInternship
	default:
		return models.EmploymentUnknown
	}
}

// mapEmploymentType turns a stored free-form value into the enum.
func mapEmploymentType(s string) models.EmploymentType {
	lower := strings.ToLower(strings.TrimSpace(s))
	switch {
	case lower == "":
		return models.EmploymentUnknown
	case strings.Contains(lower, "full"):
		return models.EmploymentFullTime
	case strings.Contains(lower, "part"):
		return models.EmploymentPartTime
	case strings.Contains(lower, "contract"):
		return models.EmploymentContract
	case strings.Contains(lower, "intern"):
		return models.EmploymentInternship
	default:
		return models.EmploymentUnknown
	}
}
