package cleaner

import (
	"context"
	"strings"

	"go-jobfinder/internal/ai"
	"go-jobfinder/internal/models"
)

var (
	locationRemoteKeywords = []string{"remote", "work from home", "wfh", "100% remote", "fully remote"}
	locationHybridKeywords = []string{"hybrid", "flexible", "office/remote", "remote/office"}
	locationOnsiteKeywords = []string{"on-site", "onsite", "in-office", "office-based"}
)

// LocationChain validates the work location type: keyword scoring first, the
// model only when the scores are inconclusive.
type LocationChain struct {
	llm ai.Client
}

func NewLocationChain(llm ai.Client) *LocationChain {
	return &LocationChain{llm: llm}
}

// Validate classifies the posting. currentType is the classification on
// record; it is handed to the model as context, never trusted outright.
func (c *LocationChain) Validate(ctx context.Context, content, currentType string) (models.WorkLocationType, error) {
	if t := detectLocationType(content); t != models.LocationUnknown {
		return t, nil
	}

	resp, err := c.llm.Generate(ctx, locationPrompt(content, currentType))
	if err != nil {
		return models.LocationUnknown, err
	}
	return parseLocationType(resp), nil
}

// detectLocationType scores keyword hits per class. Remote has to beat both
// other classes outright; hybrid only has to beat on-site.
func detectLocationType(content string) models.WorkLocationType {
	lower := normalizeContent(content)

	remoteScore := keywordScore(lower, locationRemoteKeywords)
	hybridScore := keywordScore(lower, locationHybridKeywords)
	onsiteScore := keywordScore(lower, locationOnsiteKeywords)

	switch {
	case remoteScore > hybridScore && remoteScore > onsiteScore:
		return models.LocationRemote
	case hybridScore > onsiteScore:
		return models.LocationHybrid
	case onsiteScore > 0:
		return models.LocationOnSite
	default:
		return models.LocationUnknown
	}
}

func keywordScore(content string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		if strings.Contains(content, kw) {
			score++
		}
	}
	return score
}

// parseLocationType reads a model answer, tolerating surrounding prose.
func parseLocationType(text string) models.WorkLocationType {
	lower := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.Contains(lower, "remote"):
		return models.LocationRemote
	case strings.Contains(lower, "hybrid"):
		return models.LocationHybrid
	case strings.Contains(lower, "on-site"), strings.Contains(lower, "onsite"), strings.Contains(lower, "office"):
		return models.LocationOnSite
	default:
		return models.LocationUnknown
	}
}

// mapLocationType turns a stored free-form value into the enum.
func mapLocationType(s string) models.WorkLocationType {
	lower := strings.ToLower(strings.TrimSpace(s))
	switch {
	case lower == "":
		return models.LocationUnknown
	case strings.Contains(lower, "remote"):
		return models.LocationRemote
	case strings.Contains(lower, "hybrid"):
		return models.LocationHybrid
	case strings.Contains(lower, "on-site"), strings.Contains(lower, "onsite"):
		return models.LocationOnSite
	default:
		return models.LocationUnknown
	}
}
