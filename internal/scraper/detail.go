package scraper

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"go-jobfinder/internal/models"
)

const (
	detailEndpoint = "https://www.linkedin.com/jobs-guest/jobs/api/jobPosting/%s"

	defaultCompany  = "Unknown Company"
	defaultTitle    = "Unknown Title"
	defaultLocation = "Location not specified"
	defaultNA       = "N/A"
	defaultOnSite   = "On-site"
)

// FetchJobDetail fetches and parses one posting page. Every field falls back
// to its default when the page lacks it; only a fetch or parse failure of
// the whole page yields nil.
func (s *Scraper) FetchJobDetail(ctx context.Context, jobID string) *models.Job {
	pageURL := fmt.Sprintf(detailEndpoint, jobID)
	body, err := s.fetcher.Get(ctx, pageURL)
	if err != nil {
		log.Printf("[scraper] job %s: fetch failed: %v", jobID, err)
		return nil
	}
	doc, err := parseDocument(body)
	if err != nil {
		log.Printf("[scraper] job %s: parse failed: %v", jobID, err)
		return nil
	}

	job := &models.Job{
		ID:          uuid.NewString(),
		JobID:       jobID,
		Company:     extractCompany(doc),
		Title:       extractTitle(doc),
		Location:    extractLocation(doc),
		Content:     extractDescription(doc),
		PostedTime:  extractPostedTime(doc),
		Applicants:  extractApplicants(doc),
		ParsingLink: pageURL,
		Date:        scrapeDate().Format("2006-01-02"),
	}
	job.PostedDate = relativePostedDate(job.PostedTime, scrapeDate())
	job.JobPostingLink = extractJobLink(doc)
	job.SalaryRange = extractSalary(doc)
	job.Level, job.EmploymentType, job.JobFunction, job.Industries = extractCriteria(doc)
	job.WorkLocationType = detectWorkLocationType(job.Location, job.Content)

	if s.enricher != nil {
		s.enrichCompany(ctx, doc, job)
	}
	return job
}

func (s *Scraper) enrichCompany(ctx context.Context, doc *html.Node, job *models.Job) {
	company, _, _, err := s.enricher.GetOrEnrich(ctx, job.Company, extractCompanyLink(doc), job.Content)
	if err != nil {
		log.Printf("[scraper] job %s: company enrichment failed: %v", job.JobID, err)
		return
	}
	if company == nil {
		return
	}
	job.CompanyID = &company.ID
	job.CompanySize = company.CompanySize
	job.CompanyFollowers = company.Followers
	job.CompanyIndustry = company.Industry
	job.CompanyInfoLink = company.CompanyURL
}

func extractCompany(doc *html.Node) string {
	card := findNode(doc, elementWithClass("div", "top-card-layout__card"))
	if card != nil {
		if a := findNode(card, element("a")); a != nil {
			if img := findNode(a, element("img")); img != nil {
				if alt := strings.TrimSpace(attr(img, "alt")); alt != "" {
					return alt
				}
			}
		}
	}
	return defaultCompany
}

func extractTitle(doc *html.Node) string {
	info := findNode(doc, elementWithClass("div", "top-card-layout__entity-info"))
	if info != nil {
		if a := findNode(info, element("a")); a != nil {
			if text := textContent(a); text != "" {
				return text
			}
		}
	}
	return defaultTitle
}

func extractLocation(doc *html.Node) string {
	span := findNode(doc, elementWithClass("span", "topcard__flavor--bullet"))
	if span != nil {
		if text := textContent(span); text != "" {
			return text
		}
	}
	return defaultLocation
}

func extractDescription(doc *html.Node) string {
	div := findNode(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "div" &&
			hasClasses(n, "description__text", "description__text--rich")
	})
	if div == nil {
		return ""
	}
	return renderMarkdown(div)
}

func extractPostedTime(doc *html.Node) string {
	span := findNode(doc, elementWithClass("span", "posted-time-ago__text"))
	if span != nil {
		if text := textContent(span); text != "" {
			return text
		}
	}
	return defaultNA
}

// extractSalary returns nil when the page carries no salary block, so
// storage keeps the column null instead of an empty string.
func extractSalary(doc *html.Node) *string {
	rng := findNode(doc, elementWithClass("div", "compensation__salary-range"))
	if rng != nil {
		if inner := findNode(rng, elementWithClass("div", "salary")); inner != nil {
			if text := textContent(inner); text != "" {
				return &text
			}
		}
	}
	return nil
}

func extractApplicants(doc *html.Node) string {
	span := findNode(doc, elementWithClass("span", "num-applicants__caption"))
	if span != nil {
		if text := textContent(span); text != "" {
			return text
		}
	}
	return defaultNA
}

func extractJobLink(doc *html.Node) string {
	a := findNode(doc, elementWithClass("a", "topcard__link"))
	if a != nil {
		if href := strings.TrimSpace(attr(a, "href")); href != "" {
			return href
		}
	}
	return defaultNA
}

// extractCompanyLink finds a link to the company profile page, preferring
// the org-name link in the top card.
func extractCompanyLink(doc *html.Node) string {
	if a := findNode(doc, elementWithClass("a", "topcard__org-name-link")); a != nil {
		if href := strings.TrimSpace(attr(a, "href")); href != "" {
			return href
		}
	}
	a := findNode(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "a" &&
			strings.Contains(attr(n, "href"), "/company/")
	})
	if a != nil {
		return strings.TrimSpace(attr(a, "href"))
	}
	return ""
}

// extractCriteria reads the four positional entries of the job criteria
// list: seniority level, employment type, job function, industries. Each
// value has its label prefix stripped; missing entries come back empty.
func extractCriteria(doc *html.Node) (level, employment, function, industries string) {
	list := findNode(doc, elementWithClass("ul", "description__job-criteria-list"))
	if list == nil {
		return "", "", "", ""
	}
	items := childItems(list)
	labels := []string{"Seniority level", "Employment type", "Job function", "Industries"}
	values := make([]string, 4)
	for i := 0; i < 4 && i < len(items); i++ {
		text := textContent(items[i])
		values[i] = strings.TrimSpace(strings.TrimPrefix(text, labels[i]))
	}
	return values[0], values[1], values[2], values[3]
}

var (
	remoteKeywords = []string{
		"remote", "work from home", "wfh", "telecommute",
		"distributed", "anywhere", "fully remote",
	}
	hybridKeywords = []string{
		"hybrid", "flexible", "mix of remote", "partially remote",
	}
)

// detectWorkLocationType classifies the posting from keyword evidence with
// the listed location trusted over the free-form description, and remote
// signals trusted over hybrid ones at equal precedence.
func detectWorkLocationType(location, content string) string {
	loc := strings.ToLower(location)
	page := strings.ToLower(content)

	if containsAny(loc, remoteKeywords) {
		return string(models.LocationRemote)
	}
	if containsAny(loc, hybridKeywords) {
		return string(models.LocationHybrid)
	}
	if containsAny(page, remoteKeywords) {
		return string(models.LocationRemote)
	}
	if containsAny(page, hybridKeywords) {
		return string(models.LocationHybrid)
	}
	return defaultOnSite
}

func containsAny(haystack string, needles []string) bool {
	for _, kw := range needles {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}
