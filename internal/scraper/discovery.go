package scraper

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/net/html"
)

const (
	searchEndpoint = "https://www.linkedin.com/jobs-guest/jobs/api/seeMoreJobPostings/search"
	jobsPerPage    = 25
)

// SearchParams describe one guest-API search. TimeFilter is the raw f_TPR
// value (e.g. r86400 for the last 24 hours); zero value means no filter.
type SearchParams struct {
	Keywords   string
	Location   string
	TimeFilter string
	Remote     bool
	PartTime   bool
}

// searchURL builds the paginated guest search URL. start is the absolute
// offset of the first result on the page.
func searchURL(p SearchParams, start int) string {
	var sb strings.Builder
	sb.WriteString(searchEndpoint)
	sb.WriteString("?keywords=")
	sb.WriteString(url.QueryEscape(p.Keywords))
	sb.WriteString("&location=")
	sb.WriteString(url.QueryEscape(p.Location))
	if p.TimeFilter != "" {
		sb.WriteString("&f_TPR=")
		sb.WriteString(url.QueryEscape(p.TimeFilter))
	}
	if p.PartTime {
		sb.WriteString("&f_JT=P")
	}
	if p.Remote {
		sb.WriteString("&f_WT=2")
	}
	sb.WriteString(fmt.Sprintf("&start=%d", start))
	return sb.String()
}

// DiscoverJobIDs walks search result pages until it has seen enough results
// to cover targetJobs, collecting the numeric job ID from each card's
// data-entity-urn. IDs are deduplicated across pages; cards without a
// usable urn are skipped, and a failed page is logged and skipped without
// aborting the run.
func (s *Scraper) DiscoverJobIDs(ctx context.Context, p SearchParams, targetJobs int) ([]string, error) {
	if targetJobs <= 0 {
		return nil, nil
	}
	pages := (targetJobs + jobsPerPage - 1) / jobsPerPage

	seen := mapset.NewSet[string]()
	var ids []string
	for page := 0; page < pages; page++ {
		select {
		case <-ctx.Done():
			return ids, ctx.Err()
		default:
		}
		if page > 0 {
			randomDelay(s.delayMinMs, s.delayMaxMs)
		}

		pageURL := searchURL(p, page*jobsPerPage)
		body, err := s.fetcher.Get(ctx, pageURL)
		if err != nil {
			log.Printf("[discovery] page %d failed, skipping: %v", page, err)
			continue
		}
		doc, err := parseDocument(body)
		if err != nil {
			log.Printf("[discovery] page %d unparseable, skipping: %v", page, err)
			continue
		}
		for _, id := range extractJobIDs(doc) {
			if seen.Add(id) {
				ids = append(ids, id)
			}
		}
	}
	log.Printf("[discovery] found %d unique job ids for %q in %q", len(ids), p.Keywords, p.Location)
	return ids, nil
}

// extractJobIDs pulls the trailing segment of each base-card's
// data-entity-urn (urn:li:jobPosting:4012345678 -> 4012345678).
func extractJobIDs(doc *html.Node) []string {
	var ids []string
	for _, li := range findAll(doc, element("li")) {
		card := findNode(li, elementWithClass("div", "base-card"))
		if card == nil {
			continue
		}
		urn := attr(card, "data-entity-urn")
		if urn == "" {
			continue
		}
		parts := strings.Split(urn, ":")
		id := parts[len(parts)-1]
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
