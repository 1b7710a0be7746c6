package company

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/net/html"

	"go-jobfinder/internal/fetch"
	"go-jobfinder/internal/models"
)

// Store is the persistence surface the service needs. Lookups return
// (nil, nil) when the company is absent; saves merge field-by-field and
// never overwrite a stored value with null.
type Store interface {
	GetCompanyByName(ctx context.Context, name string) (*models.Company, error)
	SaveCompany(ctx context.Context, c *models.Company) (string, error)
}

// Fetcher fetches company profile pages.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Service resolves company names to stored, enriched records. Profile pages
// are fetched at most once per unseen company; repeats within a run hit the
// in-memory cache, repeats across runs hit the companies table.
type Service struct {
	store      Store
	fetcher    Fetcher
	delayMinMs int
	delayMaxMs int

	mu    sync.Mutex
	cache map[string]*models.Company
}

func NewService(store Store, fetcher Fetcher, delayMinMs, delayMaxMs int) *Service {
	return &Service{
		store:      store,
		fetcher:    fetcher,
		delayMinMs: delayMinMs,
		delayMaxMs: delayMaxMs,
		cache:      make(map[string]*models.Company),
	}
}

var (
	followersPattern = regexp.MustCompile(`(?i)([\d,]+\+?)\s+followers`)
	sizeRangePattern = regexp.MustCompile(`(?i)([\d,]+\s*-\s*[\d,]+|[\d,]+\+?)\s+employees`)
)

// GetOrEnrich returns the stored company for name, creating and enriching
// it on first sight. An already-enriched record is returned as-is.
// wasExisting reports a prior record (stored or seen earlier this run),
// wasEnriched whether this call added profile data. A record is always
// produced: when the profile page yields nothing, the company is stored
// bare so later runs can retry enrichment.
func (s *Service) GetOrEnrich(ctx context.Context, companyName, companyLink, jobPageText string) (c *models.Company, wasExisting, wasEnriched bool, err error) {
	if strings.TrimSpace(companyName) == "" {
		return nil, false, false, fmt.Errorf("company name is empty")
	}

	s.mu.Lock()
	cached, ok := s.cache[companyName]
	s.mu.Unlock()
	if ok {
		return cached, true, false, nil
	}

	existing, err := s.store.GetCompanyByName(ctx, companyName)
	if err != nil {
		return nil, false, false, fmt.Errorf("looking up company %q: %w", companyName, err)
	}
	if existing != nil && existing.Enriched() {
		s.remember(existing)
		return existing, true, false, nil
	}
	wasExisting = existing != nil

	company := &models.Company{CompanyName: companyName}
	if existing != nil {
		company = existing
	}

	if companyLink != "" {
		s.enrichFromProfile(ctx, company, companyLink)
	}
	if !company.Enriched() {
		enrichFromText(company, jobPageText)
	}
	if !company.Enriched() {
		log.Printf("[company] %q: no enrichment data found, saving bare record", companyName)
	}

	id, err := s.store.SaveCompany(ctx, company)
	if err != nil {
		return nil, wasExisting, false, fmt.Errorf("saving company %q: %w", companyName, err)
	}
	company.ID = id
	s.remember(company)
	return company, wasExisting, company.Enriched(), nil
}

func (s *Service) remember(c *models.Company) {
	s.mu.Lock()
	s.cache[c.CompanyName] = c
	s.mu.Unlock()
}

// enrichFromProfile fetches the company profile page and scrapes size,
// followers and industry. Failures only log: the job-page-text fallback and
// the bare record path still apply.
func (s *Service) enrichFromProfile(ctx context.Context, company *models.Company, link string) {
	body, err := s.fetcher.Get(ctx, link)
	//be extra polite on profile pages, they rate-limit harder than postings
	fetch.RandomDelay(s.delayMinMs, s.delayMaxMs)
	if err != nil {
		log.Printf("[company] %q: profile fetch failed: %v", company.CompanyName, err)
		return
	}

	text := string(body)
	if m := sizeRangePattern.FindStringSubmatch(text); m != nil && company.CompanySize == nil {
		size := strings.TrimSpace(m[1]) + " employees"
		company.CompanySize = &size
	}
	if m := followersPattern.FindStringSubmatch(text); m != nil && company.Followers == nil {
		followers := strings.TrimSpace(m[1]) + " followers"
		company.Followers = &followers
	}
	if company.Industry == nil {
		if industry := profileIndustry(body); industry != "" {
			company.Industry = &industry
		}
	}
	if company.CompanyURL == nil {
		link := strings.TrimSpace(link)
		company.CompanyURL = &link
	}
}

// profileIndustry pulls the industry line out of the profile top card.
func profileIndustry(body []byte) string {
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return ""
	}
	var industry string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if industry != "" {
			return
		}
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key != "class" {
					continue
				}
				if strings.Contains(a.Val, "top-card-layout__headline") ||
					strings.Contains(a.Val, "org-top-card-summary-info-list__info-item") {
					industry = nodeText(n)
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return industry
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// enrichFromText mines the job page text for company facts when no profile
// page was reachable.
func enrichFromText(company *models.Company, jobPageText string) {
	if jobPageText == "" {
		return
	}
	if company.CompanySize == nil {
		if m := sizeRangePattern.FindStringSubmatch(jobPageText); m != nil {
			size := strings.TrimSpace(m[1]) + " employees"
			company.CompanySize = &size
		}
	}
	if company.Followers == nil {
		if m := followersPattern.FindStringSubmatch(jobPageText); m != nil {
			followers := strings.TrimSpace(m[1]) + " followers"
			company.Followers = &followers
		}
	}
}
