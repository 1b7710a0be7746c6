package scraper

import (
	"context"
	"log"
	"time"

	"go-jobfinder/internal/fetch"
	"go-jobfinder/internal/models"
)

// Fetcher is the page source used by discovery and detail extraction.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Enricher resolves a company name to a stored company record, enriching it
// with profile data when possible. jobPageText gives the enricher a fallback
// source when no company profile link is present.
type Enricher interface {
	GetOrEnrich(ctx context.Context, companyName, companyLink, jobPageText string) (c *models.Company, wasExisting, wasEnriched bool, err error)
}

// Scraper drives one search: discover job IDs, then fetch and parse each
// posting with a polite delay in between.
type Scraper struct {
	fetcher    Fetcher
	enricher   Enricher
	delayMinMs int
	delayMaxMs int
}

func New(fetcher Fetcher, enricher Enricher, delayMinMs, delayMaxMs int) *Scraper {
	return &Scraper{
		fetcher:    fetcher,
		enricher:   enricher,
		delayMinMs: delayMinMs,
		delayMaxMs: delayMaxMs,
	}
}

// ScrapeSearch runs discovery and detail extraction for one search. Jobs
// whose detail page cannot be fetched or parsed are skipped; everything
// else comes back populated with per-field defaults where the page was
// missing data.
func (s *Scraper) ScrapeSearch(ctx context.Context, p SearchParams, targetJobs int) ([]*models.Job, error) {
	ids, err := s.DiscoverJobIDs(ctx, p, targetJobs)
	if err != nil {
		return nil, err
	}

	jobs := make([]*models.Job, 0, len(ids))
	for i, id := range ids {
		if i > 0 {
			randomDelay(s.delayMinMs, s.delayMaxMs)
		}
		job := s.FetchJobDetail(ctx, id)
		if job == nil {
			continue
		}
		jobs = append(jobs, job)
		if len(jobs)%10 == 0 {
			log.Printf("[scraper] parsed %d/%d jobs", len(jobs), len(ids))
		}
	}
	log.Printf("[scraper] search %q done: %d jobs from %d ids", p.Keywords, len(jobs), len(ids))
	return jobs, nil
}

// scrapeDate and randomDelay are stubbed in tests.
var (
	scrapeDate  = func() time.Time { return time.Now() }
	randomDelay = fetch.RandomDelay
)
