package scraper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-jobfinder/internal/models"
)

type stubFetcher struct {
	pages map[string][]byte
	body  []byte
	err   error
}

func (f *stubFetcher) Get(ctx context.Context, url string) ([]byte, error) {
	if f.pages != nil {
		if body, ok := f.pages[url]; ok {
			return body, nil
		}
		return nil, errors.New("page not found")
	}
	return f.body, f.err
}

const detailPageHTML = `<html><body>
<div class="top-card-layout__card">
	<a href="https://example.com/company/techcorp"><img alt="TechCorp" src="logo.png"></a>
</div>
<div class="top-card-layout__entity-info">
	<a class="topcard__link" href="https://example.com/jobs/view/123">Senior Go Engineer</a>
</div>
<span class="topcard__flavor topcard__flavor--bullet">Berlin, Germany</span>
<span class="posted-time-ago__text">2 weeks ago</span>
<span class="num-applicants__caption">47 applicants</span>
<div class="compensation__salary-range"><div class="salary compensation__salary">$100,000 - $140,000</div></div>
<div class="description__text description__text--rich">
	<h2>About the role</h2>
	<p>We build <strong>distributed systems</strong> in Go. Fully remote.</p>
	<ul><li>5+ years of experience</li><li>Kubernetes</li></ul>
</div>
<ul class="description__job-criteria-list">
	<li>Seniority level Mid-Senior level</li>
	<li>Employment type Full-time</li>
	<li>Job function Engineering</li>
	<li>Industries Software Development</li>
</ul>
</body></html>`

func TestFetchJobDetail(t *testing.T) {
	restore := scrapeDate
	scrapeDate = func() time.Time { return time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC) }
	defer func() { scrapeDate = restore }()

	s := New(&stubFetcher{body: []byte(detailPageHTML)}, nil, 0, 0)
	job := s.FetchJobDetail(context.Background(), "4012345678")

	if !assert.NotNil(t, job) {
		return
	}
	assert.Equal(t, "4012345678", job.JobID)
	assert.Equal(t, "TechCorp", job.Company)
	assert.Equal(t, "Senior Go Engineer", job.Title)
	assert.Equal(t, "Berlin, Germany", job.Location)
	assert.Equal(t, "2 weeks ago", job.PostedTime)
	if assert.NotNil(t, job.PostedDate) {
		assert.Equal(t, "2026-02-28", *job.PostedDate)
	}
	assert.Equal(t, "47 applicants", job.Applicants)
	assert.Equal(t, "https://example.com/jobs/view/123", job.JobPostingLink)
	if assert.NotNil(t, job.SalaryRange) {
		assert.Equal(t, "$100,000 - $140,000", *job.SalaryRange)
	}
	assert.Equal(t, "Mid-Senior level", job.Level)
	assert.Equal(t, "Full-time", job.EmploymentType)
	assert.Equal(t, "Engineering", job.JobFunction)
	assert.Equal(t, "Software Development", job.Industries)
	assert.Equal(t, "2026-03-14", job.Date)
	assert.NotEmpty(t, job.ID)

	//description survives as markdown
	assert.Contains(t, job.Content, "## About the role")
	assert.Contains(t, job.Content, "**distributed systems**")
	assert.Contains(t, job.Content, "- 5+ years of experience")

	//"fully remote" in the description wins over the city in the location
	assert.Equal(t, "Remote", job.WorkLocationType)
}

func TestFetchJobDetail_Defaults(t *testing.T) {
	s := New(&stubFetcher{body: []byte(`<html><body><p>nothing useful</p></body></html>`)}, nil, 0, 0)
	job := s.FetchJobDetail(context.Background(), "42")

	if !assert.NotNil(t, job) {
		return
	}
	assert.Equal(t, "Unknown Company", job.Company)
	assert.Equal(t, "Unknown Title", job.Title)
	assert.Equal(t, "Location not specified", job.Location)
	assert.Equal(t, "N/A", job.PostedTime)
	assert.Nil(t, job.PostedDate)
	assert.Equal(t, "N/A", job.Applicants)
	assert.Equal(t, "N/A", job.JobPostingLink)
	assert.Nil(t, job.SalaryRange)
	assert.Equal(t, "", job.Level)
	assert.Equal(t, "", job.EmploymentType)
	assert.Equal(t, "On-site", job.WorkLocationType)
}

func TestFetchJobDetail_FetchFailure(t *testing.T) {
	s := New(&stubFetcher{err: errors.New("boom")}, nil, 0, 0)
	assert.Nil(t, s.FetchJobDetail(context.Background(), "42"))
}

func TestDetectWorkLocationType(t *testing.T) {
	tests := []struct {
		name     string
		location string
		content  string
		expected string
	}{
		{
			name:     "Remote in location wins",
			location: "Remote - United States",
			content:  "hybrid schedule available",
			expected: "Remote",
		},
		{
			name:     "Hybrid in location beats page remote",
			location: "Hybrid, London",
			content:  "fully remote team",
			expected: "Hybrid",
		},
		{
			name:     "Remote found in page",
			location: "Austin, TX",
			content:  "This role is work from home friendly",
			expected: "Remote",
		},
		{
			name:     "Hybrid found in page",
			location: "Austin, TX",
			content:  "We offer a flexible schedule",
			expected: "Hybrid",
		},
		{
			name:     "Default on-site",
			location: "Austin, TX",
			content:  "Great office with free snacks",
			expected: "On-site",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectWorkLocationType(tt.location, tt.content))
		})
	}
}

func TestScrapeSearchUsesEnrichment(t *testing.T) {
	size := "201-500 employees"
	enricher := &stubEnricher{company: &models.Company{ID: "c-1", CompanyName: "TechCorp", CompanySize: &size}}
	s := New(&stubFetcher{body: []byte(detailPageHTML)}, enricher, 0, 0)

	job := s.FetchJobDetail(context.Background(), "77")
	if assert.NotNil(t, job) {
		if assert.NotNil(t, job.CompanyID) {
			assert.Equal(t, "c-1", *job.CompanyID)
		}
		if assert.NotNil(t, job.CompanySize) {
			assert.Equal(t, size, *job.CompanySize)
		}
		assert.Equal(t, "TechCorp", enricher.gotName)
		assert.Equal(t, "https://example.com/company/techcorp", enricher.gotLink)
	}
}

type stubEnricher struct {
	company *models.Company
	gotName string
	gotLink string
}

func (e *stubEnricher) GetOrEnrich(ctx context.Context, name, link, jobPageText string) (*models.Company, bool, bool, error) {
	e.gotName = name
	e.gotLink = link
	return e.company, false, e.company != nil && e.company.Enriched(), nil
}
