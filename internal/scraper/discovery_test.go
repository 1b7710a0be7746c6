package scraper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func listPage(ids ...string) []byte {
	page := "<html><body><ul>"
	for _, id := range ids {
		page += `<li><div class="base-card" data-entity-urn="urn:li:jobPosting:` + id + `"></div></li>`
	}
	page += `<li><div class="other-card">no urn here</div></li>`
	page += "</ul></body></html>"
	return []byte(page)
}

func TestSearchURL(t *testing.T) {
	p := SearchParams{
		Keywords:   "go developer",
		Location:   "New York, NY",
		TimeFilter: "r86400",
		Remote:     true,
		PartTime:   true,
	}
	url := searchURL(p, 50)

	assert.Contains(t, url, "keywords=go+developer")
	assert.Contains(t, url, "location=New+York%2C+NY")
	assert.Contains(t, url, "&f_TPR=r86400")
	assert.Contains(t, url, "&f_JT=P")
	assert.Contains(t, url, "&f_WT=2")
	assert.Contains(t, url, "&start=50")

	plain := searchURL(SearchParams{Keywords: "go"}, 0)
	assert.NotContains(t, plain, "f_TPR")
	assert.NotContains(t, plain, "f_JT")
	assert.NotContains(t, plain, "f_WT")
}

func TestDiscoverJobIDs(t *testing.T) {
	p := SearchParams{Keywords: "go", Location: "Berlin"}
	fetcher := &stubFetcher{pages: map[string][]byte{
		searchURL(p, 0):  listPage("100", "101", "102"),
		searchURL(p, 25): listPage("102", "103"), //102 repeats across pages
	}}
	s := New(fetcher, nil, 0, 0)

	ids, err := s.DiscoverJobIDs(context.Background(), p, 50)
	assert.NoError(t, err)
	assert.Equal(t, []string{"100", "101", "102", "103"}, ids)
}

func TestDiscoverJobIDs_DelayBetweenPages(t *testing.T) {
	delays := 0
	orig := randomDelay
	randomDelay = func(minMs, maxMs int) { delays++ }
	defer func() { randomDelay = orig }()

	p := SearchParams{Keywords: "go", Location: "Berlin"}
	fetcher := &stubFetcher{pages: map[string][]byte{
		searchURL(p, 0):  listPage("100"),
		searchURL(p, 25): listPage("101"),
		searchURL(p, 50): listPage("102"),
	}}
	s := New(fetcher, nil, 1000, 4000)

	ids, err := s.DiscoverJobIDs(context.Background(), p, 75)
	assert.NoError(t, err)
	assert.Len(t, ids, 3)
	//no delay before the first page, one between each pair after
	assert.Equal(t, 2, delays)
}

func TestDiscoverJobIDs_PageFailureSkipped(t *testing.T) {
	p := SearchParams{Keywords: "go", Location: "Berlin"}
	fetcher := &stubFetcher{pages: map[string][]byte{
		//page at start=0 missing: fetch error, skipped
		searchURL(p, 25): listPage("200", "201"),
	}}
	s := New(fetcher, nil, 0, 0)

	ids, err := s.DiscoverJobIDs(context.Background(), p, 30)
	assert.NoError(t, err)
	assert.Equal(t, []string{"200", "201"}, ids)
}

func TestDiscoverJobIDs_NoTarget(t *testing.T) {
	s := New(&stubFetcher{}, nil, 0, 0)
	ids, err := s.DiscoverJobIDs(context.Background(), SearchParams{Keywords: "go"}, 0)
	assert.NoError(t, err)
	assert.Empty(t, ids)
}
