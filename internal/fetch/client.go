package fetch

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"
)

const defaultTimeout = 15 * time.Second

// browserHeaders is the fixed header set sent with every request. The guest
// endpoints return 403 for the default Go user agent.
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,image/apng,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.9",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
	"Cache-Control":             "max-age=0",
}

// Client issues single-attempt GETs with a browser-like header set.
// It never retries; callers own the retry/backoff policy and must insert
// a RandomDelay between successive calls in a loop.
type Client struct {
	client *http.Client
}

func NewClient() *Client {
	return &Client{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Get performs one GET and returns the body on a 2xx response.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	return body, nil
}

// RandomDelay sleeps for a random duration between min and max milliseconds.
// Job pages use 1-4s, company pages 5-10s; skipping the delay materially
// increases the block rate against the live target.
func RandomDelay(min, max int) {
	if min >= max {
		time.Sleep(time.Duration(min) * time.Millisecond)
		return
	}
	duration := time.Duration(rand.Intn(max-min)+min) * time.Millisecond
	time.Sleep(duration)
}
