package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientGet(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	client := NewClient()
	body, err := client.Get(context.Background(), srv.URL)

	assert.NoError(t, err)
	assert.Equal(t, "hello", string(body))
	assert.Contains(t, gotUA, "Chrome")
}

func TestClientGet_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient()
	_, err := client.Get(context.Background(), srv.URL)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClientGet_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("too late"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient()
	_, err := client.Get(ctx, srv.URL)
	assert.Error(t, err)
}
